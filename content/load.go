package content

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads a page descriptor from a TOML file
// Relative image paths resolve against assetDir, or the file's directory when assetDir is empty
func Load(path, assetDir string) (*Page, error) {
	var p Page
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}

	if assetDir == "" {
		assetDir = filepath.Dir(path)
	}
	p.Resolve(assetDir)
	return &p, nil
}

// Resolve rewrites relative image paths against dir
func (p *Page) Resolve(dir string) {
	for i := range p.Sections {
		for j, img := range p.Sections[i].Images {
			p.Sections[i].Images[j] = resolve(dir, img)
		}
	}
	for i := range p.Layers {
		p.Layers[i].Image = resolve(dir, p.Layers[i].Image)
	}
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
