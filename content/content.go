// Package content holds the static page descriptors: scrolling sections and the depth layers after them
package content

import "errors"

// ErrNoSections is returned when a page has nothing to scroll through
var ErrNoSections = errors.New("page has no sections")

// Section is one scrolling block of image tiles, a tag line and body text
type Section struct {
	Tag    string   `toml:"tag"`
	Text   string   `toml:"text"`
	Images []string `toml:"images"`
}

// DepthLayer is a full-viewport card shown in the pinned region
// Layers at depth >= 0 fade out late in the pinned region; negative depth stays opaque
type DepthLayer struct {
	Depth     float64 `toml:"depth"`
	Color     string  `toml:"color"`
	TextColor string  `toml:"text_color"`
	Text      string  `toml:"text"`
	Image     string  `toml:"image"`
}

// Page is the full descriptor set, immutable after load
type Page struct {
	Sections []Section    `toml:"section"`
	Layers   []DepthLayer `toml:"layer"`
}

// Images returns every distinct image path in first-use order
func (p *Page) Images() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		out = append(out, path)
	}
	for _, s := range p.Sections {
		for _, img := range s.Images {
			add(img)
		}
	}
	for _, l := range p.Layers {
		add(l.Image)
	}
	return out
}

// Validate checks the page can be laid out
func (p *Page) Validate() error {
	if len(p.Sections) == 0 {
		return ErrNoSections
	}
	return nil
}

// Default returns the built-in page
// Image paths are empty so tiles render from the generated fallback texture
func Default() *Page {
	return &Page{
		Sections: []Section{
			{
				Tag:    "00",
				Text:   "The Bacchic\nand Dionysiac\nRites",
				Images: []string{"", "", ""},
			},
			{
				Tag:    "01",
				Text:   "The Elysian\nMysteries",
				Images: []string{"", "", ""},
			},
			{
				Tag:    "02",
				Text:   "The Hiramic\nLegend",
				Images: []string{"", "", ""},
			},
		},
		Layers: []DepthLayer{
			{
				Depth:     0,
				Color:     "#cccccc",
				TextColor: "#ffffff",
				Text:      "In a void,\nno one could say\nwhy a thing\nonce set in motion\nshould stop anywhere.",
			},
			{
				Depth:     -5,
				TextColor: "#272727",
				Text:      "For why should it stop\nhere rather than here?\nSo that a thing\nwill either be at rest\nor must be moved\nad infinitum.",
			},
		},
	}
}
