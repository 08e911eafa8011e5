// Package engine runs the frame loop: input, reflow drain, motion and draw
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/parallax/asset"
	"github.com/lixenwraith/parallax/config"
	"github.com/lixenwraith/parallax/content"
	"github.com/lixenwraith/parallax/event"
	"github.com/lixenwraith/parallax/layout"
	"github.com/lixenwraith/parallax/motion"
	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/reflow"
	"github.com/lixenwraith/parallax/render"
	"github.com/lixenwraith/parallax/scroll"
	"github.com/lixenwraith/parallax/section"
)

// Cue is notified when the motion regime flips; audio.Cue implements it
type Cue interface {
	Transition(r motion.Regime, now time.Time) bool
}

type assetResult struct {
	lib *asset.Library
	err error
}

// App owns the scroll store and every stage that reads or writes it
// All methods run on the loop goroutine; only the input poller runs elsewhere
type App struct {
	cfg    config.Config
	screen tcell.Screen
	page   *content.Page
	cue    Cue
	crash  func(any)

	state      *scroll.State
	bridge     *scroll.Bridge
	container  *scroll.Container
	queue      *event.Queue
	aggregator *reflow.Aggregator
	composer   *section.Composer
	driver     *motion.Driver // Created when the asset barrier resolves
	applier    *motion.Applier
	renderer   *render.Renderer

	cols, rows int
	metrics    layout.Metrics
	textures   *asset.Library
	transform  motion.Transform
	regime     motion.Regime
	frame      uint64
}

// NewApp wires the pipeline for page onto screen and runs the first layout pass
// cue may be nil
func NewApp(screen tcell.Screen, cfg config.Config, page *content.Page, cue Cue) *App {
	state := scroll.NewState()
	bridge := scroll.NewBridge(state)
	queue := event.NewQueue()

	a := &App{
		cfg:        cfg,
		screen:     screen,
		page:       page,
		cue:        cue,
		state:      state,
		bridge:     bridge,
		container:  scroll.NewContainer(state, bridge, 0),
		queue:      queue,
		aggregator: reflow.NewAggregator(state, len(page.Sections)),
		composer:   section.NewComposer(page, queue),
		applier:    motion.NewApplier(cfg.ClampOpacity),
		renderer:   render.NewRenderer(screen, render.NewCamera(cfg.CameraZ, cfg.FOV)),
	}

	// Page count bounds the container, reclamp whenever it moves
	a.aggregator.OnChange(func(threshold, pageCount float64) {
		log.Printf("reflow: threshold=%.3f pages=%.3f", threshold, pageCount)
		a.container.Resize(a.container.Viewport())
	})

	a.resize(screen.Size())
	return a
}

// SetCrashHandler installs the panic handler for the input goroutine
// The handler is expected to restore the terminal; with none set the panic propagates
func (a *App) SetCrashHandler(fn func(any)) {
	a.crash = fn
}

// State exposes the scroll store
func (a *App) State() *scroll.State { return a.state }

// Container exposes the scroll container
func (a *App) Container() *scroll.Container { return a.container }

// Transform returns the last driver output
func (a *App) Transform() motion.Transform { return a.transform }

// Applier exposes the motion applier
func (a *App) Applier() *motion.Applier { return a.applier }

// Run loops until ctx is cancelled or the user quits
// A quit returns nil, cancellation returns ctx.Err()
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, parameter.InputChannelSize)
	go a.poll(events, done)

	assets := make(chan assetResult, 1)
	go func() {
		lib, err := asset.Load(ctx, a.page.Images(), asset.DefaultTextureSize)
		assets <- assetResult{lib: lib, err: err}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case res := <-assets:
			if res.err != nil {
				return fmt.Errorf("load assets: %w", res.err)
			}
			a.SetTextures(res.lib)

		case ev := <-events:
			if a.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}

func (a *App) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			if a.crash == nil {
				panic(r)
			}
			a.crash(r)
		}
	}()

	for {
		ev := a.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// SetTextures resolves the asset barrier and ungates motion
func (a *App) SetTextures(lib *asset.Library) {
	for path, err := range lib.Failures() {
		log.Printf("asset %s: %v (using fallback)", path, err)
	}
	a.textures = lib
	// Motion starts from wherever the user scrolled to while loading
	a.driver = motion.NewDriver(a.state.RawOffset(), a.container.Viewport())
	a.applier.SetReady(true)
	log.Printf("assets ready: %d loaded, %d failed", lib.Len(), len(lib.Failures()))
}

// HandleEvent applies one input event synchronously
// Returns true when the user asked to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	step := a.cfg.WheelStep

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyDown:
			a.container.ScrollBy(step)
		case tcell.KeyUp:
			a.container.ScrollBy(-step)
		case tcell.KeyPgDn:
			a.container.ScrollPage(1)
		case tcell.KeyPgUp:
			a.container.ScrollPage(-1)
		case tcell.KeyHome:
			a.container.Home()
		case tcell.KeyEnd:
			a.container.End()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'j':
				a.container.ScrollBy(step)
			case 'k':
				a.container.ScrollBy(-step)
			case ' ':
				a.container.ScrollPage(1)
			case 'g':
				a.container.Home()
			case 'G':
				a.container.End()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.bridge.Pointer(float64(x)+0.5, float64(y)+0.5, float64(a.cols), float64(a.rows))

		buttons := ev.Buttons()
		if buttons&tcell.WheelDown != 0 {
			a.container.ScrollBy(step)
		}
		if buttons&tcell.WheelUp != 0 {
			a.container.ScrollBy(-step)
		}

	case *tcell.EventResize:
		a.resize(ev.Size())
		a.screen.Sync()
	}
	return false
}

// resize recomputes metrics, resizes the container and queues a reflow
func (a *App) resize(cols, rows int) {
	a.cols, a.rows = cols, rows
	a.metrics = layout.NewMetrics(cols, rows, a.cfg.CameraZ, a.cfg.FOV)
	a.container.Resize(float64(rows) * a.cfg.CellPixels)
	a.composer.Reflow(a.metrics)
}

// Frame runs one tick: drain reflow messages, advance motion, draw
func (a *App) Frame(now time.Time) {
	a.frame++

	for _, err := range a.aggregator.Drain(a.queue) {
		log.Printf("reflow: %v", err)
	}

	if !a.applier.Ready() {
		a.renderer.Draw(render.Frame{Status: "loading assets…"})
		return
	}

	vp := motion.Viewport{
		PixelHeight: a.container.Viewport(),
		SceneHeight: a.metrics.SceneHeight,
	}
	t := a.driver.Tick(a.state.RawOffset(), vp, a.state.Threshold())
	if t.Regime != a.regime {
		log.Printf("frame %d: regime %v -> %v at page %.3f", a.frame, a.regime, t.Regime, t.Page)
		if a.cue != nil {
			a.cue.Transition(t.Regime, now)
		}
		a.regime = t.Regime
	}
	a.transform = t
	a.applier.Apply(t)

	a.renderer.Draw(render.Frame{
		Page:     a.composer.Page(),
		Metrics:  a.metrics,
		Content:  a.page,
		Position: a.applier.Position(),
		Opacity:  a.applier.LayerOpacity,
		Textures: a.textures,
		Status:   a.status(t),
	})
}

func (a *App) status(t motion.Transform) string {
	mouse := a.state.Mouse()
	return fmt.Sprintf(" %06.2f/%05.2f pin %.2f %-6s  mouse %+.2f %+.2f  j/k scroll  g/G ends  q quit",
		t.Page, max(0, a.state.PageCount()-1), t.Threshold, t.Regime, mouse[0], mouse[1])
}
