package motion

import (
	"math"
	"testing"
)

func TestStep_FixedPointAtZero(t *testing.T) {
	d := NewDriver(0, 10)
	tr := d.Tick(0, Viewport{PixelHeight: 10, SceneHeight: 10}, 4)

	if d.Smoothed().Page != 0 {
		t.Errorf("page = %v, want 0", d.Smoothed().Page)
	}
	if tr.YOffset != 0 || tr.DepthOffset != 0 || tr.Regime != RegimeFree {
		t.Errorf("transform = %+v, want zero free transform", tr)
	}
}

func TestStep_MonotonicConvergence(t *testing.T) {
	starts := []float64{-20, 0, 3.5, 50}
	targets := []float64{0, 7, 42}

	for _, start := range starts {
		for _, target := range targets {
			s := Smoothed{Page: start}
			prevDist := math.Abs(target - start)
			for i := 0; i < 300; i++ {
				next := Step(s, target)
				dist := math.Abs(target - next.Page)
				if dist > prevDist {
					t.Fatalf("start %v target %v: distance grew %v -> %v", start, target, prevDist, dist)
				}
				// Never crosses the target
				if (start < target && next.Page > target) || (start > target && next.Page < target) {
					t.Fatalf("start %v target %v: overshoot to %v", start, target, next.Page)
				}
				s, prevDist = next, dist
			}
			if prevDist > 1e-9 {
				t.Errorf("start %v target %v: not converged, dist %v", start, target, prevDist)
			}
		}
	}
}

func TestStep_Factor(t *testing.T) {
	got := Step(Smoothed{Page: 0}, 10).Page
	if math.Abs(got-1.5) > 1e-12 {
		t.Errorf("one step toward 10 = %v, want 1.5", got)
	}
}

func TestDerive_ContinuousAtThreshold(t *testing.T) {
	const threshold, sceneHeight = 6.0, 12.5

	below := Derive(math.Nextafter(threshold, 0), threshold, sceneHeight)
	at := Derive(threshold, threshold, sceneHeight)

	if at.Regime != RegimePinned {
		t.Fatalf("regime at threshold = %v, want pinned", at.Regime)
	}
	if below.Regime != RegimeFree {
		t.Fatalf("regime below threshold = %v, want free", below.Regime)
	}

	free := threshold * sceneHeight
	if at.YOffset != at.Sticky || at.Sticky != free {
		t.Errorf("sticky %v, yOffset %v, free-branch %v should match", at.Sticky, at.YOffset, free)
	}
	if math.Abs(below.YOffset-at.YOffset) > 1e-9 {
		t.Errorf("jump at boundary: %v -> %v", below.YOffset, at.YOffset)
	}
}

func TestDerive_PinnedDepth(t *testing.T) {
	tr := Derive(8, 4, 10)
	if tr.YOffset != 40 {
		t.Errorf("yOffset = %v, want sticky 40", tr.YOffset)
	}
	if tr.DepthOffset != 10 {
		t.Errorf("depth = %v, want 8*1.25", tr.DepthOffset)
	}
}

func TestDriver_ZeroViewportHoldsPrevious(t *testing.T) {
	d := NewDriver(0, 10)
	vp := Viewport{PixelHeight: 10, SceneHeight: 10}
	d.Tick(100, vp, 4)
	before := d.Smoothed().Page

	tr := d.Tick(500, Viewport{PixelHeight: 0, SceneHeight: 10}, 4)
	if d.Smoothed().Page != before {
		t.Errorf("page = %v, want held %v", d.Smoothed().Page, before)
	}
	if math.IsNaN(tr.YOffset) || math.IsInf(tr.YOffset, 0) {
		t.Errorf("yOffset not finite: %v", tr.YOffset)
	}
}

func TestNewDriver_StartsAtCurrentPage(t *testing.T) {
	if got := NewDriver(250, 100).Smoothed().Page; got != 2.5 {
		t.Errorf("initial page = %v, want 2.5", got)
	}
	if got := NewDriver(250, 0).Smoothed().Page; got != 0 {
		t.Errorf("initial page with zero viewport = %v, want 0", got)
	}
}

func TestDriver_RegimeFlipsWithoutHysteresis(t *testing.T) {
	d := NewDriver(0, 1)
	vp := Viewport{PixelHeight: 1, SceneHeight: 1}

	var regimes []Regime
	for i := 0; i < 200; i++ {
		regimes = append(regimes, d.Tick(10, vp, 4).Regime)
	}
	if regimes[0] != RegimeFree || regimes[len(regimes)-1] != RegimePinned {
		t.Fatalf("expected free -> pinned, got %v ... %v", regimes[0], regimes[len(regimes)-1])
	}

	// Scrolling back under the threshold returns to free on the same rule
	for i := 0; i < 200; i++ {
		d.Tick(0, vp, 4)
	}
	if d.Tick(0, vp, 4).Regime != RegimeFree {
		t.Error("expected free after scrolling back")
	}
}

func TestApplier_GatedUntilReady(t *testing.T) {
	a := NewApplier(true)
	tr := Derive(2, 4, 10)

	if a.Apply(tr) {
		t.Fatal("Apply should report false while gated")
	}
	if a.Position().Y != 0 {
		t.Errorf("position moved while gated: %+v", a.Position())
	}

	a.SetReady(true)
	if !a.Apply(tr) {
		t.Fatal("Apply should report true when ready")
	}
	if math.Abs(a.Position().Y-3) > 1e-12 {
		t.Errorf("y = %v, want 20*0.15", a.Position().Y)
	}
}

func TestApplier_DoubleSmoothingConverges(t *testing.T) {
	a := NewApplier(true)
	a.SetReady(true)
	tr := Derive(8, 4, 10) // Pinned: y=40, z=10

	for i := 0; i < 400; i++ {
		a.Apply(tr)
	}
	p := a.Position()
	if math.Abs(p.Y-40) > 1e-6 || math.Abs(p.Z-10) > 1e-6 || p.X != 0 {
		t.Errorf("position = %+v, want (0, 40, 10)", p)
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		name  string
		page  float64
		depth float64
		clamp bool
		want  float64
	}{
		{"before fade", 6, 0, true, 1},
		{"at fade start", 6.8, 0, true, 1},
		{"mid fade", 7.3, 0, true, 0.5},
		{"past fade clamped", 9, 0, true, 0},
		{"past fade unclamped", 9, 0, false, 1 - (9 - 6.8)},
		{"background exempt", 20, -5, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Opacity(tt.page, 4, tt.depth, tt.clamp)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Opacity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplier_LayerOpacityUsesLastFrame(t *testing.T) {
	a := NewApplier(true)
	a.SetReady(true)
	a.Apply(Derive(7.3, 4, 10))

	if got := a.LayerOpacity(0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("front opacity = %v, want 0.5", got)
	}
	if got := a.LayerOpacity(-5); got != 1 {
		t.Errorf("back opacity = %v, want 1", got)
	}
}
