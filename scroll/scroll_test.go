package scroll

import (
	"math"
	"testing"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState()
	if s.Threshold() != 4 {
		t.Errorf("threshold = %v, want 4", s.Threshold())
	}
	if s.PageCount() != 0 {
		t.Errorf("pageCount = %v, want 0", s.PageCount())
	}
	if s.RawOffset() != 0 {
		t.Errorf("rawOffset = %v, want 0", s.RawOffset())
	}
}

func TestState_ThresholdFloor(t *testing.T) {
	s := NewState()
	s.SetThreshold(1.5)
	if s.Threshold() != 4 {
		t.Errorf("threshold = %v, want floor 4", s.Threshold())
	}
	s.SetThreshold(16.5)
	if s.Threshold() != 16.5 {
		t.Errorf("threshold = %v, want 16.5", s.Threshold())
	}
}

func TestBridge_ScrollKeepsPreviousOnNaN(t *testing.T) {
	s := NewState()
	b := NewBridge(s)

	b.Scroll(320)
	b.Scroll(math.NaN())
	b.Scroll(math.Inf(1))

	if s.RawOffset() != 320 {
		t.Errorf("rawOffset = %v, want 320", s.RawOffset())
	}
}

func TestBridge_PointerNormalization(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"top left", 0, 0, -1, -1},
		{"center", 50, 20, 0, 0},
		{"bottom right", 100, 40, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			NewBridge(s).Pointer(tt.x, tt.y, 100, 40)
			m := s.Mouse()
			if m[0] != tt.wantX || m[1] != tt.wantY {
				t.Errorf("mouse = %v, want [%v %v]", m, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestBridge_PointerZeroViewportKeepsPrevious(t *testing.T) {
	s := NewState()
	b := NewBridge(s)
	b.Pointer(75, 10, 100, 40)
	b.Pointer(10, 10, 0, 40)

	m := s.Mouse()
	if m[0] != 0.5 {
		t.Errorf("x = %v, want previous 0.5", m[0])
	}
	if m[1] != -0.5 {
		t.Errorf("y = %v, want -0.5", m[1])
	}
}

func TestContainer_ClampsToPageRange(t *testing.T) {
	s := NewState()
	c := NewContainer(s, NewBridge(s), 100)

	// No page count yet: nothing to scroll
	c.ScrollBy(500)
	if c.ScrollTop() != 0 {
		t.Fatalf("scrollTop = %v, want 0 with zero pages", c.ScrollTop())
	}

	s.SetPageCount(3)
	c.ScrollBy(500)
	if c.ScrollTop() != 200 {
		t.Errorf("scrollTop = %v, want clamp at 200", c.ScrollTop())
	}
	if s.RawOffset() != 200 {
		t.Errorf("rawOffset = %v, want 200", s.RawOffset())
	}

	c.ScrollPage(-1)
	if c.ScrollTop() != 100 {
		t.Errorf("scrollTop = %v, want 100", c.ScrollTop())
	}

	c.Home()
	if s.RawOffset() != 0 {
		t.Errorf("rawOffset = %v after Home, want 0", s.RawOffset())
	}
	c.End()
	if s.RawOffset() != 200 {
		t.Errorf("rawOffset = %v after End, want 200", s.RawOffset())
	}
}

func TestContainer_ResizeReclamps(t *testing.T) {
	s := NewState()
	s.SetPageCount(2)
	c := NewContainer(s, NewBridge(s), 100)
	c.End()

	c.Resize(50)
	if c.ScrollTop() != 50 {
		t.Errorf("scrollTop = %v, want 50 after shrink", c.ScrollTop())
	}
}
