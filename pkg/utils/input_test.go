package utils

import (
	"testing"
)

func TestPointerTrackerInitialState(t *testing.T) {
	pt := NewPointerTracker()

	if pt.IsTracking() {
		t.Error("Expected IsTracking to be false initially")
	}

	sample := pt.step(frameInput{Pressed: false, X: 5, Y: 6, TouchID: -1})
	if sample.Phase != PointerPhaseNone {
		t.Errorf("Expected PointerPhaseNone without press, got %v", sample.Phase)
	}
}

func TestPointerTrackerMouseLifecycle(t *testing.T) {
	pt := NewPointerTracker()

	steps := []struct {
		name  string
		in    frameInput
		phase PointerPhase
		x, y  int
	}{
		{"按下", frameInput{Pressed: true, X: 10, Y: 20, TouchID: -1}, PointerPhaseDown, 10, 20},
		{"按住不动", frameInput{Pressed: true, X: 10, Y: 20, TouchID: -1}, PointerPhaseNone, 10, 20},
		{"移动", frameInput{Pressed: true, X: 15, Y: 25, TouchID: -1}, PointerPhaseMove, 15, 25},
		{"释放", frameInput{Pressed: false, X: 16, Y: 26, TouchID: -1}, PointerPhaseUp, 16, 26},
		{"空闲", frameInput{Pressed: false, X: 16, Y: 26, TouchID: -1}, PointerPhaseNone, 16, 26},
	}

	for _, s := range steps {
		got := pt.step(s.in)
		if got.Phase != s.phase {
			t.Fatalf("%s: phase = %v, want %v", s.name, got.Phase, s.phase)
		}
		if got.X != s.x || got.Y != s.y {
			t.Fatalf("%s: position = (%d, %d), want (%d, %d)", s.name, got.X, got.Y, s.x, s.y)
		}
		if got.IsTouch {
			t.Fatalf("%s: mouse input reported as touch", s.name)
		}
	}

	if pt.IsTracking() {
		t.Error("tracker should be idle after release")
	}
}

func TestPointerTrackerTouchKeepsID(t *testing.T) {
	pt := NewPointerTracker()

	down := pt.step(frameInput{Pressed: true, X: 1, Y: 2, TouchID: 7, IsTouch: true})
	if down.Phase != PointerPhaseDown || down.TouchID != 7 || !down.IsTouch {
		t.Fatalf("unexpected down sample: %+v", down)
	}

	up := pt.step(frameInput{Pressed: false, X: 1, Y: 2, TouchID: 7, IsTouch: true})
	if up.Phase != PointerPhaseUp || up.TouchID != 7 || !up.IsTouch {
		t.Fatalf("unexpected up sample: %+v", up)
	}
}

func TestPointerTrackerReset(t *testing.T) {
	pt := NewPointerTracker()
	pt.step(frameInput{Pressed: true, X: 1, Y: 1, TouchID: 3, IsTouch: true})

	pt.Reset()

	if pt.IsTracking() {
		t.Error("Expected IsTracking to be false after reset")
	}
	if pt.touchID != -1 {
		t.Errorf("Expected touchID to be -1 after reset, got %d", pt.touchID)
	}
}
