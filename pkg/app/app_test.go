package app

import (
	"strings"
	"testing"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/ecs"
)

func TestNewAppRejectsInvalidColor(t *testing.T) {
	cfg := config.DefaultRippleConfig()
	cfg.RippleColor = "not-a-color"

	if _, err := NewApp(Config{Ripple: cfg}); err == nil {
		t.Fatal("expected error for invalid ripple color")
	}
}

func TestNewAppMountsSurfaces(t *testing.T) {
	a, err := NewApp(Config{Ripple: config.DefaultRippleConfig()})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	if got := len(a.surfaces); got != 3 {
		t.Fatalf("surfaces = %d, want 3", got)
	}

	// 第三个表面使用按 ID 移除的策略
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](a.entityManager, a.surfaces[2].entity)
	if !ok {
		t.Fatal("surface component missing")
	}
	if surface.Options.RemovalPolicy != config.RemoveCompleted {
		t.Errorf("RemovalPolicy = %q, want %q", surface.Options.RemovalPolicy, config.RemoveCompleted)
	}
}

func TestLayoutTriggersRelayout(t *testing.T) {
	a, err := NewApp(Config{Ripple: config.DefaultRippleConfig()})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	a.relayout()
	if w, h := a.Layout(WindowWidth, WindowHeight); w != WindowWidth || h != WindowHeight {
		t.Fatalf("Layout() = %dx%d", w, h)
	}
	if !a.laidOut {
		t.Fatal("unchanged size should not invalidate layout")
	}

	a.Layout(400, 300)
	if a.laidOut {
		t.Fatal("size change should invalidate layout")
	}
	a.relayout()

	wantWidth := 400 - 2*surfaceMargin
	wantHeight := (300 - 2*surfaceMargin - 2*surfaceGap) / 3
	for i, ds := range a.surfaces {
		geo := a.layoutSystem.Geometry(ds.entity)
		if geo.Width != wantWidth || geo.Height != wantHeight {
			t.Errorf("surface %d geometry = %vx%v, want %vx%v", i, geo.Width, geo.Height, wantWidth, wantHeight)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.entityManager, ds.entity)
		wantY := surfaceMargin + float64(i)*(wantHeight+surfaceGap)
		if pos.X != surfaceMargin || pos.Y != wantY {
			t.Errorf("surface %d position = (%v, %v), want (%v, %v)", i, pos.X, pos.Y, surfaceMargin, wantY)
		}
	}
}

func TestToggleDisabled(t *testing.T) {
	a, err := NewApp(Config{Ripple: config.DefaultRippleConfig()})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	entity := a.surfaces[2].entity
	if !a.gestures.ShouldClaim(entity) {
		t.Fatal("surface should start enabled")
	}
	a.toggleDisabled(entity)
	if a.gestures.ShouldClaim(entity) {
		t.Error("surface should be disabled after toggle")
	}
	a.toggleDisabled(entity)
	if !a.gestures.ShouldClaim(entity) {
		t.Error("surface should be enabled after second toggle")
	}
}

func TestHUDLine(t *testing.T) {
	tests := []struct {
		name          string
		verbose       bool
		wantAnimating bool
	}{
		{name: "quiet", verbose: false, wantAnimating: false},
		{name: "verbose", verbose: true, wantAnimating: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewApp(Config{Verbose: tt.verbose, Ripple: config.DefaultRippleConfig()})
			if err != nil {
				t.Fatalf("NewApp() error: %v", err)
			}
			if a.IsVerbose() != tt.verbose {
				t.Fatalf("IsVerbose() = %v, want %v", a.IsVerbose(), tt.verbose)
			}

			ds := a.surfaces[2]
			a.toggleDisabled(ds.entity)
			line := a.hudLine(ds)

			if got := strings.Contains(line, "animating="); got != tt.wantAnimating {
				t.Errorf("hudLine() = %q, animating shown = %v, want %v", line, got, tt.wantAnimating)
			}
			if !strings.Contains(line, "[disabled]") {
				t.Errorf("hudLine() = %q, want disabled marker", line)
			}
		})
	}
}
