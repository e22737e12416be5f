package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultRippleConfig 验证默认值
func TestDefaultRippleConfig(t *testing.T) {
	cfg := DefaultRippleConfig()

	if cfg.RippleColor != "black" {
		t.Errorf("RippleColor: got %q, want %q", cfg.RippleColor, "black")
	}
	if cfg.RippleOpacity != 0.20 {
		t.Errorf("RippleOpacity: got %v, want 0.20", cfg.RippleOpacity)
	}
	if cfg.RippleDuration != 400 {
		t.Errorf("RippleDuration: got %d, want 400", cfg.RippleDuration)
	}
	if cfg.RippleSize != 0 {
		t.Errorf("RippleSize: got %v, want 0", cfg.RippleSize)
	}
	if cfg.Disabled {
		t.Error("Disabled: got true, want false")
	}
	if cfg.RemovalPolicy != RemoveHead {
		t.Errorf("RemovalPolicy: got %q, want %q", cfg.RemovalPolicy, RemoveHead)
	}
	if cfg.Duration() != 400*time.Millisecond {
		t.Errorf("Duration(): got %v, want 400ms", cfg.Duration())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   RippleConfig
		want RippleConfig
	}{
		{
			name: "opacity above 1",
			in:   RippleConfig{RippleColor: "red", RippleOpacity: 1.5, RemovalPolicy: RemoveHead},
			want: RippleConfig{RippleColor: "red", RippleOpacity: 1, RemovalPolicy: RemoveHead},
		},
		{
			name: "negative values",
			in:   RippleConfig{RippleColor: "red", RippleOpacity: -0.1, RippleDuration: -5, RippleSize: -3},
			want: RippleConfig{RippleColor: "red", RippleOpacity: 0, RippleDuration: 0, RippleSize: 0, RemovalPolicy: RemoveHead},
		},
		{
			name: "empty color and unknown policy",
			in:   RippleConfig{RippleOpacity: 0.3, RemovalPolicy: "random"},
			want: RippleConfig{RippleColor: "black", RippleOpacity: 0.3, RemovalPolicy: RemoveHead},
		},
		{
			name: "identity policy kept",
			in:   RippleConfig{RippleColor: "black", RippleOpacity: 0.2, RemovalPolicy: RemoveCompleted},
			want: RippleConfig{RippleColor: "black", RippleOpacity: 0.2, RemovalPolicy: RemoveCompleted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRippleConfigYAMLKeepsDefaults(t *testing.T) {
	data := []byte("rippleColor: \"#ff0000\"\nrippleDuration: 250\n")

	cfg, err := ParseRippleConfigYAML(data)
	if err != nil {
		t.Fatalf("ParseRippleConfigYAML() error: %v", err)
	}

	if cfg.RippleColor != "#ff0000" {
		t.Errorf("RippleColor: got %q", cfg.RippleColor)
	}
	if cfg.RippleDuration != 250 {
		t.Errorf("RippleDuration: got %d, want 250", cfg.RippleDuration)
	}
	// 未出现的键保留默认值
	if cfg.RippleOpacity != DefaultRippleOpacity {
		t.Errorf("RippleOpacity: got %v, want default %v", cfg.RippleOpacity, DefaultRippleOpacity)
	}
}

func TestParseRippleConfigYAMLInvalid(t *testing.T) {
	_, err := ParseRippleConfigYAML([]byte("rippleOpacity: [not, a, number]"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadRippleConfigFormats(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "ripple.yaml")
	if err := os.WriteFile(yamlPath, []byte("rippleOpacity: 0.5\ndisabled: true\nremovalPolicy: identity\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tomlPath := filepath.Join(dir, "ripple.toml")
	if err := os.WriteFile(tomlPath, []byte("rippleColor = \"navy\"\nrippleSize = 80.0\nrippleContainerBorderRadius = 6.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	yamlCfg, err := LoadRippleConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadRippleConfig(yaml) error: %v", err)
	}
	if yamlCfg.RippleOpacity != 0.5 || !yamlCfg.Disabled || yamlCfg.RemovalPolicy != RemoveCompleted {
		t.Errorf("yaml config mismatch: %+v", yamlCfg)
	}

	tomlCfg, err := LoadRippleConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadRippleConfig(toml) error: %v", err)
	}
	if tomlCfg.RippleColor != "navy" || tomlCfg.RippleSize != 80 || tomlCfg.RippleContainerBorderRadius != 6 {
		t.Errorf("toml config mismatch: %+v", tomlCfg)
	}
	if tomlCfg.RippleDuration != DefaultRippleDuration {
		t.Errorf("toml config should keep default duration, got %d", tomlCfg.RippleDuration)
	}
}

func TestLoadRippleConfigMissingFile(t *testing.T) {
	cfg, err := LoadRippleConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg != DefaultRippleConfig() {
		t.Errorf("missing file should return defaults, got %+v", cfg)
	}
}
