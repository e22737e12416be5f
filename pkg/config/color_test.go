package config

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{name: "default black", input: "black", want: color.RGBA{0, 0, 0, 255}},
		{name: "named upper case", input: "White", want: color.RGBA{255, 255, 255, 255}},
		{name: "long hex", input: "#ff8000", want: color.RGBA{255, 128, 0, 255}},
		{name: "short hex", input: "#0f0", want: color.RGBA{0, 255, 0, 255}},
		{name: "short hex upper case", input: "#F80", want: color.RGBA{255, 136, 0, 255}},
		{name: "short hex padded", input: "  #abc ", want: color.RGBA{170, 187, 204, 255}},
		{name: "bad short hex", input: "#zzz", want: color.RGBA{0, 0, 0, 255}, wantErr: true},
		{name: "unknown name", input: "blurple", want: color.RGBA{0, 0, 0, 255}, wantErr: true},
		{name: "bad hex", input: "#zzzzzz", want: color.RGBA{0, 0, 0, 255}, wantErr: true},
		{name: "empty", input: "", want: color.RGBA{0, 0, 0, 255}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
