package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor 解析涟漪颜色
//
// 支持 SVG/CSS 颜色名（"black"、"royalblue"）和十六进制（"#rgb"、"#rrggbb"）。
// 返回的颜色不透明，不透明度由涟漪动画单独控制。
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return colornames.Black, fmt.Errorf("empty color")
	}

	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return colornames.Black, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	return colornames.Black, fmt.Errorf("unknown color %q", s)
}
