package main

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/systems"
)

// shadeCell 计算表面内一个单元的背景色
//
// (x, y) 为单元中心的表面局部坐标。覆盖该点的涟漪按创建顺序
// 依次以各自的不透明度叠加到底色上。
func shadeCell(base, ripple colorful.Color, frames []components.RippleFrame, x, y float64) colorful.Color {
	c := base
	for _, f := range frames {
		radius := f.Scale * systems.BaseDiameter / 2
		if radius <= 0 || f.Opacity <= 0 {
			continue
		}
		if math.Hypot(x-f.OriginX, y-f.OriginY) > radius {
			continue
		}
		c = c.BlendRgb(ripple, f.Opacity).Clamped()
	}
	return c
}
