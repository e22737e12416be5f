package systems

import (
	"image"
	"image/color"
	"log"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RippleRenderSystem 涟漪渲染系统（ebiten）
//
// 只读取表面位置、几何、样式和 RippleSystem 的帧快照，不修改任何状态。
// 涟漪裁剪到表面矩形内绘制。
type RippleRenderSystem struct {
	entityManager *ecs.EntityManager
	ripples       *RippleSystem

	// SurfaceColor 表面底色，nil 表示不绘制底色
	SurfaceColor color.Color

	colors map[string]color.RGBA
}

// NewRippleRenderSystem 创建涟漪渲染系统
func NewRippleRenderSystem(em *ecs.EntityManager, ripples *RippleSystem) *RippleRenderSystem {
	return &RippleRenderSystem{
		entityManager: em,
		ripples:       ripples,
		SurfaceColor:  color.RGBA{R: 235, G: 235, B: 240, A: 255},
		colors:        make(map[string]color.RGBA),
	}
}

// Draw 绘制全部表面及其涟漪
func (s *RippleRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[*components.SurfaceComponent, *components.PositionComponent, *components.GeometryComponent](s.entityManager)

	for _, entity := range entities {
		surface, _ := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		geo, _ := ecs.GetComponent[*components.GeometryComponent](s.entityManager, entity)

		if geo.Width <= 0 || geo.Height <= 0 {
			continue
		}

		if s.SurfaceColor != nil {
			drawRoundedRect(screen,
				float32(pos.X), float32(pos.Y), float32(geo.Width), float32(geo.Height),
				float32(surface.Options.RippleContainerBorderRadius), s.SurfaceColor)
		}

		frames := s.ripples.Frames(entity)
		if len(frames) == 0 {
			continue
		}

		bounds := image.Rect(int(pos.X), int(pos.Y), int(pos.X+geo.Width), int(pos.Y+geo.Height))
		clip, ok := screen.SubImage(bounds).(*ebiten.Image)
		if !ok {
			continue
		}

		base := s.rippleColor(surface.Options.RippleColor)
		for _, f := range frames {
			radius := f.Scale * BaseDiameter / 2
			if radius <= 0 || f.Opacity <= 0 {
				continue
			}
			clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(f.Opacity*255 + 0.5)}
			vector.DrawFilledCircle(clip,
				float32(pos.X+f.OriginX), float32(pos.Y+f.OriginY), float32(radius),
				clr, true)
		}
	}
}

// rippleColor 解析并缓存涟漪颜色，无法解析时使用黑色
func (s *RippleRenderSystem) rippleColor(name string) color.RGBA {
	if c, ok := s.colors[name]; ok {
		return c
	}
	c, err := config.ParseColor(name)
	if err != nil {
		log.Printf("[RippleRenderSystem] Warning: %v, using black", err)
	}
	s.colors[name] = c
	return c
}

// drawRoundedRect 绘制圆角矩形（半径为 0 时退化为普通矩形）
func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, clr, true)
		return
	}

	// 十字形主体 + 四个角的圆
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, r, h-2*r, clr, true)
	vector.DrawFilledRect(dst, x+w-r, y+r, r, h-2*r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, clr, true)
}
