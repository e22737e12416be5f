package systems

import (
	"log"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/ecs"
	"github.com/decker502/ripple/pkg/events"
	"github.com/decker502/ripple/pkg/utils"
)

// PointerInputSystem 宿主输入胶水层（ebiten）
//
// 职责：
//   - 每帧通过 PointerTracker 采样鼠标/触摸
//   - 按下时命中测试，把手势授予最上层愿意响应的表面；
//     按下时未命中的指针在移动时再次命中测试
//   - 把屏幕坐标换算为表面局部坐标后放入 GestureSystem 队列
type PointerInputSystem struct {
	entityManager *ecs.EntityManager
	gestures      *GestureSystem
	tracker       *utils.PointerTracker

	// active 当前持有手势的表面，0 表示无
	active ecs.EntityID
}

// NewPointerInputSystem 创建输入系统
func NewPointerInputSystem(em *ecs.EntityManager, gestures *GestureSystem) *PointerInputSystem {
	return &PointerInputSystem{
		entityManager: em,
		gestures:      gestures,
		tracker:       utils.NewPointerTracker(),
	}
}

// Update 采样本帧输入并转换为指针事件
func (s *PointerInputSystem) Update(deltaTime float64) {
	s.HandleSample(s.tracker.Update())
}

// Active 返回当前持有手势的表面
func (s *PointerInputSystem) Active() ecs.EntityID {
	return s.active
}

// HandleSample 把一次指针采样转换为指针事件
func (s *PointerInputSystem) HandleSample(sample utils.PointerSample) {
	x, y := float64(sample.X), float64(sample.Y)

	switch sample.Phase {
	case utils.PointerPhaseDown:
		target, ok := s.HitTest(x, y)
		if !ok {
			return
		}
		s.active = target
		s.push(events.PointerGrant, target, x, y)

	case utils.PointerPhaseMove:
		if s.active == 0 {
			// 按下时未命中任何表面，移动时再次询问
			target, ok := s.HitTest(x, y)
			if !ok {
				return
			}
			s.active = target
			s.push(events.PointerGrant, target, x, y)
		}
		s.push(events.PointerMove, s.active, x, y)

	case utils.PointerPhaseUp:
		if s.active == 0 {
			return
		}
		s.push(events.PointerRelease, s.active, x, y)
		s.active = 0
	}
}

// Cancel 宿主强制终止当前手势（例如窗口失去焦点）
func (s *PointerInputSystem) Cancel() {
	s.tracker.Reset()
	if s.active == 0 {
		return
	}
	log.Printf("[PointerInputSystem] 手势被宿主终止: surface %d", s.active)
	s.gestures.Enqueue(events.PointerEvent{Entity: s.active, Kind: events.PointerTerminate})
	s.active = 0
}

// HitTest 查找包含屏幕坐标 (x, y) 且愿意响应的最上层表面
// 后创建的表面在上层
func (s *PointerInputSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith3[*components.SurfaceComponent, *components.PositionComponent, *components.GeometryComponent](s.entityManager)

	for i := len(entities) - 1; i >= 0; i-- {
		entity := entities[i]
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		geo, _ := ecs.GetComponent[*components.GeometryComponent](s.entityManager, entity)

		inside := x >= pos.X && x <= pos.X+geo.Width &&
			y >= pos.Y && y <= pos.Y+geo.Height
		if inside && s.gestures.ShouldClaim(entity) {
			return entity, true
		}
	}
	return 0, false
}

// push 把屏幕坐标换算为表面局部坐标后入队
func (s *PointerInputSystem) push(kind events.PointerKind, entity ecs.EntityID, x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity); ok {
		x -= pos.X
		y -= pos.Y
	}
	s.gestures.Enqueue(events.PointerEvent{Entity: entity, Kind: kind, X: x, Y: y})
}
