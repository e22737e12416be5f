package systems

import (
	"log"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/ecs"
	"github.com/decker502/ripple/pkg/events"
)

// RippleSpawner 接收提交（合格释放）产生的涟漪生成请求
type RippleSpawner interface {
	SpawnRipple(entity ecs.EntityID, x, y float64) (uint64, bool)
}

// GestureSystem 手势识别系统
//
// 职责：
//   - 按 FIFO 顺序消费指针生命周期事件（Grant/Move/Release/Terminate）
//   - 维护每个表面的 Idle/Tracking 状态和焦点标志
//   - 焦点变化时调用 OnPressIn/OnPressOut
//   - 合格释放时请求生成涟漪并调用 OnPress
//
// 禁用状态在 Grant 和 Release 时各检查一次。
type GestureSystem struct {
	entityManager *ecs.EntityManager
	spawner       RippleSpawner
	queue         *events.PointerQueue

	// Verbose 输出每个事件的日志
	Verbose bool
}

// NewGestureSystem 创建手势识别系统
//
// 参数：
//   - em: 实体管理器
//   - spawner: 涟漪生成者（通常为 RippleSystem），可为 nil
func NewGestureSystem(em *ecs.EntityManager, spawner RippleSpawner) *GestureSystem {
	return &GestureSystem{
		entityManager: em,
		spawner:       spawner,
		queue:         events.NewPointerQueue(),
	}
}

// Enqueue 把事件加入队列，在下一次 Update 时处理
func (s *GestureSystem) Enqueue(ev events.PointerEvent) {
	s.queue.Push(ev)
}

// Pending 返回待处理事件数
func (s *GestureSystem) Pending() int {
	return s.queue.Len()
}

// Update 按顺序处理队列中的全部事件
func (s *GestureSystem) Update(deltaTime float64) {
	for _, ev := range s.queue.Consume() {
		s.Dispatch(ev)
	}
}

// ShouldClaim 表面是否愿意成为手势响应者（按下或移动时询问）
func (s *GestureSystem) ShouldClaim(entity ecs.EntityID) bool {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, entity)
	if !ok {
		return false
	}
	return !surface.Options.Disabled
}

// RequestTermination 父级请求接管手势时调用，始终拒绝
// 宿主仍可以通过 PointerTerminate 强制终止
func (s *GestureSystem) RequestTermination(entity ecs.EntityID) bool {
	return false
}

// IsTracking 表面是否处于 Tracking 状态
func (s *GestureSystem) IsTracking(entity ecs.EntityID) bool {
	gesture, ok := ecs.GetComponent[*components.GestureComponent](s.entityManager, entity)
	return ok && gesture.State == components.GestureTracking
}

// IsFocused 返回表面当前焦点
func (s *GestureSystem) IsFocused(entity ecs.EntityID) bool {
	gesture, ok := ecs.GetComponent[*components.GestureComponent](s.entityManager, entity)
	return ok && gesture.Focused
}

// Dispatch 立即处理单个事件
//
// 返回：
//   - bool: 事件是否被识别器接受（被拒绝的 Grant、Idle 状态下的其他事件返回 false）
func (s *GestureSystem) Dispatch(ev events.PointerEvent) bool {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, ev.Entity)
	if !ok {
		log.Printf("[GestureSystem] Warning: event %v for unknown surface %d", ev.Kind, ev.Entity)
		return false
	}
	gesture := s.gestureState(ev.Entity)

	if s.Verbose {
		log.Printf("[GestureSystem] entity %d %v (%.1f, %.1f) state=%v focused=%v",
			ev.Entity, ev.Kind, ev.X, ev.Y, gesture.State, gesture.Focused)
	}

	switch ev.Kind {
	case events.PointerGrant:
		return s.onGrant(surface, gesture)
	case events.PointerMove:
		return s.onMove(ev, surface, gesture)
	case events.PointerRelease:
		return s.onRelease(ev, surface, gesture)
	case events.PointerTerminate:
		return s.onTerminate(surface, gesture)
	default:
		return false
	}
}

func (s *GestureSystem) onGrant(surface *components.SurfaceComponent, gesture *components.GestureComponent) bool {
	if surface.Options.Disabled {
		return false
	}
	if gesture.State == components.GestureTracking {
		// 单指针：已在跟踪时忽略新的授予
		return false
	}

	gesture.State = components.GestureTracking
	s.setFocused(surface, gesture, true)
	return true
}

func (s *GestureSystem) onMove(ev events.PointerEvent, surface *components.SurfaceComponent, gesture *components.GestureComponent) bool {
	if gesture.State != components.GestureTracking {
		return false
	}

	var width, height float64
	if geo, ok := ecs.GetComponent[*components.GeometryComponent](s.entityManager, ev.Entity); ok {
		width, height = geo.Width, geo.Height
	}

	focused := ev.X >= 0 && ev.X <= width &&
		ev.Y >= 0 && ev.Y <= height

	s.setFocused(surface, gesture, focused)
	return true
}

func (s *GestureSystem) onRelease(ev events.PointerEvent, surface *components.SurfaceComponent, gesture *components.GestureComponent) bool {
	if gesture.State != components.GestureTracking {
		return false
	}

	if gesture.Focused && !surface.Options.Disabled {
		if s.spawner != nil {
			s.spawner.SpawnRipple(ev.Entity, ev.X, ev.Y)
		}
		if surface.OnPress != nil {
			surface.OnPress()
		}
	}

	s.setFocused(surface, gesture, false)
	gesture.State = components.GestureIdle
	return true
}

func (s *GestureSystem) onTerminate(surface *components.SurfaceComponent, gesture *components.GestureComponent) bool {
	if gesture.State != components.GestureTracking {
		return false
	}

	s.setFocused(surface, gesture, false)
	gesture.State = components.GestureIdle
	return true
}

// setFocused 边沿触发：只有值变化时才通知
func (s *GestureSystem) setFocused(surface *components.SurfaceComponent, gesture *components.GestureComponent, focused bool) {
	if gesture.Focused == focused {
		return
	}
	gesture.Focused = focused

	if focused {
		if surface.OnPressIn != nil {
			surface.OnPressIn()
		}
	} else {
		if surface.OnPressOut != nil {
			surface.OnPressOut()
		}
	}
}

// gestureState 获取或创建表面的手势状态
func (s *GestureSystem) gestureState(entity ecs.EntityID) *components.GestureComponent {
	if gesture, ok := ecs.GetComponent[*components.GestureComponent](s.entityManager, entity); ok {
		return gesture
	}
	gesture := &components.GestureComponent{State: components.GestureIdle}
	ecs.AddComponent(s.entityManager, entity, gesture)
	return gesture
}
