package systems

import (
	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/ecs"
	"github.com/decker502/ripple/pkg/entities"
)

// callbackRecorder 记录表面回调的调用顺序
type callbackRecorder struct {
	calls []string
}

func (r *callbackRecorder) callbacks() entities.SurfaceCallbacks {
	return entities.SurfaceCallbacks{
		OnPress:    func() { r.calls = append(r.calls, "press") },
		OnPressIn:  func() { r.calls = append(r.calls, "pressIn") },
		OnPressOut: func() { r.calls = append(r.calls, "pressOut") },
	}
}

func (r *callbackRecorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

// spySpawner 记录生成请求，并把调用写入共享的调用序列
type spySpawner struct {
	recorder *callbackRecorder
	spawns   []spawnCall
}

type spawnCall struct {
	entity ecs.EntityID
	x, y   float64
}

func (s *spySpawner) SpawnRipple(entity ecs.EntityID, x, y float64) (uint64, bool) {
	s.spawns = append(s.spawns, spawnCall{entity: entity, x: x, y: y})
	if s.recorder != nil {
		s.recorder.calls = append(s.recorder.calls, "spawn")
	}
	return uint64(len(s.spawns) - 1), true
}

// testWorld 组装一组完整的核心系统
type testWorld struct {
	em       *ecs.EntityManager
	layout   *LayoutSystem
	ripples  *RippleSystem
	gestures *GestureSystem

	// notifications 渲染通知序列
	notifications [][]components.RippleFrame
}

func newTestWorld() *testWorld {
	w := &testWorld{em: ecs.NewEntityManager()}
	w.layout = NewLayoutSystem(w.em)
	w.ripples = NewRippleSystem(w.em)
	w.gestures = NewGestureSystem(w.em, w.ripples)
	w.ripples.SetRenderListener(func(entity ecs.EntityID, frames []components.RippleFrame) {
		w.notifications = append(w.notifications, frames)
	})
	return w
}

// mountSurface 创建表面并完成首次布局
func (w *testWorld) mountSurface(cfg config.RippleConfig, width, height float64, rec *callbackRecorder) ecs.EntityID {
	callbacks := entities.SurfaceCallbacks{}
	if rec != nil {
		callbacks = rec.callbacks()
	}
	entity := entities.NewRippleSurface(w.em, 0, 0, cfg, callbacks)
	w.layout.OnLayout(entity, width, height)
	return entity
}

func (w *testWorld) rippleSet(entity ecs.EntityID) *components.RippleSetComponent {
	set, _ := ecs.GetComponent[*components.RippleSetComponent](w.em, entity)
	return set
}

func liveIDs(set *components.RippleSetComponent) []uint64 {
	ids := make([]uint64, 0, len(set.Live))
	for _, r := range set.Live {
		ids = append(ids, r.ID)
	}
	return ids
}
