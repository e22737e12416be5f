package entities

import (
	"log"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/ecs"
)

// SurfaceCallbacks 表面的可选回调，任意字段可为 nil
type SurfaceCallbacks struct {
	OnPress    func()
	OnPressIn  func()
	OnPressOut func()
}

// NewRippleSurface 创建（挂载）一个涟漪表面实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 表面左上角位置（宿主坐标）
//   - cfg: 表面配置，会先经过 Normalize
//   - callbacks: 可选回调
//
// 返回：
//   - 表面实体ID
//
// 几何信息由 LayoutSystem.OnLayout 在首次布局时写入。
func NewRippleSurface(
	em *ecs.EntityManager,
	x, y float64,
	cfg config.RippleConfig,
	callbacks SurfaceCallbacks,
) ecs.EntityID {
	cfg.Normalize()

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.SurfaceComponent{
		Options:    cfg,
		OnPress:    callbacks.OnPress,
		OnPressIn:  callbacks.OnPressIn,
		OnPressOut: callbacks.OnPressOut,
	})
	ecs.AddComponent(em, entity, &components.GestureComponent{State: components.GestureIdle})
	ecs.AddComponent(em, entity, &components.RippleSetComponent{})

	log.Printf("[SurfaceFactory] 创建涟漪表面 %d at (%.0f, %.0f)", entity, x, y)
	return entity
}

// SetSurfaceOptions 替换表面配置
// 已在运行的涟漪保留生成时捕获的时长与不透明度；新尺寸覆盖值在下次布局时生效
func SetSurfaceOptions(em *ecs.EntityManager, entity ecs.EntityID, cfg config.RippleConfig) bool {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](em, entity)
	if !ok {
		return false
	}
	cfg.Normalize()
	surface.Options = cfg
	return true
}

// SetSurfaceDisabled 切换表面的禁用状态（手势进行中也可以切换）
func SetSurfaceDisabled(em *ecs.EntityManager, entity ecs.EntityID, disabled bool) bool {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](em, entity)
	if !ok {
		return false
	}
	surface.Options.Disabled = disabled
	return true
}

// RippleClearer 卸载表面时丢弃其涟漪（通常为 RippleSystem）
type RippleClearer interface {
	Clear(entity ecs.EntityID)
}

// UnmountRippleSurface 卸载表面：丢弃全部涟漪并标记实体待删除
func UnmountRippleSurface(em *ecs.EntityManager, clearer RippleClearer, entity ecs.EntityID) {
	if clearer != nil {
		clearer.Clear(entity)
	}
	em.DestroyEntity(entity)
	log.Printf("[SurfaceFactory] 卸载涟漪表面 %d", entity)
}
