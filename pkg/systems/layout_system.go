package systems

import (
	"math"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/ecs"
)

// LayoutSystem 布局跟踪系统
// 根据表面的测量尺寸推导涟漪最大尺寸，是 GeometryComponent 的唯一写入者
type LayoutSystem struct {
	entityManager *ecs.EntityManager
}

// NewLayoutSystem 创建布局跟踪系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{
		entityManager: em,
	}
}

// ComputeGeometry 由宽、高和覆盖值计算表面几何
// 纯函数：覆盖值 >0 时取覆盖值，否则取包围盒对角线；负尺寸按 0 处理
func ComputeGeometry(width, height, overrideRadius float64) components.GeometryComponent {
	width = math.Max(width, 0)
	height = math.Max(height, 0)

	radius := overrideRadius
	if radius <= 0 {
		radius = math.Hypot(width, height)
	}

	return components.GeometryComponent{
		Width:  width,
		Height: height,
		Radius: radius,
	}
}

// OnLayout 表面尺寸变化（首次布局、窗口缩放、重新布局）时调用
//
// 返回：
//   - components.GeometryComponent: 新的几何信息
//   - bool: 实体不是涟漪表面时返回 false
func (s *LayoutSystem) OnLayout(entity ecs.EntityID, width, height float64) (components.GeometryComponent, bool) {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, entity)
	if !ok {
		return components.GeometryComponent{}, false
	}

	geometry := ComputeGeometry(width, height, surface.Options.RippleSize)

	if geo, ok := ecs.GetComponent[*components.GeometryComponent](s.entityManager, entity); ok {
		*geo = geometry
	} else {
		g := geometry
		ecs.AddComponent(s.entityManager, entity, &g)
	}

	return geometry, true
}

// Geometry 返回表面最后一次测量的几何信息，未布局时为零值
func (s *LayoutSystem) Geometry(entity ecs.EntityID) components.GeometryComponent {
	if geo, ok := ecs.GetComponent[*components.GeometryComponent](s.entityManager, entity); ok {
		return *geo
	}
	return components.GeometryComponent{}
}
