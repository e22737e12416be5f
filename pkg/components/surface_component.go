package components

import "github.com/decker502/ripple/pkg/config"

// SurfaceComponent 可点击的涟漪表面（ECS 架构）
// 包含表面的配置与可选回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 回调均为可选，为 nil 时直接跳过
type SurfaceComponent struct {
	// Options 表面配置（颜色、不透明度、时长、禁用等）
	Options config.RippleConfig

	// ===== 可选回调 =====
	// OnPress 提交（合格释放）时调用
	OnPress func()
	// OnPressIn 焦点进入时调用
	OnPressIn func()
	// OnPressOut 焦点离开时调用
	OnPressOut func()
}

// PositionComponent 表面左上角在宿主坐标系中的位置
// 仅供宿主输入/渲染胶水层把屏幕坐标换算为表面局部坐标
type PositionComponent struct {
	X float64
	Y float64
}
