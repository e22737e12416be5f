package components

import "time"

// RippleInstance 单个涟漪实例
//
// 缩放与不透明度是两条独立的插值轨道，都只依赖 Elapsed 与 Duration，
// 由 RippleSystem 按帧求值，不在原地修改共享的动画对象。
type RippleInstance struct {
	// ID 在表面生命周期内严格递增，从不复用
	ID uint64
	// OriginX, OriginY 涟漪中心（表面局部坐标）
	OriginX float64
	OriginY float64

	// Elapsed 动画已运行时间
	Elapsed time.Duration
	// Duration 动画总时长（生成时从配置中捕获）
	Duration time.Duration

	// FromScale 初始缩放（最小可见圆）
	FromScale float64
	// ToScale 目标缩放
	ToScale float64
	// FromOpacity 初始不透明度，目标始终为 0
	FromOpacity float64
}

// RippleSetComponent 表面的涟漪集合（LiveRippleSet）
// 只由 RippleSystem 写入
type RippleSetComponent struct {
	// Live 活动涟漪，插入顺序即创建顺序，交给渲染器绘制
	Live []*RippleInstance
	// Animating 仍在运行的时间轴
	// 按位置移除时，某个实例可能已离开 Live 但其时间轴仍在运行
	Animating []*RippleInstance
	// NextID 下一个涟漪 ID
	NextID uint64
}

// RippleFrame 交给渲染器的单个涟漪快照
type RippleFrame struct {
	ID      uint64
	OriginX float64
	OriginY float64
	Scale   float64
	Opacity float64
}
