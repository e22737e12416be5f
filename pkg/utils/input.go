// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPhase 单指针在本帧的生命周期阶段
type PointerPhase int

const (
	// PointerPhaseNone 本帧无变化（未按下，或按下但未移动）
	PointerPhaseNone PointerPhase = iota
	// PointerPhaseDown 本帧刚按下
	PointerPhaseDown
	// PointerPhaseMove 按住并移动
	PointerPhaseMove
	// PointerPhaseUp 本帧刚释放
	PointerPhaseUp
)

// PointerSample 指针在本帧的采样结果（屏幕坐标）
type PointerSample struct {
	Phase PointerPhase
	X, Y  int
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouch 是否为触摸输入
	IsTouch bool
}

// frameInput 某一帧的原始输入（与 ebiten 解耦，便于测试）
type frameInput struct {
	// Pressed 跟踪中的指针是否仍按下；未跟踪时表示本帧是否有新按下
	Pressed bool
	X, Y    int
	TouchID ebiten.TouchID
	IsTouch bool
}

// PointerTracker 单指针跟踪器
// 统一处理鼠标和触摸，只跟踪第一个按下的指针，其余指针被忽略
type PointerTracker struct {
	tracking bool
	touchID  ebiten.TouchID
	isTouch  bool
	lastX    int
	lastY    int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{touchID: -1}
}

// Update 采样本帧输入（每帧调用一次）
func (pt *PointerTracker) Update() PointerSample {
	return pt.step(pt.readInput())
}

// IsTracking 是否正在跟踪某个指针
func (pt *PointerTracker) IsTracking() bool {
	return pt.tracking
}

// Reset 放弃当前跟踪的指针
func (pt *PointerTracker) Reset() {
	pt.tracking = false
	pt.touchID = -1
	pt.isTouch = false
}

// readInput 从 ebiten 读取本帧输入
func (pt *PointerTracker) readInput() frameInput {
	if pt.tracking {
		if pt.isTouch {
			for _, id := range ebiten.AppendTouchIDs(nil) {
				if id == pt.touchID {
					x, y := ebiten.TouchPosition(id)
					return frameInput{Pressed: true, X: x, Y: y, TouchID: id, IsTouch: true}
				}
			}
			// 触摸释放时使用最后一次位置
			return frameInput{Pressed: false, X: pt.lastX, Y: pt.lastY, TouchID: pt.touchID, IsTouch: true}
		}
		x, y := ebiten.CursorPosition()
		return frameInput{Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), X: x, Y: y, TouchID: -1}
	}

	// 优先检测触摸输入（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return frameInput{Pressed: true, X: x, Y: y, TouchID: touchIDs[0], IsTouch: true}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return frameInput{
		Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
		TouchID: -1,
	}
}

// step 根据本帧输入推进跟踪状态
func (pt *PointerTracker) step(in frameInput) PointerSample {
	if !pt.tracking {
		if !in.Pressed {
			return PointerSample{Phase: PointerPhaseNone, X: in.X, Y: in.Y, TouchID: -1}
		}
		pt.tracking = true
		pt.touchID = in.TouchID
		pt.isTouch = in.IsTouch
		pt.lastX, pt.lastY = in.X, in.Y
		return PointerSample{Phase: PointerPhaseDown, X: in.X, Y: in.Y, TouchID: in.TouchID, IsTouch: in.IsTouch}
	}

	if !in.Pressed {
		sample := PointerSample{Phase: PointerPhaseUp, X: in.X, Y: in.Y, TouchID: pt.touchID, IsTouch: pt.isTouch}
		pt.Reset()
		return sample
	}

	phase := PointerPhaseNone
	if in.X != pt.lastX || in.Y != pt.lastY {
		phase = PointerPhaseMove
	}
	pt.lastX, pt.lastY = in.X, in.Y
	return PointerSample{Phase: phase, X: in.X, Y: in.Y, TouchID: pt.touchID, IsTouch: pt.isTouch}
}
