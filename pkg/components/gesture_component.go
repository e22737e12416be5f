package components

// GestureState 手势识别器状态
type GestureState int

const (
	// GestureIdle 空闲，未跟踪任何指针
	GestureIdle GestureState = iota
	// GestureTracking 指针已按下，正在采样位置
	GestureTracking
)

// String 返回状态名称（用于日志）
func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "Idle"
	case GestureTracking:
		return "Tracking"
	default:
		return "Unknown"
	}
}

// GestureComponent 手势识别器状态（FocusState）
// 只由 GestureSystem 写入
type GestureComponent struct {
	// State 识别器状态（Idle / Tracking）
	State GestureState
	// Focused 指针当前是否位于表面范围内，初始为 false
	Focused bool
}
