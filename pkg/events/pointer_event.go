// Package events 定义指针生命周期事件与单线程 FIFO 事件队列
package events

import "github.com/decker502/ripple/pkg/ecs"

// PointerKind 指针事件类型
type PointerKind int

const (
	// PointerGrant 指针按下，宿主把手势授予表面
	PointerGrant PointerKind = iota
	// PointerMove 指针移动
	PointerMove
	// PointerRelease 指针抬起
	PointerRelease
	// PointerTerminate 手势被宿主强制终止（例如被父级接管）
	PointerTerminate
)

// String 返回事件类型名称（用于日志）
func (k PointerKind) String() string {
	switch k {
	case PointerGrant:
		return "Grant"
	case PointerMove:
		return "Move"
	case PointerRelease:
		return "Release"
	case PointerTerminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// PointerEvent 一个指针生命周期事件
type PointerEvent struct {
	// Entity 目标表面
	Entity ecs.EntityID
	// Kind 事件类型
	Kind PointerKind
	// X, Y 指针位置（表面局部坐标）
	X float64
	Y float64
}

// PointerQueue 指针事件 FIFO 队列
//
// 生产者（宿主输入胶水）与消费者（GestureSystem）在同一帧时钟线程上运行，不加锁。
type PointerQueue struct {
	events []PointerEvent
}

// NewPointerQueue 创建空队列
func NewPointerQueue() *PointerQueue {
	return &PointerQueue{events: make([]PointerEvent, 0, 8)}
}

// Push 追加一个事件
func (q *PointerQueue) Push(ev PointerEvent) {
	q.events = append(q.events, ev)
}

// Consume 按 FIFO 顺序返回所有待处理事件并清空队列
// 没有事件时返回 nil
func (q *PointerQueue) Consume() []PointerEvent {
	if len(q.events) == 0 {
		return nil
	}
	result := q.events
	q.events = make([]PointerEvent, 0, cap(result))
	return result
}

// Len 返回待处理事件数
func (q *PointerQueue) Len() int {
	return len(q.events)
}
