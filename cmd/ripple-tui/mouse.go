package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/ripple/pkg/utils"
)

// cellAspect 终端字符单元的高宽比
// 表面坐标以单元宽度为单位，行坐标乘以该值，使涟漪在终端中保持圆形
const cellAspect = 2

// mouseState 把 tcell 的按键掩码转换为单指针生命周期
// 只跟踪主按键，其他按键被忽略
type mouseState struct {
	pressed bool
	lastX   int
	lastY   int
}

// handle 处理一个 tcell 鼠标事件
func (m *mouseState) handle(ev *tcell.EventMouse) utils.PointerSample {
	col, row := ev.Position()
	return m.step(ev.Buttons()&tcell.Button1 != 0, col, row)
}

// step 根据主按键状态和单元坐标产生一次采样（表面坐标）
func (m *mouseState) step(pressed bool, col, row int) utils.PointerSample {
	x, y := col, row*cellAspect

	switch {
	case pressed && !m.pressed:
		m.pressed = true
		m.lastX, m.lastY = x, y
		return utils.PointerSample{Phase: utils.PointerPhaseDown, X: x, Y: y, TouchID: -1}

	case pressed && m.pressed:
		if x == m.lastX && y == m.lastY {
			return utils.PointerSample{Phase: utils.PointerPhaseNone, X: x, Y: y, TouchID: -1}
		}
		m.lastX, m.lastY = x, y
		return utils.PointerSample{Phase: utils.PointerPhaseMove, X: x, Y: y, TouchID: -1}

	case !pressed && m.pressed:
		m.pressed = false
		return utils.PointerSample{Phase: utils.PointerPhaseUp, X: x, Y: y, TouchID: -1}
	}

	return utils.PointerSample{Phase: utils.PointerPhaseNone, X: x, Y: y, TouchID: -1}
}

// reset 丢弃按下状态（终端失去焦点时）
func (m *mouseState) reset() {
	m.pressed = false
}
