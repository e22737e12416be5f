//go:build !mobile

package utils

import "os"

// IsMobile 是否按触摸设备处理（影响提示文案和全屏快捷键）
// 桌面端默认 false，设置 RIPPLE_MOBILE_EMULATE=1 可在本地模拟
func IsMobile() bool {
	return os.Getenv("RIPPLE_MOBILE_EMULATE") == "1"
}
