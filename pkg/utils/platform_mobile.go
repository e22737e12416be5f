//go:build mobile

package utils

// IsMobile 移动端构建始终为 true
func IsMobile() bool {
	return true
}
