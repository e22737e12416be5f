//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.ripple -o build/android/ripple.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Ripple.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/ripple/pkg/app"
	"github.com/decker502/ripple/pkg/config"
)

func init() {
	// 移动端没有命令行参数：有名为 default 的预设时使用它，否则使用默认配置
	rippleCfg, err := config.ResolveRippleConfig(app.OpenPresetStore(), "default", "")
	if err != nil {
		log.Printf("[Mobile] Warning: %v", err)
	}

	cfg := app.Config{
		Verbose: true,
		Ripple:  rippleCfg,
	}

	rippleApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(rippleApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
