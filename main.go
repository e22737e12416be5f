package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ripple/pkg/app"
	"github.com/decker502/ripple/pkg/config"
)

var (
	// 命令行参数
	configPath = flag.String("config", "", "涟漪配置文件路径（.yaml / .toml）")
	preset     = flag.String("preset", "", "从数据目录加载的命名预设")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	// 配置阶段的日志同样受 -verbose 控制
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	rippleCfg, err := config.ResolveRippleConfig(app.OpenPresetStore(), *preset, *configPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("加载涟漪配置失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Ripple:  rippleCfg,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Ripple - 触摸涟漪演示")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
