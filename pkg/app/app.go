// Package app 提供涟漪演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/ecs"
	"github.com/decker502/ripple/pkg/entities"
	"github.com/decker502/ripple/pkg/systems"
	"github.com/decker502/ripple/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 窗口与布局常量
const (
	WindowWidth  = 800
	WindowHeight = 600

	surfaceMargin = 24.0
	surfaceGap    = 16.0
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Ripple 所有演示表面共用的基础配置
	Ripple config.RippleConfig
}

// demoSurface 一个演示表面及其点击计数
type demoSurface struct {
	entity  ecs.EntityID
	label   string
	presses int
	focused bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager

	layoutSystem *systems.LayoutSystem
	gestures     *systems.GestureSystem
	ripples      *systems.RippleSystem
	input        *systems.PointerInputSystem
	renderer     *systems.RippleRenderSystem

	surfaces []*demoSurface

	screenWidth  int
	screenHeight int
	laidOut      bool

	verbose bool
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	base := cfg.Ripple
	base.Normalize()
	if _, err := config.ParseColor(base.RippleColor); err != nil {
		return nil, fmt.Errorf("涟漪颜色无效: %w", err)
	}

	em := ecs.NewEntityManager()
	ripples := systems.NewRippleSystem(em)
	gestures := systems.NewGestureSystem(em, ripples)

	a := &App{
		entityManager: em,
		layoutSystem:  systems.NewLayoutSystem(em),
		gestures:      gestures,
		ripples:       ripples,
		input:         systems.NewPointerInputSystem(em, gestures),
		renderer:      systems.NewRippleRenderSystem(em, ripples),
		screenWidth:   WindowWidth,
		screenHeight:  WindowHeight,
		verbose:       cfg.Verbose,
	}
	ripples.Verbose = cfg.Verbose
	gestures.Verbose = cfg.Verbose

	ripples.SetRenderListener(func(entity ecs.EntityID, frames []components.RippleFrame) {
		log.Printf("[App] surface %d: %d live ripples", entity, len(frames))
	})

	// 三个演示表面：基础配置、圆角蓝色、可切换禁用
	rounded := base
	rounded.RippleColor = "royalblue"
	rounded.RippleOpacity = 0.35
	rounded.RippleContainerBorderRadius = 16

	slow := base
	slow.RippleColor = "crimson"
	slow.RippleDuration = base.RippleDuration * 3
	slow.RemovalPolicy = config.RemoveCompleted

	a.addSurface("default", base)
	a.addSurface("rounded", rounded)
	toggleHint := "slow (D toggles disabled)"
	if utils.IsMobile() {
		toggleHint = "slow"
	}
	a.addSurface(toggleHint, slow)

	log.Printf("[App] 创建 %d 个演示表面", len(a.surfaces))
	return a, nil
}

// addSurface 挂载一个演示表面，位置与尺寸在 relayout 中确定
func (a *App) addSurface(label string, cfg config.RippleConfig) {
	ds := &demoSurface{label: label}
	ds.entity = entities.NewRippleSurface(a.entityManager, 0, 0, cfg, entities.SurfaceCallbacks{
		OnPress:    func() { ds.presses++ },
		OnPressIn:  func() { ds.focused = true },
		OnPressOut: func() { ds.focused = false },
	})
	a.surfaces = append(a.surfaces, ds)
}

// relayout 按当前屏幕尺寸纵向排列表面，并通知布局系统
func (a *App) relayout() {
	n := float64(len(a.surfaces))
	width := float64(a.screenWidth) - 2*surfaceMargin
	height := (float64(a.screenHeight) - 2*surfaceMargin - surfaceGap*(n-1)) / n
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	for i, ds := range a.surfaces {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](a.entityManager, ds.entity); ok {
			pos.X = surfaceMargin
			pos.Y = surfaceMargin + float64(i)*(height+surfaceGap)
		}
		a.layoutSystem.OnLayout(ds.entity, width, height)
	}
	a.laidOut = true
	log.Printf("[App] 重新布局: %dx%d", a.screenWidth, a.screenHeight)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if !a.laidOut {
		a.relayout()
	}

	// F11 切换全屏（仅桌面端）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// D 切换第三个表面的禁用状态（手势进行中也可以切换）
	if inpututil.IsKeyJustPressed(ebiten.KeyD) && len(a.surfaces) >= 3 {
		a.toggleDisabled(a.surfaces[2].entity)
	}

	// 窗口失去焦点时由宿主强制终止手势
	if !ebiten.IsFocused() {
		a.input.Cancel()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.input.Update(deltaTime)
	a.gestures.Update(deltaTime)
	a.ripples.Update(deltaTime)
	a.entityManager.RemoveMarkedEntities()
	return nil
}

func (a *App) toggleDisabled(entity ecs.EntityID) {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](a.entityManager, entity)
	if !ok {
		return
	}
	entities.SetSurfaceDisabled(a.entityManager, entity, !surface.Options.Disabled)
	log.Printf("[App] surface %d disabled=%v", entity, surface.Options.Disabled)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	a.renderer.Draw(screen)

	for _, ds := range a.surfaces {
		pos, ok := ecs.GetComponent[*components.PositionComponent](a.entityManager, ds.entity)
		if !ok {
			continue
		}
		ebitenutil.DebugPrintAt(screen, a.hudLine(ds), int(pos.X)+8, int(pos.Y)+8)
	}
}

// hudLine 表面左上角的状态文字
// 详细模式下额外显示仍在运行的时间轴数量和手势状态
func (a *App) hudLine(ds *demoSurface) string {
	msg := fmt.Sprintf("%s  presses=%d  live=%d", ds.label, ds.presses, a.ripples.LiveCount(ds.entity))
	if a.IsVerbose() {
		msg += fmt.Sprintf("  animating=%d  tracking=%v",
			a.ripples.AnimatingCount(ds.entity), a.gestures.IsTracking(ds.entity))
	}
	if ds.focused {
		msg += " [pressed]"
	}
	if !a.gestures.ShouldClaim(ds.entity) {
		msg += " [disabled]"
	}
	return msg
}

// Layout 返回逻辑屏幕尺寸
// 窗口尺寸变化时在下一次 Update 中重新布局所有表面
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.screenWidth || outsideHeight != a.screenHeight {
		a.screenWidth = outsideWidth
		a.screenHeight = outsideHeight
		a.laidOut = false
	}
	return outsideWidth, outsideHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
