// ripple-tui 在终端中演示触摸涟漪
//
// 使用 tcell 接收鼠标事件并绘制，按下提交时用 beep 播放提示音。
// 与 ebiten 版本共用同一套 ECS 系统，只替换宿主输入和渲染。
//
// 用法：
//
//	go run ./cmd/ripple-tui -config ripple.yaml
//	go run ./cmd/ripple-tui -preset soft -log /tmp/ripple.log
//
// 按键：d 切换禁用，q / Esc 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/ripple/pkg/app"
	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/ecs"
	"github.com/decker502/ripple/pkg/entities"
	"github.com/decker502/ripple/pkg/systems"
	"github.com/decker502/ripple/pkg/utils"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	surfaceMargin = 2                     // 单元
	toneFrequency = 660
	toneDuration  = 40 * time.Millisecond
)

var (
	// 命令行参数
	configPath = flag.String("config", "", "涟漪配置文件路径（.yaml / .toml）")
	preset     = flag.String("preset", "", "从数据目录加载的命名预设")
	logPath    = flag.String("log", "", "日志文件路径（终端被占用，日志默认丢弃）")
	mute       = flag.Bool("mute", false, "关闭按下提示音")
)

// Demo 终端涟漪演示
type Demo struct {
	screen        tcell.Screen
	width, height int

	entityManager *ecs.EntityManager
	layoutSystem  *systems.LayoutSystem
	gestures      *systems.GestureSystem
	ripples       *systems.RippleSystem
	input         *systems.PointerInputSystem

	surface ecs.EntityID
	mouse   mouseState
	presses int

	background colorful.Color

	audioInit bool
}

// NewDemo 初始化终端、ECS 系统和音频
func NewDemo(cfg config.RippleConfig) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.EnableFocus()

	em := ecs.NewEntityManager()
	ripples := systems.NewRippleSystem(em)
	gestures := systems.NewGestureSystem(em, ripples)

	d := &Demo{
		screen:        screen,
		entityManager: em,
		layoutSystem:  systems.NewLayoutSystem(em),
		gestures:      gestures,
		ripples:       ripples,
		input:         systems.NewPointerInputSystem(em, gestures),
		background:    colorful.Color{R: 0.92, G: 0.92, B: 0.94},
	}

	d.surface = entities.NewRippleSurface(em, surfaceMargin, surfaceMargin*cellAspect, cfg, entities.SurfaceCallbacks{
		OnPress: func() {
			d.presses++
			d.playPressTone()
		},
	})

	d.width, d.height = screen.Size()
	d.relayout()

	// 音频失败不影响演示
	if err := d.initAudio(); err != nil {
		log.Printf("[RippleTUI] 音频初始化失败: %v", err)
	}

	return d, nil
}

func (d *Demo) initAudio() error {
	if *mute {
		return nil
	}
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

// playPressTone 播放一次短促的正弦提示音
func (d *Demo) playPressTone() {
	if !d.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		log.Printf("[RippleTUI] 生成提示音失败: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

// relayout 表面占满终端（留出边距和状态栏）
func (d *Demo) relayout() {
	cols := d.width - 2*surfaceMargin
	rows := d.height - 2*surfaceMargin - 1
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	d.layoutSystem.OnLayout(d.surface, float64(cols), float64(rows*cellAspect))
	log.Printf("[RippleTUI] 重新布局: %dx%d", d.width, d.height)
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'd':
				d.toggleDisabled()
			}
		}

	case *tcell.EventMouse:
		sample := d.mouse.handle(ev)
		if sample.Phase != utils.PointerPhaseNone {
			d.input.HandleSample(sample)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			d.mouse.reset()
			d.input.Cancel()
		}

	case *tcell.EventResize:
		d.screen.Sync()
		d.width, d.height = d.screen.Size()
		d.relayout()
	}

	return true
}

func (d *Demo) toggleDisabled() {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](d.entityManager, d.surface)
	if !ok {
		return
	}
	entities.SetSurfaceDisabled(d.entityManager, d.surface, !surface.Options.Disabled)
}

func (d *Demo) draw() {
	d.screen.Clear()

	surface, _ := ecs.GetComponent[*components.SurfaceComponent](d.entityManager, d.surface)
	pos, _ := ecs.GetComponent[*components.PositionComponent](d.entityManager, d.surface)
	geo := d.layoutSystem.Geometry(d.surface)

	rippleColor, err := config.ParseColor(surface.Options.RippleColor)
	if err != nil {
		log.Printf("[RippleTUI] Warning: %v, using black", err)
	}
	ripple, _ := colorful.MakeColor(rippleColor)

	frames := d.ripples.Frames(d.surface)
	cols := int(geo.Width)
	rows := int(geo.Height) / cellAspect
	originCol := int(pos.X)
	originRow := int(pos.Y) / cellAspect

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := float64(col) + 0.5
			y := (float64(row) + 0.5) * cellAspect
			c := shadeCell(d.background, ripple, frames, x, y)
			r, g, b := c.RGB255()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			d.screen.SetContent(originCol+col, originRow+row, ' ', nil, style)
		}
	}

	status := fmt.Sprintf(" presses=%d live=%d animating=%d disabled=%v  [d] toggle  [q] quit",
		d.presses, d.ripples.LiveCount(d.surface), d.ripples.AnimatingCount(d.surface), surface.Options.Disabled)
	for i, ch := range status {
		d.screen.SetContent(i, d.height-1, ch, nil, tcell.StyleDefault.Reverse(true))
	}

	d.screen.Show()
}

func (d *Demo) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(d.screen.PollEvent, eventChan)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !d.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			d.gestures.Update(now.Sub(last).Seconds())
			d.ripples.Advance(now.Sub(last))
			last = now
			d.draw()
		}
	}
}

// pumpEvents 把 poll 得到的事件转发到 out
// poll 返回 nil（屏幕已结束）时转发这个 nil 后退出，事件循环据此返回
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		out <- ev
		if ev == nil {
			return
		}
	}
}

func (d *Demo) cleanup() {
	entities.UnmountRippleSurface(d.entityManager, d.ripples, d.surface)
	d.entityManager.RemoveMarkedEntities()
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

// setupLogging 终端被 tcell 占用，日志只能写文件
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	flag.Parse()

	closer, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	cfg, err := config.ResolveRippleConfig(app.OpenPresetStore(), *preset, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	demo, err := NewDemo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer demo.cleanup()

	demo.run()
}
