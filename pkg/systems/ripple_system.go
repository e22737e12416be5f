package systems

import (
	"log"
	"sort"
	"time"

	"github.com/decker502/ripple/pkg/components"
	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/ecs"
	"github.com/decker502/ripple/pkg/utils"
)

// BaseDiameter 渲染器缩放的基准圆边长（像素）
// 初始缩放 1/BaseDiameter 对应 1 像素的最小可见圆，
// 目标缩放 Radius/BaseDiameter 使圆的直径等于表面的最大尺寸
const BaseDiameter = 20.0

// RenderListener 渲染通知回调
// 每次生成或移除涟漪后，以该表面当前的活动集合调用一次
type RenderListener func(entity ecs.EntityID, frames []components.RippleFrame)

// RippleSystem 涟漪生命周期系统
//
// 职责：
//   - 合格释放时生成涟漪实例并加入活动集合尾部
//   - 按帧推进每个涟漪的缩放/不透明度时间轴
//   - 时间轴结束后在本帧末尾从活动集合移除一个元素
//   - 每次集合变化后发出渲染通知
//
// 注意：在帧时钟线程上运行，不加锁
type RippleSystem struct {
	entityManager *ecs.EntityManager
	listener      RenderListener

	// Easing 两条轨道共用的缓动曲线，默认 EaseOutStandard
	Easing utils.EasingFunc
	// Verbose 输出每个涟漪的生成/结束日志
	Verbose bool
}

// NewRippleSystem 创建涟漪生命周期系统
func NewRippleSystem(em *ecs.EntityManager) *RippleSystem {
	return &RippleSystem{
		entityManager: em,
		Easing:        utils.EaseOutStandard,
	}
}

// SetRenderListener 设置渲染通知回调，nil 表示不通知
func (s *RippleSystem) SetRenderListener(listener RenderListener) {
	s.listener = listener
}

// SpawnRipple 在表面局部坐标 (x, y) 生成一个新涟漪
//
// 返回：
//   - uint64: 新涟漪的 ID
//   - bool: 实体不是涟漪表面时返回 false
func (s *RippleSystem) SpawnRipple(entity ecs.EntityID, x, y float64) (uint64, bool) {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, entity)
	if !ok {
		log.Printf("[RippleSystem] Warning: entity %d is not a ripple surface", entity)
		return 0, false
	}

	set := s.rippleSet(entity)

	radius := ComputeGeometry(0, 0, surface.Options.RippleSize).Radius
	if geo, ok := ecs.GetComponent[*components.GeometryComponent](s.entityManager, entity); ok {
		radius = geo.Radius
	}

	ripple := &components.RippleInstance{
		ID:          set.NextID,
		OriginX:     x,
		OriginY:     y,
		Duration:    surface.Options.Duration(),
		FromScale:   1 / BaseDiameter,
		ToScale:     radius / BaseDiameter,
		FromOpacity: surface.Options.RippleOpacity,
	}
	set.NextID++

	set.Live = append(set.Live, ripple)
	set.Animating = append(set.Animating, ripple)

	if s.Verbose {
		log.Printf("[RippleSystem] entity %d spawn ripple #%d at (%.1f, %.1f), scale %.3f -> %.3f, %v",
			entity, ripple.ID, x, y, ripple.FromScale, ripple.ToScale, ripple.Duration)
	}

	s.notify(entity, set)
	return ripple.ID, true
}

// Update 推进所有涟漪的时间轴
// 参数：
//   - deltaTime: 时间增量（秒）
func (s *RippleSystem) Update(deltaTime float64) {
	s.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Advance 以 time.Duration 推进所有涟漪的时间轴
//
// 本次推进中到达 100% 的时间轴，其结束回调在推进完成后按到达先后执行
// （同时到达的按生成顺序），每个回调移除一个元素并发出一次渲染通知。
func (s *RippleSystem) Advance(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}

	entities := ecs.GetEntitiesWith1[*components.RippleSetComponent](s.entityManager)
	for _, entity := range entities {
		set, _ := ecs.GetComponent[*components.RippleSetComponent](s.entityManager, entity)
		if len(set.Animating) == 0 {
			continue
		}

		type completion struct {
			ripple    *components.RippleInstance
			remaining time.Duration // 本次推进前距离结束的时间
		}

		completed := make([]completion, 0)
		running := set.Animating[:0]
		for _, r := range set.Animating {
			remaining := r.Duration - r.Elapsed
			r.Elapsed += delta
			if r.Elapsed >= r.Duration {
				r.Elapsed = r.Duration
				completed = append(completed, completion{ripple: r, remaining: remaining})
				continue
			}
			running = append(running, r)
		}
		// 清理尾部残留指针
		for i := len(running); i < len(set.Animating); i++ {
			set.Animating[i] = nil
		}
		set.Animating = running

		sort.SliceStable(completed, func(i, j int) bool {
			return completed[i].remaining < completed[j].remaining
		})

		for _, c := range completed {
			s.complete(entity, set, c.ripple)
		}
	}
}

// complete 单个时间轴结束后的回调
func (s *RippleSystem) complete(entity ecs.EntityID, set *components.RippleSetComponent, ripple *components.RippleInstance) {
	policy := config.RemoveHead
	if surface, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, entity); ok {
		policy = surface.Options.RemovalPolicy
	}

	var removed *components.RippleInstance
	switch policy {
	case config.RemoveCompleted:
		for i, r := range set.Live {
			if r == ripple {
				removed = r
				set.Live = removeAt(set.Live, i)
				break
			}
		}
	default:
		// 按位置移除头部元素，不一定是刚结束的那个
		if len(set.Live) > 0 {
			removed = set.Live[0]
			set.Live = removeAt(set.Live, 0)
		}
	}

	if removed == nil {
		if s.Verbose {
			log.Printf("[RippleSystem] entity %d ripple #%d completed, nothing to remove", entity, ripple.ID)
		}
		return
	}

	if s.Verbose {
		log.Printf("[RippleSystem] entity %d ripple #%d completed, removed #%d (%d live)",
			entity, ripple.ID, removed.ID, len(set.Live))
	}

	s.notify(entity, set)
}

// Clear 丢弃表面的全部涟漪（表面卸载时调用），ID 计数不重置
func (s *RippleSystem) Clear(entity ecs.EntityID) {
	set, ok := ecs.GetComponent[*components.RippleSetComponent](s.entityManager, entity)
	if !ok {
		return
	}
	hadLive := len(set.Live) > 0
	set.Live = nil
	set.Animating = nil
	if hadLive {
		s.notify(entity, set)
	}
}

// Frames 返回表面活动涟漪的当前插值（按创建顺序）
func (s *RippleSystem) Frames(entity ecs.EntityID) []components.RippleFrame {
	set, ok := ecs.GetComponent[*components.RippleSetComponent](s.entityManager, entity)
	if !ok {
		return nil
	}
	return s.frames(set)
}

// LiveCount 返回表面活动涟漪数量
func (s *RippleSystem) LiveCount(entity ecs.EntityID) int {
	set, ok := ecs.GetComponent[*components.RippleSetComponent](s.entityManager, entity)
	if !ok {
		return 0
	}
	return len(set.Live)
}

// AnimatingCount 返回表面仍在运行的时间轴数量
func (s *RippleSystem) AnimatingCount(entity ecs.EntityID) int {
	set, ok := ecs.GetComponent[*components.RippleSetComponent](s.entityManager, entity)
	if !ok {
		return 0
	}
	return len(set.Animating)
}

// Progress 返回涟漪经过缓动后的进度 ∈ [0, 1]
func (s *RippleSystem) Progress(r *components.RippleInstance) float64 {
	linear := 1.0
	if r.Duration > 0 {
		linear = utils.Clamp01(float64(r.Elapsed) / float64(r.Duration))
	}
	return s.Easing(linear)
}

// Frame 求涟漪当前的缩放与不透明度
func (s *RippleSystem) Frame(r *components.RippleInstance) components.RippleFrame {
	eased := s.Progress(r)
	return components.RippleFrame{
		ID:      r.ID,
		OriginX: r.OriginX,
		OriginY: r.OriginY,
		Scale:   utils.Lerp(r.FromScale, r.ToScale, eased),
		Opacity: utils.Lerp(r.FromOpacity, 0, eased),
	}
}

func (s *RippleSystem) frames(set *components.RippleSetComponent) []components.RippleFrame {
	frames := make([]components.RippleFrame, 0, len(set.Live))
	for _, r := range set.Live {
		frames = append(frames, s.Frame(r))
	}
	return frames
}

// rippleSet 获取或创建表面的涟漪集合
func (s *RippleSystem) rippleSet(entity ecs.EntityID) *components.RippleSetComponent {
	if set, ok := ecs.GetComponent[*components.RippleSetComponent](s.entityManager, entity); ok {
		return set
	}
	set := &components.RippleSetComponent{}
	ecs.AddComponent(s.entityManager, entity, set)
	return set
}

func (s *RippleSystem) notify(entity ecs.EntityID, set *components.RippleSetComponent) {
	if s.listener == nil {
		return
	}
	s.listener(entity, s.frames(set))
}

// removeAt 删除切片第 i 个元素，保持顺序
func removeAt(list []*components.RippleInstance, i int) []*components.RippleInstance {
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1]
}
