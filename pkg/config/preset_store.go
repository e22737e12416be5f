package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// 预设存储路径常量
const presetObject = "presets"

// PresetStore 从平台数据目录读取命名的涟漪配置预设
//
// 预设以 YAML 存放在 gdata 对象 "presets" 下，属性名即预设名。
// 只读：涟漪本身从不持久化。
type PresetStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，始终返回默认配置）
}

// NewPresetStore 创建预设存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
func NewPresetStore(gdataManager *gdata.Manager) *PresetStore {
	return &PresetStore{gdataManager: gdataManager}
}

// Has 检查预设是否存在
func (ps *PresetStore) Has(name string) bool {
	if ps.gdataManager == nil || name == "" {
		return false
	}
	return ps.gdataManager.ObjectPropExists(presetObject, name)
}

// Load 加载命名预设
//
// 预设不存在时返回默认配置且不报错；
// 预设存在但无法读取或解析时返回默认配置和错误。
func (ps *PresetStore) Load(name string) (RippleConfig, error) {
	if !ps.Has(name) {
		log.Printf("[PresetStore] 预设 %q 不存在，使用默认配置", name)
		return DefaultRippleConfig(), nil
	}

	data, err := ps.gdataManager.LoadObjectProp(presetObject, name)
	if err != nil {
		return DefaultRippleConfig(), fmt.Errorf("failed to load preset %q: %w", name, err)
	}

	cfg, err := ParseRippleConfigYAML(data)
	if err != nil {
		return cfg, fmt.Errorf("preset %q: %w", name, err)
	}

	log.Printf("[PresetStore] 加载预设 %q", name)
	return cfg, nil
}
