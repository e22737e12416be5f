package config

import (
	"fmt"
	"log"
)

// ResolveRippleConfig 按优先级确定启动时使用的涟漪配置
//
// 优先级（高 → 低）：
//  1. path 指定的配置文件（YAML/TOML）
//  2. preset 指定的命名预设（PresetStore）
//  3. DefaultRippleConfig()
//
// 两者都为空时返回默认配置。
func ResolveRippleConfig(store *PresetStore, preset, path string) (RippleConfig, error) {
	if path != "" {
		if preset != "" {
			log.Printf("[Config] 同时指定了预设 %q 和配置文件，使用配置文件 %s", preset, path)
		}
		cfg, err := LoadRippleConfig(path)
		if err != nil {
			return DefaultRippleConfig(), fmt.Errorf("failed to resolve ripple config: %w", err)
		}
		return cfg, nil
	}

	if preset != "" {
		if store == nil {
			store = NewPresetStore(nil)
		}
		return store.Load(preset)
	}

	return DefaultRippleConfig(), nil
}
