package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// RemovalPolicy 涟漪动画结束时从活动集合中移除元素的策略
type RemovalPolicy string

const (
	// RemoveHead 移除活动集合的头部（最旧）元素，不一定是刚结束的那个
	// 所有涟漪时长相同且按顺序生成时，两种策略结果一致
	RemoveHead RemovalPolicy = "head"
	// RemoveCompleted 按 ID 移除刚结束动画的那个涟漪
	RemoveCompleted RemovalPolicy = "identity"
)

// 默认值
const (
	DefaultRippleColor    = "black"
	DefaultRippleOpacity  = 0.20
	DefaultRippleDuration = 400 // 毫秒
)

// RippleConfig 单个涟漪表面的配置
//
// 同时支持 YAML 与 TOML，键名与组件属性名一致（rippleColor 等）。
type RippleConfig struct {
	// RippleColor 涟漪颜色（颜色名或 #rrggbb）
	RippleColor string `yaml:"rippleColor" toml:"rippleColor"`
	// RippleOpacity 涟漪初始不透明度 0.0 ~ 1.0
	RippleOpacity float64 `yaml:"rippleOpacity" toml:"rippleOpacity"`
	// RippleDuration 动画时长（毫秒）
	RippleDuration int `yaml:"rippleDuration" toml:"rippleDuration"`
	// RippleSize 最大半径覆盖值，0 表示按对角线自动计算
	RippleSize float64 `yaml:"rippleSize" toml:"rippleSize"`
	// RippleContainerBorderRadius 容器圆角，仅供渲染器使用
	RippleContainerBorderRadius float64 `yaml:"rippleContainerBorderRadius" toml:"rippleContainerBorderRadius"`
	// Disabled 禁用时不响应手势
	Disabled bool `yaml:"disabled" toml:"disabled"`
	// RemovalPolicy 动画结束时的移除策略（head / identity）
	RemovalPolicy RemovalPolicy `yaml:"removalPolicy" toml:"removalPolicy"`
}

// DefaultRippleConfig 返回默认配置
func DefaultRippleConfig() RippleConfig {
	return RippleConfig{
		RippleColor:                 DefaultRippleColor,
		RippleOpacity:               DefaultRippleOpacity,
		RippleDuration:              DefaultRippleDuration,
		RippleSize:                  0,
		RippleContainerBorderRadius: 0,
		Disabled:                    false,
		RemovalPolicy:               RemoveHead,
	}
}

// Duration 返回 time.Duration 形式的动画时长
func (c RippleConfig) Duration() time.Duration {
	if c.RippleDuration <= 0 {
		return 0
	}
	return time.Duration(c.RippleDuration) * time.Millisecond
}

// Normalize 修正越界的配置值
//
// 配置来自可信的宿主，这里不返回错误，只记录每一项修正。
func (c *RippleConfig) Normalize() {
	if c.RippleColor == "" {
		c.RippleColor = DefaultRippleColor
	}
	if c.RippleOpacity < 0 {
		log.Printf("[Config] rippleOpacity %.2f < 0, clamped to 0", c.RippleOpacity)
		c.RippleOpacity = 0
	} else if c.RippleOpacity > 1 {
		log.Printf("[Config] rippleOpacity %.2f > 1, clamped to 1", c.RippleOpacity)
		c.RippleOpacity = 1
	}
	if c.RippleDuration < 0 {
		log.Printf("[Config] rippleDuration %d < 0, clamped to 0", c.RippleDuration)
		c.RippleDuration = 0
	}
	if c.RippleSize < 0 {
		log.Printf("[Config] rippleSize %.2f < 0, using auto size", c.RippleSize)
		c.RippleSize = 0
	}
	switch c.RemovalPolicy {
	case RemoveHead, RemoveCompleted:
	case "":
		c.RemovalPolicy = RemoveHead
	default:
		log.Printf("[Config] unknown removalPolicy %q, using %q", c.RemovalPolicy, RemoveHead)
		c.RemovalPolicy = RemoveHead
	}
}

// ParseRippleConfigYAML 从 YAML 数据解析配置
// 未出现的键保留默认值
func ParseRippleConfigYAML(data []byte) (RippleConfig, error) {
	cfg := DefaultRippleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRippleConfig(), fmt.Errorf("failed to unmarshal ripple config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ParseRippleConfigTOML 从 TOML 数据解析配置
func ParseRippleConfigTOML(data []byte) (RippleConfig, error) {
	cfg := DefaultRippleConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultRippleConfig(), fmt.Errorf("failed to decode ripple config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// LoadRippleConfig 从文件加载配置
//
// 参数：
//   - path: 配置文件路径，.toml 按 TOML 解析，其余按 YAML 解析
//
// 返回：
//   - RippleConfig: 解析后的配置（失败时为默认配置）
//   - error: 读取或解析失败
func LoadRippleConfig(path string) (RippleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRippleConfig(), fmt.Errorf("failed to read ripple config %s: %w", path, err)
	}

	var cfg RippleConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = ParseRippleConfigTOML(data)
	default:
		cfg, err = ParseRippleConfigYAML(data)
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("[Config] 加载涟漪配置: %s", path)
	return cfg, nil
}
