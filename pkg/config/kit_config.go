package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// KitConfig 客户端工具包配置
//
// 包含五彩纸屑特效、通知横幅和页面淡入的参数。
// 未在 YAML 中出现的字段保留默认值。
//
// 配置文件位置: data/kit.yaml
type KitConfig struct {
	Confetti     ConfettiConfig     `yaml:"confetti"`
	Notification NotificationConfig `yaml:"notification"`
	FadeIn       FadeInConfig       `yaml:"fadeIn"`
}

// ConfettiConfig 五彩纸屑特效参数
//
// 速度和旋转速度的单位都是"每 tick"，与帧回调一一对应。
type ConfettiConfig struct {
	ParticleCount   int      `yaml:"particleCount"`   // 每次特效生成的粒子数
	Gravity         float64  `yaml:"gravity"`         // 每 tick 叠加到垂直速度上的重力
	Spread          float64  `yaml:"spread"`          // 水平速度范围宽度，取值 [-spread/2, spread/2]
	Size            Range    `yaml:"size"`            // 粒子尺寸范围
	VelocityY       Range    `yaml:"velocityY"`       // 初始垂直速度范围（负值向上）
	RotationSpeed   Range    `yaml:"rotationSpeed"`   // 旋转速度范围（度/tick）
	OffscreenMargin float64  `yaml:"offscreenMargin"` // 超出画布底部多少像素视为离场
	Colors          []string `yaml:"colors"`          // 调色板（十六进制颜色）
}

// NotificationConfig 通知横幅参数
type NotificationConfig struct {
	AutoHideSeconds float64 `yaml:"autoHideSeconds"` // 自动隐藏延迟（秒）
}

// FadeInConfig 页面就绪后淡入参数
type FadeInConfig struct {
	DelaySeconds float64 `yaml:"delaySeconds"` // 就绪信号到添加 visible 类的延迟（秒）
}

// Range 数值范围 [Min, Max]
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultPalette 默认的六色调色板
var DefaultPalette = []string{"#d4af37", "#FFD700", "#FFA500", "#FF4500", "#9370DB", "#00BFFF"}

// DefaultKitConfig 返回默认配置
func DefaultKitConfig() *KitConfig {
	colors := make([]string, len(DefaultPalette))
	copy(colors, DefaultPalette)

	return &KitConfig{
		Confetti: ConfettiConfig{
			ParticleCount:   150,
			Gravity:         0.3,
			Spread:          60,
			Size:            Range{Min: 5, Max: 15},
			VelocityY:       Range{Min: -20, Max: -5},
			RotationSpeed:   Range{Min: -5, Max: 5},
			OffscreenMargin: 100,
			Colors:          colors,
		},
		Notification: NotificationConfig{
			AutoHideSeconds: 5,
		},
		FadeIn: FadeInConfig{
			DelaySeconds: 0.1,
		},
	}
}

// LoadKitConfig 加载工具包配置
//
// 参数:
//   - path: 配置文件路径（如 "data/kit.yaml"）
//
// 返回:
//   - *KitConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadKitConfig(path string) (*KitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read kit config: %w", err)
	}
	return ParseKitConfig(data)
}

// ParseKitConfig 从 YAML 数据解析配置
//
// 解析在默认配置之上进行，缺失字段使用默认值。
//
// 参数:
//   - data: YAML 数据（可以是嵌入的默认配置）
//
// 返回:
//   - *KitConfig: 解析后的配置
//   - error: 解析或验证失败时返回错误
func ParseKitConfig(data []byte) (*KitConfig, error) {
	config := DefaultKitConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse kit config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid kit config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 粒子数量为正
//   - 重力为正，否则向上发射的粒子永远不会离开屏幕
//   - 各范围的 Min 不大于 Max，尺寸不为负
//   - 调色板非空且每个颜色都是合法的十六进制颜色
//   - 自动隐藏和淡入延迟不为负
func (c *KitConfig) Validate() error {
	cc := c.Confetti

	if cc.ParticleCount <= 0 {
		return fmt.Errorf("particleCount must be > 0, got %d", cc.ParticleCount)
	}
	if cc.Gravity <= 0 {
		return fmt.Errorf("gravity must be > 0, got %.2f", cc.Gravity)
	}
	if cc.Spread < 0 {
		return fmt.Errorf("spread must be >= 0, got %.1f", cc.Spread)
	}
	if cc.OffscreenMargin < 0 {
		return fmt.Errorf("offscreenMargin must be >= 0, got %.1f", cc.OffscreenMargin)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"size", cc.Size},
		{"velocityY", cc.VelocityY},
		{"rotationSpeed", cc.RotationSpeed},
	}
	for _, item := range ranges {
		if item.r.Min > item.r.Max {
			return fmt.Errorf("%s range invalid: min(%.1f) > max(%.1f)", item.name, item.r.Min, item.r.Max)
		}
	}
	if cc.Size.Min < 0 {
		return fmt.Errorf("size min must be >= 0, got %.1f", cc.Size.Min)
	}

	if len(cc.Colors) == 0 {
		return fmt.Errorf("colors must not be empty")
	}
	for _, hex := range cc.Colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("color %q is not a hex color: %w", hex, err)
		}
	}

	if c.Notification.AutoHideSeconds < 0 {
		return fmt.Errorf("autoHideSeconds must be >= 0, got %.2f", c.Notification.AutoHideSeconds)
	}
	if c.FadeIn.DelaySeconds < 0 {
		return fmt.Errorf("delaySeconds must be >= 0, got %.2f", c.FadeIn.DelaySeconds)
	}

	return nil
}
