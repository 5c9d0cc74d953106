package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// PresetConfig 预设配置
//
// A named attribute snapshot that can be rendered as-is or layered under
// command line overrides.
//
// 配置文件位置: data/presets/*.yaml
type PresetConfig struct {
	// Name 预设名称（如 "ocean"）
	Name string `yaml:"name"`

	// Description 简短说明
	Description string `yaml:"description"`

	// Attributes attribute name → raw value, exactly as a host would set them
	Attributes map[string]string `yaml:"attributes"`
}

// LoadPresetConfig 从文件加载预设配置
//
// 参数:
//   - path: YAML 文件路径
//
// 返回:
//   - *PresetConfig: 解析并验证后的预设
//   - error: 读取、解析或验证失败时返回错误
func LoadPresetConfig(path string) (*PresetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset config: %w", err)
	}

	preset, err := ParsePresetConfig(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return preset, nil
}

// ParsePresetConfig 解析 YAML 格式的预设内容
func ParsePresetConfig(data []byte) (*PresetConfig, error) {
	var preset PresetConfig
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset config: %w", err)
	}

	if err := preset.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset config: %w", err)
	}

	if preset.Attributes == nil {
		preset.Attributes = map[string]string{}
	}
	return &preset, nil
}

// Validate 验证预设有效性
//
// 检查：
//   - 名称不能为空
//   - 只能包含可识别的属性名
//
// Attribute values are not checked here; ParseAttributes reports them at
// render time so presets and live attributes share one policy.
func (p *PresetConfig) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}

	var unknown []string
	for name := range p.Attributes {
		if !IsObservedAttribute(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("preset %q has unknown attributes %v", p.Name, unknown)
	}
	return nil
}
