package embedded

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/decker502/wavebanner/pkg/config"
)

// PresetDir 内置预设目录
const PresetDir = "data/presets"

// ListPresets 返回内置预设名称（文件名去掉 .yaml，按字母排序）
func ListPresets() ([]string, error) {
	files, err := Glob(PresetDir + "/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(path.Base(f), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadPreset 加载内置预设
//
// 参数:
//   - name: 预设名称（不含扩展名）
//
// 返回:
//   - *config.PresetConfig: 验证后的预设
//   - error: 预设不存在或内容无效时返回错误
func LoadPreset(name string) (*config.PresetConfig, error) {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return nil, fmt.Errorf("invalid preset name %q", name)
	}

	data, err := ReadFile(PresetDir + "/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}

	preset, err := config.ParsePresetConfig(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return preset, nil
}
