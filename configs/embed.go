package configs

import (
	_ "embed"
	"fmt"
	"sort"
)

// 嵌入的预置配置（在configs目录内直接引用）
//
//go:embed default/config.json
var defaultConfig []byte

//go:embed regtest/config.json
var regtestConfig []byte

//go:embed tc/config.json
var tcConfig []byte

var presets = map[string][]byte{
	"default": defaultConfig,
	"regtest": regtestConfig,
	"tc":      tcConfig,
}

// GetPreset 按名称获取预置配置
func GetPreset(name string) ([]byte, error) {
	data, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown config preset %q (available: %v)", name, PresetNames())
	}
	return data, nil
}

// PresetNames 返回所有预置配置名称
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
