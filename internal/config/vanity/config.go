// Package vanity 提供靓号地址搜索配置
package vanity

import (
	"runtime"

	configtypes "github.com/weisyn/addrkit/pkg/types"
)

// VanityOptions 靓号搜索配置选项
type VanityOptions struct {
	Workers          int                       `json:"workers"`           // 并发worker数量
	MaxAttempts      uint64                    `json:"max_attempts"`      // 最大尝试次数，0表示不限制
	ProgressInterval uint64                    `json:"progress_interval"` // 进度日志间隔（尝试次数）
	Format           configtypes.AddressFormat `json:"format"`            // 目标地址格式
}

// Config 靓号搜索配置实现
type Config struct {
	options *VanityOptions
}

// New 创建靓号搜索配置实现
func New(userConfig interface{}) *Config {
	defaultOptions := createDefaultVanityOptions()

	if userConfig != nil {
		applyUserVanityConfig(defaultOptions, userConfig)
	}

	return &Config{
		options: defaultOptions,
	}
}

func createDefaultVanityOptions() *VanityOptions {
	return &VanityOptions{
		Workers:          runtime.NumCPU(),
		MaxAttempts:      defaultMaxAttempts,
		ProgressInterval: defaultProgressInterval,
		Format:           defaultFormat,
	}
}

func applyUserVanityConfig(options *VanityOptions, userConfig interface{}) {
	vanityConfig, ok := userConfig.(*configtypes.UserVanityConfig)
	if !ok || vanityConfig == nil {
		return
	}
	if vanityConfig.Workers != nil && *vanityConfig.Workers > 0 {
		options.Workers = *vanityConfig.Workers
	}
	if vanityConfig.MaxAttempts != nil {
		options.MaxAttempts = *vanityConfig.MaxAttempts
	}
	if vanityConfig.ProgressInterval != nil {
		options.ProgressInterval = *vanityConfig.ProgressInterval
	}
	if vanityConfig.Format != nil {
		if f := configtypes.AddressFormat(*vanityConfig.Format); f.Valid() {
			options.Format = f
		}
	}
}

// GetOptions 获取完整的靓号搜索配置选项
func (c *Config) GetOptions() *VanityOptions {
	return c.options
}
