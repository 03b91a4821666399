// Package config provides configuration provider interfaces.
package config

import (
	logconfig "github.com/weisyn/addrkit/internal/config/log"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	vanityconfig "github.com/weisyn/addrkit/internal/config/vanity"
)

// Provider 配置提供者接口
//
// 每个 Get 方法都返回"默认值 + 用户覆盖"后的完整配置。
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetNetwork 获取网络参数配置（版本字节、Bech32 HRP）
	GetNetwork() *networkconfig.NetworkOptions

	// GetVanity 获取靓号搜索配置
	GetVanity() *vanityconfig.VanityOptions
}
