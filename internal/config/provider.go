// Package config 提供应用配置管理功能
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/weisyn/addrkit/internal/config/log"
	"github.com/weisyn/addrkit/internal/config/network"
	"github.com/weisyn/addrkit/internal/config/vanity"
	"github.com/weisyn/addrkit/pkg/interfaces/config"
	"github.com/weisyn/addrkit/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	return &Provider{
		appConfig: appConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	var userLogConfig *types.UserLogConfig
	if p.appConfig != nil && p.appConfig.Log != nil {
		userLogConfig = p.appConfig.Log
	}
	return log.New(userLogConfig).GetOptions()
}

// GetNetwork 获取网络参数配置
func (p *Provider) GetNetwork() *network.NetworkOptions {
	var userNetworkConfig *types.UserNetworkConfig
	if p.appConfig != nil && p.appConfig.Network != nil {
		userNetworkConfig = p.appConfig.Network
	}
	return network.New(userNetworkConfig).GetOptions()
}

// GetVanity 获取靓号搜索配置
func (p *Provider) GetVanity() *vanity.VanityOptions {
	var userVanityConfig *types.UserVanityConfig
	if p.appConfig != nil && p.appConfig.Vanity != nil {
		userVanityConfig = p.appConfig.Vanity
	}
	return vanity.New(userVanityConfig).GetOptions()
}

// appOptions 包装已解析的用户配置
type appOptions struct {
	appConfig *types.AppConfig
}

// GetAppConfig 获取应用配置
func (o *appOptions) GetAppConfig() *types.AppConfig {
	return o.appConfig
}

// NewAppOptions 用已解析的配置创建 AppOptions
func NewAppOptions(appConfig *types.AppConfig) config.AppOptions {
	return &appOptions{appConfig: appConfig}
}

// LoadAppConfig 从JSON配置文件加载用户配置
//
// path 为空时返回空配置，所有模块使用默认值。
func LoadAppConfig(path string) (*types.AppConfig, error) {
	if path == "" {
		return &types.AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	return ParseAppConfig(data)
}

// ParseAppConfig 解析JSON格式的用户配置
func ParseAppConfig(data []byte) (*types.AppConfig, error) {
	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if appConfig.Vanity != nil && appConfig.Vanity.Format != nil {
		if !types.AddressFormat(*appConfig.Vanity.Format).Valid() {
			return nil, fmt.Errorf("不支持的地址格式: %q", *appConfig.Vanity.Format)
		}
	}

	return &appConfig, nil
}
