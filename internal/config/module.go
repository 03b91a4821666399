package config

import (
	logconfig "github.com/weisyn/addrkit/internal/config/log"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	vanityconfig "github.com/weisyn/addrkit/internal/config/vanity"
	"github.com/weisyn/addrkit/pkg/interfaces/config"
	"github.com/weisyn/addrkit/pkg/types"
	"go.uber.org/fx"
)

// ConfigParams 定义配置模块的依赖参数
type ConfigParams struct {
	fx.In

	// 应用配置选项
	AppOptions config.AppOptions `optional:"true"`
}

// ConfigOutput 定义配置模块的输出结构
type ConfigOutput struct {
	fx.Out

	// 配置提供者
	Provider config.Provider
}

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			ProvideConfigServices,
			func(provider config.Provider) *logconfig.LogOptions {
				return provider.GetLog()
			},
			func(provider config.Provider) (*networkconfig.NetworkOptions, error) {
				opts := provider.GetNetwork()
				if err := opts.Validate(); err != nil {
					return nil, err
				}
				return opts, nil
			},
			func(provider config.Provider) *vanityconfig.VanityOptions {
				return provider.GetVanity()
			},
		),
	)
}

// ProvideConfigServices 提供配置服务
func ProvideConfigServices(params ConfigParams) (ConfigOutput, error) {
	var appConfig *types.AppConfig
	if params.AppOptions != nil {
		appConfig = params.AppOptions.GetAppConfig()
	}

	return ConfigOutput{
		Provider: NewProvider(appConfig),
	}, nil
}
