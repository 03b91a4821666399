package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/weisyn/addrkit/configs"
	"github.com/weisyn/addrkit/internal/config"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/secp256k1"
	corelog "github.com/weisyn/addrkit/internal/core/infrastructure/log"
	"github.com/weisyn/addrkit/internal/core/vanity"
	cfgintf "github.com/weisyn/addrkit/pkg/interfaces/config"
	cryptointf "github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/addrkit/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/addrkit/pkg/types"
	"go.uber.org/fx"
)

// services 命令执行需要的服务，由 fx 组装
type services struct {
	network  *networkconfig.NetworkOptions
	curve    *secp256k1.Curve
	deriver  cryptointf.AddressDeriver
	keys     *key.KeyManager
	hd       *key.HDDeriver
	searcher *vanity.Searcher
	logger   log.Logger
	registry *prometheus.Registry

	app *fx.App
}

// loadServices 加载配置并启动依赖注入容器
func (c *cli) loadServices(ctx context.Context) (*services, error) {
	appConfig, err := c.loadAppConfig()
	if err != nil {
		return nil, err
	}
	applyLogFlags(appConfig, c.flags)

	s := &services{registry: prometheus.NewRegistry()}
	s.app = fx.New(
		fx.NopLogger,
		fx.Provide(
			func() cfgintf.AppOptions { return config.NewAppOptions(appConfig) },
			func() prometheus.Registerer { return s.registry },
		),
		config.Module(),
		corelog.Module(),
		crypto.Module(),
		vanity.Module(),
		fx.Populate(&s.network, &s.curve, &s.deriver, &s.keys, &s.hd, &s.searcher, &s.logger),
	)
	if err := s.app.Err(); err != nil {
		return nil, fmt.Errorf("初始化服务失败: %w", err)
	}
	if err := s.app.Start(ctx); err != nil {
		return nil, fmt.Errorf("启动服务失败: %w", err)
	}

	s.logger.Debugf("服务已启动: config=%q preset=%q", c.flags.ConfigFile, c.flags.Preset)
	return s, nil
}

// loadAppConfig --config 与 --preset 只能二选一，都未给出时使用默认值
func (c *cli) loadAppConfig() (*types.AppConfig, error) {
	if c.flags.Preset == "" {
		return config.LoadAppConfig(c.flags.ConfigFile)
	}
	if c.flags.ConfigFile != "" {
		return nil, fmt.Errorf("--config 与 --preset 不能同时使用")
	}
	data, err := configs.GetPreset(c.flags.Preset)
	if err != nil {
		return nil, err
	}
	return config.ParseAppConfig(data)
}

// logMetrics 以 debug 级别输出本次运行采集到的计数器
func (s *services) logMetrics() {
	families, err := s.registry.Gather()
	if err != nil {
		s.logger.Warnf("采集指标失败: %v", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			s.logger.Debugf("指标 %s{%s} = %.0f", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
}

// Close 停止容器并刷新日志
func (s *services) Close() {
	_ = s.app.Stop(context.Background())
	_ = s.logger.Sync()
}

// applyLogFlags 命令行标志优先于配置文件中的日志级别
func applyLogFlags(appConfig *types.AppConfig, flags GlobalFlags) {
	var level string
	switch {
	case flags.Verbose:
		level = string(types.DebugLevel)
	case flags.Silent:
		level = string(types.ErrorLevel)
	default:
		return
	}
	if appConfig.Log == nil {
		appConfig.Log = &types.UserLogConfig{}
	}
	appConfig.Log.Level = types.StringPtr(level)
}
