package log

import (
	"fmt"

	logconfig "github.com/weisyn/addrkit/internal/config/log"
	logInterface "github.com/weisyn/addrkit/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ModuleParams 定义日志模块的依赖参数
type ModuleParams struct {
	fx.In

	Options *logconfig.LogOptions
}

// ModuleOutput 定义日志模块的输出结构
type ModuleOutput struct {
	fx.Out

	Logger    logInterface.Logger // 日志记录器接口
	ZapLogger *zap.Logger         // zap.Logger 具体类型
}

// Module 返回日志模块
func Module() fx.Option {
	return fx.Module("log",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 根据配置初始化日志记录器，并替换 init() 时创建的全局日志器
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	cfg := logconfig.NewFromOptions(params.Options)
	logger, err := New(cfg)
	if err != nil {
		return ModuleOutput{}, fmt.Errorf("根据用户配置创建日志记录器失败: %w", err)
	}

	SetLogger(logger)
	logger.Debugf("日志已初始化: level=%s", cfg.GetLevel())

	return ModuleOutput{
		Logger:    logger,
		ZapLogger: logger.GetZapLogger(),
	}, nil
}

// NewModuleLogger 创建带 module 字段的 logger
func NewModuleLogger(baseLogger logInterface.Logger, module string) logInterface.Logger {
	if baseLogger == nil {
		return nil
	}
	return baseLogger.With("module", module)
}
