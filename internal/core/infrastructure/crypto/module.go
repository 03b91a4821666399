// Package crypto 提供加密相关功能
package crypto

import (
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/secp256k1"
	"github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	log "github.com/weisyn/addrkit/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CryptoParams 定义加密模块的依赖参数
type CryptoParams struct {
	fx.In

	NetworkOptions *networkconfig.NetworkOptions `optional:"true"`
	Logger         log.Logger                    `optional:"true"`
}

// CryptoOutput 定义加密模块的输出结构
type CryptoOutput struct {
	fx.Out

	Curve          *secp256k1.Curve
	HashManager    crypto.HashManager
	AddressDeriver crypto.AddressDeriver
	KeyManager     *key.KeyManager
	HDDeriver      *key.HDDeriver
}

// Module 返回加密模块
func Module() fx.Option {
	return fx.Module("crypto",
		fx.Provide(ProvideCryptoServices),
	)
}

// ProvideCryptoServices 提供加密服务
func ProvideCryptoServices(params CryptoParams) (CryptoOutput, error) {
	out, err := CreateCryptoServices(ServiceInput{
		NetworkOptions: params.NetworkOptions,
		Logger:         params.Logger,
	})
	if err != nil {
		return CryptoOutput{}, err
	}

	return CryptoOutput{
		Curve:          out.Curve,
		HashManager:    out.HashManager,
		AddressDeriver: out.AddressDeriver,
		KeyManager:     out.KeyManager,
		HDDeriver:      out.HDDeriver,
	}, nil
}

// noopLogger 是一个无操作的Logger实现，用于可选Logger为nil时的回退
type noopLogger struct{}

func (l *noopLogger) Debug(msg string)                          {}
func (l *noopLogger) Debugf(format string, args ...interface{}) {}
func (l *noopLogger) Info(msg string)                           {}
func (l *noopLogger) Infof(format string, args ...interface{})  {}
func (l *noopLogger) Warn(msg string)                           {}
func (l *noopLogger) Warnf(format string, args ...interface{})  {}
func (l *noopLogger) Error(msg string)                          {}
func (l *noopLogger) Errorf(format string, args ...interface{}) {}
func (l *noopLogger) Fatal(msg string)                          {}
func (l *noopLogger) Fatalf(format string, args ...interface{}) {}
func (l *noopLogger) With(keyvals ...interface{}) log.Logger    { return l }
func (l *noopLogger) Sync() error                               { return nil }
func (l *noopLogger) GetZapLogger() *zap.Logger                 { return nil }
