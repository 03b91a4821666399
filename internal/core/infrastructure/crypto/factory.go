// Package crypto 提供加密服务工厂实现
package crypto

import (
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/hash"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/secp256k1"
	"github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	log "github.com/weisyn/addrkit/pkg/interfaces/infrastructure/log"
)

// ServiceInput 定义加密服务工厂的输入参数
type ServiceInput struct {
	NetworkOptions *networkconfig.NetworkOptions `optional:"true"`
	Logger         log.Logger                    `optional:"true"`
}

// ServiceOutput 定义加密服务工厂的输出结果
type ServiceOutput struct {
	Curve          *secp256k1.Curve
	HashManager    crypto.HashManager
	AddressDeriver crypto.AddressDeriver
	KeyManager     *key.KeyManager
	HDDeriver      *key.HDDeriver
}

// CreateCryptoServices 创建加密服务
//
// Curve 只在这里创建一次，之后以只读方式被各服务共享。
func CreateCryptoServices(input ServiceInput) (ServiceOutput, error) {
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "crypto")
	} else {
		logger = &noopLogger{}
	}

	netOpts := input.NetworkOptions
	if netOpts == nil {
		netOpts = networkconfig.New(nil).GetOptions()
	}
	if err := netOpts.Validate(); err != nil {
		logger.Errorf("网络参数无效: %v", err)
		return ServiceOutput{}, err
	}

	curve := secp256k1.NewCurve()
	deriver := address.NewDeriver(netOpts)

	logger.Debugf("地址服务已初始化: mainnet_hrp=%s testnet_hrp=%s mainnet_version=0x%02x testnet_version=0x%02x",
		netOpts.MainnetBech32HRP, netOpts.TestnetBech32HRP, netOpts.MainnetP2PKHVersion, netOpts.TestnetP2PKHVersion)

	return ServiceOutput{
		Curve:          curve,
		HashManager:    hash.NewHashService(),
		AddressDeriver: deriver,
		KeyManager:     key.NewKeyManager(curve),
		HDDeriver:      key.NewHDDeriver(),
	}, nil
}
