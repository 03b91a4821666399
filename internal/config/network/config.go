// Package network 提供地址推导所需的网络参数配置
package network

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	configtypes "github.com/weisyn/addrkit/pkg/types"
)

// NetworkOptions 网络参数配置选项
//
// Base58Check 版本字节与 Bech32 HRP 都由配置给出，推导代码中不硬编码任何网络。
type NetworkOptions struct {
	MainnetP2PKHVersion byte   `json:"mainnet_p2pkh_version"`
	TestnetP2PKHVersion byte   `json:"testnet_p2pkh_version"`
	MainnetBech32HRP    string `json:"mainnet_bech32_hrp"`
	TestnetBech32HRP    string `json:"testnet_bech32_hrp"`
}

// Config 网络配置实现
type Config struct {
	options *NetworkOptions
}

// New 创建网络配置实现
func New(userConfig interface{}) *Config {
	defaultOptions := createDefaultNetworkOptions()

	if userConfig != nil {
		applyUserNetworkConfig(defaultOptions, userConfig)
	}

	return &Config{
		options: defaultOptions,
	}
}

// createDefaultNetworkOptions 默认值取自 chaincfg 的主网与 testnet3 参数
func createDefaultNetworkOptions() *NetworkOptions {
	return &NetworkOptions{
		MainnetP2PKHVersion: chaincfg.MainNetParams.PubKeyHashAddrID,
		TestnetP2PKHVersion: chaincfg.TestNet3Params.PubKeyHashAddrID,
		MainnetBech32HRP:    chaincfg.MainNetParams.Bech32HRPSegwit,
		TestnetBech32HRP:    chaincfg.TestNet3Params.Bech32HRPSegwit,
	}
}

func applyUserNetworkConfig(options *NetworkOptions, userConfig interface{}) {
	netConfig, ok := userConfig.(*configtypes.UserNetworkConfig)
	if !ok || netConfig == nil {
		return
	}
	if netConfig.MainnetP2PKHVersion != nil {
		options.MainnetP2PKHVersion = *netConfig.MainnetP2PKHVersion
	}
	if netConfig.TestnetP2PKHVersion != nil {
		options.TestnetP2PKHVersion = *netConfig.TestnetP2PKHVersion
	}
	if netConfig.MainnetBech32HRP != nil {
		options.MainnetBech32HRP = *netConfig.MainnetBech32HRP
	}
	if netConfig.TestnetBech32HRP != nil {
		options.TestnetBech32HRP = *netConfig.TestnetBech32HRP
	}
}

// GetOptions 获取完整的网络配置选项
func (c *Config) GetOptions() *NetworkOptions {
	return c.options
}

// Selector 返回指定网络的推导参数
func (o *NetworkOptions) Selector(testnet bool) configtypes.NetworkSelector {
	if testnet {
		return configtypes.NetworkSelector{
			Name:         NameTestnet,
			P2PKHVersion: o.TestnetP2PKHVersion,
			Bech32HRP:    o.TestnetBech32HRP,
		}
	}
	return configtypes.NetworkSelector{
		Name:         NameMainnet,
		P2PKHVersion: o.MainnetP2PKHVersion,
		Bech32HRP:    o.MainnetBech32HRP,
	}
}

// Bech32HRP 按网络选择 HRP
func (o *NetworkOptions) Bech32HRP(testnet bool) string {
	if testnet {
		return o.TestnetBech32HRP
	}
	return o.MainnetBech32HRP
}

// Validate 检查配置是否可用
func (o *NetworkOptions) Validate() error {
	if o.MainnetBech32HRP == "" || o.TestnetBech32HRP == "" {
		return fmt.Errorf("bech32 hrp must not be empty")
	}
	if o.MainnetBech32HRP == o.TestnetBech32HRP {
		return fmt.Errorf("mainnet and testnet bech32 hrp are identical: %q", o.MainnetBech32HRP)
	}
	return nil
}
