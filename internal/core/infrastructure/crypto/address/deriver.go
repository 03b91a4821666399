// Package address 实现从 secp256k1 公钥到地址字符串的推导
//
// 支持两种格式：
//   - P2PKH：Base58Check(版本字节 ‖ Hash160 ‖ 校验和)
//   - P2WPKH：Bech32(hrp, 见证版本0 ‖ Hash160 按5位重组)
//
// 推导过程是纯函数，没有跨调用的可变状态，同一个 Deriver 可被任意并发使用。
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/hash"
	cryptointf "github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/addrkit/pkg/types"
)

// Deriver 地址推导服务
type Deriver struct {
	mainnetHRP string
	testnetHRP string
}

var _ cryptointf.AddressDeriver = (*Deriver)(nil)

// NewDeriver 创建地址推导服务
//
// opts 为 nil 时使用 chaincfg 的默认网络参数。测试网 HRP 原样使用配置值，
// 自定义网络（例如 "tc"）由调用方负责保证正确。
func NewDeriver(opts *networkconfig.NetworkOptions) *Deriver {
	if opts == nil {
		opts = networkconfig.New(nil).GetOptions()
	}
	return &Deriver{
		mainnetHRP: opts.MainnetBech32HRP,
		testnetHRP: opts.TestnetBech32HRP,
	}
}

// SerializePublicKey 通过曲线库序列化公钥并检查长度和前缀
func SerializePublicKey(pub cryptointf.PublicKeySerializer) (types.PublicKeyBytes, error) {
	var key types.PublicKeyBytes
	switch k := pub.(type) {
	case nil:
		return key, fmt.Errorf("%w: nil public key", ErrInvalidPublicKey)
	case *btcec.PublicKey:
		if k == nil {
			return key, fmt.Errorf("%w: nil public key", ErrInvalidPublicKey)
		}
	}

	raw := pub.SerializeCompressed()
	if len(raw) != types.PublicKeySize {
		return key, &InvalidKeyLengthError{Expected: types.PublicKeySize, Got: len(raw)}
	}
	if raw[0] != 0x02 && raw[0] != 0x03 {
		return key, fmt.Errorf("%w: compressed prefix 0x%02x", ErrInvalidPublicKey, raw[0])
	}

	copy(key[:], raw)
	return key, nil
}

// PublicKeyHash 计算公钥的 Hash160，P2PKH 与 P2WPKH 共用该值
func (d *Deriver) PublicKeyHash(pub cryptointf.PublicKeySerializer) (types.Hash160Digest, error) {
	key, err := SerializePublicKey(pub)
	if err != nil {
		return types.Hash160Digest{}, err
	}
	return hash.Hash160(key[:]), nil
}

// DeriveP2PKH 生成 P2PKH 地址并写入 dst
//
// version 必须显式给出（MainNetP2PKHVersion、TestNetP2PKHVersion 或自定义值）。
func (d *Deriver) DeriveP2PKH(dst []byte, pub cryptointf.PublicKeySerializer, version byte) (int, error) {
	digest, err := d.PublicKeyHash(pub)
	if err != nil {
		return 0, err
	}
	return EncodeBase58Check(dst, version, digest)
}

// DeriveBech32 生成 P2WPKH 地址并写入 dst，HRP 按 testnet 从配置中选择
func (d *Deriver) DeriveBech32(dst []byte, pub cryptointf.PublicKeySerializer, testnet bool) (int, error) {
	digest, err := d.PublicKeyHash(pub)
	if err != nil {
		return 0, err
	}
	return EncodeP2WPKH(dst, d.HRP(testnet), digest)
}

// P2PKHAddress 返回 P2PKH 地址字符串
func (d *Deriver) P2PKHAddress(pub cryptointf.PublicKeySerializer, version byte) (string, error) {
	var buf [MaxBase58CheckLen]byte
	n, err := d.DeriveP2PKH(buf[:], pub, version)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Bech32Address 返回 P2WPKH 地址字符串
func (d *Deriver) Bech32Address(pub cryptointf.PublicKeySerializer, testnet bool) (string, error) {
	buf := make([]byte, SegwitAddressLen(d.HRP(testnet)))
	n, err := d.DeriveBech32(buf, pub, testnet)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Derive 按网络参数和格式生成地址字符串
//
// 与 DeriveBech32 不同，这里直接使用 selector 中的 HRP。
func (d *Deriver) Derive(pub cryptointf.PublicKeySerializer, selector types.NetworkSelector, format types.AddressFormat) (string, error) {
	digest, err := d.PublicKeyHash(pub)
	if err != nil {
		return "", err
	}

	switch format {
	case types.AddressFormatP2PKH:
		return Base58CheckString(selector.P2PKHVersion, digest), nil
	case types.AddressFormatBech32:
		if selector.WitnessVersion != WitnessVersionP2WPKH {
			return "", fmt.Errorf("%w: witness version %d", ErrUnsupportedFormat, selector.WitnessVersion)
		}
		return SegwitString(selector.Bech32HRP, digest)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// HRP 返回网络对应的 Bech32 人类可读前缀
func (d *Deriver) HRP(testnet bool) string {
	if testnet {
		return d.testnetHRP
	}
	return d.mainnetHRP
}
