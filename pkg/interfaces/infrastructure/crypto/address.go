package crypto

import "github.com/weisyn/addrkit/pkg/types"

// PublicKeySerializer 椭圆曲线库提供的公钥句柄
//
// SerializeCompressed 必须返回 SEC1 压缩格式（33字节）。
// *btcec.PublicKey 直接满足该接口；测试中可用返回固定字节的替身。
type PublicKeySerializer interface {
	SerializeCompressed() []byte
}

// AddressDeriver 从公钥推导地址
//
// 推导流程：
//
//	公钥 → 压缩序列化(33字节) → Hash160 → { Base58Check(P2PKH) | Bech32(P2WPKH) }
//
// 所有写缓冲区的方法遵循同一约定：dst 的长度即容量，返回实际写入的字节数；
// 容量不足时在写入任何字节之前返回 ErrBufferTooSmall。
type AddressDeriver interface {
	// DeriveP2PKH 生成 Base58Check 编码的 P2PKH 地址，version 为网络版本字节
	DeriveP2PKH(dst []byte, pub PublicKeySerializer, version byte) (int, error)

	// DeriveBech32 生成 Bech32 编码的 P2WPKH 地址，HRP 由 testnet 选择
	DeriveBech32(dst []byte, pub PublicKeySerializer, testnet bool) (int, error)

	// P2PKHAddress 与 DeriveP2PKH 相同，直接返回字符串
	P2PKHAddress(pub PublicKeySerializer, version byte) (string, error)

	// Bech32Address 与 DeriveBech32 相同，直接返回字符串
	Bech32Address(pub PublicKeySerializer, testnet bool) (string, error)

	// PublicKeyHash 返回两种格式共用的 Hash160 中间值
	PublicKeyHash(pub PublicKeySerializer) (types.Hash160Digest, error)

	// Derive 按给定网络参数和格式返回地址字符串
	Derive(pub PublicKeySerializer, selector types.NetworkSelector, format types.AddressFormat) (string, error)
}
