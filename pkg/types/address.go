package types

import "encoding/hex"

// 地址推导流水线中的定长字节长度
const (
	// PublicKeySize 压缩公钥长度（0x02/0x03 前缀 + 32字节X坐标）
	PublicKeySize = 33
	// Hash160Size RIPEMD160(SHA256(x)) 摘要长度
	Hash160Size = 20
	// SHA256Size SHA-256 摘要长度
	SHA256Size = 32
	// VersionedPayloadSize 版本字节 + Hash160
	VersionedPayloadSize = 1 + Hash160Size
	// ChecksumSize Base58Check 校验和长度
	ChecksumSize = 4
	// AddressBytesSize 版本字节 + Hash160 + 校验和
	AddressBytesSize = VersionedPayloadSize + ChecksumSize
)

// PublicKeyBytes 压缩格式的 secp256k1 公钥（SEC1）
type PublicKeyBytes [PublicKeySize]byte

// Hash160Digest 公钥哈希：RIPEMD160(SHA256(PublicKeyBytes))
type Hash160Digest [Hash160Size]byte

// String 返回十六进制表示
func (d Hash160Digest) String() string {
	return hex.EncodeToString(d[:])
}

// SHA256Digest SHA-256 / 双SHA-256 摘要
type SHA256Digest [SHA256Size]byte

// VersionedPayload 版本字节 ‖ Hash160Digest
type VersionedPayload [VersionedPayloadSize]byte

// Checksum SHA256d(VersionedPayload) 的前4字节
type Checksum [ChecksumSize]byte

// AddressBytes VersionedPayload ‖ Checksum，Base58 编码的直接输入
type AddressBytes [AddressBytesSize]byte

// AddressFormat 地址格式
type AddressFormat string

const (
	// AddressFormatP2PKH 传统 Base58Check 地址
	AddressFormatP2PKH AddressFormat = "p2pkh"
	// AddressFormatBech32 原生隔离见证 P2WPKH 地址
	AddressFormatBech32 AddressFormat = "bech32"
)

// Valid 判断格式是否受支持
func (f AddressFormat) Valid() bool {
	return f == AddressFormatP2PKH || f == AddressFormatBech32
}

// NetworkSelector 一次推导所用的网络参数
//
// Base58Check 使用 P2PKHVersion，Bech32 使用 Bech32HRP 与 WitnessVersion。
// 两组参数互不校验，组合错误属于调用方错误。
type NetworkSelector struct {
	Name           string `json:"name"`
	P2PKHVersion   byte   `json:"p2pkh_version"`
	Bech32HRP      string `json:"bech32_hrp"`
	WitnessVersion byte   `json:"witness_version"`
}
