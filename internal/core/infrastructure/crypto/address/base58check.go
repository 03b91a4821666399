package address

import (
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/hash"
	"github.com/weisyn/addrkit/pkg/types"
)

// P2PKH 版本字节
const (
	// MainNetP2PKHVersion 主网 P2PKH 版本字节
	MainNetP2PKHVersion byte = 0x00
	// TestNetP2PKHVersion 测试网 P2PKH 版本字节
	TestNetP2PKHVersion byte = 0x6F
)

// Base58Alphabet 比特币 Base58 字母表，不含 0 O I l
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MaxBase58CheckLen 25字节 AddressBytes 的 Base58 编码上界：ceil(25 × 1.38)
const MaxBase58CheckLen = 35

// NewVersionedPayload 构建 版本字节 ‖ Hash160，版本字节固定在前
func NewVersionedPayload(version byte, digest types.Hash160Digest) types.VersionedPayload {
	var payload types.VersionedPayload
	payload[0] = version
	copy(payload[1:], digest[:])
	return payload
}

// ComputeChecksum 取 SHA256d(payload) 的前4字节
func ComputeChecksum(payload types.VersionedPayload) types.Checksum {
	var checksum types.Checksum
	sum := hash.SHA256d(payload[:])
	copy(checksum[:], sum[:types.ChecksumSize])
	return checksum
}

// NewAddressBytes 构建 Base58 编码前的25字节：VersionedPayload ‖ Checksum
func NewAddressBytes(version byte, digest types.Hash160Digest) types.AddressBytes {
	payload := NewVersionedPayload(version, digest)
	checksum := ComputeChecksum(payload)

	var raw types.AddressBytes
	copy(raw[:], payload[:])
	copy(raw[types.VersionedPayloadSize:], checksum[:])
	return raw
}

// Base58CheckString 返回 Base58Check 编码的地址字符串
func Base58CheckString(version byte, digest types.Hash160Digest) string {
	raw := NewAddressBytes(version, digest)
	return base58.Encode(raw[:])
}

// EncodeBase58Check 把 Base58Check 地址写入 dst，返回写入的字节数
//
// dst 的长度即可用容量；容量不足时返回 ErrBufferTooSmall，dst 保持不变。
// 按 MaxBase58CheckLen 分配的缓冲区总是足够。
func EncodeBase58Check(dst []byte, version byte, digest types.Hash160Digest) (int, error) {
	encoded := Base58CheckString(version, digest)
	if len(dst) < len(encoded) {
		return 0, bufferTooSmall(len(encoded), len(dst))
	}
	return copy(dst, encoded), nil
}

// P2PKHLeadChars 返回该版本字节下 P2PKH 地址可能出现的首字符
//
// 首字符由版本字节决定，取全0与全0xff摘要两端编码结果的首字符区间。
func P2PKHLeadChars(version byte) string {
	var lo, hi types.Hash160Digest
	for i := range hi {
		hi[i] = 0xff
	}

	first := strings.IndexByte(Base58Alphabet, Base58CheckString(version, lo)[0])
	last := strings.IndexByte(Base58Alphabet, Base58CheckString(version, hi)[0])
	if first <= last {
		return Base58Alphabet[first : last+1]
	}
	// 两端编码长度不同时区间会跨过字母表末尾
	return Base58Alphabet[:last+1] + Base58Alphabet[first:]
}
