// Package hash 提供地址推导使用的摘要函数
//
// 两个核心函数都是无状态纯函数：
//   - Hash160(x) = RIPEMD160(SHA256(x))，20字节，只作用于序列化后的公钥
//   - SHA256d(x) = SHA256(SHA256(x))，32字节，用于 Base58Check 校验和
//
// 每次调用都使用局部哈希实例，不存在进程级共享的哈希状态，可被任意并发调用。
package hash

import (
	"crypto/sha256"

	cryptointf "github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/addrkit/pkg/types"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Hash160 按定义使用 RIPEMD-160
)

// SHA256 计算 SHA-256 摘要
func SHA256(data []byte) types.SHA256Digest {
	return sha256.Sum256(data)
}

// SHA256d 计算双重 SHA-256：两次独立的顺序调用，第二次的输入是第一次的输出副本
func SHA256d(data []byte) types.SHA256Digest {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// RIPEMD160 计算 RIPEMD-160 摘要
func RIPEMD160(data []byte) types.Hash160Digest {
	var out types.Hash160Digest
	hasher := ripemd160.New()
	hasher.Write(data)
	hasher.Sum(out[:0])
	return out
}

// Hash160 计算 RIPEMD160(SHA256(data))
func Hash160(data []byte) types.Hash160Digest {
	sha := sha256.Sum256(data)
	return RIPEMD160(sha[:])
}

// HashService 以接口形式暴露摘要函数，供依赖注入使用
type HashService struct{}

var _ cryptointf.HashManager = (*HashService)(nil)

// NewHashService 创建哈希服务
func NewHashService() *HashService {
	return &HashService{}
}

// SHA256 计算 SHA-256 摘要
func (s *HashService) SHA256(data []byte) types.SHA256Digest { return SHA256(data) }

// SHA256d 计算双重 SHA-256 摘要
func (s *HashService) SHA256d(data []byte) types.SHA256Digest { return SHA256d(data) }

// Hash160 计算 RIPEMD160(SHA256(data))
func (s *HashService) Hash160(data []byte) types.Hash160Digest { return Hash160(data) }
