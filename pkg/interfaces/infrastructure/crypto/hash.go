// Package crypto 定义地址推导相关的接口
package crypto

import "github.com/weisyn/addrkit/pkg/types"

// HashManager 地址推导使用的摘要函数集合
//
// 所有方法都是纯函数，返回定长数组，调用方无需关心缓冲区长度。
type HashManager interface {
	// SHA256 计算 SHA-256 摘要
	SHA256(data []byte) types.SHA256Digest

	// SHA256d 计算 SHA256(SHA256(data))，用于 Base58Check 校验和
	SHA256d(data []byte) types.SHA256Digest

	// Hash160 计算 RIPEMD160(SHA256(data))，用于公钥哈希
	Hash160(data []byte) types.Hash160Digest
}
