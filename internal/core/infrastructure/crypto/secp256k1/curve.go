// Package secp256k1 提供 secp256k1 椭圆曲线封装
//
// 封装 btcd/btcec 与 dcrd/secp256k1，对地址推导只暴露公钥句柄和压缩序列化。
// Curve 在启动时创建一次，之后只读，可被多个 goroutine 共享。
package secp256k1

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PrivateKeySize 私钥长度
	PrivateKeySize = 32
	// CompressedPublicKeySize 压缩公钥长度
	CompressedPublicKeySize = btcec.PubKeyBytesLenCompressed
)

// Curve 封装 secp256k1 椭圆曲线
type Curve struct{}

// NewCurve 创建新的 secp256k1 曲线实例
func NewCurve() *Curve {
	return &Curve{}
}

// GenerateKey 使用系统随机源生成私钥
func (c *Curve) GenerateKey() (*btcec.PrivateKey, error) {
	key, err := dcrsecp.GeneratePrivateKey()
	if err != nil {
		return nil, &ErrKeyGenerationFailed{Err: err}
	}
	return key, nil
}

// PublicKeyFromPrivate 从32字节私钥导出公钥
func (c *Curve) PublicKeyFromPrivate(privateKey []byte) (*btcec.PublicKey, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, &ErrInvalidKeyLength{Expected: PrivateKeySize, Got: len(privateKey)}
	}

	var scalar dcrsecp.ModNScalar
	if overflow := scalar.SetByteSlice(privateKey); overflow || scalar.IsZero() {
		return nil, ErrPrivateKeyOutOfRange
	}

	_, pub := btcec.PrivKeyFromBytes(privateKey)
	return pub, nil
}

// ParsePublicKey 解析33字节压缩公钥
//
// 未压缩公钥不在支持范围内，直接拒绝。
func (c *Curve) ParsePublicKey(serialized []byte) (*btcec.PublicKey, error) {
	if len(serialized) != CompressedPublicKeySize {
		return nil, &ErrInvalidKeyLength{Expected: CompressedPublicKeySize, Got: len(serialized)}
	}

	pub, err := btcec.ParsePubKey(serialized)
	if err != nil {
		return nil, &ErrParsePublicKeyFailed{Err: err}
	}
	return pub, nil
}

// SerializeCompressed 序列化为33字节压缩格式（0x02/0x03 + X坐标）
func (c *Curve) SerializeCompressed(pub *btcec.PublicKey) []byte {
	return pub.SerializeCompressed()
}

// ErrPrivateKeyOutOfRange 私钥为0或不小于曲线阶
var ErrPrivateKeyOutOfRange = errors.New("私钥超出曲线阶范围")

// ErrInvalidKeyLength 密钥长度无效
type ErrInvalidKeyLength struct {
	Expected int
	Got      int
}

func (e *ErrInvalidKeyLength) Error() string {
	return fmt.Sprintf("无效的密钥长度: 期望 %d 字节，实际 %d 字节", e.Expected, e.Got)
}

// ErrParsePublicKeyFailed 公钥解析失败
type ErrParsePublicKeyFailed struct {
	Err error
}

func (e *ErrParsePublicKeyFailed) Error() string {
	return fmt.Sprintf("公钥解析失败: %v", e.Err)
}

func (e *ErrParsePublicKeyFailed) Unwrap() error {
	return e.Err
}

// ErrKeyGenerationFailed 私钥生成失败
type ErrKeyGenerationFailed struct {
	Err error
}

func (e *ErrKeyGenerationFailed) Error() string {
	return fmt.Sprintf("私钥生成失败: %v", e.Err)
}

func (e *ErrKeyGenerationFailed) Unwrap() error {
	return e.Err
}
