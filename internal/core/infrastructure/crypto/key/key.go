// Package key 提供密钥生成与HD派生
package key

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/secp256k1"
)

// 错误定义
var (
	ErrInvalidPrivateKey = errors.New("无效的私钥")
	ErrInvalidMnemonic   = errors.New("无效的助记词")
	ErrInvalidPath       = errors.New("无效的派生路径")
)

// KeyManager 提供密钥生成和公钥导出
type KeyManager struct {
	curve *secp256k1.Curve
}

// NewKeyManager 创建新的密钥管理器
func NewKeyManager(curve *secp256k1.Curve) *KeyManager {
	if curve == nil {
		curve = secp256k1.NewCurve()
	}
	return &KeyManager{curve: curve}
}

// GenerateKeyPair 生成随机密钥对
//
// 返回：
//   - []byte: 32字节私钥
//   - *btcec.PublicKey: 对应公钥
func (km *KeyManager) GenerateKeyPair() ([]byte, *btcec.PublicKey, error) {
	priv, err := km.curve.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return priv.Serialize(), priv.PubKey(), nil
}

// DerivePublicKey 从私钥导出公钥
func (km *KeyManager) DerivePublicKey(privateKey []byte) (*btcec.PublicKey, error) {
	pub, err := km.curve.PublicKeyFromPrivate(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return pub, nil
}

// Wipe 将敏感数据清零
func Wipe(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
