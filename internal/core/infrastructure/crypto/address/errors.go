package address

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall 调用方提供的输出缓冲区放不下编码结果
	ErrBufferTooSmall = errors.New("output buffer too small")
	// ErrInvalidPublicKeyLength 序列化后的公钥不是33字节
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	// ErrInvalidPublicKey 公钥为空或前缀不是 0x02/0x03
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidHRP Bech32 人类可读前缀不合法
	ErrInvalidHRP = errors.New("invalid bech32 human-readable prefix")
	// ErrUnsupportedFormat 不支持的地址格式
	ErrUnsupportedFormat = errors.New("unsupported address format")
)

// InvalidKeyLengthError 公钥长度错误，errors.Is 可匹配 ErrInvalidPublicKeyLength
type InvalidKeyLengthError struct {
	Expected int
	Got      int
}

func (e *InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("%v: expected %d bytes, got %d", ErrInvalidPublicKeyLength, e.Expected, e.Got)
}

func (e *InvalidKeyLengthError) Unwrap() error {
	return ErrInvalidPublicKeyLength
}

func bufferTooSmall(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, need, have)
}
