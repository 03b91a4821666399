package secp256k1

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatorCompressed = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestPublicKeyFromPrivate(t *testing.T) {
	curve := NewCurve()

	t.Run("私钥为1得到生成元", func(t *testing.T) {
		priv := make([]byte, PrivateKeySize)
		priv[31] = 1
		pub, err := curve.PublicKeyFromPrivate(priv)
		require.NoError(t, err)
		assert.Equal(t, generatorCompressed, hex.EncodeToString(curve.SerializeCompressed(pub)))
	})

	t.Run("长度错误", func(t *testing.T) {
		_, err := curve.PublicKeyFromPrivate(make([]byte, 31))
		var lenErr *ErrInvalidKeyLength
		require.True(t, errors.As(err, &lenErr))
		assert.Equal(t, PrivateKeySize, lenErr.Expected)
		assert.Equal(t, 31, lenErr.Got)
	})

	t.Run("零私钥", func(t *testing.T) {
		_, err := curve.PublicKeyFromPrivate(make([]byte, PrivateKeySize))
		assert.ErrorIs(t, err, ErrPrivateKeyOutOfRange)
	})

	t.Run("等于曲线阶", func(t *testing.T) {
		n, err := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
		require.NoError(t, err)
		_, err = curve.PublicKeyFromPrivate(n)
		assert.ErrorIs(t, err, ErrPrivateKeyOutOfRange)
	})
}

func TestParsePublicKey(t *testing.T) {
	curve := NewCurve()

	t.Run("压缩公钥", func(t *testing.T) {
		raw, err := hex.DecodeString(generatorCompressed)
		require.NoError(t, err)
		pub, err := curve.ParsePublicKey(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, pub.SerializeCompressed())
	})

	t.Run("拒绝未压缩公钥", func(t *testing.T) {
		raw := make([]byte, 65)
		raw[0] = 0x04
		_, err := curve.ParsePublicKey(raw)
		var lenErr *ErrInvalidKeyLength
		require.True(t, errors.As(err, &lenErr))
		assert.Equal(t, CompressedPublicKeySize, lenErr.Expected)
	})

	t.Run("无效前缀", func(t *testing.T) {
		raw, err := hex.DecodeString(generatorCompressed)
		require.NoError(t, err)
		raw[0] = 0x05
		_, err = curve.ParsePublicKey(raw)
		var parseErr *ErrParsePublicKeyFailed
		require.True(t, errors.As(err, &parseErr))
		assert.NotNil(t, errors.Unwrap(err))
	})
}

func TestGenerateKey(t *testing.T) {
	curve := NewCurve()
	seen := make(map[string]struct{})

	for i := 0; i < 8; i++ {
		priv, err := curve.GenerateKey()
		require.NoError(t, err)

		compressed := curve.SerializeCompressed(priv.PubKey())
		require.Len(t, compressed, CompressedPublicKeySize)
		assert.Contains(t, []byte{0x02, 0x03}, compressed[0])

		pub, err := curve.PublicKeyFromPrivate(priv.Serialize())
		require.NoError(t, err)
		assert.True(t, pub.IsEqual(priv.PubKey()))

		seen[hex.EncodeToString(compressed)] = struct{}{}
	}
	assert.Len(t, seen, 8)
}
