package key

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/addrkit/pkg/types"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestDeriveAccountVectors(t *testing.T) {
	hd := NewHDDeriver()
	deriver := address.NewDeriver(nil)

	t.Run("BIP84主网", func(t *testing.T) {
		acct, err := hd.DeriveAccount(testMnemonic, "", types.AddressFormatBech32, false, 0)
		require.NoError(t, err)
		assert.Equal(t, "m/84'/0'/0'/0/0", acct.Path)
		assert.Equal(t, "0330d54fd0dd420a6e5f8d3624f5f3482cae350f79d5f0753bf5beef9c2d91af3c",
			hex.EncodeToString(acct.PublicKey.SerializeCompressed()))

		addr, err := deriver.Bech32Address(acct.PublicKey, false)
		require.NoError(t, err)
		assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", addr)
	})

	t.Run("BIP44主网", func(t *testing.T) {
		acct, err := hd.DeriveAccount(testMnemonic, "", types.AddressFormatP2PKH, false, 0)
		require.NoError(t, err)
		assert.Equal(t, "m/44'/0'/0'/0/0", acct.Path)

		addr, err := deriver.P2PKHAddress(acct.PublicKey, address.MainNetP2PKHVersion)
		require.NoError(t, err)
		assert.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", addr)
	})

	t.Run("BIP84测试网", func(t *testing.T) {
		acct, err := hd.DeriveAccount(testMnemonic, "", types.AddressFormatBech32, true, 0)
		require.NoError(t, err)
		assert.Equal(t, "m/84'/1'/0'/0/0", acct.Path)

		addr, err := deriver.Bech32Address(acct.PublicKey, true)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(addr, "tb1q"), addr)
	})

	t.Run("口令改变结果", func(t *testing.T) {
		a, err := hd.DeriveAccount(testMnemonic, "", types.AddressFormatBech32, false, 0)
		require.NoError(t, err)
		b, err := hd.DeriveAccount(testMnemonic, "TREZOR", types.AddressFormatBech32, false, 0)
		require.NoError(t, err)
		assert.False(t, a.PublicKey.IsEqual(b.PublicKey))
	})
}

func TestDeriveAccountErrors(t *testing.T) {
	hd := NewHDDeriver()

	_, err := hd.DeriveAccount("abandon abandon abandon", "", types.AddressFormatBech32, false, 0)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)

	_, err = hd.DeriveAccount(testMnemonic, "", types.AddressFormat("p2tr"), false, 0)
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = hd.DerivePath(testMnemonic, "", "m/44'/x", false)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestAccountPath(t *testing.T) {
	tests := []struct {
		format  types.AddressFormat
		testnet bool
		index   uint32
		want    string
	}{
		{types.AddressFormatP2PKH, false, 0, "m/44'/0'/0'/0/0"},
		{types.AddressFormatP2PKH, true, 3, "m/44'/1'/0'/0/3"},
		{types.AddressFormatBech32, false, 7, "m/84'/0'/0'/0/7"},
		{types.AddressFormatBech32, true, 0, "m/84'/1'/0'/0/0"},
	}

	for _, tt := range tests {
		got, err := AccountPath(tt.format, tt.testnet, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParsePath(t *testing.T) {
	t.Run("硬化与普通索引", func(t *testing.T) {
		got, err := ParsePath("m/84'/0h/0'/0/5")
		require.NoError(t, err)
		h := uint32(hdkeychain.HardenedKeyStart)
		assert.Equal(t, []uint32{84 + h, h, h, 0, 5}, got)
	})

	t.Run("主密钥", func(t *testing.T) {
		got, err := ParsePath("m")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	for _, bad := range []string{"", "44'/0'", "m/abc", "m/2147483648", "m//0"} {
		_, err := ParsePath(bad)
		assert.ErrorIs(t, err, ErrInvalidPath, bad)
	}
}

func TestNewMnemonic(t *testing.T) {
	m, err := NewMnemonic(128)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(m), 12)
	assert.True(t, bip39.IsMnemonicValid(m))

	m, err = NewMnemonic(256)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(m), 24)

	_, err = NewMnemonic(100)
	assert.Error(t, err)
}
