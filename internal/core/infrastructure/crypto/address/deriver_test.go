package address

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	"github.com/weisyn/addrkit/pkg/types"
)

// fixedKey 返回固定序列化结果的公钥替身
type fixedKey []byte

func (k fixedKey) SerializeCompressed() []byte { return k }

func keyFromHex(t *testing.T, s string) fixedKey {
	t.Helper()
	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	return fixedKey(raw)
}

const (
	generatorKey = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	sampleKey    = "02466d7fcae563e5cb09a0d1870bb580344804617879a14949cf22285f1bae3f27"
)

func TestDeriverKnownVectors(t *testing.T) {
	d := NewDeriver(nil)

	tests := []struct {
		name    string
		key     string
		p2pkh   string
		bech32  string
		testnet string
	}{
		{
			name:    "生成元",
			key:     generatorKey,
			p2pkh:   "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
			bech32:  "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			testnet: "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx",
		},
		{
			name:  "压缩公钥",
			key:   "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
			p2pkh: "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := keyFromHex(t, tt.key)

			var buf [MaxBase58CheckLen]byte
			n, err := d.DeriveP2PKH(buf[:], pub, MainNetP2PKHVersion)
			require.NoError(t, err)
			assert.Equal(t, tt.p2pkh, string(buf[:n]))

			if tt.bech32 != "" {
				got, err := d.Bech32Address(pub, false)
				require.NoError(t, err)
				assert.Equal(t, tt.bech32, got)
			}
			if tt.testnet != "" {
				got, err := d.Bech32Address(pub, true)
				require.NoError(t, err)
				assert.Equal(t, tt.testnet, got)
			}
		})
	}
}

func TestDeriverMatchesBtcutil(t *testing.T) {
	d := NewDeriver(nil)

	check := func(t *testing.T, pub fixedKey) {
		t.Helper()
		h := btcutil.Hash160(pub)

		for _, params := range []*chaincfg.Params{&chaincfg.MainNetParams, &chaincfg.TestNet3Params} {
			testnet := params == &chaincfg.TestNet3Params

			pkh, err := btcutil.NewAddressPubKeyHash(h, params)
			require.NoError(t, err)
			got, err := d.P2PKHAddress(pub, params.PubKeyHashAddrID)
			require.NoError(t, err)
			assert.Equal(t, pkh.EncodeAddress(), got)

			wpkh, err := btcutil.NewAddressWitnessPubKeyHash(h, params)
			require.NoError(t, err)
			got, err = d.Bech32Address(pub, testnet)
			require.NoError(t, err)
			assert.Equal(t, wpkh.EncodeAddress(), got)
		}
	}

	t.Run("固定公钥", func(t *testing.T) {
		check(t, keyFromHex(t, sampleKey))
	})

	t.Run("随机公钥", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			priv, err := btcec.NewPrivateKey()
			require.NoError(t, err)
			check(t, fixedKey(priv.PubKey().SerializeCompressed()))
		}
	})
}

func TestDeriverAcceptsBtcecKey(t *testing.T) {
	d := NewDeriver(nil)
	raw, err := hex.DecodeString(generatorKey)
	require.NoError(t, err)
	pub, err := btcec.ParsePubKey(raw)
	require.NoError(t, err)

	got, err := d.P2PKHAddress(pub, MainNetP2PKHVersion)
	require.NoError(t, err)
	assert.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", got)
}

func TestDeriverInvalidKeys(t *testing.T) {
	d := NewDeriver(nil)
	good := keyFromHex(t, sampleKey)

	t.Run("32字节", func(t *testing.T) {
		buf := bytes.Repeat([]byte{0xEE}, MaxBase58CheckLen)
		n, err := d.DeriveP2PKH(buf, good[:32], MainNetP2PKHVersion)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPublicKeyLength))
		assert.Zero(t, n)
		assert.Equal(t, bytes.Repeat([]byte{0xEE}, MaxBase58CheckLen), buf)

		var lenErr *InvalidKeyLengthError
		require.True(t, errors.As(err, &lenErr))
		assert.Equal(t, 33, lenErr.Expected)
		assert.Equal(t, 32, lenErr.Got)
	})

	t.Run("65字节未压缩", func(t *testing.T) {
		uncompressed := make(fixedKey, 65)
		uncompressed[0] = 0x04
		_, err := d.DeriveBech32(make([]byte, 64), uncompressed, false)
		assert.ErrorIs(t, err, ErrInvalidPublicKeyLength)
	})

	t.Run("错误前缀", func(t *testing.T) {
		bad := append(fixedKey{0x04}, good[1:]...)
		_, err := d.PublicKeyHash(bad)
		assert.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("nil公钥", func(t *testing.T) {
		_, err := d.PublicKeyHash(nil)
		assert.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("带类型的nil公钥", func(t *testing.T) {
		var pub *btcec.PublicKey
		assert.NotPanics(t, func() {
			_, err := d.PublicKeyHash(pub)
			assert.ErrorIs(t, err, ErrInvalidPublicKey)
		})

		dst := make([]byte, MaxBase58CheckLen)
		assert.NotPanics(t, func() {
			_, err := d.DeriveP2PKH(dst, pub, MainNetP2PKHVersion)
			assert.ErrorIs(t, err, ErrInvalidPublicKey)
		})
	})
}

func TestDeriverSharedHash160(t *testing.T) {
	d := NewDeriver(nil)
	pub := keyFromHex(t, sampleKey)

	digest, err := d.PublicKeyHash(pub)
	require.NoError(t, err)

	p2pkh, err := d.P2PKHAddress(pub, MainNetP2PKHVersion)
	require.NoError(t, err)
	segwit, err := d.Bech32Address(pub, false)
	require.NoError(t, err)

	decoded, err := btcutil.DecodeAddress(p2pkh, &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, digest[:], decoded.ScriptAddress())

	decoded, err = btcutil.DecodeAddress(segwit, &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, digest[:], decoded.ScriptAddress())
}

func TestDeriverDeterministicAndConcurrent(t *testing.T) {
	d := NewDeriver(nil)
	pub := keyFromHex(t, sampleKey)

	want, err := d.Bech32Address(pub, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i], _ = d.Bech32Address(pub, false)
			} else {
				results[i], _ = d.Derive(pub, types.NetworkSelector{Bech32HRP: "bc"}, types.AddressFormatBech32)
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestDeriverCustomTestnetHRP(t *testing.T) {
	opts := networkconfig.New(&types.UserNetworkConfig{
		TestnetBech32HRP: types.StringPtr("tc"),
	}).GetOptions()
	d := NewDeriver(opts)
	pub := keyFromHex(t, generatorKey)

	assert.Equal(t, "tc", d.HRP(true))
	assert.Equal(t, "bc", d.HRP(false))

	got, err := d.Bech32Address(pub, true)
	require.NoError(t, err)
	digest := digestFromHex(t, "751e76e8199196d454941c45d1b3a323f1433bd6")
	want, err := SegwitString("tc", digest)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, got, SegwitAddressLen("tc"))
}

func TestDeriverDerive(t *testing.T) {
	d := NewDeriver(nil)
	pub := keyFromHex(t, generatorKey)
	opts := networkconfig.New(nil).GetOptions()

	t.Run("按网络参数选择", func(t *testing.T) {
		got, err := d.Derive(pub, opts.Selector(false), types.AddressFormatP2PKH)
		require.NoError(t, err)
		assert.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", got)

		got, err = d.Derive(pub, opts.Selector(true), types.AddressFormatBech32)
		require.NoError(t, err)
		assert.Equal(t, "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", got)
	})

	t.Run("不支持的见证版本", func(t *testing.T) {
		sel := opts.Selector(false)
		sel.WitnessVersion = 1
		_, err := d.Derive(pub, sel, types.AddressFormatBech32)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("不支持的格式", func(t *testing.T) {
		_, err := d.Derive(pub, opts.Selector(false), types.AddressFormat("p2sh"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
