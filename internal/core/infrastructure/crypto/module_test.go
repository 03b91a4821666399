package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/secp256k1"
	cryptointf "github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/addrkit/pkg/types"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModuleProvidesServices(t *testing.T) {
	var (
		curve   *secp256k1.Curve
		deriver cryptointf.AddressDeriver
		hasher  cryptointf.HashManager
		keys    *key.KeyManager
		hd      *key.HDDeriver
	)

	app := fxtest.New(t,
		Module(),
		fx.Populate(&curve, &deriver, &hasher, &keys, &hd),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, curve)
	require.NotNil(t, hasher)
	require.NotNil(t, keys)
	require.NotNil(t, hd)

	_, pub, err := keys.GenerateKeyPair()
	require.NoError(t, err)

	digest, err := deriver.PublicKeyHash(pub)
	require.NoError(t, err)
	assert.Equal(t, hasher.Hash160(pub.SerializeCompressed()), digest)

	addr, err := deriver.Bech32Address(pub, false)
	require.NoError(t, err)
	assert.Equal(t, "bc1q", addr[:4])
}

func TestModuleUsesNetworkOptions(t *testing.T) {
	opts := networkconfig.New(&types.UserNetworkConfig{
		TestnetBech32HRP: types.StringPtr("tc"),
	}).GetOptions()

	var deriver cryptointf.AddressDeriver
	app := fxtest.New(t,
		fx.Supply(opts),
		Module(),
		fx.Populate(&deriver),
	)
	app.RequireStart()
	defer app.RequireStop()

	curve := secp256k1.NewCurve()
	priv, err := curve.GenerateKey()
	require.NoError(t, err)

	addr, err := deriver.Bech32Address(priv.PubKey(), true)
	require.NoError(t, err)
	assert.Equal(t, "tc1q", addr[:4])
}

func TestCreateCryptoServicesRejectsBadNetwork(t *testing.T) {
	_, err := CreateCryptoServices(ServiceInput{
		NetworkOptions: &networkconfig.NetworkOptions{MainnetBech32HRP: "bc", TestnetBech32HRP: "bc"},
	})
	assert.Error(t, err)
}
