package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	logconfig "github.com/weisyn/addrkit/internal/config/log"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	vanityconfig "github.com/weisyn/addrkit/internal/config/vanity"
	cfgintf "github.com/weisyn/addrkit/pkg/interfaces/config"
	"github.com/weisyn/addrkit/pkg/types"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestProviderDefaults(t *testing.T) {
	p := NewProvider(nil)

	net := p.GetNetwork()
	assert.Equal(t, byte(0x00), net.MainnetP2PKHVersion)
	assert.Equal(t, byte(0x6F), net.TestnetP2PKHVersion)
	assert.Equal(t, "bc", net.MainnetBech32HRP)
	assert.Equal(t, "tb", net.TestnetBech32HRP)
	require.NoError(t, net.Validate())

	vanity := p.GetVanity()
	assert.Equal(t, types.AddressFormatP2PKH, vanity.Format)
	assert.Positive(t, vanity.Workers)
	assert.Zero(t, vanity.MaxAttempts)

	logOpts := p.GetLog()
	assert.Equal(t, "info", logOpts.Level)
	assert.True(t, logOpts.ToConsole)
}

func TestParseAppConfig(t *testing.T) {
	t.Run("部分覆盖", func(t *testing.T) {
		cfg, err := ParseAppConfig([]byte(`{
			"network": {"testnet_bech32_hrp": "tc"},
			"vanity": {"workers": 3, "format": "bech32"},
			"log": {"level": "debug"}
		}`))
		require.NoError(t, err)

		p := NewProvider(cfg)
		assert.Equal(t, "tc", p.GetNetwork().TestnetBech32HRP)
		assert.Equal(t, "bc", p.GetNetwork().MainnetBech32HRP)
		assert.Equal(t, 3, p.GetVanity().Workers)
		assert.Equal(t, types.AddressFormatBech32, p.GetVanity().Format)
		assert.Equal(t, "debug", p.GetLog().Level)
	})

	t.Run("不支持的格式", func(t *testing.T) {
		_, err := ParseAppConfig([]byte(`{"vanity": {"format": "p2tr"}}`))
		assert.Error(t, err)
	})

	t.Run("非法JSON", func(t *testing.T) {
		_, err := ParseAppConfig([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestLoadAppConfig(t *testing.T) {
	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg.Network)

	path := filepath.Join(t.TempDir(), "addrkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"network": {"mainnet_p2pkh_version": 48}}`), 0600))

	cfg, err = LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, byte(48), NewProvider(cfg).GetNetwork().MainnetP2PKHVersion)

	_, err = LoadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestModule(t *testing.T) {
	cfg := &types.AppConfig{
		Vanity: &types.UserVanityConfig{Workers: types.IntPtr(2)},
	}

	var (
		logOpts    *logconfig.LogOptions
		netOpts    *networkconfig.NetworkOptions
		vanityOpts *vanityconfig.VanityOptions
	)
	app := fxtest.New(t,
		fx.Provide(func() cfgintf.AppOptions { return NewAppOptions(cfg) }),
		Module(),
		fx.Populate(&logOpts, &netOpts, &vanityOpts),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, logOpts)
	assert.Equal(t, "bc", netOpts.MainnetBech32HRP)
	assert.Equal(t, 2, vanityOpts.Workers)
}

func TestModuleRejectsIdenticalHRP(t *testing.T) {
	cfg := &types.AppConfig{
		Network: &types.UserNetworkConfig{TestnetBech32HRP: types.StringPtr("bc")},
	}

	var netOpts *networkconfig.NetworkOptions
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() cfgintf.AppOptions { return NewAppOptions(cfg) }),
		Module(),
		fx.Populate(&netOpts),
	)
	assert.Error(t, app.Err())
}
