package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weisyn/addrkit/internal/config"
)

func TestPresetsParse(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			data, err := GetPreset(name)
			require.NoError(t, err)

			cfg, err := config.ParseAppConfig(data)
			require.NoError(t, err)
			require.NoError(t, config.NewProvider(cfg).GetNetwork().Validate())
		})
	}
}

func TestPresetValues(t *testing.T) {
	data, err := GetPreset("tc")
	require.NoError(t, err)
	cfg, err := config.ParseAppConfig(data)
	require.NoError(t, err)
	assert.Equal(t, "tc", config.NewProvider(cfg).GetNetwork().TestnetBech32HRP)

	_, err = GetPreset("missing")
	assert.Error(t, err)
}
