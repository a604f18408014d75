package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWalletConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.yml")
	data := `
wallet:
  connect: "203.0.113.7:8333"
  addresses:
    - mkHS9ne12qx9pS9VojpwU5xtRd4T7X7ZUt
  genesis: 42
  store_path: /tmp/headers.db
  debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadWalletConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7:8333", cfg.Connect)
	assert.Equal(t, []string{"mkHS9ne12qx9pS9VojpwU5xtRd4T7X7ZUt"}, cfg.Addresses)
	assert.Equal(t, uint64(42), cfg.Genesis)
	assert.Equal(t, "/tmp/headers.db", cfg.StorePath)
	assert.True(t, cfg.Debug)
}

func TestLoadWalletConfigMissing(t *testing.T) {
	_, err := LoadWalletConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadLoggingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.ini")
	data := "[logging]\nmax_size_mb = 64\nmax_age_days = 7\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadLoggingConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxSizeMB)
	assert.Equal(t, 7, cfg.MaxAgeDays)
}

func TestGenesisHeader(t *testing.T) {
	genesis := GenesisHeader()

	assert.EqualValues(t, GenesisVersion, genesis.Version)
	assert.EqualValues(t, GenesisBits, genesis.Bits)
	assert.Equal(t, [32]byte{}, genesis.PrevBlockHash)

	// The encoded header must hash to the well-known genesis block hash.
	assert.Equal(t,
		"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
		genesis.HashString())
}
