package config

import (
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"headerchain/logx"
)

// DefaultWalletConfig returns the configuration used when no wallet.yml is
// supplied; flags still override individual fields.
func DefaultWalletConfig() *WalletConfig {
	return &WalletConfig{
		StorePath: "headers.db",
		TxDBPath:  "txtracker.db",
	}
}

// LoadWalletConfig reads and parses a wallet.yml file
func LoadWalletConfig(path string) (*WalletConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		return nil, err
	}
	logx.Debug("CONFIG", "Loaded wallet config from ", path)
	return &cfgFile.Wallet, nil
}

// LoadLoggingConfig reads log rotation tunables from an .ini file
func LoadLoggingConfig(path string) (*LoggingConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	loggingSection := cfg.Section("logging")
	loggingCfg := &LoggingConfig{}
	err = loggingSection.MapTo(loggingCfg)
	if err != nil {
		return nil, err
	}
	return loggingCfg, nil
}
