package config

// WalletConfig is the wallet's configuration
type WalletConfig struct {
	// Connect is the peer address the wallet connects to.
	Connect string `yaml:"connect"`
	// Addresses are the addresses the wallet watches.
	Addresses []string `yaml:"addresses"`
	// Genesis is the height the wallet starts scanning from.
	Genesis uint64 `yaml:"genesis"`
	// StorePath is the path of the header store file.
	StorePath string `yaml:"store_path"`
	// TxDBPath is the path of the transaction tracking database.
	TxDBPath string `yaml:"txdb_path"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// ConfigFile is the top-level structure for wallet.yml
type ConfigFile struct {
	Wallet WalletConfig `yaml:"wallet"`
}

// LoggingConfig holds log rotation tunables
type LoggingConfig struct {
	MaxSizeMB  int `ini:"max_size_mb"`
	MaxAgeDays int `ini:"max_age_days"`
}
