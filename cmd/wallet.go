package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"headerchain/config"
	"headerchain/db"
	"headerchain/events"
	"headerchain/header"
	"headerchain/headerstore"
	"headerchain/logx"
	"headerchain/txstore"
	"headerchain/txtracker"
)

var (
	walletConnect   string
	walletAddresses []string
	walletGenesis   uint64
	walletDebug     bool
	walletConfig    string
	walletStorePath string
	walletLogging   string
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Run the wallet",
	Run: func(cmd *cobra.Command, args []string) {
		runWallet(cmd)
	},
}

func init() {
	rootCmd.AddCommand(walletCmd)
	walletCmd.Flags().StringVar(&walletConnect, "connect", "", "Connect to the specified peer")
	walletCmd.Flags().StringArrayVar(&walletAddresses, "address", nil, "Watch the given address (repeatable)")
	walletCmd.Flags().Uint64Var(&walletGenesis, "genesis", 0, "Wallet genesis height, from which to start scanning")
	walletCmd.Flags().BoolVar(&walletDebug, "debug", false, "Enable debug logging")
	walletCmd.Flags().StringVar(&walletConfig, "config", "", "Path to wallet.yml")
	walletCmd.Flags().StringVar(&walletStorePath, "store", "", "Path to the header store file")
	walletCmd.Flags().StringVar(&walletLogging, "logging", "", "Path to a logging .ini file")
}

func runWallet(cmd *cobra.Command) {
	cfg := loadWalletConfig(cmd)
	logx.SetDebug(cfg.Debug)
	if walletLogging != "" {
		loggingCfg, err := config.LoadLoggingConfig(walletLogging)
		if err != nil {
			log.Fatalf("Failed to load logging config %s: %v", walletLogging, err)
		}
		logx.SetRotation(loggingCfg.MaxSizeMB, loggingCfg.MaxAgeDays)
	}

	store := openHeaderStore(cfg.StorePath)
	defer store.Close()

	count, err := store.Len()
	if err != nil {
		log.Fatalf("Failed to read header store: %v", err)
	}
	logx.Info("WALLET", fmt.Sprintf("Header store %s holds %d headers (tip %d)", cfg.StorePath, count, count-1))

	provider, err := db.NewBoltProvider(cfg.TxDBPath)
	if err != nil {
		log.Fatalf("Failed to open transaction database: %v", err)
	}
	txStore, err := txstore.NewGenericTxStore(provider)
	if err != nil {
		log.Fatalf("Failed to create transaction store: %v", err)
	}
	defer txStore.MustClose()

	bus := events.NewEventBus()
	tracker := txtracker.NewManager(txStore, bus)

	pending, err := txStore.Pending()
	if err != nil {
		log.Fatalf("Failed to load pending transactions: %v", err)
	}
	for _, rec := range pending {
		event, err := tracker.Wait(rec.Tx.TxID(), time.Millisecond)
		if err != nil {
			logx.Warn("WALLET", fmt.Sprintf("Failed to resume transaction %s: %v", rec.Tx.TxID(), err))
			continue
		}
		logx.Info("WALLET", fmt.Sprintf("Resuming tracking: %v", event))
	}

	logx.Info("WALLET", fmt.Sprintf("Scanning from height %d for %d addresses, peer %q", cfg.Genesis, len(cfg.Addresses), cfg.Connect))
	for _, addr := range cfg.Addresses {
		logx.Debug("WALLET", "Watching address ", addr)
	}
}

// loadWalletConfig merges wallet.yml with flag overrides; flags win.
func loadWalletConfig(cmd *cobra.Command) *config.WalletConfig {
	cfg := config.DefaultWalletConfig()
	if walletConfig != "" {
		loaded, err := config.LoadWalletConfig(walletConfig)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", walletConfig, err)
		}
		if loaded.StorePath == "" {
			loaded.StorePath = cfg.StorePath
		}
		if loaded.TxDBPath == "" {
			loaded.TxDBPath = cfg.TxDBPath
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("connect") {
		cfg.Connect = walletConnect
	}
	if cmd.Flags().Changed("address") {
		cfg.Addresses = walletAddresses
	}
	if cmd.Flags().Changed("genesis") {
		cfg.Genesis = walletGenesis
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = walletDebug
	}
	if cmd.Flags().Changed("store") {
		cfg.StorePath = walletStorePath
	}
	return cfg
}

// openHeaderStore opens the store at path and seeds it with the mainnet
// genesis header when the file is empty.
func openHeaderStore(path string) *headerstore.FileStore {
	store, err := headerstore.Open(path)
	if err != nil {
		log.Fatalf("Failed to open header store %s: %v", path, err)
	}
	count, err := store.Len()
	if err != nil {
		log.Fatalf("Failed to read header store %s: %v", path, err)
	}
	if count == 0 {
		if _, err := store.Put([]header.Header{config.GenesisHeader()}); err != nil {
			log.Fatalf("Failed to seed genesis header: %v", err)
		}
		if err := store.Sync(); err != nil {
			log.Fatalf("Failed to sync header store: %v", err)
		}
		logx.Info("WALLET", "Seeded fresh header store with the genesis header")
	}
	return store
}
