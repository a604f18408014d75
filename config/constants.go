package config

import (
	"encoding/hex"

	"headerchain/header"
)

// Bitcoin mainnet genesis header fields. Hashes are in internal byte
// order, as they appear in the raw block.
const (
	GenesisVersion    = 1
	GenesisMerkleRoot = "3ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a"
	GenesisTimestamp  = 1231006505
	GenesisBits       = 0x1d00ffff
	GenesisNonce      = 2083236893
)

// GenesisHeader returns the compiled-in mainnet genesis header, used to
// seed a fresh header store.
func GenesisHeader() header.Header {
	h := header.Header{
		Version:   GenesisVersion,
		Timestamp: GenesisTimestamp,
		Bits:      GenesisBits,
		Nonce:     GenesisNonce,
	}
	root, _ := hex.DecodeString(GenesisMerkleRoot)
	copy(h.MerkleRoot[:], root)
	return h
}
