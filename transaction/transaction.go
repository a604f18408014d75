package transaction

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
)

// Transaction is a wallet-side view of a transaction handed to the tracker
// for submission. The consensus payload is opaque here; the metadata fields
// exist for logging and bookkeeping only — validation happens upstream.
type Transaction struct {
	Sender    string       `json:"sender"`
	Recipient string       `json:"recipient"`
	Amount    *uint256.Int `json:"amount"`
	Nonce     uint64       `json:"nonce,omitempty"`
	Timestamp uint64       `json:"timestamp"`
	Raw       []byte       `json:"raw,omitempty"` // consensus-encoded payload
}

// Serialize produces the canonical byte form the transaction id is derived
// from. When a raw consensus payload is present it is authoritative;
// otherwise the metadata fields are joined deterministically.
func (tx *Transaction) Serialize() []byte {
	if len(tx.Raw) > 0 {
		return tx.Raw
	}
	amountStr := "0"
	if tx.Amount != nil {
		amountStr = tx.Amount.Dec()
	}
	metadata := fmt.Sprintf(
		"%s|%s|%s|%d|%d",
		tx.Sender, tx.Recipient, amountStr, tx.Nonce, tx.Timestamp,
	)
	return []byte(metadata)
}

// TxID returns the hex-encoded double-SHA256 of the serialized transaction.
func (tx *Transaction) TxID() string {
	first := sha256.Sum256(tx.Serialize())
	second := sha256.Sum256(first[:])
	return hex.EncodeToString(second[:])
}
