package txstore

import (
	"fmt"
	"sync"

	"headerchain/db"
	"headerchain/jsonx"
	"headerchain/logx"
	"headerchain/transaction"
)

// Status is the tracked lifecycle state of a submitted transaction.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Record is the persisted state of one submitted transaction.
type Record struct {
	Tx            *transaction.Transaction `json:"tx"`
	Status        Status                   `json:"status"`
	Announcements int                      `json:"announcements"`
	Confirmations int                      `json:"confirmations"`
	SubmittedAt   uint64                   `json:"submitted_at"`
}

// TxStore is the interface for the store that persists submitted
// transactions and their tracking state across restarts.
type TxStore interface {
	Store(rec *Record) error
	Get(txID string) (*Record, error)
	Has(txID string) (bool, error)
	Pending() ([]*Record, error)
	MustClose()
}

// GenericTxStore persists transaction records through a DatabaseProvider.
type GenericTxStore struct {
	mu         sync.RWMutex
	dbProvider db.IterableProvider
}

// NewGenericTxStore creates a new transaction store
func NewGenericTxStore(dbProvider db.IterableProvider) (*GenericTxStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericTxStore{
		dbProvider: dbProvider,
	}, nil
}

// Store writes a record and maintains the pending index in one batch.
func (ts *GenericTxStore) Store(rec *Record) error {
	if rec == nil || rec.Tx == nil {
		return fmt.Errorf("record cannot be nil")
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	txID := rec.Tx.TxID()
	data, err := jsonx.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", txID, err)
	}

	batch := ts.dbProvider.Batch()
	defer batch.Close()

	batch.Put([]byte(PrefixTx+txID), data)
	if rec.Status == StatusPending {
		batch.Put([]byte(PrefixPending+txID), []byte{1})
	} else {
		batch.Delete([]byte(PrefixPending + txID))
	}

	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to store record %s: %w", txID, err)
	}
	return nil
}

// Get returns the record for txID, or nil when it was never stored.
func (ts *GenericTxStore) Get(txID string) (*Record, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	data, err := ts.dbProvider.Get([]byte(PrefixTx + txID))
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", txID, err)
	}
	if data == nil {
		return nil, nil
	}

	var rec Record
	if err := jsonx.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", txID, err)
	}
	return &rec, nil
}

// Has checks whether a record exists for txID.
func (ts *GenericTxStore) Has(txID string) (bool, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return ts.dbProvider.Has([]byte(PrefixTx + txID))
}

// Pending returns all records still awaiting acceptance.
func (ts *GenericTxStore) Pending() ([]*Record, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	var ids [][]byte
	err := ts.dbProvider.IteratePrefix([]byte(PrefixPending), func(key, _ []byte) bool {
		txID := string(key[len(PrefixPending):])
		ids = append(ids, []byte(PrefixTx+txID))
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending index: %w", err)
	}

	values, err := ts.dbProvider.GetBatch(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending records: %w", err)
	}

	records := make([]*Record, 0, len(values))
	for key, data := range values {
		var rec Record
		if err := jsonx.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", key, err)
		}
		records = append(records, &rec)
	}
	return records, nil
}

// MustClose closes the underlying provider, logging on failure.
func (ts *GenericTxStore) MustClose() {
	if err := ts.dbProvider.Close(); err != nil {
		logx.Error("TX_STORE", "Failed to close provider:", err)
	}
}
