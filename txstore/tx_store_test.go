package txstore

import (
	"path/filepath"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"headerchain/db"
	"headerchain/transaction"
)

func newTestStore(t *testing.T) *GenericTxStore {
	t.Helper()
	provider, err := db.NewBoltProvider(filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	store, err := NewGenericTxStore(provider)
	require.NoError(t, err)
	t.Cleanup(store.MustClose)
	return store
}

func testTx(nonce uint64) *transaction.Transaction {
	return &transaction.Transaction{
		Sender:    "sender",
		Recipient: "recipient",
		Amount:    uint256.NewInt(100),
		Nonce:     nonce,
		Timestamp: 1842918273,
	}
}

func TestTxStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	tx := testTx(1)

	rec := &Record{Tx: tx, Status: StatusPending, SubmittedAt: 42}
	require.NoError(t, store.Store(rec))

	got, err := store.Get(tx.TxID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, tx.TxID(), got.Tx.TxID())
	assert.Equal(t, uint64(42), got.SubmittedAt)

	exists, err := store.Has(tx.TxID())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTxStoreMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get("deadbeef")
	require.NoError(t, err)
	assert.Nil(t, got)

	exists, err := store.Has("deadbeef")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTxStorePendingIndex(t *testing.T) {
	store := newTestStore(t)

	pendingTx := testTx(1)
	acceptedTx := testTx(2)

	require.NoError(t, store.Store(&Record{Tx: pendingTx, Status: StatusPending}))
	require.NoError(t, store.Store(&Record{Tx: acceptedTx, Status: StatusPending}))

	pending, err := store.Pending()
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// Acceptance removes the transaction from the pending index.
	require.NoError(t, store.Store(&Record{Tx: acceptedTx, Status: StatusAccepted, Confirmations: 1}))

	pending, err = store.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, pendingTx.TxID(), pending[0].Tx.TxID())
}

func TestTxStoreRejectsNil(t *testing.T) {
	store := newTestStore(t)
	assert.Error(t, store.Store(nil))
	assert.Error(t, store.Store(&Record{}))
}
