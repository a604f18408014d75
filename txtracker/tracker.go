package txtracker

import (
	"fmt"
	"sync/atomic"
	"time"

	"headerchain/events"
	"headerchain/logx"
	"headerchain/transaction"
	"headerchain/txstore"
)

// Tracker submits transactions for broadcast and reports their lifecycle.
// The network layer that actually relays transactions is out of scope; it
// feeds observations back through Announce and Confirm.
type Tracker interface {
	// SubmitTransaction registers the transaction for broadcast and waits
	// up to timeout for peer acceptance. It returns the best known status
	// event when the timeout elapses first.
	SubmitTransaction(tx *transaction.Transaction, timeout time.Duration) (events.Event, error)

	// Wait blocks until the transaction reaches a peer or the timeout
	// elapses, returning the best known status event.
	Wait(txID string, timeout time.Duration) (events.Event, error)
}

// Manager is the in-process Tracker. Submitted transactions are persisted
// in the transaction store so tracking state survives restarts, and every
// status change is published on the event bus.
type Manager struct {
	store      txstore.TxStore
	bus        *events.EventBus
	relayPeers atomic.Int64
}

// NewManager creates a tracker over the given store and event bus.
func NewManager(store txstore.TxStore, bus *events.EventBus) *Manager {
	return &Manager{store: store, bus: bus}
}

// SetRelayPeers records the number of connected peers willing to relay
// transactions. The network layer updates this as connections change.
func (m *Manager) SetRelayPeers(n int) {
	m.relayPeers.Store(int64(n))
}

// SubmitTransaction persists the transaction as pending, announces it on
// the event bus and waits up to timeout for acceptance.
func (m *Manager) SubmitTransaction(tx *transaction.Transaction, timeout time.Duration) (events.Event, error) {
	if m.relayPeers.Load() == 0 {
		return nil, NewError(ErrCodeRelayPeer, ErrMsgRelayPeer)
	}

	txID := tx.TxID()
	rec := &txstore.Record{
		Tx:          tx,
		Status:      txstore.StatusPending,
		SubmittedAt: uint64(time.Now().Unix()),
	}
	if err := m.store.Store(rec); err != nil {
		logx.Error("TRACKER", fmt.Sprintf("Failed to persist transaction %s: %v", txID, err))
		return nil, NewError(ErrCodeLock, ErrMsgLock)
	}

	logx.Info("TRACKER", fmt.Sprintf("Submitted transaction %s", txID))
	m.bus.Publish(events.NewTransactionPending(txID, rec.Announcements))

	return m.Wait(txID, timeout)
}

// Wait blocks until the transaction is accepted by a peer or the timeout
// elapses. When the timeout elapses first, the current pending status is
// returned rather than an error; an unknown transaction fails NotFound.
func (m *Manager) Wait(txID string, timeout time.Duration) (events.Event, error) {
	// Subscribe before reading the stored state so an acceptance landing
	// in between is not missed.
	subID, ch := m.bus.Subscribe()
	defer m.bus.Unsubscribe(subID)

	rec, err := m.store.Get(txID)
	if err != nil {
		return nil, NewError(ErrCodeLock, ErrMsgLock)
	}
	if rec == nil {
		return nil, NewError(ErrCodeNotFound, ErrMsgNotFound)
	}
	if rec.Status == txstore.StatusAccepted {
		return events.NewTransactionAccepted(txID, rec.Confirmations), nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil, NewError(ErrCodeLock, ErrMsgLock)
			}
			if event.TxID() != txID {
				continue
			}
			if event.Type() == events.EventTransactionAccepted {
				return event, nil
			}
		case <-timer.C:
			rec, err := m.store.Get(txID)
			if err != nil || rec == nil {
				return nil, NewError(ErrCodeLock, ErrMsgLock)
			}
			if rec.Status == txstore.StatusAccepted {
				return events.NewTransactionAccepted(txID, rec.Confirmations), nil
			}
			return events.NewTransactionPending(txID, rec.Announcements), nil
		}
	}
}

// Announce records that a peer announced the transaction and publishes the
// updated pending status.
func (m *Manager) Announce(txID string) (events.Event, error) {
	rec, err := m.load(txID)
	if err != nil {
		return nil, err
	}

	rec.Announcements++
	if err := m.store.Store(rec); err != nil {
		return nil, NewError(ErrCodeLock, ErrMsgLock)
	}

	event := events.NewTransactionPending(txID, rec.Announcements)
	m.bus.Publish(event)
	return event, nil
}

// Confirm records that the transaction data was sent to a peer, marks it
// accepted and publishes the acceptance.
func (m *Manager) Confirm(txID string) (events.Event, error) {
	rec, err := m.load(txID)
	if err != nil {
		return nil, err
	}

	rec.Confirmations++
	rec.Status = txstore.StatusAccepted
	if err := m.store.Store(rec); err != nil {
		return nil, NewError(ErrCodeLock, ErrMsgLock)
	}

	logx.Info("TRACKER", fmt.Sprintf("Transaction %s accepted by %d peers", txID, rec.Confirmations))
	event := events.NewTransactionAccepted(txID, rec.Confirmations)
	m.bus.Publish(event)
	return event, nil
}

func (m *Manager) load(txID string) (*txstore.Record, error) {
	rec, err := m.store.Get(txID)
	if err != nil {
		return nil, NewError(ErrCodeLock, ErrMsgLock)
	}
	if rec == nil {
		return nil, NewError(ErrCodeNotFound, ErrMsgNotFound)
	}
	return rec, nil
}
