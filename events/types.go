package events

import (
	"fmt"
	"time"
)

// EventType is an enum-like string type for transaction lifecycle events
type EventType string

const (
	EventTransactionPending  EventType = "TransactionPending"
	EventTransactionAccepted EventType = "TransactionAccepted"
)

// Event represents a transaction lifecycle notification
type Event interface {
	Type() EventType
	Timestamp() time.Time
	TxID() string
}

// TransactionPending is emitted when a transaction has been sent to one or
// more peers on the network and is still unconfirmed.
type TransactionPending struct {
	txID          string
	announcements int
	timestamp     time.Time
}

func NewTransactionPending(txID string, announcements int) *TransactionPending {
	return &TransactionPending{
		txID:          txID,
		announcements: announcements,
		timestamp:     time.Now(),
	}
}

func (e *TransactionPending) Type() EventType {
	return EventTransactionPending
}

func (e *TransactionPending) Timestamp() time.Time {
	return e.timestamp
}

func (e *TransactionPending) TxID() string {
	return e.txID
}

// Announcements is the number of peers that announced this transaction.
func (e *TransactionPending) Announcements() int {
	return e.announcements
}

func (e *TransactionPending) String() string {
	return fmt.Sprintf("Pending transaction ID %s broadcasted to %d peers", e.txID, e.announcements)
}

// TransactionAccepted is emitted when a transaction has been accepted by
// one or more peers on the network.
type TransactionAccepted struct {
	txID          string
	confirmations int
	timestamp     time.Time
}

func NewTransactionAccepted(txID string, confirmations int) *TransactionAccepted {
	return &TransactionAccepted{
		txID:          txID,
		confirmations: confirmations,
		timestamp:     time.Now(),
	}
}

func (e *TransactionAccepted) Type() EventType {
	return EventTransactionAccepted
}

func (e *TransactionAccepted) Timestamp() time.Time {
	return e.timestamp
}

func (e *TransactionAccepted) TxID() string {
	return e.txID
}

// Confirmations is the number of peers the transaction data was sent to.
func (e *TransactionAccepted) Confirmations() int {
	return e.confirmations
}

func (e *TransactionAccepted) String() string {
	return fmt.Sprintf("Transaction with ID %s sent to %d peers", e.txID, e.confirmations)
}
