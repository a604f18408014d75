package transaction

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestTxIDDeterministic(t *testing.T) {
	tx := &Transaction{
		Sender:    "alice",
		Recipient: "bob",
		Amount:    uint256.NewInt(250),
		Nonce:     7,
		Timestamp: 1842918273,
	}

	id := tx.TxID()
	assert.Len(t, id, 64)
	assert.Equal(t, id, tx.TxID())

	other := &Transaction{
		Sender:    "alice",
		Recipient: "bob",
		Amount:    uint256.NewInt(250),
		Nonce:     8,
		Timestamp: 1842918273,
	}
	assert.NotEqual(t, id, other.TxID())
}

func TestTxIDPrefersRawPayload(t *testing.T) {
	tx := &Transaction{Sender: "alice", Raw: []byte{0x01, 0x02}}
	withoutRaw := &Transaction{Sender: "alice"}
	assert.NotEqual(t, withoutRaw.TxID(), tx.TxID())
}

func TestSerializeNilAmount(t *testing.T) {
	tx := &Transaction{Sender: "alice", Recipient: "bob"}
	assert.Equal(t, []byte("alice|bob|0|0|0"), tx.Serialize())
}
