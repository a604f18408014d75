package txstore

// Declare database key prefixes for stored objects
const (
	PrefixTx      = "tx:"
	PrefixPending = "pending:"
)
