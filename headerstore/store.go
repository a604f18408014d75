package headerstore

import (
	"headerchain/header"
)

// Store abstracts a dense, height-indexed sequence of block headers.
// Height 0 is always the genesis header and a properly initialized store is
// never empty; the set of stored heights is exactly 0..tip with no gaps.
//
// All operations are synchronous. The design assumes a single logical
// writer: one Put or Rollback at a time. Get, Iter and Len may run
// concurrently with each other and with Put because every read acquires its
// own handle into the backing data; Rollback racing a reader is not safe
// and must be serialized by the caller.
type Store interface {
	// Genesis returns the header at height 0. It fails NotFound only when
	// the never-empty invariant has been violated upstream.
	Genesis() (header.Header, error)

	// Put appends the given headers, in order, directly after the current
	// tip and returns the new tip height. A failed Put may leave the store
	// partially appended; callers should verify via Len/Get before
	// retrying.
	Put(headers []header.Header) (uint64, error)

	// Get returns the header at the given height, failing NotFound when
	// the height is past the tip.
	Get(height uint64) (header.Header, error)

	// Rollback removes every header above the given height. The height
	// must not exceed the tip; behavior is unspecified otherwise.
	Rollback(height uint64) error

	// Sync blocks until all prior writes are durable on stable storage.
	Sync() error

	// Iter returns a fresh iterator over all stored headers, ascending
	// from height 0.
	Iter() Iterator

	// Len returns the number of stored headers. It fails Corruption when
	// the underlying representation size is not an exact multiple of the
	// record size.
	Len() (uint64, error)

	// Close releases the backing resource.
	Close() error
}

// Iterator walks the store from height 0 upward. Each call to Store.Iter
// yields a fresh iterator. Iteration stops cleanly past the tip; any read
// or decode failure terminates iteration and is reported once by Err.
//
//	it := store.Iter()
//	for it.Next() {
//		_ = it.Height()
//		_ = it.Header()
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator interface {
	// Next advances to the next header, returning false when the sequence
	// is exhausted or a failure occurred.
	Next() bool

	// Height returns the height of the current header.
	Height() uint64

	// Header returns the current header.
	Header() header.Header

	// Err returns the failure that terminated iteration, or nil on a
	// clean end.
	Err() error
}
