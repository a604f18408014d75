package headerstore

import (
	"headerchain/header"
)

// MemoryStore is the in-process reference implementation of Store, backed
// by a never-empty ordered slice. It exists principally as a conformance
// twin: any legal operation sequence run against it and against FileStore
// must produce identical heights, headers and error codes.
//
// MemoryStore performs no locking of its own; like the file-backed store
// it assumes a single logical writer, and callers serialize Rollback
// against readers.
type MemoryStore struct {
	headers []header.Header
}

// NewMemoryStore creates a store seeded with the genesis header, optionally
// followed by more headers.
func NewMemoryStore(genesis header.Header, rest ...header.Header) *MemoryStore {
	headers := make([]header.Header, 0, 1+len(rest))
	headers = append(headers, genesis)
	headers = append(headers, rest...)
	return &MemoryStore{headers: headers}
}

// Genesis returns the header at height 0.
func (m *MemoryStore) Genesis() (header.Header, error) {
	return m.Get(0)
}

// Put appends the given headers after the current tip and returns the new
// tip height.
func (m *MemoryStore) Put(headers []header.Header) (uint64, error) {
	m.headers = append(m.headers, headers...)
	return uint64(len(m.headers)) - 1, nil
}

// Get returns the header at the given height.
func (m *MemoryStore) Get(height uint64) (header.Header, error) {
	if height >= uint64(len(m.headers)) {
		return header.Header{}, NewError(ErrCodeNotFound, "height past the tip")
	}
	return m.headers[height], nil
}

// Rollback truncates the chain to the given height. Height 0 is never
// removed, preserving the non-empty invariant.
func (m *MemoryStore) Rollback(height uint64) error {
	if height+1 < uint64(len(m.headers)) {
		m.headers = m.headers[:height+1]
	}
	return nil
}

// Sync is a no-op; there is nothing to flush.
func (m *MemoryStore) Sync() error {
	return nil
}

// Iter returns a fresh iterator over a snapshot of the current chain.
func (m *MemoryStore) Iter() Iterator {
	snapshot := make([]header.Header, len(m.headers))
	copy(snapshot, m.headers)
	return &memoryIterator{headers: snapshot}
}

// Len returns the number of stored headers.
func (m *MemoryStore) Len() (uint64, error) {
	return uint64(len(m.headers)), nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

type memoryIterator struct {
	headers []header.Header
	next    uint64
	cur     header.Header
	curH    uint64
}

func (it *memoryIterator) Next() bool {
	if it.next >= uint64(len(it.headers)) {
		return false
	}
	it.curH = it.next
	it.cur = it.headers[it.next]
	it.next++
	return true
}

func (it *memoryIterator) Height() uint64 {
	return it.curH
}

func (it *memoryIterator) Header() header.Header {
	return it.cur
}

func (it *memoryIterator) Err() error {
	return nil
}
