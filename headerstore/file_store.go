package headerstore

import (
	"errors"
	"io"
	"os"

	"headerchain/header"
)

// FileStore is a Store backed by a single flat file of concatenated
// 80-byte header records. The file carries no framing, checksums or magic
// bytes; its byte length is the only source of record count.
//
// The writer keeps one append handle open for the lifetime of the store.
// Every Get and Iter opens its own read-only handle on the same path, so
// reads never race the writer's append cursor and no lock is needed for
// the append-only fast path. Rollback truncates the file and must be
// serialized against readers by the caller.
type FileStore struct {
	path string
	file *os.File
}

// Create creates a fresh store at path, failing if the file already
// exists, and atomically seeds it with the genesis header. This is the
// only way to produce a file store that satisfies the never-empty
// invariant from scratch.
func Create(path string, genesis header.Header) (*FileStore, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, WrapError(ErrCodeIO, "creating store file", err)
	}
	s := &FileStore{path: path, file: file}
	if _, err := s.Put([]header.Header{genesis}); err != nil {
		file.Close()
		return nil, err
	}
	return s, nil
}

// Open opens the store at path, creating an empty file if absent. Unlike
// Create, Open does not enforce the never-empty invariant: a zero-length
// file is tolerated and every Get on it fails NotFound until the caller
// seeds it with Put.
func Open(path string) (*FileStore, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, WrapError(ErrCodeIO, "opening store file", err)
	}
	return &FileStore{path: path, file: file}, nil
}

// Genesis returns the header at height 0.
func (s *FileStore) Genesis() (header.Header, error) {
	return s.Get(0)
}

// Put appends the encoded headers at end-of-file and returns the tip
// height implied by the resulting file size. A failed write is surfaced
// immediately; records written before the failure are not rolled back.
func (s *FileStore) Put(headers []header.Header) (uint64, error) {
	pos, err := s.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, WrapError(ErrCodeIO, "seeking to end of store", err)
	}
	for i := range headers {
		record := headers[i].Encode()
		n, err := s.file.Write(record[:])
		if err != nil {
			return 0, WrapError(ErrCodeIO, "appending header record", err)
		}
		pos += int64(n)
	}
	if pos == 0 {
		return 0, NewError(ErrCodeNotFound, "store is empty")
	}
	return uint64(pos)/header.Size - 1, nil
}

// Get reads the record at height through an independent read handle. Any
// under-read, including a clean end-of-file, means the height is past the
// tip and fails NotFound.
func (s *FileStore) Get(height uint64) (header.Header, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return header.Header{}, WrapError(ErrCodeIO, "opening read handle", err)
	}
	defer file.Close()

	h, _, err := readRecord(file, height)
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		return header.Header{}, NewError(ErrCodeNotFound, "height past the tip")
	}
	return h, err
}

// Rollback truncates the file to exactly height+1 records. The height must
// not exceed the tip; rolling back past the tip leaves the store padded
// and is a caller error.
func (s *FileStore) Rollback(height uint64) error {
	if err := s.file.Truncate(int64((height + 1) * header.Size)); err != nil {
		return WrapError(ErrCodeIO, "truncating store", err)
	}
	return nil
}

// Sync blocks until all prior writes have reached stable storage.
func (s *FileStore) Sync() error {
	if err := s.file.Sync(); err != nil {
		return WrapError(ErrCodeIO, "syncing store", err)
	}
	return nil
}

// Iter returns a fresh iterator reading sequentially from height 0 on an
// independent handle. It stops cleanly at end-of-file; a trailing partial
// record or read failure terminates iteration with an error.
func (s *FileStore) Iter() Iterator {
	file, err := os.Open(s.path)
	if err != nil {
		return &fileIterator{err: WrapError(ErrCodeIO, "opening read handle", err)}
	}
	return &fileIterator{file: file}
}

// Len validates that the file size is an exact multiple of the record size
// and returns the record count.
func (s *FileStore) Len() (uint64, error) {
	info, err := s.file.Stat()
	if err != nil {
		return 0, WrapError(ErrCodeIO, "reading store metadata", err)
	}
	size := uint64(info.Size())
	if size%header.Size != 0 {
		return 0, NewError(ErrCodeCorruption, "store size is not a multiple of the record size")
	}
	return size / header.Size, nil
}

// Close releases the writer's file handle. Read handles are per-call and
// already closed.
func (s *FileStore) Close() error {
	if err := s.file.Close(); err != nil {
		return WrapError(ErrCodeIO, "closing store", err)
	}
	return nil
}

// readRecord reads exactly one record at the given height. It returns
// io.EOF untouched when the file ends exactly at the record boundary, so
// callers can tell a clean end from a torn record.
func readRecord(file *os.File, height uint64) (header.Header, int, error) {
	var buf [header.Size]byte
	n, err := file.ReadAt(buf[:], int64(height*header.Size))
	if err == io.EOF {
		if n == 0 {
			return header.Header{}, 0, io.EOF
		}
		return header.Header{}, n, WrapError(ErrCodeIO, "unexpected end of file", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return header.Header{}, n, WrapError(ErrCodeIO, "reading header record", err)
	}
	h, err := header.Decode(buf[:])
	if err != nil {
		return header.Header{}, n, WrapError(ErrCodeDecoding, "decoding header record", err)
	}
	return h, n, nil
}

type fileIterator struct {
	file   *os.File
	next   uint64
	cur    header.Header
	curH   uint64
	err    error
	closed bool
}

func (it *fileIterator) Next() bool {
	if it.err != nil || it.closed {
		return false
	}
	h, _, err := readRecord(it.file, it.next)
	if err == io.EOF {
		it.close()
		return false
	}
	if err != nil {
		it.err = err
		it.close()
		return false
	}
	it.curH = it.next
	it.cur = h
	it.next++
	return true
}

func (it *fileIterator) Height() uint64 {
	return it.curH
}

func (it *fileIterator) Header() header.Header {
	return it.cur
}

func (it *fileIterator) Err() error {
	return it.err
}

func (it *fileIterator) close() {
	if it.file != nil && !it.closed {
		it.file.Close()
	}
	it.closed = true
}
