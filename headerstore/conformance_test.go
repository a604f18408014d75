package headerstore

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"headerchain/header"
)

// The in-memory store is the behavioral reference for the file-backed
// store: the same operation sequence must produce identical heights,
// headers and error codes on both. Each fixture is replayed against both
// backends and the observation logs are compared verbatim.

type storeOp func(s Store) string

func opPut(headers ...header.Header) storeOp {
	return func(s Store) string {
		tip, err := s.Put(headers)
		if err != nil {
			return fmt.Sprintf("put err=%s", CodeOf(err))
		}
		return fmt.Sprintf("put tip=%d", tip)
	}
}

func opGet(height uint64) storeOp {
	return func(s Store) string {
		h, err := s.Get(height)
		if err != nil {
			return fmt.Sprintf("get %d err=%s", height, CodeOf(err))
		}
		return fmt.Sprintf("get %d nonce=%d", height, h.Nonce)
	}
}

func opGenesis() storeOp {
	return func(s Store) string {
		h, err := s.Genesis()
		if err != nil {
			return fmt.Sprintf("genesis err=%s", CodeOf(err))
		}
		return fmt.Sprintf("genesis nonce=%d", h.Nonce)
	}
}

func opRollback(height uint64) storeOp {
	return func(s Store) string {
		if err := s.Rollback(height); err != nil {
			return fmt.Sprintf("rollback %d err=%s", height, CodeOf(err))
		}
		return fmt.Sprintf("rollback %d ok", height)
	}
}

func opSync() storeOp {
	return func(s Store) string {
		if err := s.Sync(); err != nil {
			return fmt.Sprintf("sync err=%s", CodeOf(err))
		}
		return "sync ok"
	}
}

func opLen() storeOp {
	return func(s Store) string {
		n, err := s.Len()
		if err != nil {
			return fmt.Sprintf("len err=%s", CodeOf(err))
		}
		return fmt.Sprintf("len %d", n)
	}
}

func opIter() storeOp {
	return func(s Store) string {
		it := s.Iter()
		out := "iter"
		for it.Next() {
			out += fmt.Sprintf(" %d:%d", it.Height(), it.Header().Nonce)
		}
		if err := it.Err(); err != nil {
			return out + fmt.Sprintf(" err=%s", CodeOf(err))
		}
		return out + " end"
	}
}

func runOps(t *testing.T, s Store, ops []storeOp) []string {
	t.Helper()
	log := make([]string, 0, len(ops))
	for _, op := range ops {
		log = append(log, op(s))
	}
	return log
}

func TestConformance(t *testing.T) {
	genesis := testHeader(312143)
	batch := testChain(8)

	fixtures := map[string][]storeOp{
		"fresh store": {
			opGenesis(), opGet(0), opGet(1), opLen(), opIter(), opSync(),
		},
		"append and read back": {
			opPut(batch...), opLen(), opGet(1), opGet(8), opGet(9), opIter(),
		},
		"rollback to middle": {
			opPut(batch...), opRollback(4), opLen(), opGet(4), opGet(5), opIter(),
		},
		"rollback to genesis": {
			opPut(batch...), opRollback(0), opLen(), opGenesis(), opGet(1), opIter(),
		},
		"overwrite after rollback": {
			opPut(batch...), opRollback(2),
			opPut(testHeader(700), testHeader(701)),
			opLen(), opGet(3), opGet(4), opGet(5), opIter(),
		},
		"rollback to tip is a no-op": {
			opPut(batch...), opRollback(8), opLen(), opGet(8), opIter(),
		},
		"sync after every mutation": {
			opPut(batch[:4]...), opSync(), opRollback(1), opSync(), opLen(), opIter(),
		},
	}

	for name, ops := range fixtures {
		t.Run(name, func(t *testing.T) {
			mem := NewMemoryStore(genesis)
			defer mem.Close()

			file, err := Create(filepath.Join(t.TempDir(), "headers.db"), genesis)
			require.NoError(t, err)
			defer file.Close()

			memLog := runOps(t, mem, ops)
			fileLog := runOps(t, file, ops)
			assert.Equal(t, memLog, fileLog)
		})
	}
}
