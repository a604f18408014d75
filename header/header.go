package header

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/holiman/uint256"
)

// Size is the length in bytes of an encoded block header.
const Size = 80

// Header is an 80-byte block header in canonical consensus layout.
// The storage layer treats it as an opaque fixed-size value; content
// validation (proof-of-work, timestamps, hash chaining) happens upstream.
type Header struct {
	Version       int32    // Block version
	PrevBlockHash [32]byte // Hash of the previous block header
	MerkleRoot    [32]byte // Merkle root of the block's transactions
	Timestamp     uint32   // Block time in Unix seconds
	Bits          uint32   // Compact difficulty target
	Nonce         uint32   // Proof-of-work nonce
}

// Encode serializes the header into its fixed 80-byte consensus form:
// little-endian integers, hashes as raw bytes, fields in declaration order.
func (h *Header) Encode() [Size]byte {
	var buf [Size]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], h.PrevBlockHash[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], h.Timestamp)
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)
	return buf
}

// Decode parses a header from buf. The schema is rigid, so decoding only
// fails when fewer than Size bytes are available.
func Decode(buf []byte) (Header, error) {
	var h Header
	if len(buf) < Size {
		return h, ErrShortBuffer
	}
	h.Version = int32(binary.LittleEndian.Uint32(buf[0:4]))
	copy(h.PrevBlockHash[:], buf[4:36])
	copy(h.MerkleRoot[:], buf[36:68])
	h.Timestamp = binary.LittleEndian.Uint32(buf[68:72])
	h.Bits = binary.LittleEndian.Uint32(buf[72:76])
	h.Nonce = binary.LittleEndian.Uint32(buf[76:80])
	return h, nil
}

// Hash returns the double-SHA256 of the encoded header.
func (h *Header) Hash() [32]byte {
	enc := h.Encode()
	first := sha256.Sum256(enc[:])
	return sha256.Sum256(first[:])
}

// HashString returns the hash in display order (reversed, hex encoded).
func (h *Header) HashString() string {
	hash := h.Hash()
	for i, j := 0, len(hash)-1; i < j; i, j = i+1, j-1 {
		hash[i], hash[j] = hash[j], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

// Target expands the compact Bits encoding into the full 256-bit
// difficulty target.
func (h *Header) Target() *uint256.Int {
	exponent := h.Bits >> 24
	mantissa := h.Bits & 0x007fffff

	target := uint256.NewInt(uint64(mantissa))
	if exponent <= 3 {
		return target.Rsh(target, uint(8*(3-exponent)))
	}
	return target.Lsh(target, uint(8*(exponent-3)))
}

// Work returns the expected number of hashes needed to meet the header's
// target, i.e. 2^256 / (target + 1).
func (h *Header) Work() *uint256.Int {
	target := h.Target()
	if target.IsZero() {
		return uint256.NewInt(0)
	}
	denom := new(uint256.Int).AddUint64(target, 1)
	work := new(uint256.Int).Not(target)
	work.Div(work, denom)
	return work.AddUint64(work, 1)
}
