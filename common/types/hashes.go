package types

import (
	"encoding/hex"
	"fmt"

	"github.com/spacemeshos/go-scale"
	"github.com/zeebo/blake3"
)

const (
	// Hash32Length is 32, the expected length of the hash.
	Hash32Length = 32
)

// Hash32 represents the 32-byte blake3 hash of arbitrary data.
type Hash32 [Hash32Length]byte

// EmptyHash32 is the zero value of Hash32.
var EmptyHash32 = Hash32{}

// CalcHash32 returns the 32-byte blake3 sum of the given data.
func CalcHash32(data []byte) Hash32 {
	return Hash32(blake3.Sum256(data))
}

// HexToHash32 parses a hex string, with or without the 0x prefix.
// Input longer than 32 bytes is cropped from the left.
func HexToHash32(s string) (Hash32, error) {
	var h Hash32
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("decode hash %q: %w", s, err)
	}
	if len(b) > len(h) {
		b = b[len(b)-Hash32Length:]
	}
	copy(h[Hash32Length-len(b):], b)
	return h, nil
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash32) String() string {
	return h.Hex()
}

// ShortString returns the first 5 characters of the hash, for logging purposes.
func (h Hash32) ShortString() string {
	return hex.EncodeToString(h[:])[:5]
}

// IsEmpty reports whether the hash is all zeroes.
func (h Hash32) IsEmpty() bool {
	return h == EmptyHash32
}

// EncodeScale implements scale codec interface.
func (h *Hash32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash32) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}
