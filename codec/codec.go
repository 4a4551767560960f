// Package codec scale-encodes values kept as blobs, such as archived ledger transactions.
package codec

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/spacemeshos/go-scale"
)

var buffers = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// Encode returns the scale encoding of value in a slice owned by the caller.
func Encode(value scale.Encodable) ([]byte, error) {
	b := buffers.Get().(*bytes.Buffer)
	defer func() {
		b.Reset()
		buffers.Put(b)
	}()
	if _, err := value.EncodeScale(scale.NewEncoder(b)); err != nil {
		return nil, fmt.Errorf("encode %T: %w", value, err)
	}
	return bytes.Clone(b.Bytes()), nil
}

// Decode fills value from buf.
func Decode(buf []byte, value scale.Decodable) error {
	if _, err := value.DecodeScale(scale.NewDecoder(bytes.NewReader(buf))); err != nil {
		return fmt.Errorf("decode %T: %w", value, err)
	}
	return nil
}

// DecodeNew decodes buf into a newly allocated T.
func DecodeNew[T any, P interface {
	*T
	scale.Decodable
}](buf []byte,
) (*T, error) {
	value := P(new(T))
	if err := Decode(buf, value); err != nil {
		return nil, err
	}
	return value, nil
}
