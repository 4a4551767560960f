package types

import (
	"fmt"
	"time"

	"github.com/spacemeshos/go-scale"
)

const (
	maxEntries     = 1 << 10
	maxStringBytes = 1 << 12
	maxRawBytes    = 1 << 20
)

// EncodeInt64 writes v as zigzag compact integer.
func EncodeInt64(e *scale.Encoder, v int64) (int, error) {
	return scale.EncodeCompact64(e, uint64((v<<1)^(v>>63)))
}

// DecodeInt64 reads a zigzag compact integer.
func DecodeInt64(d *scale.Decoder) (int64, int, error) {
	u, n, err := scale.DecodeCompact64(d)
	if err != nil {
		return 0, n, err
	}
	return int64(u>>1) ^ -int64(u&1), n, nil
}

// EncodeBool writes b as a single byte.
func EncodeBool(e *scale.Encoder, b bool) (int, error) {
	var v byte
	if b {
		v = 1
	}
	return scale.EncodeByte(e, v)
}

// DecodeBool reads a single byte boolean.
func DecodeBool(d *scale.Decoder) (bool, int, error) {
	v, n, err := scale.DecodeByte(d)
	if err != nil {
		return false, n, err
	}
	switch v {
	case 0:
		return false, n, nil
	case 1:
		return true, n, nil
	}
	return false, n, fmt.Errorf("invalid bool byte %d", v)
}

// EncodeString writes s as a length prefixed byte slice.
func EncodeString(e *scale.Encoder, s string) (int, error) {
	return scale.EncodeByteSliceWithLimit(e, []byte(s), maxStringBytes)
}

// DecodeString reads a length prefixed string.
func DecodeString(d *scale.Decoder) (string, int, error) {
	b, n, err := scale.DecodeByteSliceWithLimit(d, maxStringBytes)
	if err != nil {
		return "", n, err
	}
	return string(b), n, nil
}

type encodeStep func(e *scale.Encoder) (int, error)

func encodeAll(e *scale.Encoder, steps ...encodeStep) (int, error) {
	var total int
	for _, step := range steps {
		n, err := step(e)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// EncodeScale implements scale codec interface.
func (p *Position) EncodeScale(e *scale.Encoder) (int, error) {
	return encodeAll(e,
		p.Block.EncodeScale,
		func(e *scale.Encoder) (int, error) { return EncodeInt64(e, p.Height) },
		func(e *scale.Encoder) (int, error) { return EncodeInt64(e, p.Index) },
	)
}

// DecodeScale implements scale codec interface.
func (p *Position) DecodeScale(d *scale.Decoder) (int, error) {
	var total int
	n, err := p.Block.DecodeScale(d)
	total += n
	if err != nil {
		return total, err
	}
	if p.Height, n, err = DecodeInt64(d); err != nil {
		return total + n, err
	}
	total += n
	p.Index, n, err = DecodeInt64(d)
	return total + n, err
}

// EncodeScale implements scale codec interface.
func (en *Entry) EncodeScale(e *scale.Encoder) (int, error) {
	return encodeAll(e,
		func(e *scale.Encoder) (int, error) { return scale.EncodeByte(e, byte(en.Kind)) },
		func(e *scale.Encoder) (int, error) { return EncodeString(e, en.Address) },
		func(e *scale.Encoder) (int, error) { return EncodeInt64(e, en.Amount) },
		func(e *scale.Encoder) (int, error) { return EncodeString(e, en.Memo) },
		func(e *scale.Encoder) (int, error) { return EncodeBool(e, en.Mine) },
		func(e *scale.Encoder) (int, error) { return EncodeBool(e, en.WatchOnly) },
	)
}

// DecodeScale implements scale codec interface.
func (en *Entry) DecodeScale(d *scale.Decoder) (int, error) {
	var total int
	kind, n, err := scale.DecodeByte(d)
	total += n
	if err != nil {
		return total, err
	}
	en.Kind = EntryKind(kind)
	if en.Address, n, err = DecodeString(d); err != nil {
		return total + n, err
	}
	total += n
	if en.Amount, n, err = DecodeInt64(d); err != nil {
		return total + n, err
	}
	total += n
	if en.Memo, n, err = DecodeString(d); err != nil {
		return total + n, err
	}
	total += n
	if en.Mine, n, err = DecodeBool(d); err != nil {
		return total + n, err
	}
	total += n
	en.WatchOnly, n, err = DecodeBool(d)
	return total + n, err
}

// EncodeScale implements scale codec interface.
func (t *Transaction) EncodeScale(e *scale.Encoder) (int, error) {
	return encodeAll(e,
		t.ID.EncodeScale,
		func(e *scale.Encoder) (int, error) { return EncodeInt64(e, t.Depth) },
		func(e *scale.Encoder) (int, error) {
			if t.Block == nil {
				return EncodeBool(e, false)
			}
			n, err := EncodeBool(e, true)
			if err != nil {
				return n, err
			}
			m, err := t.Block.EncodeScale(e)
			return n + m, err
		},
		func(e *scale.Encoder) (int, error) { return EncodeBool(e, t.Final) },
		func(e *scale.Encoder) (int, error) { return EncodeInt64(e, t.LockHeight) },
		func(e *scale.Encoder) (int, error) { return EncodeBool(e, t.Includable) },
		func(e *scale.Encoder) (int, error) { return EncodeBool(e, t.Coinbase) },
		func(e *scale.Encoder) (int, error) { return EncodeBool(e, t.Abandoned) },
		func(e *scale.Encoder) (int, error) { return EncodeBool(e, t.Archived) },
		func(e *scale.Encoder) (int, error) { return EncodeInt64(e, t.Time.Unix()) },
		func(e *scale.Encoder) (int, error) { return scale.EncodeByteSliceWithLimit(e, t.Raw, maxRawBytes) },
		func(e *scale.Encoder) (int, error) {
			if len(t.Entries) > maxEntries {
				return 0, fmt.Errorf("too many entries: %d", len(t.Entries))
			}
			total, err := scale.EncodeCompact32(e, uint32(len(t.Entries)))
			if err != nil {
				return total, err
			}
			for i := range t.Entries {
				n, err := t.Entries[i].EncodeScale(e)
				total += n
				if err != nil {
					return total, err
				}
			}
			return total, nil
		},
	)
}

// DecodeScale implements scale codec interface.
func (t *Transaction) DecodeScale(d *scale.Decoder) (int, error) {
	var total int
	n, err := t.ID.DecodeScale(d)
	total += n
	if err != nil {
		return total, err
	}
	if t.Depth, n, err = DecodeInt64(d); err != nil {
		return total + n, err
	}
	total += n
	hasBlock, n, err := DecodeBool(d)
	total += n
	if err != nil {
		return total, err
	}
	t.Block = nil
	if hasBlock {
		t.Block = &Position{}
		n, err = t.Block.DecodeScale(d)
		total += n
		if err != nil {
			return total, err
		}
	}
	if t.Final, n, err = DecodeBool(d); err != nil {
		return total + n, err
	}
	total += n
	if t.LockHeight, n, err = DecodeInt64(d); err != nil {
		return total + n, err
	}
	total += n
	for _, dst := range []*bool{&t.Includable, &t.Coinbase, &t.Abandoned, &t.Archived} {
		if *dst, n, err = DecodeBool(d); err != nil {
			return total + n, err
		}
		total += n
	}
	unix, n, err := DecodeInt64(d)
	total += n
	if err != nil {
		return total, err
	}
	t.Time = time.Unix(unix, 0)
	if t.Raw, n, err = scale.DecodeByteSliceWithLimit(d, maxRawBytes); err != nil {
		return total + n, err
	}
	total += n
	if len(t.Raw) == 0 {
		t.Raw = nil
	}
	count, n, err := scale.DecodeCompact32(d)
	total += n
	if err != nil {
		return total, err
	}
	if count > maxEntries {
		return total, fmt.Errorf("too many entries: %d", count)
	}
	t.Entries = nil
	if count > 0 {
		t.Entries = make([]Entry, count)
	}
	for i := range t.Entries {
		n, err = t.Entries[i].DecodeScale(d)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
