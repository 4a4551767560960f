package txview

import (
	"time"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-txview/common/types"
)

// StatusState is the display state of a transaction.
type StatusState uint8

const (
	// OpenUntilBlock is a non final transaction locked until a block height.
	OpenUntilBlock StatusState = iota
	// OpenUntilDate is a non final transaction locked until a time.
	OpenUntilDate
	// Offline is a transaction that was not broadcast.
	Offline
	// Unconfirmed is a transaction with no confirmations.
	Unconfirmed
	// Abandoned is an unconfirmed transaction the wallet gave up on.
	Abandoned
	// Confirming is a transaction with less than the recommended confirmations.
	Confirming
	// Confirmed is a transaction with enough confirmations.
	Confirmed
	// Conflicted is a transaction conflicted out of the main chain.
	Conflicted
	// Immature is a coinbase output that cannot be spent yet.
	Immature
	// MaturesWarning is a coinbase in a block no other node has seen.
	MaturesWarning
	// NotAccepted is a coinbase whose block was not accepted.
	NotAccepted
)

func (s StatusState) String() string {
	switch s {
	case OpenUntilBlock:
		return "open_until_block"
	case OpenUntilDate:
		return "open_until_date"
	case Offline:
		return "offline"
	case Unconfirmed:
		return "unconfirmed"
	case Abandoned:
		return "abandoned"
	case Confirming:
		return "confirming"
	case Confirmed:
		return "confirmed"
	case Conflicted:
		return "conflicted"
	case Immature:
		return "immature"
	case MaturesWarning:
		return "matures_warning"
	case NotAccepted:
		return "not_accepted"
	}
	return "unknown"
}

// Status is the confirmation snapshot of a record.
type Status struct {
	State            StatusState
	Depth            int64
	MaturesIn        int64
	OpenFor          int64
	CountsForBalance bool
	// NeedsUpdate stays set until the status is recomputed from the ledger.
	NeedsUpdate bool
	// Height is the chain tip the snapshot was computed at.
	Height int64
}

// RecordType is an opaque tag assigned by the Decomposer.
type RecordType uint8

// Record types assigned by the reference decomposer.
const (
	TypeOther RecordType = iota
	TypeGenerated
	TypeSend
	TypeReceive
	TypeSpend
	TypeSelf
)

func (t RecordType) String() string {
	switch t {
	case TypeOther:
		return "other"
	case TypeGenerated:
		return "generated"
	case TypeSend:
		return "send"
	case TypeReceive:
		return "receive"
	case TypeSpend:
		return "spend"
	case TypeSelf:
		return "self"
	}
	return "unknown"
}

// DisplayRecord is one row of the view. A transaction may produce several.
type DisplayRecord struct {
	ID types.TransactionID
	// Index is the position of the record within its transaction's run.
	Index int
	// Key is the order key of the source transaction.
	Key OrderKey

	Type      RecordType
	Address   string
	Memo      string
	Time      time.Time
	Credit    int64
	Debit     int64
	Status    Status
	Archived  bool
	WatchOnly bool
}

// Net is the effect of the record on the balance.
func (r *DisplayRecord) Net() int64 {
	return r.Credit + r.Debit
}

type encoder struct {
	enc   *scale.Encoder
	total int
	err   error
}

func (w *encoder) write(fn func(*scale.Encoder) (int, error)) {
	if w.err != nil {
		return
	}
	n, err := fn(w.enc)
	w.total += n
	w.err = err
}

func (w *encoder) int64(v int64) {
	w.write(func(e *scale.Encoder) (int, error) { return types.EncodeInt64(e, v) })
}

func (w *encoder) bool(v bool) {
	w.write(func(e *scale.Encoder) (int, error) { return types.EncodeBool(e, v) })
}

func (w *encoder) byte(v byte) {
	w.write(func(e *scale.Encoder) (int, error) { return scale.EncodeByte(e, v) })
}

func (w *encoder) string(v string) {
	w.write(func(e *scale.Encoder) (int, error) { return types.EncodeString(e, v) })
}

// EncodeScale implements scale codec interface.
func (r *DisplayRecord) EncodeScale(e *scale.Encoder) (int, error) {
	w := &encoder{enc: e}
	w.write(r.ID.EncodeScale)
	w.int64(int64(r.Index))
	w.int64(r.Key.Height)
	w.int64(r.Key.Position)
	w.byte(byte(r.Type))
	w.string(r.Address)
	w.string(r.Memo)
	w.int64(r.Time.Unix())
	w.int64(r.Credit)
	w.int64(r.Debit)
	w.byte(byte(r.Status.State))
	w.int64(r.Status.Depth)
	w.int64(r.Status.MaturesIn)
	w.int64(r.Status.OpenFor)
	w.bool(r.Status.CountsForBalance)
	w.bool(r.Status.NeedsUpdate)
	w.int64(r.Status.Height)
	w.bool(r.Archived)
	w.bool(r.WatchOnly)
	return w.total, w.err
}
