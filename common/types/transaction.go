package types

import (
	"bytes"
	"time"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
)

// TransactionID is a 32-byte hash of the transaction, used as an identifier.
type TransactionID Hash32

const (
	// TransactionIDSize in bytes.
	TransactionIDSize = Hash32Length
)

// Hash32 returns the TransactionID as a Hash32.
func (id TransactionID) Hash32() Hash32 {
	return Hash32(id)
}

// ShortString returns the first 5 characters of the ID, for logging purposes.
func (id TransactionID) ShortString() string {
	return id.Hash32().ShortString()
}

// String returns a hexadecimal representation of the TransactionID with "0x" prepended, for logging purposes.
// It implements the fmt.Stringer interface.
func (id TransactionID) String() string {
	return id.Hash32().String()
}

// Bytes returns the TransactionID as a byte slice.
func (id TransactionID) Bytes() []byte {
	return id[:]
}

// Compare orders ids lexicographically. It returns -1, 0 or +1.
func (id TransactionID) Compare(other TransactionID) int {
	return bytes.Compare(id[:], other[:])
}

// EncodeScale implements scale codec interface.
func (id *TransactionID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *TransactionID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}

// Position locates a transaction inside an indexed block.
type Position struct {
	Block  Hash32
	Height int64
	Index  int64
}

// EntryKind is the direction of value movement described by an Entry.
type EntryKind uint8

const (
	// EntryReceive is value arriving at one of the wallet addresses.
	EntryReceive EntryKind = iota
	// EntrySend is value leaving the wallet to an address.
	EntrySend
	// EntrySpend is a wallet-owned output consumed by the transaction.
	EntrySpend
)

func (k EntryKind) String() string {
	switch k {
	case EntryReceive:
		return "receive"
	case EntrySend:
		return "send"
	case EntrySpend:
		return "spend"
	}
	return "unknown"
}

// Entry is a single value movement inside a transaction, as seen by the wallet.
type Entry struct {
	Kind      EntryKind
	Address   string
	Amount    int64
	Memo      string
	Mine      bool
	WatchOnly bool
}

// Transaction is the wallet's view of a ledger transaction, active or archived.
type Transaction struct {
	ID TransactionID
	// Depth is the number of confirmations. Zero for pending and negative
	// for transactions conflicted out of the main chain.
	Depth int64
	// Block is nil when the containing block is unknown or not indexed.
	Block *Position
	// Final is false while the transaction is locked by time or height.
	Final bool
	// LockHeight is the height the transaction is open until, when not final.
	LockHeight int64
	// Includable is the ledger's trust verdict for display.
	Includable bool
	Coinbase   bool
	Abandoned  bool
	Archived   bool
	Time       time.Time
	Raw        []byte
	Entries    []Entry
}

// Confirmed reports whether the transaction is in an indexed block.
func (t *Transaction) Confirmed() bool {
	return t.Depth > 0 && t.Block != nil
}

// MarshalLogObject implements logging interface.
func (t *Transaction) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("id", t.ID.String())
	encoder.AddInt64("depth", t.Depth)
	if t.Block != nil {
		encoder.AddInt64("height", t.Block.Height)
		encoder.AddInt64("index", t.Block.Index)
	}
	encoder.AddBool("final", t.Final)
	encoder.AddBool("archived", t.Archived)
	encoder.AddInt("entries", len(t.Entries))
	return nil
}

// ChangeType is the kind of change the ledger reports for a transaction.
type ChangeType uint8

const (
	// ChangeNew is reported for a transaction the wallet has not seen before.
	ChangeNew ChangeType = iota
	// ChangeUpdated is reported when an existing transaction changed state.
	ChangeUpdated
	// ChangeDeleted is reported when a transaction was removed from the wallet.
	ChangeDeleted
)

func (c ChangeType) String() string {
	switch c {
	case ChangeNew:
		return "new"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	}
	return "unknown"
}

// TxChange is a ledger notification about a single transaction.
type TxChange struct {
	ID     TransactionID
	Status ChangeType
	// Visible is the ledger's verdict whether the transaction should be shown,
	// computed while the ledger holds its own locks.
	Visible bool
}

// MarshalLogObject implements logging interface.
func (c TxChange) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("id", c.ID.ShortString())
	encoder.AddString("status", c.Status.String())
	encoder.AddBool("visible", c.Visible)
	return nil
}

const (
	// ProgressStart marks the start of a bulk operation.
	ProgressStart = 0
	// ProgressDone marks the end of a bulk operation.
	ProgressDone = 100
)

// Progress reports advancement of a long running ledger operation such as a rescan.
type Progress struct {
	Title   string
	Percent int
}

// ArchivePoint locates an archived transaction. Block is nil when the
// containing block is unknown or not indexed.
type ArchivePoint struct {
	ID    TransactionID
	Block *Position
}
