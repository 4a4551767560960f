package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/txview"
)

const (
	// RecommendedConfirmations is the depth at which a transaction is shown as confirmed.
	RecommendedConfirmations = 6
	// CoinbaseMaturity is the depth at which a coinbase output becomes spendable.
	CoinbaseMaturity = 100
	// lockTimeThreshold separates lock heights from lock timestamps.
	lockTimeThreshold = 500_000_000
)

// Decomposer turns ledger transactions into display records, one per entry.
type Decomposer struct {
	Confirmations int64
	Maturity      int64
}

var _ txview.Decomposer = (*Decomposer)(nil)

// NewDecomposer returns a decomposer with the default confirmation and maturity depths.
func NewDecomposer() *Decomposer {
	return &Decomposer{Confirmations: RecommendedConfirmations, Maturity: CoinbaseMaturity}
}

// Decompose returns one record per entry, in entry order. A coinbase without
// entries yields a single zero amount record.
func (d *Decomposer) Decompose(tx *types.Transaction) []txview.DisplayRecord {
	if len(tx.Entries) == 0 {
		if tx.Coinbase {
			return []txview.DisplayRecord{{ID: tx.ID, Type: txview.TypeOther, Time: tx.Time}}
		}
		return nil
	}
	records := make([]txview.DisplayRecord, 0, len(tx.Entries))
	for _, e := range tx.Entries {
		rec := txview.DisplayRecord{
			ID:        tx.ID,
			Address:   e.Address,
			Memo:      e.Memo,
			Time:      tx.Time,
			WatchOnly: e.WatchOnly,
		}
		switch e.Kind {
		case types.EntryReceive:
			rec.Type = txview.TypeReceive
			if tx.Coinbase {
				rec.Type = txview.TypeGenerated
			}
			rec.Credit = e.Amount
		case types.EntrySend:
			rec.Type = txview.TypeSend
			if e.Mine {
				rec.Type = txview.TypeSelf
			}
			rec.Debit = -e.Amount
		case types.EntrySpend:
			rec.Type = txview.TypeSpend
			rec.Debit = -e.Amount
		default:
			rec.Type = txview.TypeOther
		}
		records = append(records, rec)
	}
	return records
}

// Status computes the display status of tx at chain height tip.
func (d *Decomposer) Status(tx *types.Transaction, tip int64) txview.Status {
	st := txview.Status{Depth: tx.Depth, Height: tip}
	immature := tx.Coinbase && tx.Depth < d.Maturity
	st.CountsForBalance = tx.Final && tx.Depth > 0 && !immature
	switch {
	case !tx.Final && tx.LockHeight < lockTimeThreshold:
		st.State = txview.OpenUntilBlock
		st.OpenFor = tx.LockHeight - tip
	case !tx.Final:
		st.State = txview.OpenUntilDate
		st.OpenFor = tx.LockHeight
	case tx.Coinbase && tx.Depth < 0:
		st.State = txview.NotAccepted
	case tx.Coinbase && tx.Depth == 0:
		st.State = txview.MaturesWarning
		st.MaturesIn = d.Maturity
	case immature:
		st.State = txview.Immature
		st.MaturesIn = d.Maturity - tx.Depth
	case tx.Depth < 0:
		st.State = txview.Conflicted
	case tx.Depth == 0 && tx.Abandoned:
		st.State = txview.Abandoned
	case tx.Depth == 0:
		st.State = txview.Unconfirmed
	case tx.Depth < d.Confirmations:
		st.State = txview.Confirming
	default:
		st.State = txview.Confirmed
	}
	return st
}

// Describe renders a human readable summary of rec.
func (d *Decomposer) Describe(tx *types.Transaction, rec txview.DisplayRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s", d.describeStatus(rec.Status))
	if tx.Archived {
		b.WriteString(", archived")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Date: %s\n", tx.Time.UTC().Format(time.RFC3339))
	if tx.Block != nil {
		fmt.Fprintf(&b, "Block: %s at height %d, position %d\n", tx.Block.Block.ShortString(), tx.Block.Height, tx.Block.Index)
	}
	if rec.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", rec.Address)
	}
	if rec.Credit != 0 {
		fmt.Fprintf(&b, "Credit: %d\n", rec.Credit)
	}
	if rec.Debit != 0 {
		fmt.Fprintf(&b, "Debit: %d\n", rec.Debit)
	}
	fmt.Fprintf(&b, "Net amount: %d\n", rec.Net())
	if rec.Memo != "" {
		fmt.Fprintf(&b, "Memo: %s\n", rec.Memo)
	}
	fmt.Fprintf(&b, "Transaction ID: %s\n", tx.ID.Hash32().Hex())
	fmt.Fprintf(&b, "Output index: %d\n", rec.Index)
	return b.String()
}

func (d *Decomposer) describeStatus(st txview.Status) string {
	switch st.State {
	case txview.OpenUntilBlock:
		return fmt.Sprintf("open for %d more blocks", st.OpenFor)
	case txview.OpenUntilDate:
		return fmt.Sprintf("open until %s", time.Unix(st.OpenFor, 0).UTC().Format(time.RFC3339))
	case txview.Confirming:
		return fmt.Sprintf("%d/%d confirmations", st.Depth, d.Confirmations)
	case txview.Confirmed:
		return fmt.Sprintf("%d confirmations", st.Depth)
	case txview.Immature:
		return fmt.Sprintf("matures in %d more blocks", st.MaturesIn)
	}
	return st.State.String()
}
