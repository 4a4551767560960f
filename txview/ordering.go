package txview

import (
	"cmp"

	"github.com/spacemeshos/go-txview/common/types"
)

// OrderKey places a transaction in chronological order. Confirmed transactions
// use their block position, pending ones sort after the tip.
type OrderKey struct {
	Height   int64
	Position int64
}

// Compare returns -1, 0 or +1.
func (k OrderKey) Compare(other OrderKey) int {
	if c := cmp.Compare(k.Height, other.Height); c != 0 {
		return c
	}
	return cmp.Compare(k.Position, other.Position)
}

// keyAssigner hands out order keys for one refresh. Pending transactions get
// (tip+1, n) with n increasing in ledger iteration order.
type keyAssigner struct {
	tip     int64
	pending int64
}

func newKeyAssigner(tip, pending int64) *keyAssigner {
	return &keyAssigner{tip: tip, pending: pending}
}

func (a *keyAssigner) confirmed(pos types.Position) OrderKey {
	return OrderKey{Height: pos.Height, Position: pos.Index}
}

func (a *keyAssigner) next() OrderKey {
	key := OrderKey{Height: a.tip + 1, Position: a.pending}
	a.pending++
	return key
}

// assign uses the block position only for transactions with confirmations in
// an indexed block, everything else is treated as pending.
func (a *keyAssigner) assign(tx *types.Transaction) OrderKey {
	if tx.Depth != 0 && tx.Block != nil {
		return a.confirmed(*tx.Block)
	}
	return a.next()
}
