package ledger

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-txview/codec"
	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/log"
)

// view holds both ledger locks until Release. Transactions it returns are
// owned by the ledger and must not be retained past Release.
type view struct {
	m    *Memory
	once sync.Once
}

func (v *view) TipHeight() int64 {
	return v.m.tip
}

// ActiveTransactions returns the active store in id order.
func (v *view) ActiveTransactions() []*types.Transaction {
	rst := make([]*types.Transaction, 0, len(v.m.active))
	for _, id := range slices.SortedFunc(maps.Keys(v.m.active), types.TransactionID.Compare) {
		rst = append(rst, v.m.active[id])
	}
	return rst
}

// ArchivePoints lists archived transactions in id order. Points whose block is
// not in the index have a nil block.
func (v *view) ArchivePoints() []types.ArchivePoint {
	rst := make([]types.ArchivePoint, 0, len(v.m.archive))
	for _, id := range slices.SortedFunc(maps.Keys(v.m.archive), types.TransactionID.Compare) {
		point := types.ArchivePoint{ID: id}
		if block := v.m.archive[id].block; v.known(block) {
			pos := *block
			point.Block = &pos
		}
		rst = append(rst, point)
	}
	return rst
}

func (v *view) known(pos *types.Position) bool {
	if pos == nil {
		return false
	}
	_, ok := v.m.blocks[pos.Block]
	return ok
}

func (v *view) Active(id types.TransactionID) (*types.Transaction, bool) {
	tx, ok := v.m.active[id]
	return tx, ok
}

func (v *view) Archived(id types.TransactionID) (*types.Transaction, bool) {
	entry, ok := v.m.archive[id]
	if !ok || !v.known(entry.block) {
		return nil, false
	}
	tx, ok := v.m.decoded.Get(id)
	if ok {
		archiveCacheHits.WithLabelValues("hit").Inc()
	} else {
		archiveCacheHits.WithLabelValues("miss").Inc()
		var err error
		tx, err = codec.DecodeNew[types.Transaction](entry.blob)
		if err != nil {
			v.m.logger.Error("failed to decode archived transaction",
				log.ZShortStringer("id", id),
				zap.Error(err),
			)
			return nil, false
		}
		v.m.decoded.Add(id, tx)
	}
	tx.Depth = v.m.depth(tx.Block)
	return tx, true
}

// Release is safe to call more than once.
func (v *view) Release() {
	v.once.Do(v.m.unlock)
}
