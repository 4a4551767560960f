package txview

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spacemeshos/go-txview/common/types"
)

// fakeLedger is an in-memory ledger whose view is the ledger itself.
type fakeLedger struct {
	tip     int64
	active  map[types.TransactionID]*types.Transaction
	archive map[types.TransactionID]*types.Transaction
	busy    bool
	held    int
}

func newFakeLedger(tip int64) *fakeLedger {
	return &fakeLedger{
		tip:     tip,
		active:  map[types.TransactionID]*types.Transaction{},
		archive: map[types.TransactionID]*types.Transaction{},
	}
}

func (l *fakeLedger) Acquire() LedgerView {
	l.held++
	return l
}

func (l *fakeLedger) TryAcquire() (LedgerView, bool) {
	if l.busy {
		return nil, false
	}
	l.held++
	return l, true
}

func (l *fakeLedger) Release() { l.held-- }

func (l *fakeLedger) TipHeight() int64 { return l.tip }

func (l *fakeLedger) ActiveTransactions() []*types.Transaction {
	rst := make([]*types.Transaction, 0, len(l.active))
	for _, tx := range l.active {
		rst = append(rst, tx)
	}
	slices.SortFunc(rst, func(a, b *types.Transaction) int { return a.ID.Compare(b.ID) })
	return rst
}

func (l *fakeLedger) ArchivePoints() []types.ArchivePoint {
	rst := make([]types.ArchivePoint, 0, len(l.archive))
	for id, tx := range l.archive {
		rst = append(rst, types.ArchivePoint{ID: id, Block: tx.Block})
	}
	slices.SortFunc(rst, func(a, b types.ArchivePoint) int { return a.ID.Compare(b.ID) })
	return rst
}

func (l *fakeLedger) Active(id types.TransactionID) (*types.Transaction, bool) {
	tx, ok := l.active[id]
	return tx, ok
}

func (l *fakeLedger) Archived(id types.TransactionID) (*types.Transaction, bool) {
	tx, ok := l.archive[id]
	if !ok || tx.Block == nil {
		return nil, false
	}
	return tx, true
}

func (l *fakeLedger) addConfirmed(id types.TransactionID, height, index int64, entries int) *types.Transaction {
	tx := newTx(id, entries)
	tx.Depth = l.tip - height + 1
	tx.Block = &types.Position{Height: height, Index: index}
	l.active[id] = tx
	return tx
}

func (l *fakeLedger) addPending(id types.TransactionID, entries int) *types.Transaction {
	tx := newTx(id, entries)
	l.active[id] = tx
	return tx
}

func (l *fakeLedger) addArchived(id types.TransactionID, block *types.Position, entries int) *types.Transaction {
	tx := newTx(id, entries)
	tx.Archived = true
	tx.Block = block
	if block != nil {
		tx.Depth = l.tip - block.Height + 1
	}
	l.archive[id] = tx
	return tx
}

func newTx(id types.TransactionID, entries int) *types.Transaction {
	tx := &types.Transaction{
		ID:         id,
		Final:      true,
		Includable: true,
		Time:       time.Unix(1_600_000_000, 0),
		Raw:        id.Bytes()[:4],
	}
	for i := 0; i < entries; i++ {
		tx.Entries = append(tx.Entries, types.Entry{
			Kind:    types.EntryReceive,
			Address: fmt.Sprintf("addr-%d", i),
			Amount:  int64(10 * (i + 1)),
		})
	}
	return tx
}

// fakeDecomposer produces one record per entry.
type fakeDecomposer struct{}

func (fakeDecomposer) Decompose(tx *types.Transaction) []DisplayRecord {
	var rst []DisplayRecord
	for _, e := range tx.Entries {
		rst = append(rst, DisplayRecord{
			ID:      tx.ID,
			Type:    TypeReceive,
			Address: e.Address,
			Credit:  e.Amount,
			Time:    tx.Time,
		})
	}
	return rst
}

func (fakeDecomposer) Status(tx *types.Transaction, tip int64) Status {
	st := Status{Depth: tx.Depth, Height: tip, CountsForBalance: tx.Depth > 0}
	switch {
	case tx.Depth < 0:
		st.State = Conflicted
	case tx.Depth == 0:
		st.State = Unconfirmed
	case tx.Depth < 6:
		st.State = Confirming
	default:
		st.State = Confirmed
	}
	return st
}

func (fakeDecomposer) Describe(tx *types.Transaction, rec DisplayRecord) string {
	return fmt.Sprintf("%s/%d archived=%t", tx.ID.ShortString(), rec.Index, tx.Archived)
}

func txid(b ...byte) types.TransactionID {
	var id types.TransactionID
	copy(id[:], b)
	return id
}

type testCache struct {
	*Cache
	ledger *fakeLedger
	events []RowEvent
	logs   *observer.ObservedLogs
}

func newTestCache(tb testing.TB, ledger *fakeLedger, opts ...Opt) *testCache {
	obs, logs := observer.New(zap.WarnLevel)
	logger := zaptest.NewLogger(tb, zaptest.WrapOptions(zap.WrapCore(
		func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, obs)
		},
	)))
	tc := &testCache{
		Cache:  New(ledger, fakeDecomposer{}, append([]Opt{WithLogger(logger)}, opts...)...),
		ledger: ledger,
		logs:   logs,
	}
	tc.SubscribeRows(func(ev RowEvent) { tc.events = append(tc.events, ev) })
	return tc
}

func (tc *testCache) drainEvents() []RowEvent {
	evs := tc.events
	tc.events = nil
	return evs
}

// requireRuns checks that records are grouped into contiguous runs by id in
// ascending id order, with run-internal indexes in decomposition order.
func requireRuns(tb testing.TB, records []DisplayRecord) {
	tb.Helper()
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		c := prev.ID.Compare(cur.ID)
		require.LessOrEqual(tb, c, 0, "records %d and %d out of id order", i-1, i)
		if c == 0 {
			require.Equal(tb, prev.Index+1, cur.Index, "run of %s broken at %d", cur.ID.ShortString(), i)
		} else {
			require.Zero(tb, cur.Index, "run of %s does not start at index 0", cur.ID.ShortString())
		}
	}
}

func runIDs(records []DisplayRecord) []types.TransactionID {
	var ids []types.TransactionID
	for _, rec := range records {
		if len(ids) == 0 || ids[len(ids)-1] != rec.ID {
			ids = append(ids, rec.ID)
		}
	}
	return ids
}
