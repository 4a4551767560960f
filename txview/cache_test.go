package txview

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-txview/common/types"
)

func TestRefresh_Scenario(t *testing.T) {
	ledger := newFakeLedger(12)
	a, b, c := txid(0xa), txid(0xb), txid(0xc)
	ledger.addConfirmed(a, 10, 2, 1)
	ledger.addConfirmed(b, 12, 5, 1)
	ledger.addPending(c, 1)

	tc := newTestCache(t, ledger)
	tc.Refresh()

	chrono := tc.Chronological()
	require.Equal(t, []types.TransactionID{c, b, a}, runIDs(chrono))
	require.Equal(t, OrderKey{Height: 13, Position: 0}, chrono[0].Key)
	require.Equal(t, OrderKey{Height: 12, Position: 5}, chrono[1].Key)
	require.Equal(t, OrderKey{Height: 10, Position: 2}, chrono[2].Key)

	require.Equal(t, []types.TransactionID{a, b, c}, runIDs(tc.Records()))
	require.Equal(t, []RowEvent{{Kind: RowsReset, Start: 0, End: 3}}, tc.drainEvents())
	require.Zero(t, ledger.held)
}

func TestRefresh_UnconfirmedSortAfterConfirmed(t *testing.T) {
	ledger := newFakeLedger(100)
	first, second := txid(0x02), txid(0x01)
	ledger.addPending(first, 1)
	ledger.addPending(second, 1)
	// confirmed, but its block is not indexed
	unindexed := txid(0x03)
	ledger.addPending(unindexed, 1).Depth = 4
	ledger.addConfirmed(txid(0x04), 100, 0, 1)

	tc := newTestCache(t, ledger)
	tc.Refresh()

	chrono := tc.Chronological()
	// pending keys are assigned in ledger iteration order, which is by id
	require.Equal(t, []types.TransactionID{unindexed, first, second, txid(0x04)}, runIDs(chrono))
	for _, rec := range chrono[:3] {
		require.EqualValues(t, 101, rec.Key.Height)
	}
}

func TestRefresh_Filters(t *testing.T) {
	ledger := newFakeLedger(50)
	ledger.addConfirmed(txid(1), 10, 0, 1).Final = false
	ledger.addConfirmed(txid(2), 11, 0, 1).Includable = false
	conflicted := ledger.addConfirmed(txid(3), 12, 0, 1)
	conflicted.Depth = -1
	ledger.addArchived(txid(4), nil, 1)
	ledger.addArchived(txid(5), &types.Position{Height: 5, Index: 1}, 2)
	ledger.addConfirmed(txid(6), 20, 0, 0)
	ledger.addConfirmed(txid(7), 21, 0, 1)

	tc := newTestCache(t, ledger)
	tc.Refresh()

	records := tc.Records()
	require.Equal(t, []types.TransactionID{txid(5), txid(7)}, runIDs(records))
	require.True(t, records[0].Archived)
	require.True(t, records[1].Archived)
	require.False(t, records[2].Archived)
	requireRuns(t, records)
}

func TestRefresh_ActiveSupersedesArchive(t *testing.T) {
	ledger := newFakeLedger(50)
	pos := &types.Position{Height: 30, Index: 2}
	ledger.addArchived(txid(9), pos, 3)
	ledger.addConfirmed(txid(9), 30, 2, 1)

	tc := newTestCache(t, ledger)
	tc.Refresh()

	records := tc.Records()
	require.Len(t, records, 1)
	require.False(t, records[0].Archived)
}

func TestRefresh_DuplicateIDUnderTwoKeys(t *testing.T) {
	ledger := newFakeLedger(50)
	// archived at one block, reorganized into the mempool
	ledger.addArchived(txid(9), &types.Position{Height: 30, Index: 2}, 2)
	ledger.addPending(txid(9), 2)

	tc := newTestCache(t, ledger)
	tc.Refresh()

	records := tc.Records()
	require.Len(t, records, 2)
	requireRuns(t, records)
	require.EqualValues(t, 51, records[0].Key.Height)
}

func TestRefresh_Cap(t *testing.T) {
	ledger := newFakeLedger(300)
	for i := 0; i < 250; i++ {
		ledger.addConfirmed(txid(byte(i), byte(i>>8), 0x55), int64(i+1), 0, 2)
	}

	tc := newTestCache(t, ledger)
	tc.Refresh()

	records := tc.Records()
	require.Len(t, records, 400)
	require.Len(t, runIDs(records), 200)
	requireRuns(t, records)
	chrono := tc.Chronological()
	require.EqualValues(t, 250, chrono[0].Key.Height)
	require.EqualValues(t, 51, chrono[len(chrono)-1].Key.Height)
}

func TestRefresh_CapNeverSplitsTransaction(t *testing.T) {
	ledger := newFakeLedger(10)
	for i := 1; i <= 5; i++ {
		ledger.addConfirmed(txid(byte(i)), int64(i), 0, 3)
	}

	tc := newTestCache(t, ledger, WithConfig(Config{Cap: 2}))
	tc.Refresh()

	records := tc.Records()
	require.Len(t, records, 6)
	require.Equal(t, []types.TransactionID{txid(4), txid(5)}, runIDs(records))
}

func TestRefresh_Idempotent(t *testing.T) {
	ledger := newFakeLedger(40)
	for i := 0; i < 30; i++ {
		if i%4 == 0 {
			ledger.addPending(txid(byte(i), 1), 1+i%3)
			continue
		}
		ledger.addConfirmed(txid(byte(i), 2), int64(i), int64(i%3), 1+i%3)
	}
	tc := newTestCache(t, ledger)

	tc.Refresh()
	first := tc.Records()
	digest1, err := tc.Digest()
	require.NoError(t, err)

	tc.Refresh()
	digest2, err := tc.Digest()
	require.NoError(t, err)

	require.Equal(t, digest1, digest2)
	require.Empty(t, cmp.Diff(first, tc.Records()))
}

func TestRefresh_ReplacesContents(t *testing.T) {
	ledger := newFakeLedger(40)
	ledger.addConfirmed(txid(1), 10, 0, 1)
	tc := newTestCache(t, ledger)
	tc.Refresh()

	delete(ledger.active, txid(1))
	ledger.addConfirmed(txid(2), 11, 0, 2)
	tc.Refresh()

	require.Equal(t, []types.TransactionID{txid(2)}, runIDs(tc.Records()))
	require.Equal(t, 2, tc.Size())
}

func TestDigest_ChangesWithContent(t *testing.T) {
	ledger := newFakeLedger(40)
	ledger.addConfirmed(txid(1), 10, 0, 1)
	tc := newTestCache(t, ledger)
	tc.Refresh()
	before, err := tc.Digest()
	require.NoError(t, err)

	tc.ApplyChange(types.TxChange{ID: txid(1), Status: types.ChangeUpdated, Visible: true})
	after, err := tc.Digest()
	require.NoError(t, err)
	require.NotEqual(t, before, after)
}

func TestCache_OrderingInvariantUnderRandomChanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	ledger := newFakeLedger(1000)
	for i := 0; i < 40; i++ {
		ledger.addConfirmed(txid(byte(rng.IntN(256)), byte(i)), int64(i+1), 0, 1+rng.IntN(3))
	}
	tc := newTestCache(t, ledger)
	tc.Refresh()

	for i := 0; i < 500; i++ {
		id := txid(byte(rng.IntN(256)), byte(rng.IntN(60)))
		switch rng.IntN(3) {
		case 0:
			if _, ok := ledger.active[id]; !ok {
				ledger.addPending(id, 1+rng.IntN(4))
			}
			tc.ApplyChange(types.TxChange{ID: id, Status: types.ChangeNew, Visible: true})
		case 1:
			delete(ledger.active, id)
			tc.ApplyChange(types.TxChange{ID: id, Status: types.ChangeDeleted, Visible: false})
		case 2:
			_, visible := ledger.active[id]
			tc.ApplyChange(types.TxChange{ID: id, Status: types.ChangeUpdated, Visible: visible})
		}
		requireRuns(t, tc.Records())
	}
	require.Zero(t, ledger.held)
}
