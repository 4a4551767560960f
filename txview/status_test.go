package txview

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-txview/common/types"
)

func TestRecordAt_RecomputesStaleStatus(t *testing.T) {
	tc := populated(t)
	tc.ApplyChange(types.TxChange{ID: txid(0x30), Status: types.ChangeUpdated, Visible: true})
	tc.ledger.active[txid(0x30)].Depth = 10

	rec, ok := tc.RecordAt(5)
	require.True(t, ok)
	require.False(t, rec.Status.NeedsUpdate)
	require.Equal(t, Confirmed, rec.Status.State)
	require.EqualValues(t, 10, rec.Status.Depth)

	// the recomputed status is kept
	require.False(t, tc.Records()[5].Status.NeedsUpdate)
	require.Zero(t, tc.ledger.held)
}

func TestRecordAt_FreshRecordSkipsLedger(t *testing.T) {
	tc := populated(t)
	ctrl := gomock.NewController(t)
	tc.Cache.ledger = NewMockLedger(ctrl)

	rec, ok := tc.RecordAt(0)
	require.True(t, ok)
	require.Equal(t, txid(0x10), rec.ID)
}

func TestRecordAt_LedgerBusy(t *testing.T) {
	tc := populated(t)
	tc.ApplyChange(types.TxChange{ID: txid(0x20), Status: types.ChangeUpdated, Visible: true})
	before := tc.Records()[3].Status

	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	ledger.EXPECT().TryAcquire().Return(nil, false).Times(2)
	tc.Cache.ledger = ledger

	for range 2 {
		rec, ok := tc.RecordAt(3)
		require.True(t, ok)
		require.True(t, rec.Status.NeedsUpdate)
		require.Equal(t, before, rec.Status)
	}
}

func TestRecordAt_RetriesAfterBusy(t *testing.T) {
	tc := populated(t)
	tc.ApplyChange(types.TxChange{ID: txid(0x10), Status: types.ChangeUpdated, Visible: true})

	tc.ledger.busy = true
	rec, _ := tc.RecordAt(0)
	require.True(t, rec.Status.NeedsUpdate)

	tc.ledger.busy = false
	rec, _ = tc.RecordAt(0)
	require.False(t, rec.Status.NeedsUpdate)
	require.Zero(t, tc.ledger.held)
}

func TestRecordAt_InactiveStaysStale(t *testing.T) {
	ledger := newFakeLedger(20)
	ledger.addArchived(txid(1), &types.Position{Height: 3}, 1)
	tc := newTestCache(t, ledger)
	tc.Refresh()
	tc.UpdateConfirmations()

	rec, ok := tc.RecordAt(0)
	require.True(t, ok)
	require.True(t, rec.Archived)
	require.True(t, rec.Status.NeedsUpdate)
	require.Zero(t, ledger.held)
}

func TestRecordAt_OutOfRange(t *testing.T) {
	tc := populated(t)
	for _, row := range []int{-1, 6, 100} {
		_, ok := tc.RecordAt(row)
		require.False(t, ok, "row %d", row)
	}
}

func TestUpdateConfirmations(t *testing.T) {
	tc := populated(t)
	tc.UpdateConfirmations()

	for _, rec := range tc.Records() {
		require.True(t, rec.Status.NeedsUpdate)
	}
	require.Equal(t, []RowEvent{{Kind: RowsChanged, Start: 0, End: 6}}, tc.drainEvents())

	tc.ledger.tip = 40
	rec, _ := tc.RecordAt(0)
	require.EqualValues(t, 40, rec.Status.Height)
}

func TestUpdateConfirmations_Empty(t *testing.T) {
	tc := newTestCache(t, newFakeLedger(1))
	tc.Refresh()
	tc.drainEvents()

	tc.UpdateConfirmations()
	require.Empty(t, tc.drainEvents())
}

func TestDescribe(t *testing.T) {
	tc := populated(t)

	desc, err := tc.Describe(3)
	require.NoError(t, err)
	require.Equal(t, txid(0x20).ShortString()+"/1 archived=false", desc)

	_, err = tc.Describe(6)
	require.ErrorIs(t, err, ErrRowOutOfRange)

	delete(tc.ledger.active, txid(0x30))
	_, err = tc.Describe(5)
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, tc.ledger.held)
}

func TestDescribe_PrefersArchive(t *testing.T) {
	ledger := newFakeLedger(20)
	ledger.addArchived(txid(1), &types.Position{Height: 3}, 1)
	tc := newTestCache(t, ledger)
	tc.Refresh()
	// reappears in the active store after a reorg
	ledger.addPending(txid(1), 1)

	desc, err := tc.Describe(0)
	require.NoError(t, err)
	require.Contains(t, desc, "archived=true")
}

func TestRawTx(t *testing.T) {
	ledger := newFakeLedger(20)
	ledger.addConfirmed(txid(0xde, 0xad, 0xbe, 0xef), 5, 0, 1)
	ledger.addArchived(txid(0xff), &types.Position{Height: 3}, 1)
	tc := newTestCache(t, ledger)
	tc.Refresh()

	raw, err := tc.RawTx(0)
	require.NoError(t, err)
	require.Equal(t, "deadbeef", raw)

	_, err = tc.RawTx(1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = tc.RawTx(-1)
	require.ErrorIs(t, err, ErrRowOutOfRange)
}
