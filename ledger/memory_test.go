package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/go-txview/common/types"
)

func newTestLedger(tb testing.TB, opts ...Opt) *Memory {
	tb.Helper()
	m, err := New(append([]Opt{WithLogger(zaptest.NewLogger(tb))}, opts...)...)
	require.NoError(tb, err)
	return m
}

func testTx(id byte, entries ...types.Entry) *types.Transaction {
	if len(entries) == 0 {
		entries = []types.Entry{{Kind: types.EntryReceive, Address: "addr", Amount: 100}}
	}
	return &types.Transaction{
		ID:         types.TransactionID{id},
		Final:      true,
		Includable: true,
		Time:       time.Unix(1_700_000_000, 0),
		Raw:        []byte{id, 0xff},
		Entries:    entries,
	}
}

func block(b byte) types.Hash32 {
	return types.Hash32{0xb0, b}
}

func collectChanges(m *Memory) *[]types.TxChange {
	var changes []types.TxChange
	m.SubscribeChanges(func(c types.TxChange) { changes = append(changes, c) })
	return &changes
}

func TestTryAcquire_BacksOut(t *testing.T) {
	m := newTestLedger(t)

	m.wallet.Lock()
	_, ok := m.TryAcquire()
	require.False(t, ok)
	require.True(t, m.chain.TryLock(), "chain lock left held after failed wallet acquisition")
	m.chain.Unlock()
	m.wallet.Unlock()

	m.chain.Lock()
	_, ok = m.TryAcquire()
	require.False(t, ok)
	m.chain.Unlock()

	view, ok := m.TryAcquire()
	require.True(t, ok)
	_, ok = m.TryAcquire()
	require.False(t, ok)
	view.Release()
	view.Release()

	view, ok = m.TryAcquire()
	require.True(t, ok)
	view.Release()
}

func TestAddTransaction(t *testing.T) {
	m := newTestLedger(t)
	changes := collectChanges(m)

	m.AddTransaction(testTx(1))
	locked := testTx(2)
	locked.Final = false
	m.AddTransaction(locked)
	m.AddTransaction(testTx(1))

	require.Equal(t, []types.TxChange{
		{ID: types.TransactionID{1}, Status: types.ChangeNew, Visible: true},
		{ID: types.TransactionID{2}, Status: types.ChangeNew, Visible: false},
		{ID: types.TransactionID{1}, Status: types.ChangeUpdated, Visible: true},
	}, *changes)

	view := m.Acquire()
	defer view.Release()
	txs := view.ActiveTransactions()
	require.Len(t, txs, 2)
	require.Equal(t, types.TransactionID{1}, txs[0].ID)
	require.Equal(t, types.TransactionID{2}, txs[1].ID)
	require.Zero(t, txs[0].Depth)
}

func TestAddTransaction_CopiesInput(t *testing.T) {
	m := newTestLedger(t)
	tx := testTx(1)
	m.AddTransaction(tx)
	tx.Entries[0].Amount = 1

	view := m.Acquire()
	defer view.Release()
	stored, ok := view.Active(tx.ID)
	require.True(t, ok)
	require.EqualValues(t, 100, stored.Entries[0].Amount)
}

func TestConnectBlock(t *testing.T) {
	m := newTestLedger(t)
	m.AddTransaction(testTx(1))
	m.AddTransaction(testTx(2))
	changes := collectChanges(m)
	var tips []int64
	m.SubscribeTip(func(h int64) { tips = append(tips, h) })

	require.EqualValues(t, 1, m.ConnectBlock(block(1), []types.TransactionID{{2}, {9}, {1}}))
	require.EqualValues(t, 2, m.ConnectBlock(block(2), nil))

	require.Equal(t, []types.TxChange{
		{ID: types.TransactionID{2}, Status: types.ChangeUpdated, Visible: true},
		{ID: types.TransactionID{1}, Status: types.ChangeUpdated, Visible: true},
	}, *changes)
	require.Equal(t, []int64{1, 2}, tips)

	view := m.Acquire()
	defer view.Release()
	tx, ok := view.Active(types.TransactionID{1})
	require.True(t, ok)
	require.EqualValues(t, 2, tx.Depth)
	require.Equal(t, &types.Position{Block: block(1), Height: 1, Index: 2}, tx.Block)
	require.EqualValues(t, 2, view.TipHeight())
}

func TestConfirmTransaction(t *testing.T) {
	m := newTestLedger(t)
	m.AddTransaction(testTx(1))
	m.ConnectBlock(block(1), nil)
	m.ConnectBlock(block(2), nil)

	require.ErrorIs(t, m.ConfirmTransaction(types.TransactionID{1}, block(7), 0), ErrUnknownBlock)
	require.ErrorIs(t, m.ConfirmTransaction(types.TransactionID{7}, block(1), 0), ErrNotFound)
	require.NoError(t, m.ConfirmTransaction(types.TransactionID{1}, block(1), 4))

	view := m.Acquire()
	defer view.Release()
	tx, _ := view.Active(types.TransactionID{1})
	require.EqualValues(t, 2, tx.Depth)
	require.EqualValues(t, 4, tx.Block.Index)
}

func TestConflict(t *testing.T) {
	m := newTestLedger(t)
	m.AddTransaction(testTx(1))
	changes := collectChanges(m)

	require.NoError(t, m.Conflict(types.TransactionID{1}))
	require.ErrorIs(t, m.Conflict(types.TransactionID{2}), ErrNotFound)
	require.Equal(t, []types.TxChange{{ID: types.TransactionID{1}, Status: types.ChangeUpdated, Visible: false}}, *changes)

	// conflicted transactions are not confirmed by later blocks
	m.ConnectBlock(block(1), nil)
	view := m.Acquire()
	defer view.Release()
	tx, _ := view.Active(types.TransactionID{1})
	require.EqualValues(t, -1, tx.Depth)
}

func TestArchive(t *testing.T) {
	m := newTestLedger(t)
	orig := testTx(1, types.Entry{Kind: types.EntrySend, Address: "to", Amount: 7, Memo: "rent"})
	m.AddTransaction(orig)
	m.AddTransaction(testTx(2))
	m.ConnectBlock(block(1), []types.TransactionID{{1}})
	changes := collectChanges(m)

	require.Error(t, m.Archive(types.TransactionID{2}))
	require.ErrorIs(t, m.Archive(types.TransactionID{3}), ErrNotFound)
	require.NoError(t, m.Archive(types.TransactionID{1}))
	require.Equal(t, []types.TxChange{{ID: types.TransactionID{1}, Status: types.ChangeUpdated, Visible: true}}, *changes)

	active, archived := m.Len()
	require.Equal(t, 1, active)
	require.Equal(t, 1, archived)

	m.ConnectBlock(block(2), nil)
	view := m.Acquire()
	defer view.Release()
	_, ok := view.Active(types.TransactionID{1})
	require.False(t, ok)
	require.Equal(t, []types.ArchivePoint{
		{ID: types.TransactionID{1}, Block: &types.Position{Block: block(1), Height: 1}},
	}, view.ArchivePoints())

	for range 2 {
		tx, ok := view.Archived(types.TransactionID{1})
		require.True(t, ok)
		require.True(t, tx.Archived)
		require.EqualValues(t, 2, tx.Depth)
		require.Equal(t, orig.Entries, tx.Entries)
		require.Equal(t, orig.Raw, tx.Raw)
		require.True(t, orig.Time.Equal(tx.Time))
	}
	require.Equal(t, 1, m.decoded.Len())
}

func TestDisconnectTip(t *testing.T) {
	m := newTestLedger(t)
	_, err := m.DisconnectTip()
	require.ErrorIs(t, err, ErrUnknownBlock)

	m.AddTransaction(testTx(1))
	m.AddTransaction(testTx(2))
	m.ConnectBlock(block(1), []types.TransactionID{{1}})
	m.ConnectBlock(block(2), []types.TransactionID{{2}})
	require.NoError(t, m.Archive(types.TransactionID{1}))
	m.ConnectBlock(block(3), nil)
	_, err = m.DisconnectTip()
	require.NoError(t, err)

	changes := collectChanges(m)
	_, err = m.DisconnectTip()
	require.NoError(t, err)
	hash, err := m.DisconnectTip()
	require.NoError(t, err)
	require.Equal(t, block(1), hash)

	require.Equal(t, []types.TxChange{
		{ID: types.TransactionID{2}, Status: types.ChangeUpdated, Visible: true},
		{ID: types.TransactionID{1}, Status: types.ChangeUpdated, Visible: false},
	}, *changes)

	view := m.Acquire()
	defer view.Release()
	require.Zero(t, view.TipHeight())
	tx, _ := view.Active(types.TransactionID{2})
	require.Nil(t, tx.Block)
	require.Zero(t, tx.Depth)
	_, ok := view.Archived(types.TransactionID{1})
	require.False(t, ok)
	require.Nil(t, view.ArchivePoints()[0].Block)
}

func TestErase(t *testing.T) {
	m := newTestLedger(t)
	m.AddTransaction(testTx(1))
	m.AddTransaction(testTx(2))
	m.ConnectBlock(block(1), []types.TransactionID{{2}})
	require.NoError(t, m.Archive(types.TransactionID{2}))
	changes := collectChanges(m)

	require.NoError(t, m.Erase(types.TransactionID{1}))
	require.NoError(t, m.Erase(types.TransactionID{2}))
	require.ErrorIs(t, m.Erase(types.TransactionID{2}), ErrNotFound)

	require.Equal(t, []types.TxChange{
		{ID: types.TransactionID{1}, Status: types.ChangeDeleted},
		{ID: types.TransactionID{2}, Status: types.ChangeDeleted},
	}, *changes)
	active, archived := m.Len()
	require.Zero(t, active)
	require.Zero(t, archived)
}

func TestRescan(t *testing.T) {
	m := newTestLedger(t)
	var progress []int
	m.SubscribeProgress(func(p types.Progress) { progress = append(progress, p.Percent) })
	changes := collectChanges(m)

	var found []*types.Transaction
	for i := range 4 {
		found = append(found, testTx(byte(i+1)))
	}
	require.NoError(t, m.Rescan(context.Background(), found))

	require.Equal(t, []int{0, 25, 50, 75, 100}, progress)
	require.Len(t, *changes, 4)
}

func TestRescan_Cancelled(t *testing.T) {
	m := newTestLedger(t)
	ctx, cancel := context.WithCancel(context.Background())
	var progress []int
	m.SubscribeProgress(func(p types.Progress) { progress = append(progress, p.Percent) })
	m.SubscribeChanges(func(types.TxChange) { cancel() })

	err := m.Rescan(ctx, []*types.Transaction{testTx(1), testTx(2), testTx(3)})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, types.ProgressDone, progress[len(progress)-1])
	active, _ := m.Len()
	require.Equal(t, 1, active)
}

func TestDisconnectTip_ChangesInIDOrder(t *testing.T) {
	m := newTestLedger(t)
	for _, id := range []byte{3, 1, 2} {
		m.AddTransaction(testTx(id))
	}
	m.AddTransaction(testTx(9))
	m.ConnectBlock(block(1), []types.TransactionID{{3}, {1}, {2}})
	changes := collectChanges(m)

	hash, err := m.DisconnectTip()
	require.NoError(t, err)
	require.Equal(t, block(1), hash)
	require.Equal(t, []types.TxChange{
		{ID: types.TransactionID{1}, Status: types.ChangeUpdated, Visible: true},
		{ID: types.TransactionID{2}, Status: types.ChangeUpdated, Visible: true},
		{ID: types.TransactionID{3}, Status: types.ChangeUpdated, Visible: true},
	}, *changes)
}
