package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/go-txview/common/types"
)

func newTestSimulator(tb testing.TB, cfg SimConfig) (*Simulator, *Memory, clockwork.FakeClock) {
	m := newTestLedger(tb)
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	sim := NewSimulator(m,
		WithSimLogger(zaptest.NewLogger(tb)),
		WithSimConfig(cfg),
		WithClock(clock),
	)
	return sim, m, clock
}

func TestSimulator_Step(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.ConfirmPercent = 100
	cfg.ArchiveDepth = 2
	sim, m, _ := newTestSimulator(t, cfg)

	require.EqualValues(t, 1, sim.Step())
	active, archived := m.Len()
	require.Equal(t, 1+cfg.TxPerBlock, active)
	require.Zero(t, archived)

	require.EqualValues(t, 2, sim.Step())
	require.EqualValues(t, 3, sim.Step())
	require.EqualValues(t, 4, sim.Step())

	view := m.Acquire()
	defer view.Release()
	for _, tx := range view.ActiveTransactions() {
		require.LessOrEqual(t, tx.Depth, cfg.ArchiveDepth+1)
	}
	points := view.ArchivePoints()
	require.NotEmpty(t, points)
	for _, point := range points {
		tx, ok := view.Archived(point.ID)
		require.True(t, ok)
		require.Greater(t, tx.Depth, cfg.ArchiveDepth)
	}
}

func TestSimulator_Deterministic(t *testing.T) {
	cfg := DefaultSimConfig()
	ids := func() []types.TransactionID {
		sim, m, _ := newTestSimulator(t, cfg)
		require.NoError(t, sim.Rescan(context.Background()))
		sim.Step()
		view := m.Acquire()
		defer view.Release()
		var rst []types.TransactionID
		for _, tx := range view.ActiveTransactions() {
			rst = append(rst, tx.ID)
		}
		return rst
	}
	first := ids()
	require.Len(t, first, cfg.RescanSize+1+cfg.TxPerBlock)
	require.Equal(t, first, ids())
}

func TestSimulator_RunTicks(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.RescanSize = 5
	sim, m, clock := newTestSimulator(t, cfg)

	tips := make(chan int64, 10)
	m.SubscribeTip(func(h int64) { tips <- h })

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- sim.Run(ctx) }()

	for want := int64(1); want <= 3; want++ {
		clock.BlockUntil(1)
		clock.Advance(cfg.BlockInterval)
		select {
		case h := <-tips:
			require.Equal(t, want, h)
		case <-time.After(5 * time.Second):
			require.FailNow(t, "block not produced", "height %d", want)
		}
	}
	cancel()
	require.NoError(t, <-errc)

	active, _ := m.Len()
	require.GreaterOrEqual(t, active, cfg.RescanSize)
}
