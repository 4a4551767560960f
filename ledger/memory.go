// Package ledger is an in-memory wallet ledger: active and archived
// transaction stores, a block index and the chain tip, guarded by a chain
// lock and a wallet lock that readers take together.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-txview/codec"
	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/events"
	"github.com/spacemeshos/go-txview/log"
	"github.com/spacemeshos/go-txview/txview"
)

var (
	// ErrNotFound is returned for operations on a transaction the wallet does not have.
	ErrNotFound = errors.New("transaction not found")
	// ErrUnknownBlock is returned when a block is not in the index.
	ErrUnknownBlock = errors.New("unknown block")
)

// Config for the memory ledger.
type Config struct {
	// ArchiveCacheSize is the number of decoded archived transactions kept in memory.
	ArchiveCacheSize int `mapstructure:"archive-cache-size"`
}

// DefaultConfig returns the default ledger config.
func DefaultConfig() Config {
	return Config{ArchiveCacheSize: 256}
}

// Opt for configuring the ledger.
type Opt func(m *Memory)

// WithLogger defines logger for the ledger.
func WithLogger(logger *zap.Logger) Opt {
	return func(m *Memory) {
		m.logger = logger
	}
}

// WithConfig defines the config used by the ledger.
func WithConfig(cfg Config) Opt {
	return func(m *Memory) {
		m.cfg = cfg
	}
}

type archived struct {
	block *types.Position
	blob  []byte
}

// Memory is the in-memory ledger.
type Memory struct {
	logger *zap.Logger
	cfg    Config

	// chain guards tip and the block index.
	chain   sync.Mutex
	tip     int64
	blocks  map[types.Hash32]int64
	heights map[int64]types.Hash32

	// wallet guards the transaction stores.
	wallet  sync.Mutex
	active  map[types.TransactionID]*types.Transaction
	archive map[types.TransactionID]archived
	decoded *lru.Cache[types.TransactionID, *types.Transaction]

	changes  *events.Registry[types.TxChange]
	progress *events.Registry[types.Progress]
	tips     *events.Registry[int64]
}

var _ txview.Ledger = (*Memory)(nil)

// New returns an empty ledger with the tip at height zero.
func New(opts ...Opt) (*Memory, error) {
	m := &Memory{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		blocks:   map[types.Hash32]int64{},
		heights:  map[int64]types.Hash32{},
		active:   map[types.TransactionID]*types.Transaction{},
		archive:  map[types.TransactionID]archived{},
		changes:  events.NewRegistry[types.TxChange](),
		progress: events.NewRegistry[types.Progress](),
		tips:     events.NewRegistry[int64](),
	}
	for _, opt := range opts {
		opt(m)
	}
	decoded, err := lru.New[types.TransactionID, *types.Transaction](m.cfg.ArchiveCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create archive cache: %w", err)
	}
	m.decoded = decoded
	return m, nil
}

// SubscribeChanges registers fn for transaction changes. Callbacks run after
// the ledger released its locks.
func (m *Memory) SubscribeChanges(fn func(types.TxChange)) events.Handle {
	return m.changes.Subscribe(fn)
}

// UnsubscribeChanges removes a change subscription.
func (m *Memory) UnsubscribeChanges(h events.Handle) bool {
	return m.changes.Unsubscribe(h)
}

// SubscribeProgress registers fn for bulk operation progress.
func (m *Memory) SubscribeProgress(fn func(types.Progress)) events.Handle {
	return m.progress.Subscribe(fn)
}

// UnsubscribeProgress removes a progress subscription.
func (m *Memory) UnsubscribeProgress(h events.Handle) bool {
	return m.progress.Unsubscribe(h)
}

// SubscribeTip registers fn for new tip heights.
func (m *Memory) SubscribeTip(fn func(int64)) events.Handle {
	return m.tips.Subscribe(fn)
}

// UnsubscribeTip removes a tip subscription.
func (m *Memory) UnsubscribeTip(h events.Handle) bool {
	return m.tips.Unsubscribe(h)
}

func (m *Memory) lock() {
	m.chain.Lock()
	m.wallet.Lock()
}

func (m *Memory) unlock() {
	m.wallet.Unlock()
	m.chain.Unlock()
}

// Acquire blocks until both the chain and the wallet lock are held.
func (m *Memory) Acquire() txview.LedgerView {
	m.lock()
	return &view{m: m}
}

// TryAcquire takes both locks without waiting. On failure neither lock is held.
func (m *Memory) TryAcquire() (txview.LedgerView, bool) {
	if !m.chain.TryLock() {
		return nil, false
	}
	if !m.wallet.TryLock() {
		m.chain.Unlock()
		return nil, false
	}
	return &view{m: m}, true
}

// Tip returns the current chain height.
func (m *Memory) Tip() int64 {
	m.chain.Lock()
	defer m.chain.Unlock()
	return m.tip
}

// Len returns the number of active and archived transactions.
func (m *Memory) Len() (int, int) {
	m.wallet.Lock()
	defer m.wallet.Unlock()
	return len(m.active), len(m.archive)
}

// visible is the ledger's display verdict for an active transaction.
func visible(tx *types.Transaction) bool {
	return tx.Final && tx.Includable && tx.Depth >= 0
}

// depth must be called with the chain lock held.
func (m *Memory) depth(pos *types.Position) int64 {
	if pos == nil {
		return 0
	}
	if _, ok := m.blocks[pos.Block]; !ok {
		return 0
	}
	return m.tip - pos.Height + 1
}

// AddTransaction inserts tx into the active store, or replaces the active
// transaction with the same id.
func (m *Memory) AddTransaction(tx *types.Transaction) {
	tx = clone(tx)
	tx.Archived = false

	m.lock()
	status := types.ChangeNew
	if _, ok := m.active[tx.ID]; ok {
		status = types.ChangeUpdated
	}
	if tx.Depth >= 0 {
		tx.Depth = m.depth(tx.Block)
	}
	m.active[tx.ID] = tx
	change := types.TxChange{ID: tx.ID, Status: status, Visible: visible(tx)}
	m.unlock()

	if status == types.ChangeNew {
		activeGauge.Inc()
	}
	m.logger.Debug("transaction added", zap.Object("tx", tx), zap.Stringer("status", status))
	m.changes.Publish(change)
}

// ConnectBlock extends the chain with a block confirming ids, in order.
// Ids not in the active store are skipped. It returns the new tip height.
func (m *Memory) ConnectBlock(hash types.Hash32, ids []types.TransactionID) int64 {
	m.lock()
	m.tip++
	height := m.tip
	m.blocks[hash] = height
	m.heights[height] = hash

	var changes []types.TxChange
	for i, id := range ids {
		tx, ok := m.active[id]
		if !ok {
			m.logger.Debug("block confirms unknown transaction", log.ZShortStringer("id", id))
			continue
		}
		tx.Block = &types.Position{Block: hash, Height: height, Index: int64(i)}
		changes = append(changes, types.TxChange{ID: id, Status: types.ChangeUpdated})
	}
	for _, tx := range m.active {
		if tx.Depth >= 0 {
			tx.Depth = m.depth(tx.Block)
		}
	}
	for i := range changes {
		changes[i].Visible = visible(m.active[changes[i].ID])
	}
	m.unlock()

	tipGauge.Set(float64(height))
	m.logger.Debug("block connected",
		zap.Stringer("hash", hash),
		zap.Int64("height", height),
		zap.Int("confirmed", len(changes)),
	)
	for _, change := range changes {
		m.changes.Publish(change)
	}
	m.tips.Publish(height)
	return height
}

// DisconnectTip removes the tip block. Transactions it confirmed go back to
// pending, archived transactions in it can no longer be resolved.
func (m *Memory) DisconnectTip() (types.Hash32, error) {
	m.lock()
	if m.tip == 0 {
		m.unlock()
		return types.Hash32{}, fmt.Errorf("%w: no block above genesis", ErrUnknownBlock)
	}
	hash := m.heights[m.tip]
	delete(m.blocks, hash)
	delete(m.heights, m.tip)
	m.tip--
	height := m.tip

	var changes []types.TxChange
	for _, id := range slices.SortedFunc(maps.Keys(m.active), types.TransactionID.Compare) {
		tx := m.active[id]
		if tx.Block != nil && tx.Block.Block == hash {
			tx.Block = nil
			tx.Depth = 0
			changes = append(changes, types.TxChange{ID: id, Status: types.ChangeUpdated, Visible: visible(tx)})
			continue
		}
		if tx.Depth >= 0 {
			tx.Depth = m.depth(tx.Block)
		}
	}
	for _, id := range slices.SortedFunc(maps.Keys(m.archive), types.TransactionID.Compare) {
		if entry := m.archive[id]; entry.block != nil && entry.block.Block == hash {
			changes = append(changes, types.TxChange{ID: id, Status: types.ChangeUpdated, Visible: false})
		}
	}
	m.unlock()

	tipGauge.Set(float64(height))
	for _, change := range changes {
		m.changes.Publish(change)
	}
	m.tips.Publish(height)
	return hash, nil
}

// ConfirmTransaction places an active transaction at index of a known block.
func (m *Memory) ConfirmTransaction(id types.TransactionID, block types.Hash32, index int64) error {
	m.lock()
	height, ok := m.blocks[block]
	if !ok {
		m.unlock()
		return fmt.Errorf("%w: %s", ErrUnknownBlock, block.ShortString())
	}
	tx, ok := m.active[id]
	if !ok {
		m.unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id.ShortString())
	}
	tx.Block = &types.Position{Block: block, Height: height, Index: index}
	tx.Depth = m.depth(tx.Block)
	change := types.TxChange{ID: id, Status: types.ChangeUpdated, Visible: visible(tx)}
	m.unlock()

	m.changes.Publish(change)
	return nil
}

// Conflict marks an active transaction as conflicted out of the main chain.
func (m *Memory) Conflict(id types.TransactionID) error {
	m.lock()
	tx, ok := m.active[id]
	if !ok {
		m.unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id.ShortString())
	}
	tx.Depth = -1
	tx.Block = nil
	change := types.TxChange{ID: id, Status: types.ChangeUpdated, Visible: visible(tx)}
	m.unlock()

	m.changes.Publish(change)
	return nil
}

// Archive moves a confirmed transaction from the active store to the archive.
func (m *Memory) Archive(id types.TransactionID) error {
	m.lock()
	tx, ok := m.active[id]
	if !ok {
		m.unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id.ShortString())
	}
	if !tx.Confirmed() {
		m.unlock()
		return fmt.Errorf("archive unconfirmed transaction %s", id.ShortString())
	}
	stored := clone(tx)
	stored.Archived = true
	blob, err := codec.Encode(stored)
	if err != nil {
		m.unlock()
		return fmt.Errorf("encode %s: %w", id.ShortString(), err)
	}
	delete(m.active, id)
	m.archive[id] = archived{block: stored.Block, blob: blob}
	m.decoded.Remove(id)
	m.unlock()

	activeGauge.Dec()
	archivedGauge.Inc()
	m.changes.Publish(types.TxChange{ID: id, Status: types.ChangeUpdated, Visible: true})
	return nil
}

// Erase removes a transaction from both stores.
func (m *Memory) Erase(id types.TransactionID) error {
	m.lock()
	_, inActive := m.active[id]
	_, inArchive := m.archive[id]
	if !inActive && !inArchive {
		m.unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id.ShortString())
	}
	delete(m.active, id)
	delete(m.archive, id)
	m.decoded.Remove(id)
	m.unlock()

	if inActive {
		activeGauge.Dec()
	}
	if inArchive {
		archivedGauge.Dec()
	}
	m.changes.Publish(types.TxChange{ID: id, Status: types.ChangeDeleted, Visible: false})
	return nil
}

// Rescan adds transactions discovered by a wallet rescan as one bulk
// operation, reporting progress as it goes. Progress done is always
// reported, also when ctx is cancelled midway.
func (m *Memory) Rescan(ctx context.Context, found []*types.Transaction) error {
	const title = "rescanning"
	m.progress.Publish(types.Progress{Title: title, Percent: types.ProgressStart})
	defer m.progress.Publish(types.Progress{Title: title, Percent: types.ProgressDone})

	last := types.ProgressStart
	for i, tx := range found {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("rescan interrupted after %d of %d: %w", i, len(found), err)
		}
		m.AddTransaction(tx)
		percent := (i + 1) * types.ProgressDone / len(found)
		if percent > last && percent < types.ProgressDone {
			last = percent
			m.progress.Publish(types.Progress{Title: title, Percent: percent})
		}
	}
	m.logger.Info("rescan complete", zap.Int("found", len(found)))
	return nil
}

func clone(tx *types.Transaction) *types.Transaction {
	cp := *tx
	if tx.Block != nil {
		pos := *tx.Block
		cp.Block = &pos
	}
	cp.Raw = slices.Clone(tx.Raw)
	cp.Entries = slices.Clone(tx.Entries)
	return &cp
}
