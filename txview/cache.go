package txview

import (
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/spacemeshos/go-scale"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/events"
	"github.com/spacemeshos/go-txview/log"
)

var (
	// ErrRowOutOfRange is returned for a row index outside the view.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrNotFound is returned when the ledger no longer has the row's transaction.
	ErrNotFound = errors.New("transaction not found")
)

// Config is the config for the view cache.
type Config struct {
	// Cap is the maximum number of transactions kept after a full refresh. Zero disables the cap.
	Cap int `mapstructure:"cap"`
}

// DefaultConfig returns the default cache config.
func DefaultConfig() Config {
	return Config{Cap: 200}
}

// Opt for configuring the cache.
type Opt func(c *Cache)

// WithLogger defines logger for the cache.
func WithLogger(logger *zap.Logger) Opt {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithConfig defines the config used by the cache.
func WithConfig(cfg Config) Opt {
	return func(c *Cache) {
		c.cfg = cfg
	}
}

// WithClock defines the clock used to measure refreshes.
func WithClock(clock clockwork.Clock) Opt {
	return func(c *Cache) {
		c.clock = clock
	}
}

// RowEventKind is the kind of structural change published by the cache.
type RowEventKind uint8

const (
	// RowsInserted reports rows [Start, End) were inserted.
	RowsInserted RowEventKind = iota
	// RowsRemoved reports rows [Start, End) were removed.
	RowsRemoved
	// RowsChanged reports rows [Start, End) may have new status or content.
	RowsChanged
	// RowsReset reports the whole view was replaced by a refresh.
	RowsReset
)

func (k RowEventKind) String() string {
	switch k {
	case RowsInserted:
		return "inserted"
	case RowsRemoved:
		return "removed"
	case RowsChanged:
		return "changed"
	case RowsReset:
		return "reset"
	}
	return "unknown"
}

// RowEvent is a change notification for the display layer. The range is half open.
type RowEvent struct {
	Kind       RowEventKind
	Start, End int
}

// Cache is an ordered projection of the wallet's transactions. Records are
// kept sorted by transaction id, records of one transaction form a contiguous
// run in decomposition order. Chronological order is available through the
// order key each record carries.
//
// The cache has a single writer: Refresh and ApplyChange must be called from
// one execution context. Readers may call from anywhere. RecordAt
// never waits for the ledger locks, Describe and RawTx do.
type Cache struct {
	logger     *zap.Logger
	cfg        Config
	clock      clockwork.Clock
	ledger     Ledger
	decomposer Decomposer
	rows       *events.Registry[RowEvent]

	mu      sync.Mutex
	records []DisplayRecord
	// pending continues the tip relative counter of the last refresh for
	// transactions inserted afterwards.
	pending int64
}

// New returns an empty cache. Call Refresh to populate it.
func New(ledger Ledger, decomposer Decomposer, opts ...Opt) *Cache {
	c := &Cache{
		logger:     zap.NewNop(),
		cfg:        DefaultConfig(),
		clock:      clockwork.NewRealClock(),
		ledger:     ledger,
		decomposer: decomposer,
		rows:       events.NewRegistry[RowEvent](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubscribeRows registers fn for structural change events.
func (c *Cache) SubscribeRows(fn func(RowEvent)) events.Handle {
	return c.rows.Subscribe(fn)
}

// UnsubscribeRows removes a subscription. It is safe to call more than once.
func (c *Cache) UnsubscribeRows(h events.Handle) bool {
	return c.rows.Unsubscribe(h)
}

// Size returns the number of records.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Refresh rebuilds the view from the ledger, discarding previous contents.
// Readers observe either the old or the new view.
func (c *Cache) Refresh() {
	start := c.clock.Now()
	view := c.ledger.Acquire()
	records, included, pending := c.build(view)
	view.Release()

	slices.SortStableFunc(records, func(a, b DisplayRecord) int {
		return a.ID.Compare(b.ID)
	})

	c.mu.Lock()
	c.records = records
	c.pending = pending
	c.mu.Unlock()

	elapsed := c.clock.Since(start)
	refreshDuration.Observe(elapsed.Seconds())
	rowsGauge.Set(float64(len(records)))
	c.logger.Info("refreshed transaction view",
		zap.Int("transactions", included),
		zap.Int("records", len(records)),
		zap.Duration("duration", elapsed),
	)
	c.rows.Publish(RowEvent{Kind: RowsReset, Start: 0, End: len(records)})
}

// build walks archived and active transactions most recent first and
// decomposes up to Cap of them.
func (c *Cache) build(view LedgerView) ([]DisplayRecord, int, int64) {
	tip := view.TipHeight()
	keys := newKeyAssigner(tip, 0)
	sorted := map[OrderKey]types.TransactionID{}
	for _, point := range view.ArchivePoints() {
		if point.Block == nil {
			continue
		}
		sorted[keys.confirmed(*point.Block)] = point.ID
	}
	// active transactions go second so that they win over archived ones on the same key
	for _, tx := range view.ActiveTransactions() {
		sorted[keys.assign(tx)] = tx.ID
	}

	order := slices.SortedFunc(maps.Keys(sorted), func(a, b OrderKey) int {
		return b.Compare(a)
	})
	var (
		records  []DisplayRecord
		included int
		seen     = make(map[types.TransactionID]struct{}, len(sorted))
	)
	for _, key := range order {
		if c.cfg.Cap > 0 && included >= c.cfg.Cap {
			break
		}
		id := sorted[key]
		if _, ok := seen[id]; ok {
			continue
		}
		tx, ok := c.resolveIncludable(view, id)
		if !ok {
			continue
		}
		decomposed := c.decompose(tx, key, tip)
		if len(decomposed) == 0 {
			continue
		}
		seen[id] = struct{}{}
		records = append(records, decomposed...)
		included++
	}
	return records, included, keys.pending
}

func (c *Cache) resolveIncludable(view LedgerView, id types.TransactionID) (*types.Transaction, bool) {
	if tx, ok := view.Active(id); ok {
		if !tx.Final || !tx.Includable || tx.Depth < 0 {
			return nil, false
		}
		return tx, true
	}
	return view.Archived(id)
}

// resolve prefers the active store and falls back to the archive.
func resolve(view LedgerView, id types.TransactionID) (*types.Transaction, bool) {
	if tx, ok := view.Active(id); ok {
		return tx, true
	}
	return view.Archived(id)
}

func (c *Cache) decompose(tx *types.Transaction, key OrderKey, tip int64) []DisplayRecord {
	records := c.decomposer.Decompose(tx)
	if len(records) == 0 {
		return nil
	}
	status := c.decomposer.Status(tx, tip)
	status.NeedsUpdate = false
	for i := range records {
		records[i].ID = tx.ID
		records[i].Index = i
		records[i].Key = key
		records[i].Archived = tx.Archived
		records[i].Status = status
	}
	return records
}

// bounds returns the run [lower, upper) of records for id.
func (c *Cache) bounds(id types.TransactionID) (int, int) {
	lower := sort.Search(len(c.records), func(i int) bool {
		return c.records[i].ID.Compare(id) >= 0
	})
	upper := lower + sort.Search(len(c.records)-lower, func(i int) bool {
		return c.records[lower+i].ID.Compare(id) > 0
	})
	return lower, upper
}

// ApplyChange reconciles the view with a single ledger change. The ledger's
// visibility verdict takes precedence over the reported status. Changes that
// disagree with the view are logged and otherwise ignored.
//
// The ledger is never acquired while the view is locked, so readers are not
// held up by ledger contention while a change is applied.
func (c *Cache) ApplyChange(change types.TxChange) {
	c.mu.Lock()
	lower, upper := c.bounds(change.ID)
	c.mu.Unlock()
	inModel := lower < upper
	logger := c.logger.With(
		log.ZShortStringer("id", change.ID),
		zap.Stringer("proposed", change.Status),
		zap.Bool("visible", change.Visible),
		zap.Int("lower", lower),
		zap.Int("upper", upper),
	)

	var ev *RowEvent
	switch {
	case change.Visible && inModel && change.Status == types.ChangeNew:
		inconsistencies.WithLabelValues("new_present").Inc()
		logger.Warn("got new transaction, but it is already in the view")
	case change.Visible && inModel:
		changesCounter.WithLabelValues(types.ChangeUpdated.String()).Inc()
		ev = c.markRun(change.ID)
	case change.Visible:
		changesCounter.WithLabelValues(types.ChangeNew.String()).Inc()
		ev = c.insertRun(logger, change.ID)
	case inModel:
		changesCounter.WithLabelValues(types.ChangeDeleted.String()).Inc()
		ev = c.removeRun(change.ID)
	case change.Status == types.ChangeDeleted:
		inconsistencies.WithLabelValues("deleted_absent").Inc()
		logger.Warn("got deleted transaction, but it is not in the view")
	default:
		logger.Debug("hidden transaction is not in the view")
	}

	rowsGauge.Set(float64(c.Size()))
	if ev != nil {
		c.rows.Publish(*ev)
	}
}

func (c *Cache) markRun(id types.TransactionID) *RowEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	lower, upper := c.bounds(id)
	for i := lower; i < upper; i++ {
		c.records[i].Status.NeedsUpdate = true
	}
	return &RowEvent{Kind: RowsChanged, Start: lower, End: upper}
}

func (c *Cache) removeRun(id types.TransactionID) *RowEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	lower, upper := c.bounds(id)
	c.records = slices.Delete(c.records, lower, upper)
	return &RowEvent{Kind: RowsRemoved, Start: lower, End: upper}
}

// insertRun resolves and decomposes id under the ledger locks, then inserts
// the records at the position of id. Only the single writer changes records,
// so the position found after relocking is the one observed before.
func (c *Cache) insertRun(logger *zap.Logger, id types.TransactionID) *RowEvent {
	records := c.resolveRun(logger, id)
	if len(records) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	lower, _ := c.bounds(id)
	c.records = slices.Insert(c.records, lower, records...)
	return &RowEvent{Kind: RowsInserted, Start: lower, End: lower + len(records)}
}

func (c *Cache) resolveRun(logger *zap.Logger, id types.TransactionID) []DisplayRecord {
	view := c.ledger.Acquire()
	defer view.Release()

	tx, ok := resolve(view, id)
	if !ok {
		logger.Warn("got new transaction, but it is not in the wallet")
		return nil
	}
	c.mu.Lock()
	keys := newKeyAssigner(view.TipHeight(), c.pending)
	var key OrderKey
	if tx.Archived && tx.Block != nil {
		key = keys.confirmed(*tx.Block)
	} else {
		key = keys.assign(tx)
	}
	c.pending = keys.pending
	c.mu.Unlock()
	return c.decompose(tx, key, view.TipHeight())
}

// RecordAt returns a copy of the record at row. If the record's status is
// stale it is recomputed, but only if the ledger locks can be taken without
// waiting. Otherwise the stale record is returned and recomputation is
// retried on the next read.
func (c *Cache) RecordAt(row int) (DisplayRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if row < 0 || row >= len(c.records) {
		return DisplayRecord{}, false
	}
	rec := &c.records[row]
	if rec.Status.NeedsUpdate {
		c.updateStatus(rec)
	}
	return *rec, true
}

func (c *Cache) updateStatus(rec *DisplayRecord) {
	view, ok := c.ledger.TryAcquire()
	if !ok {
		staleReads.Inc()
		c.logger.Debug("ledger busy, serving stale status", log.ZShortStringer("id", rec.ID))
		return
	}
	defer view.Release()
	tx, ok := view.Active(rec.ID)
	if !ok {
		return
	}
	status := c.decomposer.Status(tx, view.TipHeight())
	status.NeedsUpdate = false
	rec.Status = status
}

// UpdateConfirmations marks every record stale after new blocks arrived.
func (c *Cache) UpdateConfirmations() {
	c.mu.Lock()
	for i := range c.records {
		c.records[i].Status.NeedsUpdate = true
	}
	size := len(c.records)
	c.mu.Unlock()
	if size > 0 {
		c.rows.Publish(RowEvent{Kind: RowsChanged, Start: 0, End: size})
	}
}

func (c *Cache) recordAt(row int) (DisplayRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if row < 0 || row >= len(c.records) {
		return DisplayRecord{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	return c.records[row], nil
}

// Describe returns the decomposer's description of the row's transaction.
func (c *Cache) Describe(row int) (string, error) {
	rec, err := c.recordAt(row)
	if err != nil {
		return "", err
	}
	view := c.ledger.Acquire()
	defer view.Release()
	tx, ok := view.Archived(rec.ID)
	if !ok {
		tx, ok = view.Active(rec.ID)
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, rec.ID)
	}
	return c.decomposer.Describe(tx, rec), nil
}

// RawTx returns the hex encoded raw bytes of the row's active transaction.
func (c *Cache) RawTx(row int) (string, error) {
	rec, err := c.recordAt(row)
	if err != nil {
		return "", err
	}
	view := c.ledger.Acquire()
	defer view.Release()
	tx, ok := view.Active(rec.ID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, rec.ID)
	}
	return hex.EncodeToString(tx.Raw), nil
}

// Records returns a copy of all records in id order.
func (c *Cache) Records() []DisplayRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.records)
}

// Chronological returns a copy of all records, most recent transaction first.
// Keys are assigned on refresh and insert only. A pending transaction that was
// confirmed after it was inserted keeps its pending key until the next Refresh.
func (c *Cache) Chronological() []DisplayRecord {
	records := c.Records()
	slices.SortStableFunc(records, func(a, b DisplayRecord) int {
		return b.Key.Compare(a.Key)
	})
	return records
}

// Digest is a blake3 hash over the scale encoding of every record in view order.
func (c *Cache) Digest() (types.Hash32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hasher := blake3.New()
	enc := scale.NewEncoder(hasher)
	for i := range c.records {
		if _, err := c.records[i].EncodeScale(enc); err != nil {
			return types.Hash32{}, fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	var digest types.Hash32
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}
