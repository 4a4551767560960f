package ledger

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/seehuhn/mt19937"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/log"
)

// SimConfig drives the chain simulator.
type SimConfig struct {
	BlockInterval time.Duration `mapstructure:"block-interval"`
	// TxPerBlock is the number of new pending transactions added after every block.
	TxPerBlock int `mapstructure:"tx-per-block"`
	// ConfirmPercent is the chance a pending transaction makes it into the next block.
	ConfirmPercent int `mapstructure:"confirm-percent"`
	// ArchiveDepth moves transactions deeper than this into the archive. Zero disables archiving.
	ArchiveDepth int64 `mapstructure:"archive-depth"`
	// RescanSize is the number of historic transactions discovered by the startup rescan.
	RescanSize int    `mapstructure:"rescan-size"`
	Seed       uint64 `mapstructure:"seed"`
}

// DefaultSimConfig returns the default simulator config.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		BlockInterval:  10 * time.Second,
		TxPerBlock:     3,
		ConfirmPercent: 70,
		ArchiveDepth:   50,
		RescanSize:     40,
		Seed:           1,
	}
}

// SimOpt for configuring the simulator.
type SimOpt func(s *Simulator)

// WithSimLogger defines logger for the simulator.
func WithSimLogger(logger *zap.Logger) SimOpt {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithSimConfig defines the config used by the simulator.
func WithSimConfig(cfg SimConfig) SimOpt {
	return func(s *Simulator) {
		s.cfg = cfg
	}
}

// WithClock defines the clock that paces blocks and stamps transactions.
func WithClock(clock clockwork.Clock) SimOpt {
	return func(s *Simulator) {
		s.clock = clock
	}
}

// Simulator produces blocks and wallet transactions on a ledger.
type Simulator struct {
	logger *zap.Logger
	cfg    SimConfig
	clock  clockwork.Clock
	ledger *Memory
	rng    *rand.Rand
	next   uint64
}

// NewSimulator returns a simulator driving ledger.
func NewSimulator(ledger *Memory, opts ...SimOpt) *Simulator {
	s := &Simulator{
		logger: zap.NewNop(),
		cfg:    DefaultSimConfig(),
		clock:  clockwork.NewRealClock(),
		ledger: ledger,
	}
	for _, opt := range opts {
		opt(s)
	}
	src := mt19937.New()
	src.Seed(int64(s.cfg.Seed))
	s.rng = rand.New(src)
	return s
}

// Run rescans once, then produces a block on every tick until ctx is done.
func (s *Simulator) Run(ctx context.Context) error {
	if err := s.Rescan(ctx); err != nil {
		return err
	}
	ticker := s.clock.NewTicker(s.cfg.BlockInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			s.Step()
		}
	}
}

// Rescan feeds RescanSize historic transactions through a ledger rescan.
func (s *Simulator) Rescan(ctx context.Context) error {
	if s.cfg.RescanSize == 0 {
		return nil
	}
	found := make([]*types.Transaction, 0, s.cfg.RescanSize)
	for range s.cfg.RescanSize {
		found = append(found, s.newTx(false))
	}
	if err := s.ledger.Rescan(ctx, found); err != nil {
		return fmt.Errorf("simulated rescan: %w", err)
	}
	return nil
}

// Step connects one block and returns its height. The block carries a new
// coinbase and a random share of the pending transactions. Transactions
// deeper than ArchiveDepth are archived, then new pending ones are added.
func (s *Simulator) Step() int64 {
	coinbase := s.newTx(true)
	s.ledger.AddTransaction(coinbase)

	ids := []types.TransactionID{coinbase.ID}
	var deep []types.TransactionID
	view := s.ledger.Acquire()
	for _, tx := range view.ActiveTransactions() {
		switch {
		case tx.ID == coinbase.ID:
		case tx.Depth == 0 && tx.Final && s.rng.Intn(100) < s.cfg.ConfirmPercent:
			ids = append(ids, tx.ID)
		case s.cfg.ArchiveDepth > 0 && tx.Depth > s.cfg.ArchiveDepth:
			deep = append(deep, tx.ID)
		}
	}
	tip := view.TipHeight()
	view.Release()

	var hash types.Hash32
	binary.BigEndian.PutUint64(hash[:], uint64(tip+1))
	binary.BigEndian.PutUint64(hash[8:], s.cfg.Seed)
	height := s.ledger.ConnectBlock(types.CalcHash32(hash[:]), ids)

	for _, id := range deep {
		if err := s.ledger.Archive(id); err != nil {
			s.logger.Warn("failed to archive transaction", log.ZShortStringer("id", id), zap.Error(err))
		}
	}
	for range s.cfg.TxPerBlock {
		s.ledger.AddTransaction(s.newTx(false))
	}
	s.logger.Info("simulated block",
		zap.Int64("height", height),
		zap.Int("confirmed", len(ids)),
		zap.Int("archived", len(deep)),
	)
	return height
}

func (s *Simulator) newTx(coinbase bool) *types.Transaction {
	s.next++
	var seed [16]byte
	binary.BigEndian.PutUint64(seed[:], s.cfg.Seed)
	binary.BigEndian.PutUint64(seed[8:], s.next)
	id := types.TransactionID(types.CalcHash32(seed[:]))

	tx := &types.Transaction{
		ID:         id,
		Final:      true,
		Includable: true,
		Coinbase:   coinbase,
		Time:       s.clock.Now().Truncate(time.Second),
		Raw:        id.Bytes()[:16],
	}
	if coinbase {
		tx.Entries = []types.Entry{{Kind: types.EntryReceive, Address: s.address(), Amount: 50_000, Mine: true}}
		return tx
	}
	for i := range 1 + s.rng.Intn(3) {
		e := types.Entry{
			Kind:    types.EntryKind(s.rng.Intn(3)),
			Address: s.address(),
			Amount:  1 + s.rng.Int63n(10_000),
		}
		if i == 0 && s.rng.Intn(4) == 0 {
			e.Memo = fmt.Sprintf("invoice %d", s.next)
		}
		tx.Entries = append(tx.Entries, e)
	}
	return tx
}

func (s *Simulator) address() string {
	var b [20]byte
	binary.BigEndian.PutUint64(b[:], s.rng.Uint64())
	binary.BigEndian.PutUint64(b[8:], s.rng.Uint64())
	return types.CalcHash32(b[:]).Hex()[:42]
}
