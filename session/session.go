// Package session wires a ledger to a transaction view: ledger notifications
// travel through a dispatcher and a notification queue into the cache.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/dispatch"
	"github.com/spacemeshos/go-txview/events"
	"github.com/spacemeshos/go-txview/log"
	"github.com/spacemeshos/go-txview/notify"
	"github.com/spacemeshos/go-txview/txview"
)

// Config for a view session.
type Config struct {
	Cache    txview.Config   `mapstructure:"cache"`
	Queue    notify.Config   `mapstructure:"queue"`
	Dispatch dispatch.Config `mapstructure:"dispatch"`
}

// DefaultConfig returns the default session config.
func DefaultConfig() Config {
	return Config{
		Cache:    txview.DefaultConfig(),
		Queue:    notify.DefaultConfig(),
		Dispatch: dispatch.DefaultConfig(),
	}
}

// Opt for configuring the session.
type Opt func(s *Session)

// WithLogger defines logger for the session and the components it creates.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithComponentLoggers defines separate loggers for the cache, the queue and
// the dispatcher. Without it they are children of the session logger.
func WithComponentLoggers(cache, queue, dispatcher *zap.Logger) Opt {
	return func(s *Session) {
		s.loggers = componentLoggers{cache: cache, queue: queue, dispatch: dispatcher}
	}
}

// WithConfig defines the config used by the session.
func WithConfig(cfg Config) Opt {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// Session owns the view of one wallet. The cache is refreshed once when the
// session is created and then follows the ledger's notifications, which are
// applied by Run.
type Session struct {
	id      uuid.UUID
	logger  *zap.Logger
	loggers componentLoggers
	cfg     Config
	source  Source

	cache      *txview.Cache
	queue      *notify.Queue
	dispatcher *dispatch.Dispatcher
	incoming   *events.Registry[txview.DisplayRecord]

	changesHandle  events.Handle
	progressHandle events.Handle
	tipHandle      events.Handle
	rowsHandle     events.Handle
	closeOnce      sync.Once
}

type componentLoggers struct {
	cache, queue, dispatch *zap.Logger
}

func (s *Session) componentLogger(logger *zap.Logger, name string) *zap.Logger {
	if logger != nil {
		return logger.With(zap.Stringer("session", s.id))
	}
	return s.logger.Named(name)
}

// New subscribes to source and populates the view.
func New(source Source, decomposer txview.Decomposer, opts ...Opt) *Session {
	s := &Session{
		id:       uuid.New(),
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		source:   source,
		incoming: events.NewRegistry[txview.DisplayRecord](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.Stringer("session", s.id))
	s.cache = txview.New(source, decomposer,
		txview.WithLogger(s.componentLogger(s.loggers.cache, "cache")),
		txview.WithConfig(s.cfg.Cache),
	)
	s.queue = notify.New(s.cache,
		notify.WithLogger(s.componentLogger(s.loggers.queue, "queue")),
		notify.WithConfig(s.cfg.Queue),
	)
	s.dispatcher = dispatch.New(
		dispatch.WithLogger(s.componentLogger(s.loggers.dispatch, "dispatch")),
		dispatch.WithConfig(s.cfg.Dispatch),
	)

	// subscribe before the refresh, changes racing with it are applied after it
	s.changesHandle = source.SubscribeChanges(func(change types.TxChange) {
		if err := s.dispatcher.NotifyTransactionChanged(change); err != nil {
			s.logger.Debug("dropping change", log.ZShortStringer("id", change.ID), zap.Error(err))
		}
	})
	s.progressHandle = source.SubscribeProgress(func(p types.Progress) {
		if err := s.dispatcher.ShowProgress(p); err != nil {
			s.logger.Debug("dropping progress", zap.Int("percent", p.Percent), zap.Error(err))
		}
	})
	s.tipHandle = source.SubscribeTip(func(height int64) {
		if err := s.dispatcher.Invoke(s.cache.UpdateConfirmations); err != nil {
			s.logger.Debug("dropping tip", zap.Int64("height", height), zap.Error(err))
		}
	})
	s.rowsHandle = s.cache.SubscribeRows(s.onRows)
	s.cache.Refresh()
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Cache returns the session's view.
func (s *Session) Cache() *txview.Cache {
	return s.cache
}

// Queue returns the session's notification queue.
func (s *Session) Queue() *notify.Queue {
	return s.queue
}

// Dispatcher returns the dispatcher feeding the view.
func (s *Session) Dispatcher() *dispatch.Dispatcher {
	return s.dispatcher
}

// SubscribeIncoming registers fn for records inserted into the view. Inserts
// made while the queue replays a large backlog are not reported.
func (s *Session) SubscribeIncoming(fn func(txview.DisplayRecord)) events.Handle {
	return s.incoming.Subscribe(fn)
}

// UnsubscribeIncoming removes a subscription. It is safe to call more than once.
func (s *Session) UnsubscribeIncoming(h events.Handle) bool {
	return s.incoming.Unsubscribe(h)
}

// Run applies ledger notifications to the view until ctx is done or the
// session is closed and drained.
func (s *Session) Run(ctx context.Context) error {
	return s.dispatcher.Run(ctx, s)
}

// Notify implements dispatch.Handler.
func (s *Session) Notify(change types.TxChange) {
	s.queue.Notify(change)
}

// Progress implements dispatch.Handler.
func (s *Session) Progress(p types.Progress) {
	s.queue.Progress(p)
}

func (s *Session) onRows(ev txview.RowEvent) {
	if ev.Kind != txview.RowsInserted || s.queue.Processing() {
		return
	}
	for row := ev.Start; row < ev.End; row++ {
		rec, ok := s.cache.RecordAt(row)
		if !ok {
			continue
		}
		s.incoming.Publish(rec)
	}
}

// Close detaches the session from the ledger. Notifications already queued
// are still applied by Run, which then returns. Close is idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.source.UnsubscribeChanges(s.changesHandle)
		s.source.UnsubscribeProgress(s.progressHandle)
		s.source.UnsubscribeTip(s.tipHandle)
		s.cache.UnsubscribeRows(s.rowsHandle)
		s.dispatcher.Close()
		s.logger.Debug("session closed")
	})
}

var _ dispatch.Handler = (*Session)(nil)
