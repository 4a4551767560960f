// Package dispatch carries ledger notifications from the ledger's execution
// context to the single context that owns the view.
package dispatch

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/log"
)

// ErrClosed is returned for sends after Close.
var ErrClosed = errors.New("dispatcher closed")

// Config for the dispatcher.
type Config struct {
	// InitialCapacity preallocates the message buffer.
	InitialCapacity int `mapstructure:"initial-capacity"`
}

// DefaultConfig returns the default dispatcher config.
func DefaultConfig() Config {
	return Config{InitialCapacity: 64}
}

// Opt for configuring the dispatcher.
type Opt func(d *Dispatcher)

// WithLogger defines logger for the dispatcher.
func WithLogger(logger *zap.Logger) Opt {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithConfig defines the config used by the dispatcher.
func WithConfig(cfg Config) Opt {
	return func(d *Dispatcher) {
		d.cfg = cfg
	}
}

type message struct {
	change   *types.TxChange
	progress *types.Progress
	fn       func()
}

func (m message) kind() string {
	switch {
	case m.change != nil:
		return "change"
	case m.progress != nil:
		return "progress"
	}
	return "invoke"
}

// Dispatcher is an unbounded FIFO. Senders never block, so a ledger holding
// its own locks can publish without waiting for the view.
type Dispatcher struct {
	logger *zap.Logger
	cfg    Config

	mu     sync.Mutex
	queue  []message
	closed bool
	signal chan struct{}
}

// New returns an open dispatcher.
func New(opts ...Opt) *Dispatcher {
	d := &Dispatcher{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		signal: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.queue = make([]message, 0, d.cfg.InitialCapacity)
	return d
}

// NotifyTransactionChanged queues a transaction change.
func (d *Dispatcher) NotifyTransactionChanged(change types.TxChange) error {
	return d.send(message{change: &change})
}

// ShowProgress queues a bulk operation progress report.
func (d *Dispatcher) ShowProgress(p types.Progress) error {
	return d.send(message{progress: &p})
}

// Invoke queues fn to be called on the dispatcher's execution context.
func (d *Dispatcher) Invoke(fn func()) error {
	return d.send(message{fn: fn})
}

// Len returns the number of queued messages.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

func (d *Dispatcher) send(msg message) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.queue = append(d.queue, msg)
	size := len(d.queue)
	d.mu.Unlock()

	depth.Set(float64(size))
	select {
	case d.signal <- struct{}{}:
	default:
	}
	return nil
}

// Close rejects further sends. Messages queued before Close are still
// delivered by Run, which then returns nil.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	select {
	case d.signal <- struct{}{}:
	default:
	}
}

// Run delivers queued messages to handler one at a time, in send order,
// until the dispatcher is closed and drained or ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context, handler Handler) error {
	for {
		d.mu.Lock()
		batch := d.queue
		d.queue = make([]message, 0, d.cfg.InitialCapacity)
		closed := d.closed
		d.mu.Unlock()
		depth.Set(0)

		for i, msg := range batch {
			if err := ctx.Err(); err != nil {
				d.requeue(batch[i:])
				return err
			}
			d.deliver(handler, msg)
		}
		if closed && len(batch) == 0 {
			return nil
		}
		if len(batch) > 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.signal:
		}
	}
}

// requeue puts undelivered messages back in front of anything sent since.
func (d *Dispatcher) requeue(rest []message) {
	d.mu.Lock()
	d.queue = slices.Concat(rest, d.queue)
	size := len(d.queue)
	d.mu.Unlock()
	depth.Set(float64(size))
}

func (d *Dispatcher) deliver(handler Handler, msg message) {
	delivered.WithLabelValues(msg.kind()).Inc()
	switch {
	case msg.change != nil:
		d.logger.Debug("dispatching transaction change",
			log.ZShortStringer("id", msg.change.ID),
			zap.Stringer("status", msg.change.Status),
			zap.Bool("visible", msg.change.Visible),
		)
		handler.Notify(*msg.change)
	case msg.progress != nil:
		handler.Progress(*msg.progress)
	default:
		msg.fn()
	}
}
