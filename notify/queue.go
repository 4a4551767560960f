// Package notify buffers ledger changes while the ledger runs a bulk
// operation, such as a rescan, and replays them once it is done.
package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/events"
)

// Config for the queue.
type Config struct {
	// Threshold is the backlog size above which consumers are advised that a
	// large flush is in progress.
	Threshold int `mapstructure:"threshold"`
}

// DefaultConfig returns the default queue config.
func DefaultConfig() Config {
	return Config{Threshold: 10}
}

// Opt for configuring the queue.
type Opt func(q *Queue)

// WithLogger defines logger for the queue.
func WithLogger(logger *zap.Logger) Opt {
	return func(q *Queue) {
		q.logger = logger
	}
}

// WithConfig defines the config used by the queue.
func WithConfig(cfg Config) Opt {
	return func(q *Queue) {
		q.cfg = cfg
	}
}

// Queue passes changes through to the consumer, except between a progress
// start and a progress done signal, when they are buffered and replayed in
// arrival order on done.
//
// Notify and Progress must be called from the consumer's execution context.
type Queue struct {
	logger   *zap.Logger
	cfg      Config
	consumer Consumer
	advisory *events.Registry[bool]

	mu         sync.Mutex
	bulk       bool
	processing bool
	buffer     []types.TxChange
}

// New returns a queue that delivers to consumer.
func New(consumer Consumer, opts ...Opt) *Queue {
	q := &Queue{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		consumer: consumer,
		advisory: events.NewRegistry[bool](),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// SubscribeProcessing registers fn for changes of the processing advisory.
// The advisory is true while a large backlog is being replayed.
func (q *Queue) SubscribeProcessing(fn func(bool)) events.Handle {
	return q.advisory.Subscribe(fn)
}

// UnsubscribeProcessing removes a subscription. It is safe to call more than once.
func (q *Queue) UnsubscribeProcessing(h events.Handle) bool {
	return q.advisory.Unsubscribe(h)
}

// Processing reports the current advisory.
func (q *Queue) Processing() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.processing
}

// InBulk reports whether changes are currently buffered.
func (q *Queue) InBulk() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.bulk
}

// Pending returns the number of buffered changes.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buffer)
}

// Notify delivers change to the consumer, or buffers it in bulk mode.
func (q *Queue) Notify(change types.TxChange) {
	q.mu.Lock()
	if q.bulk {
		q.buffer = append(q.buffer, change)
		size := len(q.buffer)
		q.mu.Unlock()
		backlog.Set(float64(size))
		return
	}
	q.mu.Unlock()
	q.consumer.ApplyChange(change)
}

// Progress reacts to bulk operation progress. Percent equal to
// types.ProgressStart enters bulk mode, types.ProgressDone leaves it and
// replays the buffer. Other values are ignored.
func (q *Queue) Progress(p types.Progress) {
	switch p.Percent {
	case types.ProgressStart:
		q.mu.Lock()
		q.bulk = true
		q.mu.Unlock()
		q.logger.Debug("bulk operation started", zap.String("title", p.Title))
	case types.ProgressDone:
		q.flush(p.Title)
	}
}

func (q *Queue) flush(title string) {
	q.mu.Lock()
	q.bulk = false
	buffer := q.buffer
	q.buffer = nil
	q.mu.Unlock()

	if len(buffer) == 0 {
		return
	}
	q.logger.Info("replaying changes buffered during bulk operation",
		zap.String("title", title),
		zap.Int("changes", len(buffer)),
		zap.Int("threshold", q.cfg.Threshold),
	)
	if len(buffer) > q.cfg.Threshold {
		q.setProcessing(true)
	}
	for i, change := range buffer {
		if len(buffer)-i <= q.cfg.Threshold {
			q.setProcessing(false)
		}
		q.consumer.ApplyChange(change)
	}
	q.setProcessing(false)
	flushed.Add(float64(len(buffer)))
	backlog.Set(0)
}

// setProcessing publishes the advisory only when it changes.
func (q *Queue) setProcessing(on bool) {
	q.mu.Lock()
	changed := q.processing != on
	q.processing = on
	q.mu.Unlock()
	if changed {
		q.advisory.Publish(on)
	}
}
