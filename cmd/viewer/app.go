package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	cmdp "github.com/spacemeshos/go-txview/cmd"
	"github.com/spacemeshos/go-txview/config"
	"github.com/spacemeshos/go-txview/ledger"
	"github.com/spacemeshos/go-txview/log"
	"github.com/spacemeshos/go-txview/metrics"
	"github.com/spacemeshos/go-txview/session"
	"github.com/spacemeshos/go-txview/txview"
)

// Option to modify an App instance.
type Option func(app *App)

// WithLog replaces the per module loggers with children of logger.
func WithLog(logger *zap.Logger) Option {
	return func(app *App) {
		app.newLogger = func(name string) (*zap.Logger, error) {
			return logger.Named(name), nil
		}
	}
}

// WithClock defines the clock that paces the simulated chain.
func WithClock(clock clockwork.Clock) Option {
	return func(app *App) {
		app.clock = clock
	}
}

// App is a simulated ledger with a view session attached to it.
type App struct {
	conf      *config.Config
	clock     clockwork.Clock
	newLogger func(name string) (*zap.Logger, error)

	log     *zap.Logger
	metrics *zap.Logger
	ledger  *ledger.Memory
	sim     *ledger.Simulator
	session *session.Session

	// incoming counts notices, it is only touched from the session loop
	incoming int
}

// New creates the ledger, the simulator and the session described by conf.
func New(conf *config.Config, opts ...Option) (*App, error) {
	app := &App{
		conf:  conf,
		clock: clockwork.NewRealClock(),
	}
	app.newLogger = func(name string) (*zap.Logger, error) {
		return cmdp.NewLogger(conf, name)
	}
	for _, opt := range opts {
		opt(app)
	}

	loggers := map[string]*zap.Logger{}
	for _, name := range []string{"app", "cache", "queue", "dispatch", "ledger", "simulator", "metrics-server"} {
		logger, err := app.newLogger(name)
		if err != nil {
			return nil, err
		}
		loggers[name] = logger
	}
	app.log = loggers["app"]
	app.metrics = loggers["metrics-server"]

	var err error
	app.ledger, err = ledger.New(
		ledger.WithLogger(loggers["ledger"]),
		ledger.WithConfig(conf.Ledger),
	)
	if err != nil {
		return nil, fmt.Errorf("create ledger: %w", err)
	}
	app.sim = ledger.NewSimulator(app.ledger,
		ledger.WithSimLogger(loggers["simulator"]),
		ledger.WithSimConfig(conf.Simulator),
		ledger.WithClock(app.clock),
	)
	app.session = session.New(app.ledger, ledger.NewDecomposer(),
		session.WithConfig(conf.Session),
		session.WithLogger(app.log),
		session.WithComponentLoggers(loggers["cache"], loggers["queue"], loggers["dispatch"]),
	)
	// the first notices are logged, then at most one per second
	notices := rate.Sometimes{First: 5, Interval: time.Second}
	app.session.SubscribeIncoming(func(rec txview.DisplayRecord) {
		app.incoming++
		notices.Do(func() {
			app.log.Info("incoming transaction",
				log.ZShortStringer("id", rec.ID),
				zap.Stringer("type", rec.Type),
				zap.String("address", rec.Address),
				zap.Int64("amount", rec.Net()),
				zap.Int("total", app.incoming),
			)
		})
	})
	app.session.Queue().SubscribeProcessing(func(on bool) {
		app.log.Info("bulk processing", zap.Bool("active", on))
	})
	return app, nil
}

// Session returns the app's view session.
func (app *App) Session() *session.Session {
	return app.session
}

// Ledger returns the simulated ledger.
func (app *App) Ledger() *ledger.Memory {
	return app.ledger
}

// Run produces simulated blocks and applies them to the view until ctx is done.
func (app *App) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.session.Run(ctx)
	})
	eg.Go(func() error {
		return app.sim.Run(ctx)
	})
	if app.conf.CollectMetrics {
		eg.Go(func() error {
			return metrics.Serve(ctx, app.metrics, app.conf.MetricsPort)
		})
	}
	err := eg.Wait()
	app.session.Close()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Dump rescans, produces DumpBlocks blocks, waits until the view has applied
// all of them and writes a snapshot of the view to DumpFile. Concurrent dumps
// to the same file are rejected.
func (app *App) Dump(ctx context.Context) error {
	fl := flock.New(app.conf.DumpFile + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("flock %s: %w", fl.Path(), err)
	} else if !locked {
		return fmt.Errorf("another dump is writing %s (locking file %s)", app.conf.DumpFile, fl.Path())
	}
	defer fl.Unlock()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.session.Run(ctx)
	})
	eg.Go(func() error {
		defer app.session.Close()
		if err := app.sim.Rescan(ctx); err != nil {
			return err
		}
		for range app.conf.DumpBlocks {
			app.sim.Step()
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	snap, err := app.Snapshot()
	if err != nil {
		return err
	}
	if err := WriteSnapshot(app.conf.DumpFile, snap); err != nil {
		return err
	}
	app.log.Info("view dumped",
		zap.String("file", app.conf.DumpFile),
		zap.Int("records", len(snap.Records)),
		zap.String("digest", snap.Digest),
	)
	return nil
}

// Snapshot refreshes the status of every record and returns the view, most
// recent transaction first.
func (app *App) Snapshot() (*Snapshot, error) {
	cache := app.session.Cache()
	for row := range cache.Size() {
		cache.RecordAt(row)
	}
	digest, err := cache.Digest()
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Version: SchemaVersion,
		Tip:     app.ledger.Tip(),
		Digest:  digest.Hex(),
	}
	for _, rec := range cache.Chronological() {
		snap.Records = append(snap.Records, SnapshotRecord{
			ID:       rec.ID.String(),
			Index:    rec.Index,
			Height:   rec.Key.Height,
			Position: rec.Key.Position,
			Type:     rec.Type.String(),
			Address:  rec.Address,
			Memo:     rec.Memo,
			Time:     rec.Time.UTC(),
			Credit:   rec.Credit,
			Debit:    rec.Debit,
			Status:   rec.Status.State.String(),
			Depth:    rec.Status.Depth,
			Archived: rec.Archived,
		})
	}
	return snap, nil
}
