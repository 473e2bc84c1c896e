package syncwatcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
)

// Watcher periodically sweeps recent cuts and flags cuts whose recorded
// expenses have drifted from the expense ledger. Findings are advisory:
// they are logged and counted, never written back.
type Watcher struct {
	cutRepo   usecase.CutRepository
	syncUC    *usecase.SyncUseCase
	logger    *slog.Logger
	batchSize int
	interval  time.Duration
}

// Config for Watcher.
type Config struct {
	CutRepo   usecase.CutRepository
	SyncUC    *usecase.SyncUseCase
	Logger    *slog.Logger
	BatchSize int           // Number of recent cuts to check per sweep
	Interval  time.Duration // Sweep interval
}

// NewWatcher creates a new Watcher.
func NewWatcher(cfg Config) *Watcher {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 30
	}
	if cfg.Interval == 0 {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Watcher{
		cutRepo:   cfg.CutRepo,
		syncUC:    cfg.SyncUC,
		logger:    cfg.Logger,
		batchSize: cfg.BatchSize,
		interval:  cfg.Interval,
	}
}

// Start begins the sweep loop. It runs until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info("expense sync watcher started",
		slog.Int("batch_size", w.batchSize),
		slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Sweep immediately on start
	if err := w.sweep(ctx); err != nil {
		w.logger.Error("error sweeping cuts on start", slog.String("error", err.Error()))
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expense sync watcher shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				w.logger.Error("error sweeping cuts", slog.String("error", err.Error()))
			}
		}
	}
}

// sweep checks the most recent cuts against the expense ledger. Closed
// cuts are skipped: their snapshot is final.
func (w *Watcher) sweep(ctx context.Context) error {
	cuts, err := w.cutRepo.List(ctx, w.batchSize, 0)
	if err != nil {
		return err
	}

	for _, cut := range cuts {
		if cut.Status == domain.CutStatusClosed {
			continue
		}

		result, err := w.syncUC.CheckCut(ctx, cut.ID)
		if err != nil {
			w.logger.Error("failed to check cut",
				slog.String("cut_id", cut.ID),
				slog.String("error", err.Error()))
			continue
		}

		if result.Report.Desynced {
			w.logger.Warn("cut expenses out of sync with ledger",
				slog.String("cut_id", cut.ID),
				slog.String("cut_date", cut.CutDate.Format("2006-01-02")),
				slog.String("cut_expenses", result.Report.CutExpenses.String()),
				slog.String("real_expenses", result.Report.RealExpenses.String()),
				slog.String("difference", result.Report.Difference.String()))
		}
	}

	return nil
}
