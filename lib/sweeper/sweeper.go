// Package sweeper runs the episode-release reminder sweep: on a fixed interval
// it re-checks every subscribed title against the catalog, notifies subscribers
// whose watermark is behind and raises their watermark.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/catalog"
	"github.com/Smasher-Lab/My-Anime-Tracker/senders"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Sweeper struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	catalog *catalog.Client
	senders senders.Registry

	// mu makes the sweep single-flight: a tick arriving during an iteration
	// waits for it, and Stop blocks until the in-flight iteration is done.
	mu       *sync.Mutex
	cancel   context.CancelFunc
	interval time.Duration
}

func NewSweeper(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	catalogClient *catalog.Client,
	senders senders.Registry,
) *Sweeper {
	var mu sync.Mutex
	sweeper := &Sweeper{cfg, log, db, catalogClient, senders, &mu, nil, cfg.SweepInterval}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Sugar().Info("Trying to stop sweeper")
			sweeper.Stop()
			return nil
		},
	})

	return sweeper
}

// Start spawns the sweep loop. The cancel func is set before the goroutine
// runs so a Stop racing a fresh Start still has something to cancel.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case tickTime := <-ticker.C:
			s.runSweep(ctx, tickTime.UTC())
		}
	}
}

func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}

	// Locking here to wait for an in-flight sweep to finish
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Sugar().Info("Sweeper stopped")
}

func (s *Sweeper) runSweep(ctx context.Context, startTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Sugar().Info("Checking for new episodes")
	sweepIterations.Inc()

	m, err := s.sweepOnce(ctx)
	if err != nil {
		sweepErrors.Inc()
		s.log.Sugar().Errorw("Sweep aborted", "err", err)
	}

	if m.titles > 0 {
		args := make([]any, 0)
		if m.notified != 0 {
			args = append(args, "notified", m.notified)
		}
		if m.skipped != 0 {
			args = append(args, "skipped", m.skipped)
		}
		if m.unchanged != 0 {
			args = append(args, "unchanged", m.unchanged)
		}

		s.log.Sugar().Infow(
			"Checked subscribed titles", append([]any{"titles", m.titles}, args...)...,
		)
	}

	elapsed := time.Now().UTC().Sub(startTime)
	s.log.Sugar().Infow("Sweep completed", "elapsed_msecs", int(elapsed.Milliseconds()))
}
