package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/events"
	"github.com/painel/painel-backend/internal/dashboard/pipeline"
	"github.com/painel/painel-backend/internal/dashboard/repository"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/logger"
	"github.com/painel/painel-backend/pkg/messaging"
)

func main() {
	force := flag.Bool("force", false, "regenerate every artifact even when a complete set exists")
	flag.Parse()

	cfg, err := config.LoadWithValidation("datagen")
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("datagen", cfg.Server.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *force, log); err != nil {
		log.Error().Err(err).Msg("dataset generation failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, force bool, log *logger.Logger) error {
	opts, err := pipeline.OptionsFromConfig(&cfg.Dataset)
	if err != nil {
		return err
	}

	store, closeStore, err := repository.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	cache := repository.NewSnapshotCache(store, pipeline.New(opts, log), log)

	if cfg.RabbitMQ.Enabled {
		rmq, err := messaging.New(&cfg.RabbitMQ, log)
		if err != nil {
			return err
		}
		defer rmq.Close()

		publisher, err := events.NewSnapshotEventPublisher(rmq, opts.Seed, cfg.Snapshot.Backend, log)
		if err != nil {
			return err
		}
		cache.WithNotifier(publisher)
	}

	start := time.Now()
	var ds *domain.Dataset
	if force {
		ds, err = cache.Regenerate(ctx)
	} else {
		ds, err = cache.LoadOrGenerate(ctx)
	}
	if err != nil {
		return err
	}

	counts := ds.RowCounts()
	for _, name := range domain.ArtifactNames {
		log.Info().Str("artifact", name).Int("rows", counts[name]).Msg("artifact ready")
	}
	log.Info().
		Uint64("seed", opts.Seed).
		Bool("forced", force).
		Dur("took", time.Since(start)).
		Msg("dataset ready")

	return nil
}
