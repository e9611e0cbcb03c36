package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mseguin/recallbox/internal/config"
	"github.com/mseguin/recallbox/internal/deck"
	"github.com/mseguin/recallbox/internal/deck/yamldir"
	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/domain/streak"
	"github.com/mseguin/recallbox/internal/platform/jsonfile"
	"github.com/mseguin/recallbox/internal/platform/logger"
	"github.com/mseguin/recallbox/internal/pool"
	"github.com/mseguin/recallbox/internal/store"
)

// app bundles everything a front end needs: config, logger, the loaded
// deck, the progress store, and the core services. State is threaded
// through explicitly; there are no package-level globals.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	cards    map[string]domain.Card
	store    *store.Store
	repo     store.SnapshotRepository
	selector *pool.Selector
	streak   streak.Service
}

// loadApp loads config, cards, and the persisted snapshot, and wires
// the core services. An empty deck is fatal: there is nothing to study.
func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}

	units, err := yamldir.Load(cfg.Cards.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading card files: %w", err)
	}
	cards, err := deck.Load(units)
	if err != nil {
		if errors.Is(err, deck.ErrNoCards) {
			return nil, fmt.Errorf(
				"no cards found: put YAML card files in %s or update config.yaml", cfg.Cards.Dir)
		}
		return nil, err
	}

	repo := jsonfile.New(cfg.Data.File, log)
	snap, existed, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress snapshot: %w", err)
	}

	ids := make([]string, 0, len(cards))
	for id := range cards {
		ids = append(ids, id)
	}

	log.Info("deck loaded",
		slog.Int("cards", len(cards)),
		slog.Int("themes", len(deck.Themes(cards))),
		slog.Bool("snapshot_existed", existed))

	return &app{
		cfg:    cfg,
		logger: log,
		cards:  cards,
		store:  store.New(ids, snap),
		repo:   repo,
		selector: pool.NewSelector(pool.Params{
			UnitsPerTheme:   cfg.Study.UnitsPerTheme,
			ReviewValidated: cfg.Study.ReviewValidated,
		}),
		streak: streak.NewService(streak.Params{
			ValidStreakDays: cfg.Study.ValidStreakDays,
		}),
	}, nil
}

// save persists the current store state.
func (a *app) save(ctx context.Context) error {
	return a.repo.Save(ctx, a.store.Snapshot())
}
