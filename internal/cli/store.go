package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridboard/gridboard/pkg/board"
	"github.com/gridboard/gridboard/pkg/config"
	"github.com/gridboard/gridboard/pkg/store"
)

// =============================================================================
// Config & Store Factory
// =============================================================================

// loadConfig reads the application config honoring the global --config flag.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore creates the layout store selected by the config backend.
// The caller owns the returned store and must Close it.
func (c *CLI) openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendNone:
		return store.NewNullStore(), nil
	case config.BackendRedis:
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
	case config.BackendMongo:
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      cfg.Store.MongoURI,
			Database: cfg.Store.MongoDatabase,
		})
	default:
		return store.NewFileStore(cfg.Store.Path)
	}
}

// =============================================================================
// Board Loading
// =============================================================================

// loadBoard restores the named layout from the store. If name is empty the
// most recent layout is restored. A missing layout yields a fresh board with
// the configured grid.
func loadBoard(ctx context.Context, st store.Store, cfg config.Config, name string) (*board.Board, string, error) {
	if name == "" {
		snap, err := st.MostRecent(ctx)
		if err == nil {
			return board.FromSnapshot(snap), snap.Name, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, "", fmt.Errorf("load most recent layout: %w", err)
		}
		return board.New(cfg.Grid.ToGrid()), cfg.Autosave.Layout, nil
	}

	snap, err := st.Load(ctx, name)
	if err == nil {
		return board.FromSnapshot(snap), name, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("load layout %s: %w", name, err)
	}
	return board.New(cfg.Grid.ToGrid()), name, nil
}

// saveBoard snapshots the board under name and writes it to the store.
func saveBoard(ctx context.Context, st store.Store, b *board.Board, name string) error {
	if err := st.Save(ctx, b.Snapshot(name)); err != nil {
		return fmt.Errorf("save layout %s: %w", name, err)
	}
	return nil
}
