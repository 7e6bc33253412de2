package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gridboard/gridboard/pkg/board"
	"github.com/gridboard/gridboard/pkg/config"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/store"
)

func boardWidget(id string, size grid.SizeClass) board.Widget {
	return board.Widget{ID: id, Title: id, Size: size, Enabled: true}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Store.Backend = config.BackendFile
	cfg.Store.Path = t.TempDir()
	return cfg
}

func TestOpenStoreNone(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	cfg := config.Default()
	cfg.Store.Backend = config.BackendNone

	st, err := c.openStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openStore(none) error = %v", err)
	}
	defer st.Close()

	if _, ok := st.(*store.NullStore); !ok {
		t.Errorf("openStore(none) = %T, want *store.NullStore", st)
	}
}

func TestOpenStoreFile(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	cfg := testConfig(t)

	st, err := c.openStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openStore(file) error = %v", err)
	}
	defer st.Close()

	if _, ok := st.(*store.FileStore); !ok {
		t.Errorf("openStore(file) = %T, want *store.FileStore", st)
	}
}

func TestLoadBoardFresh(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	st := store.NewNullStore()

	b, name, err := loadBoard(ctx, st, cfg, "")
	if err != nil {
		t.Fatalf("loadBoard() error = %v", err)
	}
	if name != cfg.Autosave.Layout {
		t.Errorf("fresh board name = %q, want %q", name, cfg.Autosave.Layout)
	}
	if b.Len() != 0 {
		t.Errorf("fresh board has %d widgets, want 0", b.Len())
	}
	if b.Config().Columns != cfg.Grid.Columns {
		t.Errorf("fresh board columns = %d, want %d", b.Config().Columns, cfg.Grid.Columns)
	}
}

func TestLoadBoardRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	c := New(&bytes.Buffer{}, log.InfoLevel)
	st, err := c.openStore(ctx, cfg)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer st.Close()

	b, _, err := loadBoard(ctx, st, cfg, "desk")
	if err != nil {
		t.Fatalf("loadBoard: %v", err)
	}
	if err := b.Add(boardWidget("w1", grid.SizeSmall)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := saveBoard(ctx, st, b, "desk"); err != nil {
		t.Fatalf("saveBoard: %v", err)
	}

	restored, name, err := loadBoard(ctx, st, cfg, "desk")
	if err != nil {
		t.Fatalf("loadBoard(desk): %v", err)
	}
	if name != "desk" {
		t.Errorf("name = %q, want desk", name)
	}
	if restored.Len() != 1 {
		t.Errorf("restored board has %d widgets, want 1", restored.Len())
	}

	// An empty name resolves to the most recently saved layout.
	_, recent, err := loadBoard(ctx, st, cfg, "")
	if err != nil {
		t.Fatalf("loadBoard(most recent): %v", err)
	}
	if recent != "desk" {
		t.Errorf("most recent = %q, want desk", recent)
	}
}
