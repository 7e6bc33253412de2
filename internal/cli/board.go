package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/autosave"
	"github.com/gridboard/gridboard/pkg/board"
	"github.com/gridboard/gridboard/pkg/layout"
	"github.com/gridboard/gridboard/pkg/registry"
)

// defaultSeedKinds are placed on a brand-new board so the editor never
// opens onto an empty grid.
var defaultSeedKinds = []string{"clock", "weather", "system", "calendar"}

// boardCommand creates the board command for interactive dashboard editing.
func (c *CLI) boardCommand() *cobra.Command {
	var (
		columns int
		noSeed  bool
	)

	cmd := &cobra.Command{
		Use:   "board [layout]",
		Short: "Open the interactive dashboard editor",
		Long: `Open the interactive dashboard editor.

Widgets are placed on the configured cell grid. Arrow keys move the selected
widget one cell at a time; moves that would overlap another widget or leave
the grid are rejected and the widget stays put. The layout is saved
automatically while you edit and once more on exit.

With no argument the most recently saved layout is opened.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return c.runBoard(cmd, name, columns, noSeed)
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "override the configured column count")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "start a new layout empty instead of seeding default widgets")

	return cmd
}

// runBoard loads the layout, runs the editor, and persists the result.
func (c *CLI) runBoard(cmd *cobra.Command, name string, columns int, noSeed bool) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	st, err := c.openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	prog := newProgress(c.Logger)
	b, resolved, err := loadBoard(ctx, st, cfg, name)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded layout %q with %d widgets", resolved, b.Len()))

	if columns > 0 {
		gc := b.Config()
		gc.Columns = columns
		if err := b.SetConfig(gc); err != nil {
			c.Logger.Warn("some widgets no longer fit", "columns", columns)
		}
	}

	reg := registry.Builtin()
	if b.Len() == 0 && !noSeed {
		seedBoard(b, reg, c)
	}

	var saver *autosave.Saver
	if cfg.Autosave.Enabled {
		snapshot := func() *layout.Snapshot { return b.Snapshot(resolved) }
		saver = autosave.New(snapshot, st, cfg.Autosave.Interval.Duration, c.Logger)
	}

	model := NewBoardModel(b, resolved, reg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if saver != nil {
		saver.Start(ctx)
		defer saver.Stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	// Final save regardless of the autosave debounce state.
	if err := saveBoard(ctx, st, b, resolved); err != nil {
		return err
	}
	c.Logger.Info("layout saved", "name", resolved)
	return nil
}

// seedBoard populates a fresh board with the default widget set.
func seedBoard(b *board.Board, reg *registry.Registry, c *CLI) {
	for _, kind := range defaultSeedKinds {
		w, err := reg.Instantiate(kind)
		if err != nil {
			continue
		}
		if err := b.Add(w); err != nil {
			c.Logger.Debug("seed widget skipped", "kind", kind, "err", err)
		}
	}
}
