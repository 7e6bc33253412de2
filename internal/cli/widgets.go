package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/board"
	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/registry"
)

// widgetsCommand creates the widgets command for catalog inspection and
// non-interactive layout edits.
func (c *CLI) widgetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widgets",
		Short: "Inspect the widget catalog and edit layouts",
	}

	cmd.AddCommand(c.widgetsKindsCommand())
	cmd.AddCommand(c.widgetsAddCommand())
	cmd.AddCommand(c.widgetsRemoveCommand())
	cmd.AddCommand(c.widgetsMoveCommand())
	cmd.AddCommand(c.widgetsResizeCommand())
	cmd.AddCommand(c.widgetsToggleCommand())
	cmd.AddCommand(c.widgetsRecomputeCommand())

	return cmd
}

// widgetsKindsCommand creates the "widgets kinds" subcommand.
func (c *CLI) widgetsKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the built-in widget catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, k := range registry.Builtin().Kinds() {
				dims := k.Size.Dimensions()
				rows = append(rows, []string{
					k.Name,
					k.Title,
					k.Category,
					fmt.Sprintf("%s (%d×%d)", k.Size, dims.Width, dims.Height),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Kind", "Title", "Category", "Size").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle()
				})
			fmt.Println(t.Render())
			return nil
		},
	}
}

// widgetsAddCommand creates the "widgets add" subcommand.
func (c *CLI) widgetsAddCommand() *cobra.Command {
	var layoutName string

	cmd := &cobra.Command{
		Use:   "add <kind>",
		Short: "Add a catalog widget to a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editLayout(cmd.Context(), layoutName, func(b *board.Board) error {
				w, err := registry.Builtin().Instantiate(args[0])
				if err != nil {
					return err
				}
				if err := b.Add(w); err != nil {
					return err
				}
				placed, _ := b.Widget(w.ID)
				printSuccess("Added %s at (%d,%d)", w.Title, placed.Position.Row, placed.Position.Column)
				printDetail("ID: %s", w.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "layout to edit (default: most recent)")

	return cmd
}

// widgetsRemoveCommand creates the "widgets remove" subcommand.
func (c *CLI) widgetsRemoveCommand() *cobra.Command {
	var layoutName string

	cmd := &cobra.Command{
		Use:   "remove <widget-id>",
		Short: "Remove a widget from a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editLayout(cmd.Context(), layoutName, func(b *board.Board) error {
				if err := b.Remove(args[0]); err != nil {
					return err
				}
				printSuccess("Removed widget %s", args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "layout to edit (default: most recent)")

	return cmd
}

// widgetsMoveCommand creates the "widgets move" subcommand.
func (c *CLI) widgetsMoveCommand() *cobra.Command {
	var layoutName string

	cmd := &cobra.Command{
		Use:   "move <widget-id> <row> <column>",
		Short: "Move a widget to an explicit grid cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row %q", args[1])
			}
			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid column %q", args[2])
			}

			return c.editLayout(cmd.Context(), layoutName, func(b *board.Board) error {
				if err := b.Move(args[0], grid.Position{Row: row, Column: col}); err != nil {
					return err
				}
				printSuccess("Moved %s to (%d,%d)", args[0], row, col)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "layout to edit (default: most recent)")

	return cmd
}

// widgetsResizeCommand creates the "widgets resize" subcommand.
func (c *CLI) widgetsResizeCommand() *cobra.Command {
	var layoutName string

	cmd := &cobra.Command{
		Use:   "resize <widget-id> <size>",
		Short: "Change a widget's size class",
		Long:  "Change a widget's size class. Sizes: small (1×1), medium (2×2), large (4×2), xlarge (4×4).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, ok := grid.ParseSizeClass(args[1])
			if !ok {
				return fmt.Errorf("unknown size %q (small, medium, large, xlarge)", args[1])
			}

			return c.editLayout(cmd.Context(), layoutName, func(b *board.Board) error {
				if err := b.Resize(args[0], class); err != nil {
					return err
				}
				printSuccess("Resized %s to %s", args[0], class)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "layout to edit (default: most recent)")

	return cmd
}

// widgetsToggleCommand creates the "widgets toggle" subcommand.
func (c *CLI) widgetsToggleCommand() *cobra.Command {
	var layoutName string

	cmd := &cobra.Command{
		Use:   "toggle <widget-id>",
		Short: "Enable or disable a widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editLayout(cmd.Context(), layoutName, func(b *board.Board) error {
				w, err := b.Widget(args[0])
				if err != nil {
					return err
				}
				if err := b.SetEnabled(args[0], !w.Enabled); err != nil {
					return err
				}
				if w.Enabled {
					printSuccess("Disabled %s", args[0])
				} else {
					printSuccess("Enabled %s", args[0])
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "layout to edit (default: most recent)")

	return cmd
}

// widgetsRecomputeCommand creates the "widgets recompute" subcommand.
func (c *CLI) widgetsRecomputeCommand() *cobra.Command {
	var layoutName string

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Repack all enabled widgets from the top-left",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editLayout(cmd.Context(), layoutName, func(b *board.Board) error {
				err := b.Recompute()
				if err != nil && errors.GetCode(err) != errors.ErrCodeGridFull {
					return err
				}

				placed, unplaced, disabled := countStates(b)
				printSuccess("Recomputed layout")
				printStats(placed, unplaced, disabled)
				if err != nil {
					printWarning("%s", errors.UserMessage(err))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "layout to edit (default: most recent)")

	return cmd
}

// editLayout loads a layout, applies fn, and saves the result back. The
// store save is skipped when fn fails, so rejected operations leave the
// persisted layout untouched.
func (c *CLI) editLayout(ctx context.Context, name string, fn func(*board.Board) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	st, err := c.openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	b, resolved, err := loadBoard(ctx, st, cfg, name)
	if err != nil {
		return err
	}

	if err := fn(b); err != nil {
		if errors.IsRejection(err) {
			printError("%s", errors.UserMessage(err))
			return nil
		}
		return err
	}

	return saveBoard(ctx, st, b, resolved)
}

// countStates tallies widgets by placement state for stats output.
func countStates(b *board.Board) (placed, unplaced, disabled int) {
	for _, w := range b.Widgets() {
		switch {
		case !w.Enabled:
			disabled++
		case w.Placed:
			placed++
		default:
			unplaced++
		}
	}
	return placed, unplaced, disabled
}
