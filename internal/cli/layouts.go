package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/layout"
)

// layoutsCommand creates the layouts management command.
func (c *CLI) layoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage persisted dashboard layouts",
	}

	cmd.AddCommand(c.layoutsListCommand())
	cmd.AddCommand(c.layoutsShowCommand())
	cmd.AddCommand(c.layoutsDeleteCommand())
	cmd.AddCommand(c.layoutsExportCommand())
	cmd.AddCommand(c.layoutsImportCommand())

	return cmd
}

// layoutsListCommand creates the "layouts list" subcommand.
func (c *CLI) layoutsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all persisted layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			st, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list layouts: %w", err)
			}
			if len(names) == 0 {
				printInfo("No layouts saved")
				printNextStep("Create one", "gridboard board")
				return nil
			}

			recent := ""
			if snap, err := st.MostRecent(cmd.Context()); err == nil {
				recent = snap.Name
			}

			rows := [][]string{}
			for _, name := range names {
				snap, err := st.Load(cmd.Context(), name)
				if err != nil {
					continue
				}
				marker := ""
				if name == recent {
					marker = "*"
				}
				rows = append(rows, []string{
					marker,
					name,
					fmt.Sprintf("%d", len(snap.Widgets)),
					fmt.Sprintf("%d cols", snap.Config.Columns),
					formatRelativeTime(snap.SavedAt),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("", "Layout", "Widgets", "Grid", "Saved").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleHighlight
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(t.Render())
			printDetail("* most recent")
			return nil
		},
	}
}

// layoutsShowCommand creates the "layouts show" subcommand.
func (c *CLI) layoutsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a layout's widgets and positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			st, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}

			printLayoutSummary(snap)
			return nil
		},
	}
}

// layoutsDeleteCommand creates the "layouts delete" subcommand.
func (c *CLI) layoutsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a persisted layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			st, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete layout %s: %w", args[0], err)
			}
			printSuccess("Deleted layout %q", args[0])
			return nil
		},
	}
}

// layoutsExportCommand creates the "layouts export" subcommand.
func (c *CLI) layoutsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a layout to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			st, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}

			path := output
			if path == "" {
				path = args[0] + ".json"
			}
			if err := layout.ExportFile(snap, path); err != nil {
				return fmt.Errorf("export layout: %w", err)
			}

			printSuccess("Exported layout %q", args[0])
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.json)")

	return cmd
}

// layoutsImportCommand creates the "layouts import" subcommand.
func (c *CLI) layoutsImportCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a layout from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			st, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := layout.ImportFile(args[0])
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			if name != "" {
				snap.Name = name
			}

			if err := st.Save(cmd.Context(), snap); err != nil {
				return fmt.Errorf("save layout %s: %w", snap.Name, err)
			}

			printSuccess("Imported layout %q", snap.Name)
			printDetail("%d widgets, %d columns", len(snap.Widgets), snap.Config.Columns)
			printNextStep("Open it", "gridboard board "+snap.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "store under a different layout name")

	return cmd
}

// printLayoutSummary prints a snapshot's grid settings and widget table.
func printLayoutSummary(snap *layout.Snapshot) {
	fmt.Println(StyleTitle.Render(snap.Name))
	printKeyValue("Grid", fmt.Sprintf("%d columns", snap.Config.Columns))
	printKeyValue("Cell size", fmt.Sprintf("%.0f", snap.Config.CellSize))
	printKeyValue("Saved", formatRelativeTime(snap.SavedAt))
	printNewline()

	rows := [][]string{}
	for _, w := range snap.Widgets {
		state := styleEnabled.Render("on")
		if !w.Enabled {
			state = styleDisabled.Render("off")
		}
		rows = append(rows, []string{
			w.ID,
			w.Title,
			string(w.Size),
			fmt.Sprintf("(%d,%d)", w.Position.Row, w.Position.Column),
			state,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Title", "Size", "Position", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	fmt.Println(t.Render())
}

// formatRelativeTime renders a timestamp relative to now for table display.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
