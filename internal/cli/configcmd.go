package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath != "" {
				fmt.Println(c.configPath)
				return nil
			}
			path, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			printKeyValue("Columns", fmt.Sprintf("%d", cfg.Grid.Columns))
			if cfg.Grid.Rows > 0 {
				printKeyValue("Rows", fmt.Sprintf("%d", cfg.Grid.Rows))
			} else {
				printKeyValue("Rows", "unbounded")
			}
			printKeyValue("Cell size", fmt.Sprintf("%.0f", cfg.Grid.CellSize))
			printKeyValue("Spacing", fmt.Sprintf("%.0f", cfg.Grid.Spacing))
			printKeyValue("Backend", cfg.Store.Backend)
			if cfg.Store.Backend == config.BackendRedis {
				printKeyValue("Redis", cfg.Store.RedisAddr)
			}
			if cfg.Store.Backend == config.BackendMongo {
				printKeyValue("MongoDB", cfg.Store.MongoURI)
			}
			if cfg.Autosave.Enabled {
				printKeyValue("Autosave", fmt.Sprintf("every %s", cfg.Autosave.Interval.Duration))
			} else {
				printKeyValue("Autosave", "off")
			}
			return nil
		},
	}
}
