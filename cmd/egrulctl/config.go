package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/kmakeev/egrul-go/internal/config"
)

var (
	configInitOutput string
	configInitForce  bool
)

func init() {
	cmd := newConfigCmd()
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	rootCmd.AddCommand(cmd)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the pipeline's TOML configuration",
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (defaults merged with the loaded file and environment)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cfg)
			}
			enc := toml.NewEncoder(os.Stdout)
			return enc.Encode(cfg)
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	}
	cmd.Flags().StringVar(&configInitOutput, "output", "", "Path to write (default: platform config directory)")
	cmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	return cmd
}

func runConfigInit() error {
	path := configInitOutput
	if path == "" {
		path = config.DefaultConfigPath()
		if path == "" {
			path = "./config.toml"
		}
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists; pass --force to overwrite", path)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	printInfo("Configuration written to %s\n", path)
	return nil
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath()
			if path == "" {
				printInfo("Could not determine a default configuration path\n")
				return nil
			}
			printInfo("%s\n", path)
			return nil
		},
	}
}
