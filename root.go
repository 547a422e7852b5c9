package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	flagConfigFile string

	cfg *config.Config
)

// Flags that feed viper keys. Only flags present on the running command are
// bound.
var flagKeys = map[string]string{
	"port":              config.KeyPort,
	"catalog":           config.KeyCatalog,
	"background":        config.KeyBackground,
	"static-dir":        config.KeyStaticDir,
	"default-min-level": config.KeyDefaultMinLevel,
	"mode":              config.KeyMode,
}

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Single-person portfolio website",
	Long:          "Serves a portfolio site (about, education, skills, experience, projects, contact) from a static content catalog.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		settings := config.New()
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := settings.BindPFlag(key, f); err != nil {
					return fmt.Errorf("bind --%s: %w", name, err)
				}
			}
		}

		loaded, err := config.Load(settings, flagConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./portfolio.yaml if present)")
	rootCmd.PersistentFlags().String("catalog", "", "content catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().Int("default-min-level", 0, "initial minimum level for the skills filter")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}
