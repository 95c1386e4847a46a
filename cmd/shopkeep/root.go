// Root command for the shopkeep CLI.
package main

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shopkeep/internal/logging"
	"github.com/mesh-intelligence/shopkeep/internal/paths"
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Set by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir string
	logger        = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "shopkeep",
	Short:         "Shopkeep is a local-first contact and inventory keeper",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)

		log, err := logging.New(cfg.GetString(cfgKeyLogLevel), flagVerbose)
		if err != nil {
			return err
		}
		logger = log
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.shopkeep)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.shopkeep-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(genreCmd)
	rootCmd.AddCommand(saleCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(clearCmd)
}

// resolveDataDir follows the precedence --data-dir flag > config.yaml
// data_dir > SHOPKEEP_DATA_DIR env > default $(CWD)/.shopkeep-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir follows the precedence --config-dir flag >
// SHOPKEEP_CONFIG_DIR env > default $(CWD)/.shopkeep.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
