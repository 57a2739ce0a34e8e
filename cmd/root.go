// =============================================================================
// Address Label Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (labelconv)
//   ├── processCmd    batch-convert every file in the input directory
//   ├── importCmd     load one file into the editing session
//   ├── remapCmd      re-map the session with a different alias table
//   ├── listCmd       show session records and warnings
//   ├── editCmd       replace fields of one record
//   ├── deleteCmd     delete one record
//   ├── clearCmd      discard the session
//   ├── exportCmd     write the session as a label file
//   ├── countriesCmd  look up country names and codes
//   └── versionCmd    show the version
//
// CONFIGURATION:
//   Before any subcommand runs, the root command loads the configuration
//   and sets up logging (see loadApp).
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/logging"
	"github.com/ginjaninja78/address-label-converter/internal/session"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// appConfig and logger are set up by loadApp before a subcommand runs.
var (
	appConfig *config.Config
	logger    *zap.SugaredLogger = logging.Nop()
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "labelconv",
	Short: "Address Label Converter - turn address spreadsheets into label tool imports",
	Long: `Address Label Converter reads spreadsheets of postal addresses (CSV or
XLSX), maps their columns onto the label schema, validates every record and
writes the semicolon-delimited Windows-1252 CSV expected by the postal
provider's label printing tool.

Example Usage:
  labelconv process                       # Convert every file in the input directory
  labelconv import --file kunden.xlsx     # Load a file for review and editing
  labelconv list                          # Show records and warnings
  labelconv edit --index 3 --set PLZ=01067
  labelconv export --filter domestic --out labels.csv`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadApp(cmd)
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// loadApp loads the configuration and builds the logger. The default
// config file may be absent; an explicitly named one must exist.
func loadApp(cmd *cobra.Command) error {
	path := cfgFile
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	appConfig = cfg
	logger = logging.New(cfg.LogLevel, cfg.LogFormat)
	if path != "" {
		logger.Debugf("using config file %s", path)
	}
	return nil
}

// sessionStore returns the store for the configured session file.
func sessionStore() *session.Store {
	return session.NewStore(appConfig.SessionFile, logger)
}
