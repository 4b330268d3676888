// Package cli implements the anicla commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/anicla/anicla/config"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/spf13/cobra"
)

var (
	dataDirFlag    string
	storeFlag      string
	classifierFlag string
	debugFlag      bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "anicla",
	Short: "Classify images and videos locally",
	Long: "Anicla stores uploaded media by content hash, derives a thumbnail and " +
		"metadata, asks a classifier for a label and keeps a local history.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataDirFlag, "data-dir", "d", "", "Data directory (default: $ANICLA_DATA_DIR or the user config dir)")
	RootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "History backend: sqlite or json (default: $ANICLA_STORE or sqlite)")
	RootCmd.PersistentFlags().StringVar(&classifierFlag, "classifier", "", "Classifier command line (default: $ANICLA_CLASSIFIER_CMD)")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// loadConfig reads the environment and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDirFlag
	}
	if flags.Changed("store") {
		cfg.Store = storeFlag
	}
	if flags.Changed("classifier") {
		cfg.ClassifierCmd = classifierFlag
	}
	if flags.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Lookup("max-upload-mb") != nil && flags.Changed("max-upload-mb") {
		cfg.MaxUploadSizeMB, _ = flags.GetInt("max-upload-mb")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openApp loads the configuration and wires every component. Operator
// logs go to stderr so command output stays parseable.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger.Setup(os.Stderr, cfg.Debug)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return newApp(ctx, cfg)
}
