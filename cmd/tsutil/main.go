package main

import (
	"fmt"
	"io"
	"os"

	"github.com/raykavin/tsutil/internal/config"
	"github.com/raykavin/tsutil/pkg/logger"
	"github.com/raykavin/tsutil/pkg/logger/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root command ran
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log logger.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "tsutil",
		Short:         "Resample time series and measure drawdowns",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&a.logLevel, "log-level", "l", "", "Log level (overrides configuration)")

	rootCmd.AddCommand(
		buildResampleCmd(a),
		buildMaxDDCmd(a),
		buildStoreCmd(a),
	)

	return rootCmd
}

// init loads the configuration and builds the logger
func (a *app) init(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	log, err := zerolog.New(logOut, zerolog.Options{
		Level:      cfg.Log.Level,
		TimeLayout: cfg.Log.TimeLayout,
		Colored:    cfg.Log.Colored,
		JSON:       cfg.Log.JSON,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}
