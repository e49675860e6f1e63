package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simonhull/mp4meta"
)

var (
	configFile string
	cfg        *Config
	logger     *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mp4meta",
	Short: "Inspect and edit iTunes metadata in MPEG-4 files",
	Long: `mp4meta reads and rewrites the iTunes item list (moov.udta.meta.ilst)
of M4A and M4B files.

It prints the atom tree of a file, lists its metadata items and edits
them in place without touching the audio data.`,
	Version:       mp4meta.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd.Flags(), configFile)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg)
		return err
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./mp4meta.yaml or $HOME/.config/mp4meta/mp4meta.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text or json)")
	rootCmd.PersistentFlags().Int64("max-data-size", 0, "skip data atoms larger than this many bytes (0 means no limit)")

	rootCmd.AddCommand(dumpCmd, tagsCmd, setCmd)
}

// readOptions returns the read options implied by the loaded config.
func readOptions() []mp4meta.Option {
	opts := []mp4meta.Option{mp4meta.WithLogger(logger)}
	if cfg != nil && cfg.MaxDataSize > 0 {
		opts = append(opts, mp4meta.WithMaxDataSize(cfg.MaxDataSize))
	}
	return opts
}
