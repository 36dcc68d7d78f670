package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/simon/config"
)

type playOptions struct {
	configPath string
	envFile    string
	seed       int64
	strict     bool
	noAudio    bool
	debug      bool
	record     string
}

var opts playOptions

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Play the Simon memory game in the terminal",
	Long: `simon plays a growing sequence of colored pads and tones; repeat it
back to advance a round.

Run with no arguments to play
	simon

Keys: g r y b (or 1-4) press pads, p power, s start, t strict, q quit.
Record a session and replay it later
	simon --record game.yaml
	simon replay game.yaml
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if logFile := setupLogging(cfg.Debug); logFile != nil {
			defer logFile.Close()
		}
		logrus.WithFields(logrus.Fields{
			"seed":   cfg.Seed,
			"strict": cfg.Strict,
		}).Debug("configuration loaded")

		return runGame(cfg, opts)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers flags that were set explicitly over the loaded config
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}
	cfg, err := config.Load(opts.configPath, envFiles...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if opts.noAudio {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "simon.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Extra .env file to load (default .env)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write a debug log to logs/simon.log")

	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed for the color sequence (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&opts.strict, "strict", "s", false, "Enable strict mode when powering on")
	rootCmd.Flags().BoolVar(&opts.noAudio, "no-audio", false, "Disable sound")
	rootCmd.Flags().StringVarP(&opts.record, "record", "r", "", "Write the session journal to this file on exit")

	rootCmd.AddCommand(replayCmd)
}
