package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/bft-labs/numstat/internal/adapters/fs"
	logAdapter "github.com/bft-labs/numstat/internal/adapters/log"
	"github.com/bft-labs/numstat/internal/app"
	"github.com/bft-labs/numstat/internal/cliconfig"
	"github.com/bft-labs/numstat/internal/parser"
	"github.com/bft-labs/numstat/internal/report"
)

const longHelp = `Read whitespace-separated integers from a text file and print their
minimum, maximum, sum and product.

An empty file is reported as an error: there is no minimum of nothing.
The product is computed with arbitrary precision and never overflows.`

var exampleUsage = strings.TrimSpace(`
  numstat numbers.txt
  numstat --input numbers.txt --log-level info
  numstat --watch numbers.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger := cliconfig.Logger()
		logger.Error().Err(err).Msg("numstat")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "numstat [path]",
		Short:         "Print min, max, sum and product of the integers in a file",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if len(args) == 1 {
				if changed["input"] {
					return fmt.Errorf("input given both as argument and --input")
				}
				cfg.InputPath = args[0]
				changed["input"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// NUMSTAT_* override file config but not flags
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := cliconfig.ParseLevel(cfg.LogLevel)
			log = log.Level(level)
			log.Debug().Interface("config", cfg).Msg("configuration")

			logger := logAdapter.NewZerologAdapterWithLogger(log)
			runner := app.NewRunner(parser.New(fsAdapter.NewOSFileReader(), logger), logger)
			out := cmd.OutOrStdout()

			if !cfg.Watch {
				rep, err := runner.Run(cmd.Context(), cfg.InputPath)
				if err != nil {
					return err
				}
				return report.Write(out, rep)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err := runner.Watch(ctx, cfg.InputPath, fsAdapter.NewWatcher(logger), cfg.DebounceDelay,
				func(rep app.Report, err error) {
					if err != nil {
						log.Error().Err(err).Msg("run failed")
						return
					}
					if err := report.Write(out, rep); err != nil {
						log.Error().Err(err).Msg("write report")
					}
				})
			if errors.Is(err, context.Canceled) {
				log.Info().Msg("received signal, stopping...")
				return nil
			}
			return err
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.numstat/config.toml)")
	root.Flags().StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "input file of whitespace-separated integers")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "recompute whenever the input file changes")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "delay after a change before recomputing (with --watch)")

	return root
}
