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

	execadapter "github.com/plugforge/plugpack/internal/adapters/exec"
	"github.com/plugforge/plugpack/internal/adapters/fs"
	logadapter "github.com/plugforge/plugpack/internal/adapters/log"
	"github.com/plugforge/plugpack/internal/cliconfig"
	"github.com/plugforge/plugpack/internal/domain"
	"github.com/plugforge/plugpack/internal/packager"
)

const helpDescription = `
Package plugin source directories into versioned, distributable archives.

Each target directory is resolved against the project root first and the
source root second, named from its manifest ("{name}-{version}", with the
directory basename and "0.0.0" as fallbacks), and compressed into
<dist>/<name>-<version>.zip by an external archiver.

Batches run under an isolate-and-continue policy: one broken target does not
stop the others, and the exit status is non-zero if any target failed.
`

var exampleUsage = strings.TrimSpace(`
  plugpack chatwork
  plugpack --all
  plugpack src/chatwork src/hello_world --dist-dir build/dist
  plugpack chatwork --watch
  plugpack validate --all
  plugpack clean chatwork
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "plugpack [target...]",
		Short:   "Package plugin source directories into versioned archives",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfgPath, &cfg); err != nil {
				return err
			}

			logger := logadapter.NewZerologAdapterWithLogger(log)
			pk := buildPackager(cfg, logger)
			reporter := packager.NewReporter(cmd.OutOrStdout(), cfg.ProjectRoot)
			req := domain.BatchRequest{Targets: args, All: cfg.All}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				err := pk.Watch(ctx, req, cfg.WatchDebounce, reporter.Report)
				if err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}

			batch, err := pk.Run(ctx, req)
			if err != nil {
				return err
			}
			reporter.Report(batch)
			if batch.Failed() {
				return fmt.Errorf("%d of %d targets failed",
					len(batch.Failures), len(batch.Failures)+len(batch.Results))
			}
			return nil
		},
	}

	// Flags shared by all commands
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.plugpack/config.toml)")
	root.PersistentFlags().StringVar(&cfg.ProjectRoot, "root", cfg.ProjectRoot, "project root directory")
	root.PersistentFlags().StringVar(&cfg.SourceRoot, "source-root", cfg.SourceRoot, "plugin source root (default: <root>/src)")
	root.PersistentFlags().StringVar(&cfg.DistDir, "dist-dir", cfg.DistDir, "output directory for archives (default: <root>/dist)")
	root.PersistentFlags().StringVar(&cfg.ManifestName, "manifest", cfg.ManifestName, "per-plugin manifest filename")
	root.PersistentFlags().StringVar(&cfg.ArchiverBin, "archiver", cfg.ArchiverBin, "external archiver binary")
	root.PersistentFlags().DurationVar(&cfg.ArchiveTimeout, "timeout", cfg.ArchiveTimeout, "per-target archiver timeout (0 disables)")
	root.PersistentFlags().BoolVar(&cfg.All, "all", cfg.All, "package every immediate subdirectory of the source root")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and repackage targets when their sources change")
	root.Flags().DurationVar(&cfg.WatchDebounce, "debounce", cfg.WatchDebounce, "delay before repackaging after a source change")

	root.AddCommand(newValidateCmd(&cfg, &cfgPath, log))
	root.AddCommand(newCleanCmd(&cfg, &cfgPath, log))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("plugpack")
		os.Exit(1)
	}
}

// loadConfig applies config file and environment values underneath any
// explicitly set flags, then validates the result.
func loadConfig(cmd *cobra.Command, cfgPath string, cfg *cliconfig.Config) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	// Environment variables (PLUGPACK_*) override file config but are
	// overridden by flags (checked via changed map)
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

// buildPackager wires the filesystem and subprocess adapters into an
// orchestrator per the validated configuration.
func buildPackager(cfg cliconfig.Config, logger *logadapter.ZerologAdapter) *packager.Packager {
	resolver := fs.NewTargetResolver(cfg.ProjectRoot, cfg.SourceRoot)
	reader := fs.NewManifestReader(cfg.ManifestName)
	archiver := execadapter.NewZipArchiver(cfg.ArchiverBin, cfg.ArchiveTimeout)
	return packager.New(cfg.DistDir, resolver, resolver, reader, archiver, logger)
}
