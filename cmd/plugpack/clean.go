package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	logadapter "github.com/plugforge/plugpack/internal/adapters/log"
	"github.com/plugforge/plugpack/internal/cliconfig"
	"github.com/plugforge/plugpack/internal/domain"
)

func newCleanCmd(cfg *cliconfig.Config, cfgPath *string, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [target...]",
		Short: "Remove produced archives from the dist directory",
		Long: strings.TrimSpace(`
Remove the archives the given targets would produce. With --all, clean every
discovered target; with no targets at all, remove every archive in the dist
directory.
`),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, *cfgPath, cfg); err != nil {
				return err
			}

			pk := buildPackager(*cfg, logadapter.NewZerologAdapterWithLogger(log))
			removed, err := pk.Clean(cmd.Context(), domain.BatchRequest{Targets: args, All: cfg.All})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range removed {
				fmt.Fprintf(out, "removed %s\n", relPath(cfg.ProjectRoot, path))
			}
			if len(removed) == 0 {
				fmt.Fprintln(out, "nothing to remove")
			}
			return nil
		},
	}
}
