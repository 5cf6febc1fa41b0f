package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	logadapter "github.com/plugforge/plugpack/internal/adapters/log"
	"github.com/plugforge/plugpack/internal/cliconfig"
	"github.com/plugforge/plugpack/internal/domain"
)

func newValidateCmd(cfg *cliconfig.Config, cfgPath *string, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [target...]",
		Short: "Check target manifests without archiving",
		Long: strings.TrimSpace(`
Resolve each target and read its manifest, reporting the archive name it
would produce. Nothing is written; the archiver is never invoked.
`),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, *cfgPath, cfg); err != nil {
				return err
			}

			pk := buildPackager(*cfg, logadapter.NewZerologAdapterWithLogger(log))
			results, err := pk.Validate(cmd.Context(), domain.BatchRequest{Targets: args, All: cfg.All})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, r := range results {
				if r.Err != nil {
					invalid++
					fmt.Fprintf(out, "invalid %s: %v\n", r.Input, r.Err)
					continue
				}
				fmt.Fprintf(out, "ok %s  %s\n", r.BaseName, relPath(cfg.ProjectRoot, r.AbsolutePath))
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d targets invalid", invalid, len(results))
			}
			return nil
		},
	}
}

// relPath shortens p to a root-relative path when p lives under root.
func relPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}
