package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/csvdash/internal/core"
)

type analyzeOptions struct {
	output      string
	valueColumn string
	strict      bool
	columns     bool
}

func newAnalyzeCommand() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Extract dashboard metrics from CSV files",
		Example: `  csvdash analyze sales.csv
  csvdash analyze q1.csv q2.csv --output json
  csvdash analyze visits.csv --value-column Sessions --output yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "table", "json", "yaml":
			default:
				return fmt.Errorf("unknown output format %q (want table, json or yaml)", opts.output)
			}

			cfg := getConfig(cmd.Context())
			svc := core.NewService(cfg)

			analyzeOpts := core.AnalyzeOptions{ValueColumn: opts.valueColumn}
			if cmd.Flags().Changed("strict") {
				analyzeOpts.Strict = &opts.strict
			}

			results, err := analyzeFiles(cmd.Context(), svc, args, analyzeOpts, cfg.Upload.MaxConcurrent)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), results, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format: table, json or yaml")
	cmd.Flags().StringVar(&opts.valueColumn, "value-column", "", "numeric column to plot against the date/time column")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, `only count cells that are entirely numeric, skipping values like "12%" or "40 kg"`)
	cmd.Flags().BoolVar(&opts.columns, "columns", false, "also print statistics for every numeric column (table output)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// analyzeFiles runs the files concurrently and returns results in argument
// order. The first failure cancels the rest.
func analyzeFiles(ctx context.Context, svc *core.Service, paths []string, opts core.AnalyzeOptions, limit int) ([]*core.Analysis, error) {
	results := make([]*core.Analysis, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, path := range paths {
		g.Go(func() error {
			a, err := analyzeFile(ctx, svc, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzeFile(ctx context.Context, svc *core.Service, path string, opts core.AnalyzeOptions) (*core.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return svc.Analyze(ctx, filepath.Base(path), f, opts)
}
