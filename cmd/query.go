package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kubev2v/whereql/internal/config"
	"github.com/kubev2v/whereql/internal/services"
	"github.com/kubev2v/whereql/internal/store"
	"github.com/kubev2v/whereql/pkg/scheduler"
)

func NewQueryCommand(cfg *config.Configuration) *cobra.Command {
	var (
		output string
		limit  uint64
	)

	cmd := &cobra.Command{
		Use:   "query [where clause]",
		Short: "Run a WHERE clause against a collection",
		Long: `Run a WHERE clause against a collection of the store.

Each query of the translated clause is executed and the documents are
printed in query order. A document matched by several queries is printed
once per match. Without a clause every document of the collection is printed.`,
		Example: `  whereql query --collection people "age > 30 AND name LIKE 'Jo%'"`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			sched := scheduler.NewScheduler(cfg.Query.NumWorkers)
			defer sched.Close()

			result, err := services.NewQueryService(st, sched).
				Find(ctx, cfg.Query.Collection, strings.Join(args, " "), store.WithLimit(limit))
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), output, result)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Query.Collection, "collection", "c", cfg.Query.Collection, "Collection to query")
	flags.IntVar(&cfg.Query.NumWorkers, "num-workers", cfg.Query.NumWorkers, "Number of queries executed concurrently")
	flags.Uint64Var(&limit, "limit", 0, "Maximum number of documents returned by each query, 0 for no limit")
	flags.StringVarP(&output, "output", "o", outputText, "Output format (text, json, yaml)")

	return cmd
}
