package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kubev2v/whereql/internal/config"
	"github.com/kubev2v/whereql/internal/services"
)

func NewLoadCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file>...",
		Short: "Store JSON documents in a collection",
		Long: `Store JSON documents in a collection.

Each file holds a JSON object or an array of objects; "-" reads standard
input. The "id" member of a document is its id; documents without one get
a generated id. Documents replace stored documents with the same id.`,
		Example: `  whereql load --collection people people.json`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			srv := services.NewDocumentService(st)

			total := 0
			for _, name := range args {
				body, err := readInput(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}

				n, err := srv.Load(ctx, cfg.Query.Collection, body)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				total += n
			}

			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d documents into %s\n", total, cfg.Query.Collection)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.Query.Collection, "collection", "c", cfg.Query.Collection, "Collection to store the documents in")

	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
