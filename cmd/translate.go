package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kubev2v/whereql/pkg/docquery"
	"github.com/kubev2v/whereql/pkg/where"
)

func NewTranslateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "translate <where clause>",
		Short: "Print the document store queries a WHERE clause translates to",
		Example: `  whereql translate "age BETWEEN 18 AND 30 OR name LIKE 'Jo%'"
  whereql translate --output yaml "tags CONTAINS ANY ('go', 'sql')"`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")

			node, err := where.Parse([]byte(expr))
			if err != nil {
				return err
			}

			qs, err := docquery.TranslateWhere(docquery.NewQuerySet(docquery.NewFilterQuery()), node)
			if err != nil {
				return err
			}

			return renderTranslation(cmd.OutOrStdout(), output, expr, qs)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, json, yaml)")

	return cmd
}
