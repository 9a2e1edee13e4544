package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/whereql/internal/config"
	"github.com/kubev2v/whereql/internal/store"
)

const envPrefix = "WHEREQL"

// NewRootCommand returns the whereql command with all subcommands attached.
// Flags left unset on the command line are read from WHEREQL_* environment
// variables.
func NewRootCommand(cfg *config.Configuration) *cobra.Command {
	root := &cobra.Command{
		Use:           "whereql",
		Short:         "Translate SQL WHERE clauses into document store queries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindEnvironment(cmd)

			if err := validateConfiguration(cfg); err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	registerGlobalFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		NewRunCommand(cfg),
		NewTranslateCommand(),
		NewQueryCommand(cfg),
		NewLoadCommand(cfg),
	)

	return root
}

func registerGlobalFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console, json)")
	flags.StringVar(&cfg.Store.Path, "store-path", cfg.Store.Path, "Path of the DuckDB database file, \":memory:\" for an in-memory database")
}

func bindEnvironment(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cobraflags.PresetRequiredFlags(envPrefix, make(map[*pflag.Flag]bool), cmd)
}

func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	db, err := store.NewDB(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Store.Path, err)
	}

	st := store.NewStore(db)
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	return st, nil
}
