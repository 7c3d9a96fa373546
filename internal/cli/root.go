// Package cli implements the namegen command line tool.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"petnames/internal/adapter/repo"
	"petnames/internal/domain"
	"petnames/internal/infra"
)

type options struct {
	seed    uint64
	jsonOut bool
	save    bool
	logger  *infra.Logger
}

// storeOpener connects to the names store. The returned func releases it.
type storeOpener func(ctx context.Context, logger *infra.Logger) (domain.GeneratedNameRepository, func(), error)

// migrator applies schema migrations.
type migrator func(ctx context.Context, logger *infra.Logger) error

var (
	openStore  storeOpener = openPostgresStore
	runMigrate migrator    = migratePostgres
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "namegen",
		Short:         "Generate and record pet names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := infra.NewLoggerTo(cmd.ErrOrStderr(), getenv("APP_ENV", "production")).With().Str("cmd", "namegen").Logger()
			opts.logger = &logger
		},
	}
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed for the name source (0 picks a random seed)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		newGenerateCmd(opts),
		newAnimalCmd(opts),
		newBulkCmd(opts),
		newRecentCmd(opts),
		newTypesCmd(opts),
		newMigrateCmd(opts),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func openPostgresStore(ctx context.Context, logger *infra.Logger) (domain.GeneratedNameRepository, func(), error) {
	cfg, err := infra.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return repo.NewGeneratedNameRepository(infra.NewSQLRunner(pool, *logger)), pool.Close, nil
}

func migratePostgres(ctx context.Context, logger *infra.Logger) error {
	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	return infra.Migrate(ctx, cfg.DatabaseURL, *logger)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
