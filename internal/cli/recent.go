package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"petnames/internal/domain"
)

func newRecentCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently recorded names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			store, release, err := openStore(cmd.Context(), opts.logger)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer release()

			names, err := store.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list recent names: %w", err)
			}
			if opts.jsonOut {
				if names == nil {
					names = []domain.GeneratedName{}
				}
				return writeJSON(cmd.OutOrStdout(), names)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderRecent(names))
			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", domain.DefaultRecentLimit, "number of names to show")
	return cmd
}

func newTypesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported animal types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := animalTypeRows()
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTypes(rows))
			return err
		},
	}
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(cmd.Context(), opts.logger); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return err
		},
	}
}
