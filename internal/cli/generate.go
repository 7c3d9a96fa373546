package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"petnames/internal/namegen"
)

type generation func(ctx context.Context, svc *namegen.Service) namegen.Result

func newGenerateCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate names from the default pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGeneration(cmd, opts, func(ctx context.Context, svc *namegen.Service) namegen.Result {
				return svc.Generate(ctx, count)
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", namegen.DefaultCount, "number of names to generate")
	addSaveFlag(cmd, opts)
	return cmd
}

func newAnimalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "animal <type>",
		Short:   "Generate one name for an animal type, e.g. \"Rex the Beagle\"",
		Example: "  namegen animal dog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGeneration(cmd, opts, func(ctx context.Context, svc *namegen.Service) namegen.Result {
				return svc.GenerateByAnimalType(ctx, args[0])
			})
		},
	}
	addSaveFlag(cmd, opts)
	return cmd
}

func newBulkCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk <count>",
		Short: fmt.Sprintf("Generate between %d and %d names", namegen.MinBulkCount, namegen.MaxBulkCount),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := parseCount(args[0])
			return runGeneration(cmd, opts, func(ctx context.Context, svc *namegen.Service) namegen.Result {
				return svc.GenerateBulk(ctx, raw)
			})
		},
	}
	addSaveFlag(cmd, opts)
	return cmd
}

func addSaveFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVar(&opts.save, "save", false, "record generated names in the database")
}

// parseCount hands numeric arguments to the validator as numbers and
// anything else as the raw string, which it rejects as not a number.
func parseCount(arg string) any {
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}

func runGeneration(cmd *cobra.Command, opts *options, gen generation) error {
	ctx := cmd.Context()
	svcOpts := namegen.Options{
		Source: namegen.NewFakerSource(opts.seed),
		Logger: opts.logger,
	}
	if opts.save {
		store, release, err := openStore(ctx, opts.logger)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer release()
		svcOpts.Recorder = store
	}

	res := gen(ctx, namegen.NewService(svcOpts))
	if err := printResult(cmd.OutOrStdout(), res, opts.jsonOut); err != nil {
		return err
	}
	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}
