package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"reclaim/internal/fileutil"
	"reclaim/internal/split"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var maxSize string
	var dryRun bool
	var flatten bool

	cmd := &cobra.Command{
		Use:   "split <source> <output>",
		Short: "Split a flat directory into size-capped batch_NNN subdirectories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			maxBytes := cfg.Split.MaxBytes
			if maxSize != "" {
				parsed, err := humanize.ParseBytes(maxSize)
				if err != nil {
					return fmt.Errorf("parse --max-size: %w", err)
				}
				maxBytes = int64(parsed)
			}

			splitter, err := split.New(maxBytes, dryRun, logger)
			if err != nil {
				return err
			}

			var result split.Result
			if flatten {
				result, err = splitter.Flatten(args[0], args[1])
			} else {
				result, err = splitter.Split(args[0], args[1])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flatten {
				fmt.Fprintf(out, "Flattened %d files into %s\n", result.FilesMoved, args[1])
			} else {
				fmt.Fprintf(out, "Moved %d files (%s) into %d batches under %s\n",
					result.FilesMoved, fileutil.FormatBytes(result.BytesMoved), result.Batches, args[1])
			}
			for _, fileErr := range result.Errors {
				fmt.Fprintf(out, "error: %s: %s\n", fileErr.Path, fileErr.Reason)
			}
			if dryRun {
				fmt.Fprintln(out, "Dry run: nothing was moved.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&maxSize, "max-size", "", "Maximum batch size, e.g. 1GiB (default from configuration)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Plan batches without moving files")
	cmd.Flags().BoolVar(&flatten, "flatten", false, "Reverse a split: move batch contents back into one directory")
	return cmd
}
