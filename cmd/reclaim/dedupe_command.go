package main

import (
	"github.com/spf13/cobra"

	"reclaim/internal/classify"
	"reclaim/internal/metadata"
	"reclaim/internal/organize"
)

func newDedupeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var includeHidden bool
	var extFlag string

	cmd := &cobra.Command{
		Use:   "dedupe <dir>",
		Short: "Delete byte-identical duplicates in place, keeping the first copy found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			if !dryRun {
				lock, err := organize.AcquireRunLock(args[0])
				if err != nil {
					return err
				}
				defer lock.Unlock()
			}

			cache := ctx.openCache(logger)
			if cache != nil {
				defer cache.Close()
			}

			run, err := organize.NewRun(organize.Options{
				SourceRoot:       args[0],
				DryRun:           dryRun,
				DetectDuplicates: true,
				DeleteDuplicates: true,
				IncludeHidden:    includeHidden || cfg.Organize.IncludeHidden,
				Classifier:       classify.NewDedupOnly(splitExtensions(extFlag)),
				Extractor:        metadata.None,
				Cache:            cache,
				Logger:           logger,
				Observer:         organize.LogObserver{Logger: logger},
			})
			if err != nil {
				return err
			}

			stats, runErr := run.Execute(cmd.Context())
			printRunSummary(cmd, stats, dryRun)
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report duplicates without deleting them")
	cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "Include hidden files and directories")
	cmd.Flags().StringVar(&extFlag, "ext", "", "Limit deduplication to these comma-separated extensions")
	return cmd
}
