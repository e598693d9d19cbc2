package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reclaim/internal/classify"
	"reclaim/internal/fileutil"
	"reclaim/internal/metadata"
	"reclaim/internal/organize"
)

// organizeFlags are shared by every organizing subcommand.
type organizeFlags struct {
	dryRun        bool
	dedupe        bool
	includeHidden bool
}

func (f *organizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "Preview every decision without touching files")
	cmd.Flags().BoolVar(&f.dedupe, "dedupe", false, "Detect byte-identical duplicates and move only the first copy")
	cmd.Flags().BoolVar(&f.includeHidden, "include-hidden", false, "Include hidden files and directories")
}

func newMusicCommand(ctx *commandContext) *cobra.Command {
	var flags organizeFlags
	cmd := &cobra.Command{
		Use:   "music <source> <target>",
		Short: "Sort audio files into Artist/Album/NN - Title from their tags",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(ctx, cmd, flags, args[0], args[1],
				classify.NewMusic(), metadata.MusicExtractor{}, false)
		},
	}
	flags.register(cmd)
	return cmd
}

func newPhotosCommand(ctx *commandContext) *cobra.Command {
	var flags organizeFlags
	cmd := &cobra.Command{
		Use:   "photos <source> <target>",
		Short: "Sort photos into Year/Month folders from their EXIF capture dates",
		Long: "Sort photos into Year/MM-Month folders named by capture timestamp.\n" +
			"Photos without an EXIF capture date are left in place and counted as skipped.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(ctx, cmd, flags, args[0], args[1],
				classify.NewPhoto(), metadata.PhotoExtractor{}, false)
		},
	}
	flags.register(cmd)
	return cmd
}

func newVideosCommand(ctx *commandContext) *cobra.Command {
	var flags organizeFlags
	cmd := &cobra.Command{
		Use:   "videos <source> <target>",
		Short: "Sort videos into Year/Month folders from container creation times",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runOrganize(ctx, cmd, flags, args[0], args[1],
				classify.NewVideo(), metadata.VideoExtractor{Binary: cfg.FFprobeBinary()}, false)
		},
	}
	flags.register(cmd)
	return cmd
}

func newJunkCommand(ctx *commandContext) *cobra.Command {
	var flags organizeFlags
	var extFlag string
	var skipDuplicates bool
	var removeDuplicates bool

	cmd := &cobra.Command{
		Use:   "junk <source> <target>",
		Short: "Pull files of the given extensions into flat <ext>_files buckets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extensions := splitExtensions(extFlag)
			if len(extensions) == 0 {
				return fmt.Errorf("at least one extension is required (--ext jpg,png,…)")
			}
			if skipDuplicates || removeDuplicates {
				flags.dedupe = true
			}
			return runOrganize(ctx, cmd, flags, args[0], args[1],
				classify.NewExtension(extensions), metadata.None, removeDuplicates)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&extFlag, "ext", "", "Comma-separated extensions to collect (required)")
	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", false, "Leave byte-identical duplicates behind in the source")
	cmd.Flags().BoolVar(&removeDuplicates, "remove-dupes", false, "Delete byte-identical duplicates from the source")
	return cmd
}

func runOrganize(ctx *commandContext, cmd *cobra.Command, flags organizeFlags,
	source, target string, classifier organize.Classifier,
	extractor metadata.Extractor, deleteDuplicates bool) error {

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger()
	if err != nil {
		return err
	}

	if !flags.dryRun {
		// The lock file lives in the target root, so the root must exist
		// before the lock can be taken.
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("create target root: %w", err)
		}
		lock, err := organize.AcquireRunLock(target)
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
		SourceRoot:         source,
		TargetRoot:         target,
		DryRun:             flags.dryRun,
		DetectDuplicates:   flags.dedupe,
		DeleteDuplicates:   deleteDuplicates,
		IncludeHidden:      flags.includeHidden || cfg.Organize.IncludeHidden,
		CheckSpace:         cfg.Organize.CheckSpace,
		MaxComponentLength: cfg.Organize.MaxComponentLength,
		Placeholder:        cfg.Organize.Placeholder,
		Classifier:         classifier,
		Extractor:          extractor,
		Cache:              cache,
		Logger:             logger,
		Observer:           organize.LogObserver{Logger: logger},
	})
	if err != nil {
		return err
	}

	stats, runErr := run.Execute(cmd.Context())
	printRunSummary(cmd, stats, flags.dryRun)
	return runErr
}

func printRunSummary(cmd *cobra.Command, stats organize.RunStatistics, dryRun bool) {
	rows := [][]string{
		{"Discovered", strconv.Itoa(stats.Discovered)},
		{"Moved", strconv.Itoa(stats.Moved)},
		{"Kept in place", strconv.Itoa(stats.Kept)},
		{"Duplicates", strconv.Itoa(stats.SkippedDuplicate)},
		{"Duplicates deleted", strconv.Itoa(stats.DuplicatesDeleted)},
		{"Skipped", strconv.Itoa(stats.Skipped)},
		{"Errors", strconv.Itoa(stats.SkippedError)},
		{"Bytes moved", fileutil.FormatBytes(stats.BytesMoved)},
		{"Bytes reclaimed", fileutil.FormatBytes(stats.BytesReclaimed)},
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Result", "Count"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
		nil,
	))

	for _, runErr := range stats.Errors {
		fmt.Fprintf(out, "error: %s: %s\n", runErr.Path, runErr.Reason)
	}
	if dryRun {
		fmt.Fprintln(out, "Dry run: nothing was moved or deleted.")
	}
}

func splitExtensions(value string) []string {
	parts := strings.Split(value, ",")
	extensions := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			extensions = append(extensions, part)
		}
	}
	return extensions
}
