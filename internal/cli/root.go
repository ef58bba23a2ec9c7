package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mydehq/stampname"
	"github.com/mydehq/stampname/internal/ui"
)

var (
	flagDryRun   bool
	flagVerbose  bool
	flagQuiet    bool
	flagConfig   string
	flagSelfName string
	flagFormats  []string
	flagConfirm  bool
	flagPause    bool

	logger = ui.NewLogger(os.Stdout)

	// set once the config is resolved; Execute pauses before exiting
	pauseOnExit bool
)

var RootCmd = &cobra.Command{
	Use:   "stampname [path]",
	Short: "Normalize video file names to S{YYYY}E{MM}{DD} - title",
	Long: `Renames the videos in a folder to "S{YYYY}E{MM}{DD} - {title}{ext}".

Dates come from legacy "YYYY_MM-DD_title" names or from a raw data folder
whose name contains the video's title. Videos without a date of their own get
consecutive free days starting at the median of all dates found.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return runRename(cmd.Context(), cmd, path)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println()
	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(err)
	}

	if pauseOnExit {
		ui.Pause()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false, "Preview changes without applying")
	RootCmd.Flags().StringVar(&flagSelfName, "self-name", "", "Skip files containing this name (default: executable name)")
	RootCmd.Flags().StringSliceVarP(&flagFormats, "ext", "e", nil, "Video extensions to process (default: mp4)")
	RootCmd.Flags().BoolVarP(&flagConfirm, "confirm", "i", false, "Ask before applying renames")
	RootCmd.Flags().BoolVarP(&flagPause, "pause", "p", false, "Wait for Enter before exiting")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress output except errors")
	RootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Custom configuration file path")

	stampname.SetDefaultEventHandler(func(e stampname.Event) {
		logger.HandleEvent(e)
	})

	colorizeHelp(RootCmd)
}

func setupLogger() {
	logger.SetVerbosity(flagQuiet, flagVerbose)
}

// commonOptions are the options shared by every command that reads config
func commonOptions() []stampname.Option {
	var opts []stampname.Option
	if flagConfig != "" {
		opts = append(opts, stampname.WithConfig(flagConfig))
	}
	if flagSelfName != "" {
		opts = append(opts, stampname.WithSelfName(flagSelfName))
	}
	if len(flagFormats) > 0 {
		opts = append(opts, stampname.WithFormats(flagFormats...))
	}
	return opts
}

func runRename(ctx context.Context, cmd *cobra.Command, path string) error {
	opts := commonOptions()

	cfg, err := stampname.LoadConfig(opts...)
	if err != nil {
		return err
	}
	pauseOnExit = (flagPause || cfg.PauseOnExit) && !flagQuiet

	if !flagQuiet {
		ui.PrintBanner(os.Stdout, flagDryRun)
	}
	if cfg.Path != "" {
		logger.Debug("Using config", "path", cfg.Path)
	}

	if flagDryRun {
		opts = append(opts, stampname.WithDryRun())
	}

	confirm := flagConfirm || cfg.Confirm
	if confirm && !flagDryRun {
		if ui.Interactive() {
			opts = append(opts, stampname.WithConfirm(ui.ConfirmRenames))
		} else {
			logger.Warn("Not a terminal, applying renames without confirmation")
		}
	}

	ops, err := stampname.Rename(ctx, path, opts...)
	printSummary(ops)

	var noFallback stampname.ErrNoFallbackDate
	if errors.As(err, &noFallback) {
		logger.Error("No real dates found for fallback", "untouched", noFallback.Undated)
		return errSilent
	}
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Println()
		logger.Success("DONE.")
	}
	return nil
}

func printSummary(ops []stampname.RenameOperation) {
	if flagQuiet || len(ops) == 0 {
		return
	}

	var success, skipped, failed, pending int
	for _, op := range ops {
		switch op.Status {
		case stampname.StatusSuccess:
			success++
		case stampname.StatusSkipped:
			skipped++
		case stampname.StatusFailed:
			failed++
		case stampname.StatusPending:
			pending++
		}
	}

	fmt.Println()
	if flagDryRun {
		logger.Info("Summary",
			"planned", lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Render(fmt.Sprint(pending)),
			"skipped", lipgloss.NewStyle().Foreground(lipgloss.Color("192")).Render(fmt.Sprint(skipped)),
		)
		return
	}
	logger.Info("Summary",
		"renamed", lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Render(fmt.Sprint(success)),
		"skipped", lipgloss.NewStyle().Foreground(lipgloss.Color("192")).Render(fmt.Sprint(skipped)),
		"failed", lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Render(fmt.Sprint(failed)),
	)
}

// errSilent fails the command after the error was already reported
var errSilent = errors.New("already reported")

func reportError(err error) {
	if errors.Is(err, errSilent) {
		return
	}
	if errors.Is(err, context.Canceled) {
		logger.Warn("Interrupted")
		return
	}
	fmt.Println()
	fmt.Fprintln(os.Stderr, ui.RenderFatal(err))
	fmt.Println()
}
