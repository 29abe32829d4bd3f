package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"chatreport/internal/bootstrap"
	sessioninadapter "chatreport/internal/modules/session/adapter/in"
	"chatreport/internal/platform/config"
	apperrors "chatreport/internal/platform/errors"
	"chatreport/internal/platform/logging"
	"chatreport/internal/ui/summary"
	"chatreport/internal/ui/theme"
)

var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var metricFlags = []string{"user_messages", "ai_responses", "validation_errors", "cta_left", "session_time"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Errors returned before RunE starts come from cobra's own flag and
	// argument checks.
	started := false
	root := newRootCmd(stdout, &started)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}
	styles := theme.For(stderr)
	_, _ = fmt.Fprintf(stderr, "%s %v\n", styles.Bad.Render("ERROR:"), err)
	if !started || errors.Is(err, apperrors.ErrUsage) {
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		return exitUsage
	}
	return exitError
}

func newRootCmd(stdout io.Writer, started *bool) *cobra.Command {
	var (
		args       sessioninadapter.Args
		configPath string
		outDir     string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "chatreport",
		Short:         "Generate a text and HTML quality report for one chat session",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			*started = true

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out-dir") {
				cfg.OutputDir = outDir
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			logger.Debug("configuration loaded",
				zap.String("config", configPath),
				zap.String("output_dir", cfg.OutputDir),
			)

			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Generate(cmd.Context(), args)
			if err != nil {
				return err
			}
			return summary.Render(stdout, out)
		},
	}

	flags := root.Flags()
	flags.StringVar(&args.UserMessages, "user_messages", "", "total number of user messages")
	flags.StringVar(&args.AIResponses, "ai_responses", "", "number of AI responses")
	flags.StringVar(&args.ValidationErrors, "validation_errors", "", "number of validation errors")
	flags.StringVar(&args.CTALeft, "cta_left", "", "whether the user left via the call to action: true|false")
	flags.StringVar(&args.SessionTime, "session_time", "", "session duration in minutes")
	flags.StringVar(&args.SummaryPath, "summary", "", "also write a YAML summary to this path")
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&outDir, "out-dir", ".", "directory for the generated reports")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	for _, name := range metricFlags {
		_ = root.MarkFlagRequired(name)
	}
	flags.SetNormalizeFunc(normalizeMetricFlag)

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &apperrors.UsageError{Reason: err.Error()}
	})
	return root
}

// normalizeMetricFlag accepts dashed spellings of the metric flags.
func normalizeMetricFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	underscored := strings.ReplaceAll(name, "-", "_")
	for _, metric := range metricFlags {
		if underscored == metric {
			return pflag.NormalizedName(metric)
		}
	}
	return pflag.NormalizedName(name)
}
