package main

import (
	"log/slog"

	"github.com/cwbudde/clprobe/internal/opencl"
	"github.com/cwbudde/clprobe/internal/probe"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   *slog.Logger

	// enumerator is the platform source for the bare command; tests swap it.
	enumerator probe.Enumerator = opencl.Loader{}
)

var rootCmd = &cobra.Command{
	Use:   "clprobe",
	Short: "Report how many OpenCL platforms are visible",
	Long: `clprobe asks the OpenCL ICD loader for the number of installed platforms
and prints a single line: "<n> platform(s) found" on success, or
"clGetPlatformIDs(<code>)" with the raw status code on failure.
The exit status is 0 in both cases. Extra arguments are ignored.`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logger
		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelWarn
		}

		// stdout carries the report only
		opts := &slog.HandlerOptions{Level: level}
		handler := slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
		logger = slog.New(handler).With("run_id", uuid.New().String())
		slog.SetDefault(logger)
	},
	RunE: runProbe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func runProbe(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		logger.Debug("Ignoring arguments", "args", args)
	}
	if !opencl.Built {
		logger.Warn("Built without OpenCL support, reporting as if no runtime is installed; rebuild with -tags opencl")
	}
	logger.Debug("Querying platform count", "opencl_built", opencl.Built)

	result, err := probe.Probe(enumerator)
	if err != nil {
		return err
	}

	if result.OK() {
		logger.Info("Platform enumeration succeeded", "platforms", result.Count)
	} else {
		logger.Info("Platform enumeration failed",
			"code", int32(result.Failure.Code),
			"status", result.Failure.Code.String(),
		)
	}

	return probe.Report(cmd.OutOrStdout(), result)
}
