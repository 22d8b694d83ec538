// Package main is the entry point for the iostat reporter. It parses the
// command line, loads layered configuration, sets up logging, and runs
// the report cycle against the live proc filesystem.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sysreport/iostat/internal/config"
	"github.com/sysreport/iostat/internal/hostinfo"
	"github.com/sysreport/iostat/internal/procfs"
	"github.com/sysreport/iostat/internal/report"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cliFlags holds the raw flag values; only flags the user actually set
// override the loaded configuration.
type cliFlags struct {
	extended   bool
	cpu        bool
	device     bool
	kilobytes  bool
	megabytes  bool
	omitFirst  bool
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var fl cliFlags

	cmd := &cobra.Command{
		Use:     "iostat [interval [count]]",
		Short:   "Report CPU and block device I/O statistics",
		Long: `iostat samples kernel CPU and block device counters at a fixed
interval and reports utilization percentages and I/O rates. The first
report shows statistics since boot unless -y is given. interval is the
sampling period in seconds (default 1); count is the number of reports
to emit (default 0, meaning run until interrupted).`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, &fl, args)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&fl.extended, "extended", "x", false, "show extended device statistics")
	f.BoolVarP(&fl.cpu, "cpu", "c", false, "show CPU statistics")
	f.BoolVarP(&fl.device, "device", "d", false, "show device statistics (default: both)")
	f.BoolVarP(&fl.kilobytes, "kilobytes", "k", false, "display throughput in kilobytes per second")
	f.BoolVarP(&fl.megabytes, "megabytes", "m", false, "display throughput in megabytes per second")
	f.BoolVarP(&fl.omitFirst, "omit-first", "y", false, "omit the first report with statistics since boot")
	f.StringVar(&fl.configPath, "config", "", "path to YAML configuration file")
	f.StringVar(&fl.logLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

// buildConfig layers the configuration: defaults, then YAML file, then
// environment, then the flags and positional arguments the user set.
func buildConfig(cmd *cobra.Command, fl *cliFlags, args []string) (*config.Config, error) {
	path := fl.configPath
	if path == "" {
		path = config.Locate()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("extended") {
		cfg.Report.Extended = fl.extended
	}
	if flags.Changed("cpu") {
		cfg.Report.CPU = fl.cpu
	}
	if flags.Changed("device") {
		cfg.Report.Device = fl.device
	}
	if flags.Changed("kilobytes") {
		cfg.Report.Kilobytes = fl.kilobytes
	}
	if flags.Changed("megabytes") {
		cfg.Report.Megabytes = fl.megabytes
	}
	if flags.Changed("omit-first") {
		cfg.Report.OmitFirst = fl.omitFirst
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = fl.logLevel
	}

	if len(args) >= 1 {
		secs, err := strconv.ParseFloat(args[0], 64)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid interval %q: must be a positive number of seconds", args[0])
		}
		cfg.Report.Interval = config.Duration{Duration: time.Duration(secs * float64(time.Second))}
	}
	if len(args) == 2 {
		count, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid count %q: must be a non-negative integer", args[1])
		}
		cfg.Report.Count = uint(count)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run wires the provider, writer, and runner together and executes the
// report cycle until it completes or a termination signal arrives.
func run(cfg *config.Config) error {
	logger := initLogger(cfg)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := procfs.New(logger)
	runner := report.NewRunner(provider, cfg, os.Stdout, logger)

	// Host banner failure is not fatal: the reports themselves do not
	// depend on it.
	if info, err := hostinfo.Collect(ctx); err != nil {
		logger.Warn("Could not determine host information", zap.Error(err))
	} else {
		runner.PrintBanner(info)
	}

	return runner.Run(ctx)
}

// initLogger creates a zap logger based on the configuration. Console
// output goes to stderr so the reports own stdout; a JSON log file is
// added when configured.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
