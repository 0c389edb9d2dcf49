// Package main provides the userclean command for cleaning user records and
// reporting on them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"userclean/internal/config"
	"userclean/internal/logger"
	"userclean/internal/pipeline"
)

const usageText = `Usage: userclean <mode> [flags]

Modes:
  clean   Clean the input and write the cleaned records
  stats   Clean the input and print a summary report
  help    Show this message

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// options holds the raw flag values before they are applied to a config.
type options struct {
	configPath string
	async      bool
	chunk      int
	strategy   string
	input      string
	output     string
	format     string
	top        int
	jsonReport bool
	logLevel   string
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	def := config.Default()

	fs := flag.NewFlagSet("userclean", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to YAML config file")
	fs.BoolVar(&opts.async, "async", def.Pipeline.AsyncIO, "Use asynchronous file I/O")
	fs.IntVar(&opts.chunk, "chunk", def.Pipeline.ChunkSize, "Records per chunk for the chunked strategy")
	fs.StringVar(&opts.strategy, "strategy", def.Pipeline.Strategy, "Cleaning strategy for clean mode (chunked, whole)")
	fs.StringVar(&opts.input, "input", def.Pipeline.Input, "Path to the raw JSON input")
	fs.StringVar(&opts.output, "output", def.Output.Path, "Path to the cleaned output")
	fs.StringVar(&opts.format, "format", "", "Output format (json, jsonl, sqlite); inferred from -output when empty")
	fs.IntVar(&opts.top, "top", def.Report.TopN, "Number of domains and cities in the report")
	fs.BoolVar(&opts.jsonReport, "json", false, "Print the stats report as JSON")
	fs.StringVar(&opts.logLevel, "log-level", def.Logging.Level, "Log level (debug, info, warn, error)")

	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	return fs
}

// splitMode separates the mode from the flags. The mode may come before or
// after the flags.
func splitMode(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], fs.Parse(args[1:])
	}

	if err := fs.Parse(args); err != nil {
		return "", err
	}

	return fs.Arg(0), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := newFlagSet(&opts, stderr)

	mode, err := splitMode(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		return 2
	}

	switch mode {
	case config.ModeClean, config.ModeStats:
	case "", "help":
		fs.Usage()
		return 0
	default:
		fmt.Fprintf(stderr, "⚠️  Unknown mode: %s\n\n", mode)
		fs.Usage()

		return 2
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	log := logger.NewLoggerWithWriter(opts.logLevel, stderr)

	cfg, err := loadConfig(opts.configPath, set["config"], log)
	if err != nil {
		log.Error("failed to load config", "path", opts.configPath, "error", err)
		return 1
	}

	applyFlags(cfg, mode, &opts, set)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return 1
	}

	log.SetLevel(cfg.Logging.Level)
	log.Debug("configuration", "config", cfg.String())

	runner, err := pipeline.NewRunner(cfg, log, stdout)
	if err != nil {
		log.Error("failed to create runner", "error", err)
		return 1
	}

	if err := runner.Run(ctx); err != nil {
		log.Error("run failed", "error", err)
		return 1
	}

	return 0
}

// loadConfig reads the config file. A missing or broken file at the default
// path falls back to defaults; an explicitly requested file must load.
func loadConfig(path string, explicit bool, log *logger.Logger) (*config.Config, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			log.Debug("no config file, using defaults", "path", path)
			return config.Default(), nil
		}
	}

	cfg, err := config.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}

	if explicit {
		return nil, err
	}

	log.Warn("ignoring config file, using defaults", "path", path, "error", err)

	return config.Default(), nil
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *config.Config, mode string, opts *options, set map[string]bool) {
	cfg.Pipeline.Mode = mode

	if set["async"] {
		cfg.Pipeline.AsyncIO = opts.async
	}

	if set["chunk"] {
		cfg.Pipeline.ChunkSize = opts.chunk
	}

	if set["strategy"] {
		cfg.Pipeline.Strategy = opts.strategy
	}

	if set["input"] {
		cfg.Pipeline.Input = opts.input
	}

	if set["output"] {
		cfg.Output.Path = opts.output
	}

	if set["format"] {
		cfg.Output.Format = opts.format
	}

	if set["top"] {
		cfg.Report.TopN = opts.top
	}

	if set["json"] {
		cfg.Report.Format = config.ReportText
		if opts.jsonReport {
			cfg.Report.Format = config.ReportJSON
		}
	}

	if set["log-level"] {
		cfg.Logging.Level = opts.logLevel
	}
}
