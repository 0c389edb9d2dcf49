// Package pipeline wires storage, cleaning and reporting into the clean and
// stats runs.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"

	"userclean/internal/config"
	"userclean/internal/formatter"
	"userclean/internal/logger"
	"userclean/internal/models"
	"userclean/internal/normalizer"
	"userclean/internal/stats"
	"userclean/internal/storage"
)

// noDataMessage is logged when the input yields no records.
const noDataMessage = "No records found in input or malformed JSON."

// Runner executes one cleaner run.
type Runner struct {
	cfg       *config.Config
	log       *logger.Logger
	files     *storage.Files
	processor *normalizer.Processor
	out       io.Writer
	runID     string
}

// NewRunner creates a runner for cfg. Progress lines go to out.
func NewRunner(cfg *config.Config, log *logger.Logger, out io.Writer) (*Runner, error) {
	strategy, err := normalizer.ParseStrategy(cfg.Pipeline.Strategy)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log = log.With("run_id", runID)
	log.SetTimings(cfg.Logging.Timings)

	return &Runner{
		cfg: cfg,
		log: log,
		files: storage.New(log,
			storage.WithAsync(cfg.Pipeline.AsyncIO),
			storage.WithPrettyPrint(cfg.Output.PrettyPrint),
		),
		processor: normalizer.NewProcessor(strategy, cfg.Pipeline.ChunkSize),
		out:       out,
		runID:     runID,
	}, nil
}

// RunID returns the identifier attached to every log line of this run.
func (r *Runner) RunID() string {
	return r.runID
}

// Run dispatches on the configured mode.
func (r *Runner) Run(ctx context.Context) error {
	switch r.cfg.Pipeline.Mode {
	case config.ModeClean:
		return r.Clean(ctx)
	case config.ModeStats:
		return r.Stats(ctx, r.out)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidMode, r.cfg.Pipeline.Mode)
	}
}

// Clean reads the input, cleans it with the configured strategy and writes the
// result. Write failures are logged and the run still completes.
func (r *Runner) Clean(ctx context.Context) error {
	raw := r.read(ctx)
	if len(raw) == 0 {
		r.log.Warn(noDataMessage, "input", r.cfg.Pipeline.Input)
		return nil
	}

	stop := r.log.Timed(fmt.Sprintf("clean (%s)", r.processor.Strategy()))
	cleaned := r.processor.Clean(raw)
	stop()

	path := r.cfg.Output.Path
	format := r.cfg.ResolveFormat()

	stop = r.log.Timed("write output")
	err := r.files.WriteNormalized(ctx, path, format, cleaned)
	stop()

	// The storage layer has already logged the failure.
	if err == nil {
		fmt.Fprintf(r.out, "✅ Cleaned %s records -> %s\n", formatter.FormatCount(len(cleaned)), path)
	}

	return nil
}

// Stats reads the input, cleans it with both strategies and writes the summary
// report of the chunked result to w. Nothing is written when the input is empty.
func (r *Runner) Stats(ctx context.Context, w io.Writer) error {
	raw := r.read(ctx)
	if len(raw) == 0 {
		r.log.Warn(noDataMessage, "input", r.cfg.Pipeline.Input)
		return nil
	}

	stop := r.log.Timed("clean (whole)")
	whole := normalizer.CleanAll(raw)
	stop()

	stop = r.log.Timed("clean (chunked)")
	chunked := normalizer.CleanChunked(raw, r.cfg.Pipeline.ChunkSize)
	stop()

	if !slices.Equal(whole, chunked) {
		r.log.Warn("cleaning strategies disagree", "whole", len(whole), "chunked", len(chunked))
	}

	report := r.report(chunked)

	write := formatter.WriteReport
	if r.cfg.Report.Format == config.ReportJSON {
		write = formatter.WriteReportJSON
	}

	if err := write(w, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (r *Runner) report(records []models.NormalizedRecord) models.Report {
	defer r.log.Timed("aggregate stats")()

	return stats.BuildReport(records, r.cfg.Report.TopN)
}

func (r *Runner) read(ctx context.Context) []models.RawRecord {
	mode := "sync"
	if r.files.Async() {
		mode = "async"
	}

	defer r.log.Timed("read input (" + mode + ")")()

	raw := r.files.ReadRaw(ctx, r.cfg.Pipeline.Input)
	r.log.Debug("read input", "path", r.cfg.Pipeline.Input, "records", len(raw))

	return raw
}
