package cli

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"dupfind/internal/config"
	"dupfind/internal/logging"
	"dupfind/internal/pipeline"
	"dupfind/internal/render"
)

// logSink adapts the process logger to pipeline.WarningSink and counts
// how many warnings were recorded, for the final summary line. Warn is
// called concurrently by the walker and the hash worker pools, so count
// is an atomic.Int64 rather than a plain int.
type logSink struct {
	logger zerolog.Logger
	count  atomic.Int64
}

func (s *logSink) Warn(kind pipeline.WarningKind, path string, err error) {
	s.count.Add(1)
	s.logger.Warn().Str("kind", kind.String()).Str("path", path).Err(err).Msg("skipped")
}

func logic(cfg config.Config, debug, quiet bool) error {
	level := "info"
	if debug {
		level = "debug"
	}

	logger := logging.Init(level, quiet)

	enableProgress := strings.ToLower(cfg.Format) != config.FormatJSON &&
		!debug && !quiet &&
		isatty.IsTerminal(os.Stderr.Fd())

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		fmt.Fprintf(os.Stderr, "Scanning %s…\r\n", strings.Join(cfg.Roots, ", "))
	}

	sink := &logSink{logger: logger}

	report, err := pipeline.Run(cfg, sink)

	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if !quiet {
		logger.Info().
			Int("groups", len(report.Groups)).
			Str("reclaimable", humanize.IBytes(uint64(report.Metrics.ReclaimableBytes))). //nolint:gosec // non-negative by construction
			Int64("warnings", sink.count.Load()).
			Msg("scan complete")
	}

	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("opening output path: %w", err)
		}
		defer f.Close()

		return render.Write(f, cfg.Format, report)
	}

	return render.Write(os.Stdout, cfg.Format, report)
}
