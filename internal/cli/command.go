package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"dupfind/internal/config"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		dupfind scans one or more directories and reports groups of byte-identical files.

		Usage:

			dupfind [flags] <root> [root...]

		It walks each root's directory tree in parallel, groups files by exact size, prunes
		candidates with a head+tail partial hash, then confirms survivors with a
		full streaming hash. It never deletes, links, or otherwise modifies a
		file; this tool only reports.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	allowedOutputs := []string{config.FormatText, config.FormatCSV, config.FormatJSON}

	cfg := config.New()

	pflag.IntVarP(&cfg.Threads, "threads", "j", cfg.Threads, "Worker pool size")
	pflag.BoolVar(&cfg.FollowSymlinks, "follow-symlinks", false, "Follow symlinked directories")
	pflag.StringVarP(&cfg.Format, "format", "f", config.FormatText, "Output format: txt, csv, or json")
	pflag.StringVarP(&cfg.OutputPath, "output", "o", "", "Write the report here instead of stdout")

	debug := pflag.Bool("debug", false, "Enable debug logging")
	quiet := pflag.BoolP("quiet", "q", false, "Suppress progress and log output")
	version := pflag.BoolP("version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if *version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, cfg.Format) {
		return fmt.Errorf("invalid output format %q: must be one of %v", cfg.Format, allowedOutputs)
	}

	if pflag.NArg() == 0 {
		return errors.New("at least one root path is required")
	}

	cfg.Roots = pflag.Args()

	return logic(cfg, *debug, *quiet)
}
