package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/parsebuf/internal/config"
	"github.com/dshills/parsebuf/internal/driver"
	"github.com/dshills/parsebuf/internal/logging"
)

type scanOptions struct {
	configPath string
	encoding   string
	chunkSize  int
	logLevel   string
	verify     bool
	graphemes  bool
}

func newScanCmd() *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Scan a file, or standard input, chunk by chunk",
		Long: `Scan decodes the input in the configured encoding, appends it to a
buffer one chunk at a time and prints what the incremental scan saw.

Settings are read from the config file, then PARSEBUF_* environment
variables, then flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags(), os.LookupEnv)
			if err != nil {
				return err
			}

			logger := logging.New(logging.Config{
				Level:  cfg.LogLevel(),
				Output: cmd.ErrOrStderr(),
				Prefix: "parsebuf",
			})

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening input")
				}
				defer f.Close()
				in = f
			}

			feeder, err := driver.New(cfg, logger)
			if err != nil {
				return err
			}
			stats, err := feeder.Run(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), cfg, stats)
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}

func (o *scanOptions) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&o.configPath, "config", "c", "parsebuf.toml", "path to configuration file")
	flags.StringVar(&o.encoding, "encoding", "", "input encoding (WHATWG label)")
	flags.IntVar(&o.chunkSize, "chunk-size", 0, "bytes read per chunk")
	flags.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&o.verify, "verify", false, "check retained snapshots against the final buffer")
	flags.BoolVar(&o.graphemes, "graphemes", false, "count grapheme clusters")
}

// resolve layers the config file, the environment and explicitly set flags,
// then validates the result.
func (o *scanOptions) resolve(flags *pflag.FlagSet, lookup config.LookupFunc) (config.Config, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, errors.Wrap(err, "environment")
	}

	if flags.Changed("encoding") {
		cfg.Input.Encoding = o.encoding
	}
	if flags.Changed("chunk-size") {
		cfg.Input.ChunkSize = o.chunkSize
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("verify") {
		cfg.Driver.Verify = o.verify
	}
	if flags.Changed("graphemes") {
		cfg.Driver.Graphemes = o.graphemes
	}

	return cfg, cfg.Validate()
}

func printStats(w io.Writer, cfg config.Config, s driver.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(name, value string) {
		fmt.Fprintf(tw, "%s\t%s\n", name, value)
	}
	count := func(n int) string {
		return humanize.Comma(int64(n))
	}

	row("encoding", s.Encoding)
	row("chunks", count(s.Chunks))
	row("bytes", humanize.Bytes(uint64(s.Bytes)))
	row("units", count(s.Units))
	row("scalars", count(s.Scalars))
	row("surrogate pairs", count(s.SurrogatePairs))
	row("lines", count(s.Lines))
	row("longest line", count(s.LongestLine))
	if cfg.Driver.Graphemes {
		row("graphemes", count(s.Graphemes))
	}
	row("in-place appends", count(s.InPlace))
	row("reallocations", count(s.Reallocs))
	row("snapshots", count(s.SnapshotsRetained))
	if cfg.Driver.Verify {
		row("verified", count(s.SnapshotsVerified))
	}
	return tw.Flush()
}
