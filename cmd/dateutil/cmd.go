package main

import (
	"fmt"
	"io"
	"time"

	"github.com/k-yomo/dateutil"
	"github.com/k-yomo/dateutil/pkg/clock"
	"github.com/k-yomo/dateutil/pkg/timeutil"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var layouts = map[string]string{
	"micro": timeutil.RFC3339Micro,
	"milli": timeutil.RFC3339Milli,
}

type app struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	clock  clock.Clock

	configPath string
	timeZone   string
	layoutName string
	loc        *time.Location
	layout     string
}

// newRootCmd builds the command tree. level must be the level logger was
// built with; it is raised to debug when the config sets verbose.
func newRootCmd(logger *zap.Logger, level zap.AtomicLevel, c clock.Clock) *cobra.Command {
	a := &app{logger: logger, level: level, clock: c}

	root := &cobra.Command{
		Use:           "dateutil",
		Short:         "Millisecond precision timestamps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.timeZone, "tz", "", "IANA time zone to display timestamps in (overrides config)")
	root.PersistentFlags().StringVar(&a.layoutName, "layout", "micro", "RFC 3339 fraction of printed timestamps: micro or milli")

	root.AddCommand(
		&cobra.Command{
			Use:   "now",
			Short: "Print the current time with millisecond precision",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.now(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "max [--] TIMESTAMP...",
			Short: "Print the latest of the given U.u timestamps (put negative ones after --)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.max(cmd.OutOrStdout(), args)
			},
		},
		&cobra.Command{
			Use:   "compare [--] LEFT RIGHT",
			Short: "Print -1, 0 or 1 as LEFT is before, equal to or after RIGHT (put negative ones after --)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.compare(cmd.OutOrStdout(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "inspect [--] TIMESTAMP",
			Short: "Pretty-print the parts of a U.u timestamp (put a negative one after --)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.inspect(cmd.OutOrStdout(), args[0])
			},
		},
	)
	return root
}

func (a *app) loadConfig() error {
	config, err := dateutil.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.timeZone != "" {
		config.TimeZone = a.timeZone
	}
	loc, err := config.Location()
	if err != nil {
		return fmt.Errorf("resolve time zone: %w", err)
	}
	a.loc = loc
	layout, ok := layouts[a.layoutName]
	if !ok {
		return fmt.Errorf("unknown layout %q", a.layoutName)
	}
	a.layout = layout
	if config.Verbose {
		a.level.SetLevel(zap.DebugLevel)
		a.logger.Debug("config loaded",
			zap.String("configPath", a.configPath),
			zap.String("timeZone", loc.String()),
		)
	}
	return nil
}

func (a *app) now(w io.Writer) error {
	ts, err := dateutil.NowWithMilliseconds(a.clock, a.loc)
	if err != nil {
		return fmt.Errorf("read clock: %w", err)
	}
	return a.printTimestamp(w, ts)
}

func (a *app) max(w io.Writer, args []string) error {
	ts, err := a.parseAll(args)
	if err != nil {
		return err
	}
	latest, err := dateutil.Max(ts...)
	if err != nil {
		return fmt.Errorf("find max: %w", err)
	}
	a.logger.Debug("max found", zap.Int("candidates", len(ts)), zap.Int64("epochSeconds", latest.Unix()))
	return a.printTimestamp(w, latest)
}

func (a *app) compare(w io.Writer, left, right string) error {
	ts, err := a.parseAll([]string{left, right})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, dateutil.Compare(ts[0], ts[1]))
	return err
}

type inspection struct {
	EpochSeconds    int64
	SubsecondMicros int
	TimeZone        string
	RFC3339         string
}

func (a *app) inspect(w io.Writer, arg string) error {
	ts, err := a.parseAll([]string{arg})
	if err != nil {
		return err
	}
	printer := pp.New()
	printer.SetColoringEnabled(false)
	_, err = printer.Fprintln(w, inspection{
		EpochSeconds:    ts[0].Unix(),
		SubsecondMicros: ts[0].Microsecond(),
		TimeZone:        ts[0].Location().String(),
		RFC3339:         ts[0].String(),
	})
	return err
}

func (a *app) parseAll(args []string) ([]dateutil.Timestamp, error) {
	ts := make([]dateutil.Timestamp, 0, len(args))
	for _, arg := range args {
		t, err := dateutil.ParseEpoch(arg, a.loc)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

func (a *app) printTimestamp(w io.Writer, ts dateutil.Timestamp) error {
	_, err := fmt.Fprintf(w, "%s\t%s\n", ts.Epoch(), ts.Format(a.layout))
	return err
}
