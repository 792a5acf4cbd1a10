package main

import (
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var version = "(devel)"

// setupLogger logs to stderr and, when logFile is set, also as JSON to a
// rotated file that always records debug.
func setupLogger(verbose bool, logFile string) error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logConsole := os.Stderr

	handlers := []slog.Handler{
		tint.NewHandler(logConsole, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(logConsole.Fd()),
		}),
	}

	if logFile != "" {
		handlers = append(handlers, slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // MB
			MaxBackups: 4,
			MaxAge:     30, // days
		}, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger := slog.New(slogmulti.Fanout(handlers...))

	slog.SetDefault(logger)

	return nil
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	var verbose bool
	var logFile string
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "verbose output (includes debug)",
		Destination: &verbose,
	}
	logFileFlag := &cli.StringFlag{
		Name:        "log-file",
		Usage:       "also write JSON logs (including debug) to this file",
		Destination: &logFile,
	}

	kindFlag := &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "point kind: " + strings.Join(kinds, ", "),
		Value:   kindDate,
	}
	fromFlag := &cli.StringFlag{
		Name:     "from",
		Usage:    "inclusive lower bound",
		Required: true,
	}
	toFlag := &cli.StringFlag{
		Name:     "to",
		Usage:    "inclusive upper bound",
		Required: true,
	}

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := &cli.App{
		Name:                   "intervalctl",
		Usage:                  "check containment and overlap of date, date-time and time-of-day intervals",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		EnableBashCompletion:   true,
		Before: func(_ *cli.Context) error {
			return setupLogger(verbose, logFile)
		},
		Flags: []cli.Flag{
			verboseFlag,
			logFileFlag,
		},
		Commands: []*cli.Command{
			{
				Name:      "contains",
				Usage:     "check whether points lie in [from, to]",
				ArgsUsage: "POINT...",
				Flags:     []cli.Flag{kindFlag, fromFlag, toFlag},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() == 0 {
						return errors.New("at least one point is required")
					}

					title, checks, err := containsChecks(cCtx.String("kind"), cCtx.String("from"), cCtx.String("to"), cCtx.Args().Slice())
					if err != nil {
						return errors.Wrap(err, "failed to check containment")
					}
					slog.Debug("Checked containment", "interval", title, "points", cCtx.NArg())

					return renderChecks(cCtx.App.Writer, title, checks)
				},
			},
			{
				Name:  "compare",
				Usage: "compare [from, to] with [other-from, other-to]",
				Flags: []cli.Flag{
					kindFlag, fromFlag, toFlag,
					&cli.StringFlag{
						Name:     "other-from",
						Usage:    "inclusive lower bound of the other interval",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "other-to",
						Usage:    "inclusive upper bound of the other interval",
						Required: true,
					},
				},
				Action: func(cCtx *cli.Context) error {
					title, checks, err := compareChecks(cCtx.String("kind"), cCtx.String("from"), cCtx.String("to"),
						cCtx.String("other-from"), cCtx.String("other-to"))
					if err != nil {
						return errors.Wrap(err, "failed to compare")
					}
					slog.Debug("Compared intervals", "intervals", title)

					return renderChecks(cCtx.App.Writer, title, checks)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}
