package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/zephyrtronium/calc"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:        "calc",
		Usage:       "evaluate math expressions",
		UsageText:   "calc [options] [expression ...]",
		HideVersion: true,
		Reader:      stdin,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Usage:     "path to a TOML configuration file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "in",
				Usage:     "input file, or - for stdin (default stdin if no expressions given)",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "fmt",
				Usage: "result formatting verb",
				Value: "%g",
			},
			&cli.BoolFlag{
				Name:  "degrees",
				Usage: "use degrees for trig functions",
			},
			&cli.BoolFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "evaluate separate input lines as separate expressions",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, or error",
			},
		},
		Action: run,
	}
}

// configure loads the configuration file and applies flags over it.
func configure(ctx *cli.Context) (Config, error) {
	cfg, err := LoadConfig(ctx.String("config"))
	if err != nil {
		return Config{}, err
	}
	if ctx.IsSet("degrees") {
		cfg.Angle = "radians"
		if ctx.Bool("degrees") {
			cfg.Angle = "degrees"
		}
	}
	if ctx.IsSet("fmt") {
		cfg.Format = ctx.String("fmt")
	}
	if ctx.IsSet("lines") {
		cfg.Lines = ctx.Bool("lines")
	}
	if ctx.IsSet("log-level") {
		cfg.Logging.Level = ctx.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func run(ctx *cli.Context) error {
	cfg, err := configure(ctx)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging.Level, ctx.App.ErrWriter)
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger.Debug("configured",
		zap.String("angle", cfg.Angle),
		zap.String("format", cfg.Format),
		zap.Bool("lines", cfg.Lines),
	)

	exprs, err := inputs(ctx, cfg.Lines)
	if err != nil {
		return err
	}

	ev := calc.New(cfg.Options()...)
	verb := cfg.Format + "\n"
	out := ctx.App.Writer
	failed := 0
	for _, expr := range exprs {
		r, err := ev.Eval(expr)
		if err != nil {
			logger.Error("evaluation failed", zap.String("expr", expr), zap.Error(err))
			fmt.Fprintln(out, err)
			failed++
			continue
		}
		logger.Debug("evaluated", zap.String("expr", expr), zap.Float64("result", r))
		fmt.Fprintf(out, verb, r)
	}
	if failed != 0 {
		return errors.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// inputs collects expressions from the input file, then from arguments.
// Blank inputs are skipped.
func inputs(ctx *cli.Context, lines bool) ([]string, error) {
	var exprs []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			exprs = append(exprs, s)
		}
	}

	in, closer, err := infile(ctx)
	if err != nil {
		return nil, err
	}
	if in != nil {
		if closer != nil {
			defer closer.Close()
		}
		if lines {
			sc := bufio.NewScanner(in)
			for sc.Scan() {
				add(sc.Text())
			}
			if err := sc.Err(); err != nil {
				return nil, errors.Wrap(err, "reading input")
			}
		} else {
			b, err := io.ReadAll(in)
			if err != nil {
				return nil, errors.Wrap(err, "reading input")
			}
			add(string(b))
		}
	}

	for _, arg := range ctx.Args().Slice() {
		add(arg)
	}
	return exprs, nil
}

// infile opens the input named by --in. With no --in, stdin is the input
// only when there are no expression arguments.
func infile(ctx *cli.Context) (io.Reader, io.Closer, error) {
	name := ctx.String("in")
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening input")
		}
		return f, f, nil
	case name == "-", ctx.NArg() == 0:
		return ctx.App.Reader, nil, nil
	}
	return nil, nil, nil
}
