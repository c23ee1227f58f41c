/*
Command stylepaths loads an HTML document, attaches styling details to its
elements and prints their style identity paths.

    stylepaths [--config FILE] [--trace LEVEL] dump FILE.html
    stylepaths [--config FILE] [--trace LEVEL] dot FILE.html > tree.dot

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uistyle/details"
	"github.com/npillmayer/uistyle/details/detailsdbg"
	"github.com/npillmayer/uistyle/dom/htmlhost"
	"github.com/npillmayer/uistyle/yamlconf"
	"github.com/npillmayer/uistyle/zapadapter"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type envKey struct{}

// env is the application environment, prepared after the command line has
// been parsed.
type env struct {
	conf yamlconf.Conf
	log  *zap.Logger
}

func envFrom(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{conf: yamlconf.Conf{}, log: zap.NewNop()}
}

// prepare loads the configuration and sets up logging and tracing.
func prepare(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := &env{conf: yamlconf.Conf{}}
	if path := cmd.String("config"); path != "" {
		conf, err := yamlconf.Load(path)
		if err != nil {
			return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
		}
		e.conf = conf
	}
	e.conf.InitDefaults()
	if level := cmd.String("trace"); level != "" {
		e.conf["trace.root"] = level
		for _, key := range []string{"uistyle.details", "uistyle.dom", "uistyle.reactive", "uistyle.tree"} {
			e.conf["trace."+key] = level
		}
	}
	zlevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if tracing.TraceLevelFromString(e.conf.GetString("trace.root")) == tracing.LevelDebug {
		zlevel.SetLevel(zapcore.DebugLevel)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	e.log = zap.New(zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), zlevel))
	tracing.RegisterTraceAdapter("zap", func() tracing.Trace {
		return zapadapter.NewWithLogger(e.log)
	}, true)
	if err := trace2go.ConfigureRoot(e.conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return ctx, fmt.Errorf("unable to configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	e.log.Debug("Program started", zap.Strings("args", os.Args))
	return context.WithValue(ctx, envKey{}, e), nil
}

func teardown(ctx context.Context, cmd *cli.Command) error {
	e := envFrom(ctx)
	trace2go.Teardown()
	details.ClearCoordinator()
	_ = e.log.Sync()
	return nil
}

// load parses an HTML file and styles it with user-agent defaults.
func load(e *env, path string) (*htmlhost.Document, *details.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	doc, err := htmlhost.Parse(f)
	if err != nil {
		return nil, nil, err
	}
	details.InitCoordinator()
	tbl := details.NewTable(doc, htmlhost.NewUserAgent(doc), details.WithConfiguration(e.conf))
	if err := doc.Attach(tbl); err != nil {
		return nil, nil, err
	}
	if err := tbl.StyleSubtree(tbl.Details(doc.Root())); err != nil {
		for _, x := range multierr.Errors(err) {
			e.log.Warn("Styling failed", zap.Error(x))
		}
	}
	e.log.Info("Document loaded", zap.String("file", path), zap.Int("elements", tbl.Len()))
	return doc, tbl, nil
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func sourceArg(cmd *cli.Command) (string, error) {
	if cmd.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one HTML file, have %d arguments", cmd.NArg())
	}
	return cmd.Args().First(), nil
}

func dump(ctx context.Context, cmd *cli.Command) error {
	e := envFrom(ctx)
	path, err := sourceArg(cmd)
	if err != nil {
		return err
	}
	doc, tbl, err := load(e, path)
	if err != nil {
		return err
	}
	w := output(cmd)
	fmt.Fprint(w, detailsdbg.Dump(tbl, doc.Root()))
	s := summarize(tbl, doc)
	fmt.Fprintf(w, "%d elements, %d cacheable, %d unresolved, %d dynamic\n",
		s.elements, s.cacheable, s.unresolved, s.dynamic)
	return nil
}

func dot(ctx context.Context, cmd *cli.Command) error {
	e := envFrom(ctx)
	path, err := sourceArg(cmd)
	if err != nil {
		return err
	}
	doc, tbl, err := load(e, path)
	if err != nil {
		return err
	}
	return detailsdbg.ToGraphViz(tbl, doc.Root(), output(cmd))
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "stylepaths",
		Usage:           "inspect style identity paths and cacheability of HTML elements",
		HideHelpCommand: true,
		Before:          prepare,
		After:           teardown,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from YAML `FILE`"},
			&cli.StringFlag{Name: "trace", Aliases: []string{"t"}, Usage: "trace `LEVEL` (Error, Info, Debug)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "dump",
				Usage:     "Prints the element tree with identity paths and styling state",
				Action:    dump,
				ArgsUsage: "FILE.html",
			},
			{
				Name:      "dot",
				Usage:     "Prints the element tree in GraphViz DOT format",
				Action:    dot,
				ArgsUsage: "FILE.html",
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}
