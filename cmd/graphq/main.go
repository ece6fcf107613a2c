// Command graphq runs graph queries against fixture files.
//
//	graphq -f maze.hcl path A D
//	graphq -f maze.yaml paths A D --max 4 --bfs
//	graphq -f maze.hcl count A D --through B,C
//	graphq -f maze.hcl dot --path A,D --format svg > maze.svg
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/maisem/graph/internal/ctxlog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "graphq:", err)
		os.Exit(1)
	}
}

type options struct {
	file     string
	debug    bool
	trace    bool
	parallel int

	shutdown func(context.Context) error
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "graphq",
		Short:         "Query graphs stored in HCL or YAML fixture files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd, stderr)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.shutdown == nil {
				return nil
			}
			return opts.shutdown(cmd.Context())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "fixture file (.hcl, .yaml or .yml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.trace, "trace", false, "print OpenTelemetry spans to stderr")
	flags.IntVar(&opts.parallel, "parallel", 0, "maximum concurrent queries in batch commands (0 = unlimited)")
	root.MarkPersistentFlagRequired("file")

	root.AddCommand(
		newPathCmd(opts),
		newPathsCmd(opts),
		newCountCmd(opts),
		newComponentsCmd(opts),
		newTopoCmd(opts),
		newMinCutCmd(opts),
		newDOTCmd(opts),
	)
	return root
}

// setup installs the logger and, with --trace, a stdout span exporter.
func (o *options) setup(cmd *cobra.Command, stderr io.Writer) error {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	if !o.trace {
		return nil
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(stderr), stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("creating trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	otel.SetTracerProvider(tp)
	o.shutdown = tp.Shutdown
	logger.Debug("Tracing enabled")
	return nil
}
