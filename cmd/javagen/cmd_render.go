package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javagen/format"
	"github.com/dhamidi/javagen/java/syntax"
	"github.com/dhamidi/javagen/project"
	"github.com/dhamidi/javagen/schema"
)

var log = commonlog.GetLogger("javagen")

type renderOptions struct {
	file      string
	outDir    string
	sourceDir string
	format    string
	verify    bool
	stdout    bool
	workers   int
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	var watch bool

	cmd := &cobra.Command{
		Use:   "render <decl.yaml>",
		Short: "Render the declarations in a YAML file to Java sources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			out := cmd.OutOrStdout()
			if !watch {
				return render(cmd.Context(), opts, out)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if err := render(ctx, opts, out); err != nil {
				log.Error("render failed", "file", opts.file, "error", err)
			}
			return watchFile(ctx, opts.file, func() {
				if err := render(ctx, opts, out); err != nil {
					log.Error("render failed", "file", opts.file, "error", err)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "project root to write into")
	cmd.Flags().StringVar(&opts.sourceDir, "source-dir", project.DefaultSourceDir, "source directory below the project root")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "java", "output format (java, json, line)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "parse generated Java before writing it")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print instead of writing files")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel writers (default GOMAXPROCS)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render whenever the declaration file changes")

	return cmd
}

func render(ctx context.Context, opts renderOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := schema.Load(opts.file)
	if err != nil {
		return err
	}
	decls, err := f.Declarations()
	if err != nil {
		return err
	}

	if opts.stdout {
		for _, d := range decls {
			var buf bytes.Buffer
			enc, err := format.New(opts.format, &buf)
			if err != nil {
				return err
			}
			if err := enc.Encode(d); err != nil {
				return fmt.Errorf("encode %s: %w", d.SimpleName(), err)
			}
			if opts.verify && opts.format == "java" {
				if err := syntax.CheckFile(ctx, d.SimpleName()+".java", buf.Bytes()); err != nil {
					return err
				}
			}
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		return nil
	}

	layout := project.Layout{Root: opts.outDir, SourceDir: opts.sourceDir}
	w := project.NewWriter(layout).
		WithWorkers(opts.workers).
		WithFormat(opts.format).
		WithVerify(opts.verify)
	paths, err := w.WriteAll(ctx, decls)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	m := w.Metrics()
	log.Notice("rendered", "files", m.FilesWritten, "bytes", m.TotalBytes)
	return nil
}
