package project

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/javagen/format"
	"github.com/dhamidi/javagen/java"
	"github.com/dhamidi/javagen/java/syntax"
)

// Writer renders declarations and writes them below a Layout.
type Writer struct {
	layout  Layout
	format  string
	workers int
	verify  bool

	mu      sync.Mutex
	metrics *WriterMetrics
}

type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

func NewWriter(layout Layout) *Writer {
	return &Writer{
		layout:  layout,
		format:  "java",
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithFormat selects the encoder used for each file: java, json or line.
func (w *Writer) WithFormat(name string) *Writer {
	if name == "" {
		name = "java"
	}
	w.format = name
	return w
}

// WithVerify makes the writer parse every rendered Java file before writing.
func (w *Writer) WithVerify(verify bool) *Writer {
	w.verify = verify
	return w
}

func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.metrics
}

type fileTask struct {
	decl java.Declaration
	path string
	data []byte
}

// WriteAll renders every declaration, then writes them. Nothing is written
// unless every declaration renders (and verifies, when enabled). It returns
// the written paths in declaration order.
func (w *Writer) WriteAll(ctx context.Context, decls []java.Declaration) ([]string, error) {
	if _, err := format.New(w.format, nil); err != nil {
		return nil, err
	}

	tasks := make([]fileTask, len(decls))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, decl := range decls {
		i := i
		tasks[i] = fileTask{decl: decl, path: w.layout.pathWithExt(decl, format.Extension(w.format))}
		eg.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
				data, err := w.render(gctx, tasks[i])
				tasks[i].data = data
				return err
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	eg, gctx = errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, task := range tasks {
		task := task
		eg.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
				return w.writeFile(task)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, len(tasks))
	for i, task := range tasks {
		paths[i] = task.path
	}
	return paths, nil
}

func (w *Writer) render(ctx context.Context, task fileTask) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := format.New(w.format, &buf)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(task.decl); err != nil {
		return nil, fmt.Errorf("render %s: %w", task.path, err)
	}
	if w.verify && w.format == "java" {
		if err := syntax.CheckFile(ctx, task.path, buf.Bytes()); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (w *Writer) writeFile(task fileTask) error {
	if err := w.layout.EnsureDir(task.decl.PackageName()); err != nil {
		return err
	}
	if err := os.WriteFile(task.path, task.data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", task.path, err)
	}
	log.Info("wrote", "path", task.path, "bytes", len(task.data))

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(task.data))
	w.mu.Unlock()
	return nil
}
