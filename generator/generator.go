package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/c360studio/lv2ttl/export"
	"github.com/c360studio/lv2ttl/metadata"
	"github.com/c360studio/lv2ttl/metrics"
	"github.com/c360studio/lv2ttl/plugin"
)

// Config configures a Generator.
type Config struct {
	// Renderer renders the documents (nil = default registry and options)
	Renderer *export.Renderer

	// OutDir receives the documents (empty = next to each source)
	OutDir string

	// Exclude lists base-name patterns skipped when expanding directories
	// and globs, e.g. the project config file.
	Exclude []string

	// Logger for logging events
	Logger *slog.Logger

	// Metrics records generation metrics (nil = disabled)
	Metrics *metrics.Metrics
}

// Result describes one written document.
type Result struct {
	RunID    string
	Source   string
	Output   string
	Prefixes []string
	Bytes    int
	Duration time.Duration
}

// Generator writes manifests for plugin descriptions.
type Generator struct {
	renderer *export.Renderer
	outDir   string
	exclude  []string
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New creates a generator.
func New(cfg Config) (*Generator, error) {
	renderer := cfg.Renderer
	if renderer == nil {
		var err error
		renderer, err = export.NewRenderer(nil, export.DefaultOptions())
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		renderer: renderer,
		outDir:   cfg.OutDir,
		exclude:  cfg.Exclude,
		logger:   logger,
		metrics:  cfg.Metrics,
	}, nil
}

// OutputPath returns the document path for source: the source name with its
// extension replaced by the Turtle extension, inside outDir when set.
func OutputPath(source, outDir string) string {
	info, _ := export.GetFormatInfo(export.FormatTurtle)
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + info.Extension
	if outDir == "" {
		return filepath.Join(filepath.Dir(source), name)
	}
	return filepath.Join(outDir, name)
}

// Build loads the description at source and returns its metadata tree.
func (g *Generator) Build(source string) (*metadata.Tree, error) {
	desc, err := plugin.Load(source)
	if err != nil {
		return nil, err
	}
	return desc.Metadata(source), nil
}

// RenderFile returns the document for source without writing it.
func (g *Generator) RenderFile(source string) (string, error) {
	tree, err := g.Build(source)
	if err != nil {
		g.metrics.ObserveFailure(metrics.ReasonLoad)
		return "", err
	}
	doc, err := g.renderer.Render(tree)
	if err != nil {
		g.metrics.ObserveFailure(renderFailure(err))
		return "", fmt.Errorf("render %s: %w", source, err)
	}
	return doc, nil
}

// Generate renders source and writes the document. The file ends with a
// line break after the document.
func (g *Generator) Generate(ctx context.Context, source string) (Result, error) {
	return g.generate(ctx, source, uuid.NewString())
}

func (g *Generator) generate(ctx context.Context, source, runID string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	tree, err := g.Build(source)
	if err != nil {
		g.metrics.ObserveFailure(metrics.ReasonLoad)
		return Result{}, err
	}
	doc, err := g.renderer.RenderDocument(tree)
	if err != nil {
		g.metrics.ObserveFailure(renderFailure(err))
		return Result{}, fmt.Errorf("render %s: %w", source, err)
	}
	prefixes := doc.Prefixes

	output := OutputPath(source, g.outDir)
	data := []byte(doc.Text + "\n")
	if err := writeFile(output, data); err != nil {
		g.metrics.ObserveFailure(metrics.ReasonWrite)
		return Result{}, err
	}

	result := Result{
		RunID:    runID,
		Source:   source,
		Output:   output,
		Prefixes: prefixes,
		Bytes:    len(data),
		Duration: time.Since(start),
	}
	g.metrics.ObserveRendered(result.Duration, len(prefixes))
	g.logger.Info("Generated manifest",
		"run_id", runID,
		"source", source,
		"output", output,
		"prefixes", len(prefixes),
		"bytes", result.Bytes)
	return result, nil
}

// GenerateAll expands patterns and generates every matched description with
// at most jobs workers (jobs <= 0 uses GOMAXPROCS). Results follow the sorted
// source order. The first failure cancels the remaining work.
func (g *Generator) GenerateAll(ctx context.Context, patterns []string, jobs int) ([]Result, error) {
	sources, err := Expand(patterns, g.exclude)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	runID := uuid.NewString()
	g.logger.Debug("Generating manifests",
		"run_id", runID,
		"sources", len(sources),
		"jobs", jobs)

	results := make([]Result, len(sources))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(min(jobs, len(sources)))

	for i, source := range sources {
		eg.Go(func() error {
			res, err := g.generate(egctx, source, runID)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderFailure(err error) string {
	switch {
	case errors.Is(err, export.ErrUnresolvedPrefix):
		return metrics.ReasonPrefix
	case errors.Is(err, metadata.ErrInvalidMetadata):
		return metrics.ReasonMetadata
	default:
		return metrics.ReasonRender
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
