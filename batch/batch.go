package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/semscore/export"
	"github.com/c360studio/semscore/rdf"
)

// DefaultPattern matches the catalogue files scored in a directory run.
const DefaultPattern = "**/*.ttl"

// Processor scores every matching file under an input directory. Each file
// yields a CARE and a FAIR score file under the output directory; a file
// that fails to parse or score is logged and skipped so one bad input does
// not abort the run.
type Processor struct {
	runner     *Runner
	pattern    string
	contextDir string
	outputDir  string
	skipFair   bool
	skipCare   bool
	metrics    *Metrics
	logger     *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithPattern sets the glob matched against the input directory.
func WithPattern(pattern string) ProcessorOption {
	return func(p *Processor) { p.pattern = pattern }
}

// WithContextDir merges every graph under dir into each input before
// scoring, so shared catalogue context lives in one place.
func WithContextDir(dir string) ProcessorOption {
	return func(p *Processor) { p.contextDir = dir }
}

// WithOutputDir sets where score files are written. Defaults to scores/
// under the input directory.
func WithOutputDir(dir string) ProcessorOption {
	return func(p *Processor) { p.outputDir = dir }
}

// SkipFair disables the FAIR output.
func SkipFair() ProcessorOption {
	return func(p *Processor) { p.skipFair = true }
}

// SkipCare disables the CARE output.
func SkipCare() ProcessorOption {
	return func(p *Processor) { p.skipCare = true }
}

// WithProcessorMetrics sets the processor's metrics collectors.
func WithProcessorMetrics(m *Metrics) ProcessorOption {
	return func(p *Processor) { p.metrics = m }
}

// WithLogger sets the processor's logger.
func WithLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) { p.logger = logger }
}

// NewProcessor builds a directory processor around a runner.
func NewProcessor(runner *Runner, opts ...ProcessorOption) *Processor {
	p := &Processor{
		runner:  runner,
		pattern: DefaultPattern,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run scores every matching file under dir once.
func (p *Processor) Run(ctx context.Context, dir string) error {
	started := time.Now()
	defer func() { p.metrics.ObserveRun(time.Since(started)) }()

	matches, err := doublestar.Glob(os.DirFS(dir), p.pattern)
	if err != nil {
		return fmt.Errorf("matching %q under %s: %w", p.pattern, dir, err)
	}
	sort.Strings(matches)

	contextGraph, err := p.loadContext()
	if err != nil {
		return err
	}

	outputDir := p.outputDir
	if outputDir == "" {
		outputDir = filepath.Join(dir, "scores")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, rel := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, rel)
		if strings.HasPrefix(rel, "scores"+string(filepath.Separator)) || rel == "scores" {
			continue
		}
		if err := p.ProcessFile(ctx, path, outputDir, contextGraph); err != nil {
			p.metrics.FileError()
			p.logger.Error("skipping input file", "path", path, "error", err)
			continue
		}
		p.metrics.FileProcessed()
	}

	return nil
}

// ProcessFile scores one input file, writing the CARE and FAIR outputs it
// is configured for. The two outputs fail independently: a CARE failure
// still lets the FAIR file get written.
func (p *Processor) ProcessFile(ctx context.Context, path, outputDir string, contextGraph *rdf.Graph) error {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var errs []error
	if !p.skipCare {
		dest := filepath.Join(outputDir, stem+"-care.ttl")
		if err := p.scoreInto(ctx, path, dest, ModeCare, contextGraph); err != nil {
			errs = append(errs, fmt.Errorf("care: %w", err))
		}
	}
	if !p.skipFair {
		dest := filepath.Join(outputDir, stem+"-fair.ttl")
		if err := p.scoreInto(ctx, path, dest, ModeFair, contextGraph); err != nil {
			errs = append(errs, fmt.Errorf("fair: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d outputs failed: %v", len(errs), p.outputCount(), errs)
	}
	return nil
}

func (p *Processor) outputCount() int {
	n := 0
	if !p.skipCare {
		n++
	}
	if !p.skipFair {
		n++
	}
	return n
}

func (p *Processor) scoreInto(ctx context.Context, path, dest string, mode Mode, contextGraph *rdf.Graph) error {
	g, err := rdf.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if contextGraph != nil {
		g.AddGraph(contextGraph)
	}

	scored, err := p.runner.ScoreGraph(ctx, g, mode)
	if err != nil {
		return err
	}

	return export.WriteFile(scored, dest)
}

// loadContext merges every parseable graph under the context directory.
func (p *Processor) loadContext() (*rdf.Graph, error) {
	if p.contextDir == "" {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(p.contextDir), "**/*.ttl")
	if err != nil {
		return nil, fmt.Errorf("matching context files under %s: %w", p.contextDir, err)
	}
	sort.Strings(matches)

	merged := rdf.NewGraph()
	for _, rel := range matches {
		g, err := rdf.LoadFile(filepath.Join(p.contextDir, rel))
		if err != nil {
			return nil, fmt.Errorf("loading context graph %s: %w", rel, err)
		}
		merged.AddGraph(g)
	}

	p.logger.Debug("loaded scoring context", "dir", p.contextDir, "files", len(matches), "triples", merged.Len())
	return merged, nil
}
