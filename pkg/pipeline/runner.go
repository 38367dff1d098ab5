package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modgraph/pkg/cache"
	"github.com/matzehuels/modgraph/pkg/errors"
)

// Runner encapsulates pipeline execution with manifest caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete scan → build → reduce → export pipeline.
//
// The returned error is an [errors.Error] for invalid options, an unusable
// mods directory or a failed write, and ctx.Err() if ctx is cancelled
// while scanning. Broken archives are not errors.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateDir(opts.ModsDir); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Scan
	scanStart := time.Now()
	records, err := r.Scan(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Records = records
	result.Stats.ScanTime = time.Since(scanStart)
	loaded, failed := summarize(records, &result.Stats)
	result.Stats.Failed = failed

	opts.Logger.Info("scanned mods",
		"dir", opts.ModsDir,
		"archives", result.Stats.Archives,
		"mods", loaded,
		"failed", failed,
		"duration", result.Stats.ScanTime)

	// Stage 2: Build
	buildStart := time.Now()
	g, build := r.Build(records, opts)
	result.Graph = g
	result.Build = build
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.EdgesAttempted = build.Added
	result.Undeclared = undeclared(g)
	result.Checks = check(records, g, opts.Checks)

	opts.Logger.Info("built graph",
		"records", result.Stats.Records,
		"edges_attempted", build.Added,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())

	// Stage 3: Reduce
	reduceStart := time.Now()
	result.Reduction = r.Reduce(ctx, g, opts)
	result.Stats.ReduceTime = time.Since(reduceStart)
	result.Stats.NodesBefore = result.Reduction.NodesBefore
	result.Stats.EdgesBefore = result.Reduction.EdgesBefore
	result.Stats.NodesAfter = result.Reduction.NodesAfter
	result.Stats.EdgesAfter = result.Reduction.EdgesAfter

	opts.Logger.Info("reduced graph",
		"mode", result.Reduction.Mode,
		"self_loops", result.Reduction.SelfLoopsRemoved,
		"removed", result.Reduction.TransitiveEdgesRemoved,
		"nodes", result.Stats.NodesAfter,
		"edges_before", result.Stats.EdgesBefore,
		"edges_after", result.Stats.EdgesAfter)

	// Checked after reduction so self-loops do not count as cycles.
	result.Cyclic = g.Validate() != nil
	r.logDiagnostics(opts.Logger, result)

	// Stage 4: Export
	exportStart := time.Now()
	outputs, err := r.Export(ctx, g, opts)
	result.Outputs = outputs
	result.Stats.ExportTime = time.Since(exportStart)
	if err != nil {
		return result, err
	}

	result.Stats.Elapsed = time.Since(start)
	opts.Logger.Info("done",
		"outputs", outputs,
		"took_ms", result.Stats.Elapsed.Milliseconds())

	return result, nil
}

// logDiagnostics reports the graph facts a user usually wants to double
// check: missing dependencies, cycles and the requested mod checks.
func (r *Runner) logDiagnostics(logger *log.Logger, result *Result) {
	if !result.AllDeclared() {
		logger.Warn("dependencies on mods that are not installed",
			"count", len(result.Undeclared),
			"mods", result.Undeclared)
	}
	if result.Cyclic {
		logger.Warn("dependency cycle detected")
	}
	for _, c := range result.Checks {
		logger.Info("check", "mod", c.ModID, "declared", c.Declared, "in_graph", c.InGraph)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
