package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/modgraph/pkg/cache"
	"github.com/matzehuels/modgraph/pkg/graph"
	"github.com/matzehuels/modgraph/pkg/graph/transform"
	"github.com/matzehuels/modgraph/pkg/inventory"
	modio "github.com/matzehuels/modgraph/pkg/io"
	"github.com/matzehuels/modgraph/pkg/manifest"
	"github.com/matzehuels/modgraph/pkg/observability"
	"github.com/matzehuels/modgraph/pkg/render/nodelink"
)

// Scan loads the inventory of opts.ModsDir through the runner's cache.
func (r *Runner) Scan(ctx context.Context, opts Options) ([]inventory.Record, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	load := cache.Loader[*manifest.Manifest](r.Cache, cache.TTLManifest, inventory.LoadManifest)
	return inventory.Scan(ctx, opts.ModsDir, inventory.Options{
		Loader: inventory.Loader(load),
		Logger: opts.Logger,
	})
}

// Build constructs the dependency graph from records.
func (r *Runner) Build(records []inventory.Record, opts Options) (*graph.Graph, inventory.BuildStats) {
	return inventory.BuildGraph(records, inventory.BuildOptions{
		MandatoryOnly: opts.MandatoryOnly,
		Exclude:       opts.Exclude,
	})
}

// Reduce reduces g in place with the configured mode.
func (r *Runner) Reduce(ctx context.Context, g *graph.Graph, opts Options) transform.Result {
	start := time.Now()
	res := transform.Reduce(g, opts.Mode)
	observability.Pipeline().OnReduceComplete(ctx, string(res.Mode), res.EdgesBefore, res.EdgesAfter, time.Since(start))
	return res
}

// Export writes g to opts.Output as DOT and, if requested, as SVG and
// JSON next to it. It returns the paths written so far, also on error.
func (r *Runner) Export(ctx context.Context, g *graph.Graph, opts Options) ([]string, error) {
	opts.SetDefaults()
	hooks := observability.Pipeline()

	var written []string
	write := func(path string, fn func() error) error {
		start := time.Now()
		err := fn()
		hooks.OnExportComplete(ctx, path, time.Since(start), err)
		if err == nil {
			written = append(written, path)
		}
		return err
	}

	dot := nodelink.ToDOT(g, nodelink.Options{})
	if err := write(opts.Output, func() error {
		return modio.ExportDOT(g, opts.Output, nodelink.Options{})
	}); err != nil {
		return written, err
	}

	if opts.SVG {
		if err := write(opts.SVGPath(), func() error {
			svg, err := nodelink.RenderSVG(ctx, dot)
			if err != nil {
				return err
			}
			return modio.WriteSVG(svg, opts.SVGPath())
		}); err != nil {
			return written, err
		}
	}

	if opts.JSON {
		if err := write(opts.JSONPath(), func() error {
			return modio.ExportJSON(g, opts.JSONPath())
		}); err != nil {
			return written, err
		}
	}

	return written, nil
}

// summarize fills the size fields of stats and returns the loaded and
// failed counts.
func summarize(records []inventory.Record, stats *Stats) (loaded, failed int) {
	sources := make(map[string]bool)
	for _, r := range records {
		sources[r.Source] = true
	}
	stats.Archives = len(sources)
	stats.Records = len(records)
	return inventory.Summary(records)
}

func undeclared(g *graph.Graph) []string {
	return inventory.Undeclared(g)
}

func check(records []inventory.Record, g *graph.Graph, ids []string) []Check {
	if len(ids) == 0 {
		return nil
	}
	declared := inventory.Declared(records)
	out := make([]Check, len(ids))
	for i, id := range ids {
		_, inGraph := g.Node(id)
		out[i] = Check{ModID: id, Declared: declared[id], InGraph: inGraph}
	}
	return out
}
