// Package pipeline runs the complete modgraph pipeline.
//
// This package implements the scan → build → reduce → export pipeline used
// by the CLI. Each stage is also exposed on its own so commands that need
// only part of it (listing the inventory, re-rendering an export) share the
// same behaviour.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Scan: Load the manifest of every archive in the mods directory
//  2. Build: Turn the declared mods and dependencies into a graph
//  3. Reduce: Remove self-loops and redundant edges
//  4. Export: Write the graph as DOT, and optionally SVG and JSON
//
// Only fatal problems stop a run: an unusable mods directory, an unwritable
// output file, or cancellation. An archive that cannot be read is logged and
// skipped.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ModsDir: "mods",
//	    Output:  "graph",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.EdgesAfter)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/graph"
	"github.com/matzehuels/modgraph/pkg/graph/transform"
	"github.com/matzehuels/modgraph/pkg/inventory"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and tests
// =============================================================================

const (
	// DefaultModsDir is the directory scanned when none is configured.
	DefaultModsDir = "mods"

	// DefaultOutput is the DOT file written when none is configured.
	DefaultOutput = "graph"

	// DefaultMode is the reduction algorithm used when none is configured.
	DefaultMode = transform.ModeSinglePass
)

// Extensions appended to Options.Output for the optional outputs.
const (
	ExtSVG  = ".svg"
	ExtJSON = ".json"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Scan options
	ModsDir string `json:"mods_dir"`

	// Build options
	MandatoryOnly bool     `json:"mandatory_only,omitempty"`
	Exclude       []string `json:"exclude,omitempty"`
	Checks        []string `json:"checks,omitempty"` // Mod IDs to report on after the build

	// Reduce options
	Mode transform.Mode `json:"mode,omitempty"`

	// Export options
	Output string `json:"output"`
	SVG    bool   `json:"svg,omitempty"`  // Also write Output + ".svg"
	JSON   bool   `json:"json,omitempty"` // Also write Output + ".json"

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.ModsDir == "" {
		o.ModsDir = DefaultModsDir
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options without touching the file system.
// It rejects an empty mods directory or output path, an unknown reduction
// mode, and malformed mod IDs in Exclude or Checks.
func (o *Options) Validate() error {
	if err := errors.ValidatePath(o.ModsDir); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "mods directory")
	}
	if err := errors.ValidatePath(o.Output); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "output")
	}
	if _, err := transform.ParseMode(string(o.Mode)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "reduction")
	}
	for _, id := range o.Exclude {
		if err := errors.ValidateModID(id); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "exclude")
		}
	}
	for _, id := range o.Checks {
		if err := errors.ValidateModID(id); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "check")
		}
	}
	return nil
}

// SVGPath returns where the SVG rendering is written.
func (o *Options) SVGPath() string { return o.Output + ExtSVG }

// JSONPath returns where the JSON export is written.
func (o *Options) JSONPath() string { return o.Output + ExtJSON }

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records is the flattened inventory, sentinels for broken archives
	// included.
	Records []inventory.Record

	// Graph is the reduced dependency graph.
	Graph *graph.Graph

	// Build describes the graph construction.
	Build inventory.BuildStats

	// Reduction describes what the reducer removed.
	Reduction transform.Result

	// Undeclared lists dependency targets that no archive declares.
	Undeclared []string

	// Cyclic is true if the built graph contains a dependency cycle.
	Cyclic bool

	// Checks holds one entry per requested mod ID, in request order.
	Checks []Check

	// Outputs lists the files written, DOT first.
	Outputs []string

	// Stats contains timing and size information.
	Stats Stats
}

// Check reports whether a requested mod ID was declared by an archive and
// whether it appears in the graph.
type Check struct {
	ModID    string
	Declared bool
	InGraph  bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Archives int // Directory entries scanned
	Records  int // Inventory records, sentinels included
	Failed   int // Archives whose manifest could not be loaded

	EdgesAttempted int // Edge insertions, duplicates included

	NodesBefore int
	EdgesBefore int
	NodesAfter  int
	EdgesAfter  int

	ScanTime   time.Duration
	BuildTime  time.Duration
	ReduceTime time.Duration
	ExportTime time.Duration
	Elapsed    time.Duration
}

// AllDeclared reports whether every graph node was declared by an archive.
func (r *Result) AllDeclared() bool { return len(r.Undeclared) == 0 }
