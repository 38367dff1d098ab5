package inventory

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modgraph/pkg/manifest"
	"github.com/matzehuels/modgraph/pkg/observability"
)

// Dependency is one declared dependency of a mod.
type Dependency struct {
	ModID     string `json:"modId"`
	Mandatory bool   `json:"mandatory"`
}

// Record describes one declared mod and the archive it came from.
// A record with an empty ModID marks an archive whose manifest could not be
// loaded; Err then holds the reason.
type Record struct {
	Source       string       `json:"source"`
	ModID        string       `json:"modId"`
	Dependencies []Dependency `json:"dependencies"`
	Err          error        `json:"-"`
}

// Failed reports whether r is the sentinel for an unloadable archive.
func (r Record) Failed() bool { return r.ModID == "" }

// Loader loads the manifest of the archive at path.
type Loader func(ctx context.Context, path string) (*manifest.Manifest, error)

// LoadManifest is the default Loader. It ignores ctx; a single archive is
// read without interruption.
func LoadManifest(_ context.Context, path string) (*manifest.Manifest, error) {
	return manifest.Load(path)
}

// Options configures [Scan].
type Options struct {
	// Loader loads one archive. Defaults to [LoadManifest].
	Loader Loader

	// Logger receives a warning for every archive that fails to load.
	// Defaults to log.Default().
	Logger *log.Logger
}

// Scan loads every entry of dir, in name order, and returns the flattened
// records. Per-archive failures become sentinel records and never abort
// the scan. Scan returns an error only if dir cannot be listed or ctx is
// cancelled between archives.
func Scan(ctx context.Context, dir string, opts Options) ([]Record, error) {
	if opts.Loader == nil {
		opts.Loader = LoadManifest
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnScanStart(ctx, dir)

	var records []Record
	failed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())
		loadStart := time.Now()
		m, err := opts.Loader(ctx, path)
		if err != nil {
			hooks.OnArchiveLoaded(ctx, path, 0, time.Since(loadStart), err)
			opts.Logger.Warn("broken mods.toml", "file", path, "err", err)
			records = append(records, Record{Source: path, Err: err})
			failed++
			continue
		}
		hooks.OnArchiveLoaded(ctx, path, len(m.Mods), time.Since(loadStart), nil)
		records = append(records, FromManifest(path, m)...)
	}

	hooks.OnScanComplete(ctx, dir, len(records), failed, time.Since(start))
	return records, nil
}

// FromManifest returns one record per mod declared in m. A mod without an
// entry in the dependency table gets an empty, non-nil dependency list.
func FromManifest(source string, m *manifest.Manifest) []Record {
	records := make([]Record, 0, len(m.Mods))
	for _, mod := range m.Mods {
		declared := m.DependenciesOf(mod.ModID)
		deps := make([]Dependency, len(declared))
		for i, d := range declared {
			deps[i] = Dependency{ModID: d.ModID, Mandatory: d.Mandatory}
		}
		records = append(records, Record{
			Source:       source,
			ModID:        mod.ModID,
			Dependencies: deps,
		})
	}
	return records
}

// Summary counts loaded records and failed archives.
func Summary(records []Record) (loaded, failed int) {
	for _, r := range records {
		if r.Failed() {
			failed++
		} else {
			loaded++
		}
	}
	return loaded, failed
}

// Declared returns the set of mod IDs declared by successfully loaded
// archives.
func Declared(records []Record) map[string]bool {
	out := make(map[string]bool, len(records))
	for _, r := range records {
		if !r.Failed() {
			out[r.ModID] = true
		}
	}
	return out
}
