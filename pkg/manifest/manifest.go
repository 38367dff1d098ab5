package manifest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zip"

	"github.com/matzehuels/modgraph/pkg/errors"
)

// EntryPath is the location of the manifest inside a mod archive.
const EntryPath = "META-INF/mods.toml"

// maxManifestSize bounds how much of the entry is read. Real manifests are a
// few kilobytes.
const maxManifestSize = 1 << 20

// ErrUnparseable matches every error returned by [Load] and [Parse].
var ErrUnparseable = errors.Sentinel(errors.ErrCodeInvalidManifest)

// Manifest is the decoded subset of a mods.toml file.
type Manifest struct {
	Mods         []Mod                   `json:"mods"`
	Dependencies map[string][]Dependency `json:"dependencies,omitempty"`
}

// Mod is one [[mods]] entry.
type Mod struct {
	ModID string `json:"modId"`
}

// Dependency is one [[dependencies.<modId>]] entry.
type Dependency struct {
	ModID     string `json:"modId"`
	Mandatory bool   `json:"mandatory"`
}

// DependenciesOf returns the dependencies declared for modID, or nil if the
// manifest has none.
func (m *Manifest) DependenciesOf(modID string) []Dependency {
	return m.Dependencies[modID]
}

// ModIDs returns the declared mod identifiers in file order.
func (m *Manifest) ModIDs() []string {
	ids := make([]string, len(m.Mods))
	for i, mod := range m.Mods {
		ids[i] = mod.ModID
	}
	return ids
}

// Load opens the archive at path, reads [EntryPath] and parses it.
// The archive is closed before Load returns, on every path.
func Load(path string) (*Manifest, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "open %s", path)
	}
	defer r.Close()

	data, err := readEntry(&r.Reader, EntryPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s from %s", EntryPath, path)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// readEntry returns the full contents of the named entry.
func readEntry(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		var buf bytes.Buffer
		n, err := io.Copy(&buf, io.LimitReader(rc, maxManifestSize+1))
		if err != nil {
			return nil, err
		}
		if n > maxManifestSize {
			return nil, fmt.Errorf("entry larger than %d bytes", maxManifestSize)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("entry not found")
}

// Parse decodes manifest text and checks the required fields: a mods
// array, a non-empty modId on every mod, and a non-empty modId and a
// mandatory flag on every dependency.
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode TOML")
	}
	return raw.convert()
}

type rawManifest struct {
	Mods         *[]rawMod                  `toml:"mods"`
	Dependencies map[string][]rawDependency `toml:"dependencies"`
}

type rawMod struct {
	ModID *string `toml:"modId"`
}

type rawDependency struct {
	ModID     *string `toml:"modId"`
	Mandatory *bool   `toml:"mandatory"`
}

func (raw rawManifest) convert() (*Manifest, error) {
	if raw.Mods == nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "missing [[mods]]")
	}

	m := &Manifest{Mods: make([]Mod, 0, len(*raw.Mods))}
	for i, mod := range *raw.Mods {
		if mod.ModID == nil || *mod.ModID == "" {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "mods[%d]: missing modId", i)
		}
		m.Mods = append(m.Mods, Mod{ModID: *mod.ModID})
	}

	if len(raw.Dependencies) > 0 {
		m.Dependencies = make(map[string][]Dependency, len(raw.Dependencies))
	}
	for owner, list := range raw.Dependencies {
		deps := make([]Dependency, 0, len(list))
		for i, d := range list {
			if d.ModID == nil || *d.ModID == "" {
				return nil, errors.New(errors.ErrCodeInvalidManifest, "dependencies.%s[%d]: missing modId", owner, i)
			}
			if d.Mandatory == nil {
				return nil, errors.New(errors.ErrCodeInvalidManifest, "dependencies.%s[%d]: missing mandatory", owner, i)
			}
			deps = append(deps, Dependency{ModID: *d.ModID, Mandatory: *d.Mandatory})
		}
		m.Dependencies[owner] = deps
	}
	return m, nil
}
