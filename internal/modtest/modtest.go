// Package modtest builds mod archive fixtures for tests.
package modtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

// ManifestPath is where mod archives keep their manifest.
const ManifestPath = "META-INF/mods.toml"

// WriteArchive writes a zip archive named name into dir containing the
// given entries (path -> contents) and returns its full path.
func WriteArchive(t testing.TB, dir, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for entry, body := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatalf("create entry %s: %v", entry, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write entry %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
	return path
}

// WriteJar writes a mod archive whose manifest is the given TOML text.
func WriteJar(t testing.TB, dir, name, manifest string) string {
	t.Helper()
	return WriteArchive(t, dir, name, map[string]string{
		ManifestPath:           manifest,
		"META-INF/MANIFEST.MF": "Manifest-Version: 1.0\n",
	})
}

// WriteFile writes raw bytes into dir, for archives that should fail to open.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Dep is a dependency declaration used by [Manifest].
type Dep struct {
	ModID     string
	Mandatory bool
}

// Manifest renders a minimal mods.toml declaring a single mod with deps.
func Manifest(modID string, deps ...Dep) string {
	s := "modLoader=\"javafml\"\nloaderVersion=\"[41,)\"\nlicense=\"MIT\"\n\n"
	s += "[[mods]]\n    modId=\"" + modID + "\"\n    version=\"1.0.0\"\n"
	for _, d := range deps {
		mandatory := "false"
		if d.Mandatory {
			mandatory = "true"
		}
		s += "\n[[dependencies." + modID + "]]\n"
		s += "    modId=\"" + d.ModID + "\"\n"
		s += "    mandatory=" + mandatory + "\n"
		s += "    versionRange=\"[1,)\"\n    ordering=\"NONE\"\n    side=\"BOTH\"\n"
	}
	return s
}
