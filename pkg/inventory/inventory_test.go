package inventory

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modgraph/internal/modtest"
	"github.com/matzehuels/modgraph/pkg/manifest"
)

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.WarnLevel})
}

func TestScan_EmptyDir(t *testing.T) {
	records, err := Scan(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Scan() = %d records, want 0", len(records))
	}
}

func TestScan_MissingDir(t *testing.T) {
	if _, err := Scan(context.Background(), t.TempDir()+"/absent", Options{}); err == nil {
		t.Error("Scan() on missing dir should fail")
	}
}

func TestScan_FailureIsolation(t *testing.T) {
	dir := t.TempDir()
	modtest.WriteFile(t, dir, "a-broken.jar", "not a zip at all")
	good := modtest.WriteJar(t, dir, "b-good.jar", modtest.Manifest("modA",
		modtest.Dep{ModID: "modB", Mandatory: true},
	))

	var logs bytes.Buffer
	records, err := Scan(context.Background(), dir, Options{Logger: quietLogger(&logs)})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Scan() = %d records, want 2", len(records))
	}

	broken := records[0]
	if !broken.Failed() || broken.Source == "" || len(broken.Dependencies) != 0 {
		t.Errorf("records[0] = %+v, want sentinel for the broken archive", broken)
	}
	if !errors.Is(broken.Err, manifest.ErrUnparseable) {
		t.Errorf("sentinel Err = %v, want ErrUnparseable", broken.Err)
	}

	ok := records[1]
	if ok.ModID != "modA" || ok.Source != good {
		t.Errorf("records[1] = %+v, want modA from %s", ok, good)
	}
	if want := []Dependency{{ModID: "modB", Mandatory: true}}; !slices.Equal(ok.Dependencies, want) {
		t.Errorf("modA deps = %v, want %v", ok.Dependencies, want)
	}

	if loaded, failed := Summary(records); loaded != 1 || failed != 1 {
		t.Errorf("Summary() = %d, %d, want 1, 1", loaded, failed)
	}
	if !strings.Contains(logs.String(), "a-broken.jar") {
		t.Errorf("expected a warning naming the broken archive, got %q", logs.String())
	}

	g, _ := BuildGraph(records, BuildOptions{})
	if !g.HasEdge("modA", "modB") {
		t.Error("valid archive's dependency should still reach the graph")
	}
}

func TestScan_MultipleModsPerArchive(t *testing.T) {
	dir := t.TempDir()
	modtest.WriteJar(t, dir, "bundle.jar", `
[[mods]]
modId="core"

[[mods]]
modId="addon"

[[dependencies.addon]]
modId="core"
mandatory=true
`)

	records, err := Scan(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Scan() = %d records, want 2", len(records))
	}
	if records[0].ModID != "core" || records[0].Dependencies == nil || len(records[0].Dependencies) != 0 {
		t.Errorf("records[0] = %+v, want core with empty deps", records[0])
	}
	if records[1].ModID != "addon" || len(records[1].Dependencies) != 1 {
		t.Errorf("records[1] = %+v, want addon with one dep", records[1])
	}
	if records[0].Source != records[1].Source {
		t.Error("both records should share the archive path")
	}
}

func TestScan_SortedOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		modtest.WriteJar(t, dir, name+".jar", modtest.Manifest(name))
	}

	records, err := Scan(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	var ids []string
	for _, r := range records {
		ids = append(ids, r.ModID)
	}
	if want := []string{"alpha", "mid", "zeta"}; !slices.Equal(ids, want) {
		t.Errorf("scan order = %v, want %v", ids, want)
	}
}

func TestScan_SubdirectoryIsSentinel(t *testing.T) {
	dir := t.TempDir()
	modtest.WriteJar(t, dir, "a.jar", modtest.Manifest("a"))
	if err := os.Mkdir(filepath.Join(dir, "config"), 0755); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	records, err := Scan(context.Background(), dir, Options{Logger: quietLogger(&logs)})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if _, failed := Summary(records); failed != 1 {
		t.Errorf("failed = %d, want 1 for the subdirectory", failed)
	}
}

func TestScan_EmptyModIDIsSentinel(t *testing.T) {
	dir := t.TempDir()
	modtest.WriteJar(t, dir, "a.jar", `
[[mods]]
modId=""

[[dependencies.""]]
modId="jei"
mandatory=true
`)
	modtest.WriteJar(t, dir, "b.jar", modtest.Manifest("b"))

	var logs bytes.Buffer
	records, err := Scan(context.Background(), dir, Options{Logger: quietLogger(&logs)})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Scan() = %d records, want 2", len(records))
	}

	bad := records[0]
	if !bad.Failed() || len(bad.Dependencies) != 0 {
		t.Errorf("records[0] = %+v, want sentinel with no dependencies", bad)
	}
	if !errors.Is(bad.Err, manifest.ErrUnparseable) {
		t.Errorf("sentinel Err = %v, want ErrUnparseable", bad.Err)
	}
	if !strings.Contains(logs.String(), "a.jar") {
		t.Errorf("expected a warning naming a.jar, got %q", logs.String())
	}
	if loaded, failed := Summary(records); loaded != 1 || failed != 1 {
		t.Errorf("Summary() = %d, %d, want 1, 1", loaded, failed)
	}
}

func TestScan_CustomLoader(t *testing.T) {
	dir := t.TempDir()
	modtest.WriteFile(t, dir, "x.jar", "")

	var seen []string
	loader := func(_ context.Context, path string) (*manifest.Manifest, error) {
		seen = append(seen, path)
		return &manifest.Manifest{Mods: []manifest.Mod{{ModID: "stub"}}}, nil
	}

	records, err := Scan(context.Background(), dir, Options{Loader: loader})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(seen) != 1 || len(records) != 1 || records[0].ModID != "stub" {
		t.Errorf("custom loader not used: seen=%v records=%+v", seen, records)
	}
}

func TestScan_Cancelled(t *testing.T) {
	dir := t.TempDir()
	modtest.WriteJar(t, dir, "a.jar", modtest.Manifest("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, dir, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Scan() error = %v, want context.Canceled", err)
	}
}

func TestFromManifest(t *testing.T) {
	m := &manifest.Manifest{
		Mods: []manifest.Mod{{ModID: "a"}, {ModID: "b"}},
		Dependencies: map[string][]manifest.Dependency{
			"b": {{ModID: "a", Mandatory: true}, {ModID: "jei"}},
			"c": {{ModID: "a", Mandatory: true}},
		},
	}

	records := FromManifest("bundle.jar", m)
	if len(records) != 2 {
		t.Fatalf("FromManifest() = %d records, want 2", len(records))
	}
	if len(records[0].Dependencies) != 0 {
		t.Errorf("a deps = %v, want none", records[0].Dependencies)
	}
	want := []Dependency{{ModID: "a", Mandatory: true}, {ModID: "jei"}}
	if !slices.Equal(records[1].Dependencies, want) {
		t.Errorf("b deps = %v, want %v", records[1].Dependencies, want)
	}
}

func TestDeclared(t *testing.T) {
	records := []Record{{ModID: "a"}, {Source: "broken.jar"}, {ModID: "b"}}
	got := Declared(records)
	if len(got) != 2 || !got["a"] || !got["b"] {
		t.Errorf("Declared() = %v, want {a, b}", got)
	}
}
