package manifest

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/modgraph/internal/modtest"
)

const forgeExample = `
modLoader="javafml"
# Forge for 1.19 is version 41
loaderVersion="[41,)"
license="All rights reserved"
issueTrackerURL="github.com/MinecraftForge/MinecraftForge/issues"
showAsResourcePack=false

[[mods]]
    modId="examplemod"
    version="1.0.0.0"
    displayName="Example Mod"
    logoFile="logo.png"
    credits="Thanks"
    authors="Author"
    description='''
Lets you craft dirt into diamonds.
    '''
    displayTest="MATCH_VERSION"

[[dependencies.examplemod]]
    modId="forge"
    mandatory=true
    versionRange="[41,)"
    ordering="NONE"
    side="BOTH"

[[dependencies.examplemod]]
    modId="jei"
    mandatory=false
    versionRange="[11,)"
    ordering="AFTER"
    side="CLIENT"
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(forgeExample))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := m.ModIDs(); !slices.Equal(got, []string{"examplemod"}) {
		t.Errorf("ModIDs() = %v, want [examplemod]", got)
	}

	want := []Dependency{
		{ModID: "forge", Mandatory: true},
		{ModID: "jei", Mandatory: false},
	}
	if got := m.DependenciesOf("examplemod"); !slices.Equal(got, want) {
		t.Errorf("DependenciesOf(examplemod) = %v, want %v", got, want)
	}
	if got := m.DependenciesOf("other"); got != nil {
		t.Errorf("DependenciesOf(other) = %v, want nil", got)
	}
}

func TestParse_MultipleMods(t *testing.T) {
	data := `
[[mods]]
modId="core"

[[mods]]
modId="addon"

[[dependencies.addon]]
modId="core"
mandatory=true
`
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := m.ModIDs(); !slices.Equal(got, []string{"core", "addon"}) {
		t.Errorf("ModIDs() = %v, want [core addon]", got)
	}
	if len(m.DependenciesOf("core")) != 0 {
		t.Error("core should have no dependencies")
	}
	if len(m.DependenciesOf("addon")) != 1 {
		t.Error("addon should have one dependency")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not toml", "this is = = not toml"},
		{"missing mods", `modLoader="javafml"`},
		{"mod without id", "[[mods]]\nversion=\"1.0\"\n"},
		{"mod with empty id", "[[mods]]\nmodId=\"\"\n"},
		{"dependency with empty id", "[[mods]]\nmodId=\"a\"\n[[dependencies.a]]\nmodId=\"\"\nmandatory=true\n"},
		{"dependency without id", "[[mods]]\nmodId=\"a\"\n[[dependencies.a]]\nmandatory=true\n"},
		{"dependency without mandatory", "[[mods]]\nmodId=\"a\"\n[[dependencies.a]]\nmodId=\"b\"\n"},
		{"mandatory wrong type", "[[mods]]\nmodId=\"a\"\n[[dependencies.a]]\nmodId=\"b\"\nmandatory=\"yes\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, ErrUnparseable) {
				t.Errorf("Parse() error %v does not match ErrUnparseable", err)
			}
		})
	}
}

func TestParse_EmptyModsArray(t *testing.T) {
	m, err := Parse([]byte("mods = []\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(m.Mods) != 0 {
		t.Errorf("Mods = %v, want empty", m.Mods)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := modtest.WriteJar(t, dir, "example.jar", forgeExample)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := m.ModIDs(); !slices.Equal(got, []string{"examplemod"}) {
		t.Errorf("ModIDs() = %v, want [examplemod]", got)
	}
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", dir + "/absent.jar"},
		{"not a zip", modtest.WriteFile(t, dir, "corrupt.jar", "PK garbage")},
		{"no manifest", modtest.WriteArchive(t, dir, "empty.jar", map[string]string{
			"META-INF/MANIFEST.MF": "Manifest-Version: 1.0\n",
		})},
		{"bad manifest", modtest.WriteJar(t, dir, "bad.jar", "[[mods]\n")},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !errors.Is(err, ErrUnparseable) {
				t.Errorf("Load() error %v does not match ErrUnparseable", err)
			}
		})
	}
}
