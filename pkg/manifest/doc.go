// Package manifest reads the dependency manifest embedded in a mod archive.
//
// # Overview
//
// A packaged mod is a zip-compatible archive (usually a .jar) that carries
// its metadata at [EntryPath], META-INF/mods.toml. Only two parts of that
// file matter here: the declared mods and the per-mod dependency lists.
//
//	[[mods]]
//	    modId = "create"
//
//	[[dependencies.create]]
//	    modId = "flywheel"
//	    mandatory = true
//
// Every other key (versions, ordering, side, display metadata) is ignored.
//
// # Failure Model
//
// [Load] collapses every failure into one class: the archive cannot be
// opened, the entry is missing, the TOML is malformed, or a required field
// is absent. All of them return an error matching [ErrUnparseable]:
//
//	m, err := manifest.Load("mods/create.jar")
//	if errors.Is(err, manifest.ErrUnparseable) {
//	    // record the archive as broken and move on
//	}
//
// # Dependencies
//
// Archives are read with [github.com/klauspost/compress/zip] and the TOML is
// decoded with [github.com/BurntSushi/toml].
package manifest
