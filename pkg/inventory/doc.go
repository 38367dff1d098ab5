// Package inventory turns a directory of mod archives into dependency
// records and builds the dependency graph from them.
//
// # Records
//
// [Scan] loads the manifest of every entry in a directory and flattens the
// result into one [Record] per declared mod. An archive that cannot be
// loaded yields exactly one sentinel record with an empty ModID, so the
// number of failed archives can be counted without reading the log:
//
//	records, err := inventory.Scan(ctx, "mods", inventory.Options{Logger: logger})
//	loaded, failed := inventory.Summary(records)
//
// Entries are visited in name order. The reduction applied later depends
// on the order nodes enter the graph, so a stable scan order keeps the
// output reproducible across file systems.
//
// # Graph Construction
//
// [BuildGraph] adds every declared mod as a node and every declared
// dependency as an edge. Dependencies on the mod loader and the game
// itself ([PlatformIDs]) are dropped because nearly every mod has them.
// Dependencies on mods that are not installed still produce edges; their
// targets become nodes that no archive declared.
package inventory
