package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/inventory"
	"github.com/matzehuels/modgraph/pkg/manifest"
)

// inspectCommand creates the inspect command, which prints one archive's
// manifest.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Show the mods and dependencies declared by one archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := errors.ValidatePath(path); err != nil {
				return err
			}

			m, err := manifest.Load(path)
			if err != nil {
				return err
			}

			printKeyValue("Archive", path)
			printKeyValue("Mods", strings.Join(m.ModIDs(), ", "))
			for _, r := range inventory.FromManifest(path, m) {
				c.printDependencies(r)
			}
			return nil
		},
	}
}

// printDependencies prints the dependency table of one record, marking the
// platform IDs that never become graph edges.
func (c *CLI) printDependencies(r inventory.Record) {
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, StyleTitle.Render(r.ModID))
	if len(r.Dependencies) == 0 {
		printDetail("no dependencies")
		return
	}

	platform := make(map[string]bool, len(inventory.PlatformIDs))
	for _, id := range inventory.PlatformIDs {
		platform[id] = true
	}

	t := newTable("Dependency", "Mandatory", "Note")
	for _, d := range r.Dependencies {
		note := ""
		switch {
		case platform[d.ModID]:
			note = "platform, not drawn"
		case d.ModID == r.ModID:
			note = "self, removed"
		}
		t.Row(d.ModID, fmt.Sprint(d.Mandatory), StyleDim.Render(note))
	}
	fmt.Fprintln(c.Out, t.Render())
}
