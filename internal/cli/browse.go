package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/graph"
	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// browseCommand creates the browse command, an interactive mod picker that
// prints the dependencies and dependents of the selected mod.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		modsDir string
		reduced bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick a mod interactively and show what it depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.scan(cmd, modsDir, noCache)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(nil, c.Logger)
			g, _ := runner.Build(records, pipeline.Options{})
			if reduced {
				runner.Reduce(cmd.Context(), g, pipeline.Options{Mode: pipeline.DefaultMode})
			}
			if g.NodeCount() == 0 {
				printInfo("No mods found in %s", modsDir)
				return nil
			}

			final, err := tea.NewProgram(NewModListModel(g),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(os.Stderr),
			).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(ModListModel); ok && m.Selected != "" {
				c.printNeighbours(g, m.Selected)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modsDir, "mods", c.Config.ModsDir, "directory of mod archives ($"+EnvModsDir+")")
	cmd.Flags().BoolVar(&reduced, "reduced", false, "browse the reduced graph instead of every declared edge")
	cmd.Flags().BoolVar(&noCache, "no-cache", c.Config.NoCache, "disable the manifest cache")

	return cmd
}

// printNeighbours prints the outgoing and incoming edges of id.
func (c *CLI) printNeighbours(g *graph.Graph, id string) {
	fmt.Fprintln(c.Out, StyleTitle.Render(id))

	deps := newTable("Depends on", "Mandatory")
	for _, to := range g.Children(id) {
		e, _ := g.Edge(id, to)
		deps.Row(to, fmt.Sprint(e.Mandatory))
	}
	fmt.Fprintln(c.Out, deps.Render())

	users := newTable("Used by", "Mandatory")
	for _, from := range g.Parents(id) {
		e, _ := g.Edge(from, id)
		users.Row(from, fmt.Sprint(e.Mandatory))
	}
	fmt.Fprintln(c.Out, users.Render())
}
