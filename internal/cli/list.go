package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/inventory"
	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// listCommand creates the list command, which prints the mod inventory.
func (c *CLI) listCommand() *cobra.Command {
	var (
		modsDir string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the mods declared by every archive",
		Long: `List reads every archive in the mods folder and prints one row per
declared mod with its dependency counts. Archives whose mods.toml cannot be
read are listed as broken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.scan(cmd, modsDir, noCache)
			if err != nil {
				return err
			}
			c.printInventory(records)
			return nil
		},
	}

	cmd.Flags().StringVar(&modsDir, "mods", c.Config.ModsDir, "directory of mod archives ($"+EnvModsDir+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", c.Config.NoCache, "disable the manifest cache")

	return cmd
}

// scan loads the inventory of dir through a cached runner.
func (c *CLI) scan(cmd *cobra.Command, dir string, noCache bool) ([]inventory.Record, error) {
	opts := pipeline.Options{ModsDir: dir, Logger: loggerFromContext(cmd.Context())}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	prog := newProgress(opts.Logger)
	records, err := runner.Scan(cmd.Context(), opts)
	if err != nil {
		return nil, err
	}
	loaded, _ := inventory.Summary(records)
	prog.done(fmt.Sprintf("Scanned %d mods", loaded))
	return records, nil
}

// printInventory prints records as a table.
func (c *CLI) printInventory(records []inventory.Record) {
	if len(records) == 0 {
		printInfo("No archives found")
		return
	}

	t := newTable("Mod", "Archive", "Mandatory", "Optional")
	for _, r := range records {
		if r.Failed() {
			t.Row(StyleError.Render("broken"), filepath.Base(r.Source), "—", "—")
			continue
		}
		mandatory, optional := 0, 0
		for _, d := range r.Dependencies {
			if d.Mandatory {
				mandatory++
			} else {
				optional++
			}
		}
		t.Row(StyleHighlight.Render(r.ModID), filepath.Base(r.Source), strconv.Itoa(mandatory), strconv.Itoa(optional))
	}
	fmt.Fprintln(c.Out, t.Render())

	loaded, failed := inventory.Summary(records)
	printDetail("%d mods, %d broken archives", loaded, failed)
}
