package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/graph/transform"
	"github.com/matzehuels/modgraph/pkg/observability"
	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// runFlags holds the root command's flag values.
type runFlags struct {
	modsDir       string
	output        string
	reduction     string
	mandatoryOnly bool
	exclude       []string
	checks        []string
	svg           bool
	json          bool
	noCache       bool
}

// runCommand creates the root command, which scans the mods directory and
// writes the reduced dependency graph.
func (c *CLI) runCommand() *cobra.Command {
	flags := runFlags{
		modsDir:   c.Config.ModsDir,
		output:    c.Config.Output,
		reduction: c.Config.Reduction,
	}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "modgraph draws the dependency graph of a mods folder",
		Long: `modgraph reads META-INF/mods.toml from every archive in a mods folder,
builds the graph of mod dependencies, removes redundant edges and writes the
result as a Graphviz DOT file. Optional dependencies are drawn in grey.`,
		Example: `  modgraph
  modgraph --mods ~/.minecraft/mods -o deps.dot --svg
  modgraph --reduction full --mandatory-only --check create,jei`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPipeline(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.modsDir, "mods", flags.modsDir, "directory of mod archives ($"+EnvModsDir+")")
	f.StringVarP(&flags.output, "output", "o", flags.output, "DOT output file ($"+EnvOutput+")")
	f.StringVar(&flags.reduction, "reduction", flags.reduction, "edge reduction: single or full ($"+EnvReduction+")")
	f.BoolVar(&flags.mandatoryOnly, "mandatory-only", false, "drop optional dependencies")
	f.StringSliceVar(&flags.exclude, "exclude", nil, "dependency IDs to leave out, in addition to forge and minecraft")
	f.StringSliceVar(&flags.checks, "check", nil, "mod IDs to report on (declared, in graph)")
	f.BoolVar(&flags.svg, "svg", false, "also render <output>.svg")
	f.BoolVar(&flags.json, "json", false, "also write <output>.json")
	f.BoolVar(&flags.noCache, "no-cache", c.Config.NoCache, "disable the manifest cache ($"+EnvNoCache+")")

	return cmd
}

// runPipeline executes the pipeline for flags and prints a summary.
func (c *CLI) runPipeline(cmd *cobra.Command, flags runFlags) error {
	mode, err := transform.ParseMode(flags.reduction)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "--reduction")
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger := loggerFromContext(cmd.Context())
	progress := newSpinner(cmd.Context(), c.Status, "Scanning "+flags.modsDir+"...")
	defer progress.Stop()
	installHooks(logger, progress)
	defer observability.Reset()

	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		ModsDir:       flags.modsDir,
		Output:        flags.output,
		Mode:          mode,
		MandatoryOnly: flags.mandatoryOnly,
		Exclude:       splitList(flags.exclude),
		Checks:        splitList(flags.checks),
		SVG:           flags.svg,
		JSON:          flags.json,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	c.printResult(result)
	return nil
}
