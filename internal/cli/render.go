package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/io"
	"github.com/matzehuels/modgraph/pkg/render/nodelink"
)

// renderCommand creates the render command, which turns a DOT file or a JSON
// graph export into SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a DOT file or JSON graph export to SVG",
		Long: `Render lays out a graph with Graphviz and writes SVG. The input is either
a DOT file written by modgraph or a JSON export (--json). JSON input is drawn
with the styled node-link theme.`,
		Example: `  modgraph render graph
  modgraph render graph.json -o deps.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <file>.svg)")

	return cmd
}

// runRender loads input, renders it and writes the SVG to output.
func (c *CLI) runRender(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)

	dot, err := loadDOT(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "file", input, "bytes", len(dot))

	spinner := newSpinner(ctx, c.Status, "Rendering "+filepath.Base(input)+"...")
	spinner.Start()
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	path := svgPath(input, output)
	if err := io.WriteSVG(svg, path); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// loadDOT returns the DOT source for input. JSON exports are converted with
// the styled theme; anything else is read as DOT.
func loadDOT(input string) (string, error) {
	if strings.EqualFold(filepath.Ext(input), ".json") {
		g, err := io.ImportJSON(input)
		if err != nil {
			return "", err
		}
		return nodelink.ToDOT(g, nodelink.Options{Styled: true}), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", input)
		}
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", input)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "%s is empty", input)
	}
	return string(data), nil
}

// svgPath derives the SVG output path. A JSON input's extension is replaced,
// a DOT file keeps its name and gains ".svg".
func svgPath(input, output string) string {
	if output != "" {
		return output
	}
	if strings.EqualFold(filepath.Ext(input), ".json") {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	return input + ".svg"
}
