package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadowboard/pkg/pipeline"
	"github.com/matzehuels/shadowboard/pkg/render"
)

// scoreCommand prints the heat-map and detected cells to the terminal.
func (c *CLI) scoreCommand() *cobra.Command {
	var in inputOpts

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the shadow heat-map and print detected blocks",
		Long: `Compute the shadow back-projection for a block arrangement and print the
heat-map as a table. Cells whose score reaches the threshold are marked.`,
		Example: `  shadowboard score
  shadowboard score --preset diagonal --angles 0,30,60,90,120,150
  shadowboard score --cell B2 --cell D4 --threshold 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := in.options(cmd, cfg)
			if err != nil {
				return err
			}
			return c.runScore(cmd, opts)
		},
	}

	in.register(cmd)
	return cmd
}

func (c *CLI) runScore(cmd *cobra.Command, opts pipeline.Options) error {
	opts.Logger = commandLogger(cmd.Context()).With("preset", presetName(opts))
	result, err := c.newRunner().Score(cmd.Context(), opts)
	if err != nil {
		return err
	}

	table, err := render.RenderTerminal(result.Heatmap)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, table)
	printSummary(out, result)
	return nil
}

// printSummary prints the run parameters and the detected cells.
func printSummary(w io.Writer, result *pipeline.Result) {
	h := result.Heatmap
	printKeyValue(w, "Angles", formatAngles(h.Angles))
	printKeyValue(w, "Threshold", fmt.Sprintf("%.2f", h.Threshold))
	printKeyValue(w, "Max score", fmt.Sprintf("%.2f", result.Stats.MaxScore))

	labels := result.Detected.Labels()
	if len(labels) == 0 {
		printWarning(w, "No cell reaches the threshold")
		return
	}
	printSuccess(w, "Detected %s: %s", pluralize(len(labels), "block"), StyleDetected.Render(strings.Join(labels, " ")))
}

func formatAngles(angles []int) string {
	parts := make([]string, len(angles))
	for i, a := range angles {
		parts[i] = fmt.Sprintf("%d°", a)
	}
	return strings.Join(parts, " ")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
