package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/pipeline"
)

// defaultOutputBase is the output base path when -o is not given.
const defaultOutputBase = "heatmap"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output file (single format) or base path (multiple)
	title  string  // heading drawn above the board
	size   float64 // board edge length in pixels
	scores bool    // print each cell's score inside the cell
	low    string  // colormap color for score 0
	high   string  // colormap color for score 1
}

// renderCommand writes the heat-map to files in one or more formats.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		in         inputOpts
		opts       renderOpts
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the shadow heat-map to SVG, PNG, PDF or JSON",
		Example: `  shadowboard render
  shadowboard render -f svg,png -o out/standard
  shadowboard render --preset corners --angles 0,30,60,90 --scores -o corners.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			popts, err := in.options(cmd, cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				popts.Formats = parseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(popts.Formats); err != nil {
				return err
			}
			opts.apply(cmd, &popts)
			return c.runRender(cmd, popts, &opts)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, term (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.title, "title", "", "heading drawn above the board")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "board edge length in pixels (default 600)")
	cmd.Flags().BoolVar(&opts.scores, "scores", false, "print each cell's score")
	cmd.Flags().StringVar(&opts.low, "low", "", "colormap color for score 0, e.g. #eeeeee")
	cmd.Flags().StringVar(&opts.high, "high", "", "colormap color for score 1, e.g. #000000")

	return cmd
}

// apply copies the render flags that were set onto the pipeline options.
func (o *renderOpts) apply(cmd *cobra.Command, popts *pipeline.Options) {
	flags := cmd.Flags()
	popts.Title = o.title
	popts.ShowScores = o.scores
	if flags.Changed("size") {
		popts.Size = o.size
	}
	if flags.Changed("low") {
		popts.Colormap.Low = o.low
	}
	if flags.Changed("high") {
		popts.Colormap.High = o.high
	}
}

func (c *CLI) runRender(cmd *cobra.Command, popts pipeline.Options, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := commandLogger(ctx)
	st := startStage(logger, "preset", presetName(popts), "formats", popts.Formats)
	popts.Logger = st.logger

	var spin *spinner
	if slices.Contains(popts.Formats, pipeline.FormatPDF) {
		spin = newSpinner(ctx, cmd.ErrOrStderr(), "Converting to PDF...")
		spin.Start()
	}
	result, err := c.newRunner().Execute(ctx, popts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var written []string
	for _, format := range popts.Formats {
		data := result.Artifacts[format]
		if format == pipeline.FormatTerminal {
			fmt.Fprintln(out, string(data))
			continue
		}
		path := outputPath(opts.output, format, fileFormatCount(popts.Formats))
		if err := writeArtifact(ctx, path, data); err != nil {
			return err
		}
		written = append(written, path)
	}

	if len(written) > 0 {
		st.done(fmt.Sprintf("Wrote %s", pluralize(len(written), "file")))
		printSuccess(out, "Rendered %s", pluralize(len(written), "file"))
		for _, p := range written {
			printFile(out, p)
		}
	}
	printSummary(out, result)
	return nil
}

// presetName names the block source of a run for log fields.
func presetName(opts pipeline.Options) string {
	switch {
	case opts.Blocks != nil:
		return "blocks"
	case opts.Preset == "":
		return board.DefaultPreset
	default:
		return opts.Preset
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// fileFormatCount counts the formats that produce a file.
func fileFormatCount(formats []string) int {
	n := 0
	for _, f := range formats {
		if f != pipeline.FormatTerminal {
			n++
		}
	}
	return n
}

// outputPath returns the file path for one format.
// A single output keeps -o as given when it already carries that format's
// extension; otherwise the format is appended to the base path.
func outputPath(output, format string, count int) string {
	if count == 1 && strings.EqualFold(strings.TrimPrefix(filepath.Ext(output), "."), format) {
		return output
	}
	return basePath(output) + "." + format
}

// basePath derives the base output path from -o.
// If output is empty, defaultOutputBase is used.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(ctx context.Context, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	commandLogger(ctx).Debug("generated artifact", "path", path, "bytes", len(data))
	return nil
}
