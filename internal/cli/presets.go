package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/config"
)

// presetsCommand lists the available block presets.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List block presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			out, err := presetTable(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// presetTable renders the builtin and configured presets as a table.
// The configured default preset is marked.
func presetTable(cfg config.Config) (string, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return "", err
	}
	builtin := board.Builtin()
	custom := make([]string, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		custom = append(custom, p.Name)
	}

	names := catalog.Names()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		source := "builtin"
		if slices.Contains(custom, name) {
			source = "config"
			if builtin.Has(name) {
				source = "config (overrides builtin)"
			}
		}
		marker := ""
		if name == cfg.Preset {
			marker = "*"
		}
		rows = append(rows, []string{marker, name, strings.Join(catalog[name], " "), source})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Preset", "Cells", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if rows[row][0] == "*" {
				return base.Foreground(colorCyan).Bold(true)
			}
			if col == 3 {
				return base.Foreground(colorDim)
			}
			return base
		})
	return t.Render(), nil
}
