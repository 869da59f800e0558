package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/config"
	"github.com/matzehuels/shadowboard/pkg/errors"
	"github.com/matzehuels/shadowboard/pkg/pipeline"
	"github.com/matzehuels/shadowboard/pkg/render"
)

const (
	// customPreset names the block set given with --block or --cell.
	customPreset = "custom"

	angleStep = 10
	angleMax  = 180

	// Threshold slider bounds, in hundredths.
	thresholdMinPct = 10
	thresholdMaxPct = 100

	sliderWidth    = 30
	anglesPerLine  = 10
	noAngleWarning = "Select at least one angle to compute the heat-map."
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listCursorStyle   = lipgloss.NewStyle().Reverse(true)
)

// =============================================================================
// InteractiveModel - live heat-map with preset, angle and threshold controls
// =============================================================================

// InteractiveModel is the bubbletea model for the interactive command.
// Every change to a control triggers a full recomputation.
type InteractiveModel struct {
	Presets      []string
	PresetIdx    int
	Choices      []int
	Selected     map[int]bool
	Cursor       int
	ThresholdPct int

	Result *pipeline.Result
	Err    error

	ctx    context.Context
	runner *pipeline.Runner
	base   pipeline.Options
}

// NewInteractiveModel creates a model seeded from opts and computes the
// initial heat-map.
func NewInteractiveModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) InteractiveModel {
	if opts.Catalog == nil {
		opts.Catalog = board.Builtin()
	}
	if opts.Angles == nil {
		opts.Angles = slices.Clone(config.DefaultAngles)
	}
	if opts.Threshold == 0 {
		opts.Threshold = config.DefaultThreshold
	}

	m := InteractiveModel{
		Presets:      opts.Catalog.Names(),
		Choices:      angleChoices(opts.Angles),
		Selected:     make(map[int]bool, len(opts.Angles)),
		ThresholdPct: clampPct(int(math.Round(opts.Threshold * 100))),
		ctx:          ctx,
		runner:       runner,
		base:         opts,
	}
	for _, a := range opts.Angles {
		m.Selected[a] = true
	}

	if opts.Blocks != nil {
		m.Presets = append([]string{customPreset}, m.Presets...)
	} else {
		preset := opts.Preset
		if preset == "" {
			preset = board.DefaultPreset
		}
		if i := slices.Index(m.Presets, preset); i >= 0 {
			m.PresetIdx = i
		}
	}

	m.recompute()
	return m
}

// angleChoices returns 0..180 in steps of 10 merged with any extra angles.
func angleChoices(extra []int) []int {
	choices := make([]int, 0, angleMax/angleStep+1+len(extra))
	for a := 0; a <= angleMax; a += angleStep {
		choices = append(choices, a)
	}
	choices = append(choices, extra...)
	slices.Sort(choices)
	return slices.Compact(choices)
}

func clampPct(p int) int {
	return max(thresholdMinPct, min(thresholdMaxPct, p))
}

// Angles returns the selected angles in ascending order.
func (m InteractiveModel) Angles() []int {
	var angles []int
	for _, a := range m.Choices {
		if m.Selected[a] {
			angles = append(angles, a)
		}
	}
	return angles
}

// Threshold returns the slider position as a fraction.
func (m InteractiveModel) Threshold() float64 {
	return float64(m.ThresholdPct) / 100
}

// Preset returns the name of the current preset.
func (m InteractiveModel) Preset() string {
	return m.Presets[m.PresetIdx]
}

// recompute reruns the engine with the current controls. With no angle
// selected the engine is not invoked.
func (m *InteractiveModel) recompute() {
	m.Result, m.Err = nil, nil
	angles := m.Angles()
	if len(angles) == 0 {
		return
	}

	opts := pipeline.Options{
		Angles:    angles,
		Threshold: m.Threshold(),
		Colormap:  m.base.Colormap,
		Catalog:   m.base.Catalog,
	}
	if m.Preset() == customPreset {
		opts.Blocks = m.base.Blocks
	} else {
		opts.Preset = m.Preset()
	}
	m.Result, m.Err = m.runner.Score(m.ctx, opts)
}

func (m InteractiveModel) Init() tea.Cmd {
	return nil
}

func (m InteractiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "right", "l":
		if m.Cursor < len(m.Choices)-1 {
			m.Cursor++
		}
		return m, nil
	case " ", "enter", "x":
		a := m.Choices[m.Cursor]
		m.Selected[a] = !m.Selected[a]
	case "a":
		for _, a := range m.Choices {
			m.Selected[a] = true
		}
	case "n":
		clear(m.Selected)
	case "up", "k", "+", "=":
		m.ThresholdPct = clampPct(m.ThresholdPct + 1)
	case "down", "j", "-":
		m.ThresholdPct = clampPct(m.ThresholdPct - 1)
	case "tab", "p":
		m.PresetIdx = (m.PresetIdx + 1) % len(m.Presets)
	case "shift+tab", "P":
		m.PresetIdx = (m.PresetIdx + len(m.Presets) - 1) % len(m.Presets)
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m InteractiveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Shadowboard"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ angle  space toggle  a all  n none  ↑/↓ threshold  tab preset  q quit"))
	b.WriteString("\n\n")

	b.WriteString(listDimStyle.Render("Preset     "))
	b.WriteString(listSelectedStyle.Render("‹ " + m.Preset() + " ›"))
	b.WriteString("\n\n")

	b.WriteString(listDimStyle.Render("Angles"))
	b.WriteString("\n")
	b.WriteString(m.viewAngles())
	b.WriteString("\n")

	b.WriteString(listDimStyle.Render("Threshold  "))
	b.WriteString(m.viewSlider())
	b.WriteString("\n\n")

	switch {
	case len(m.Angles()) == 0:
		b.WriteString(StyleWarning.Render(iconWarning + " " + noAngleWarning))
	case m.Err != nil:
		b.WriteString(StyleWarning.Render(iconWarning + " " + errors.UserMessage(m.Err)))
	case m.Result != nil:
		b.WriteString(m.viewResult())
	}
	b.WriteString("\n")

	return b.String()
}

func (m InteractiveModel) viewAngles() string {
	var b strings.Builder
	for i, a := range m.Choices {
		mark := "○"
		style := listDimStyle
		if m.Selected[a] {
			mark = "●"
			style = listNormalStyle
		}
		text := fmt.Sprintf("%s %3d°", mark, a)
		if i == m.Cursor {
			style = style.Inherit(listCursorStyle)
		}
		b.WriteString(" ")
		b.WriteString(style.Render(text))
		if (i+1)%anglesPerLine == 0 || i == len(m.Choices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m InteractiveModel) viewSlider() string {
	span := thresholdMaxPct - thresholdMinPct
	filled := (m.ThresholdPct - thresholdMinPct) * sliderWidth / span
	bar := StyleNumber.Render(strings.Repeat("━", filled)) +
		listDimStyle.Render(strings.Repeat("─", sliderWidth-filled))
	return bar + " " + StyleValue.Render(fmt.Sprintf("%.2f", m.Threshold()))
}

func (m InteractiveModel) viewResult() string {
	table, err := render.RenderTerminal(m.Result.Heatmap)
	if err != nil {
		return StyleWarning.Render(iconWarning + " " + errors.UserMessage(err))
	}
	labels := m.Result.Detected.Labels()
	detected := listDimStyle.Render("none")
	if len(labels) > 0 {
		detected = StyleDetected.Render(strings.Join(labels, " "))
	}
	return table + "\n" + listDimStyle.Render("Detected   ") + detected
}

// =============================================================================
// Command
// =============================================================================

// interactiveCommand starts the interactive heat-map UI.
func (c *CLI) interactiveCommand() *cobra.Command {
	var in inputOpts

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ui"},
		Short:   "Explore presets, angles and thresholds interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := in.options(cmd, cfg)
			if err != nil {
				return err
			}
			if opts.Preset != "" && !opts.Catalog.Has(opts.Preset) {
				return errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q (available: %v)", opts.Preset, opts.Catalog.Names())
			}
			return runInteractive(cmd.Context(), opts)
		},
	}

	in.register(cmd)
	return cmd
}

func runInteractive(ctx context.Context, opts pipeline.Options) error {
	// The UI owns the terminal, so the runner does not log.
	runner := pipeline.NewRunner(newLogger(io.Discard, LogInfo))
	m := NewInteractiveModel(ctx, runner, opts)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if fm, ok := finalModel.(InteractiveModel); ok && fm.Result != nil {
		commandLogger(ctx).Debug("interactive session ended",
			"preset", fm.Preset(),
			"angles", fm.Angles(),
			"threshold", fm.Threshold(),
			"detected", fm.Result.Detected.Labels())
	}
	return nil
}
