package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		wantLog bool
	}{
		{"debug hidden at info", LogInfo, false},
		{"debug shown at debug", LogDebug, true},
		{"debug hidden at warn", log.WarnLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newLogger(&buf, tt.level).Debug("generated artifact", "path", "heatmap.svg")
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v (%q)", got, tt.wantLog, buf.String())
			}
		})
	}
}

func TestStageDone(t *testing.T) {
	var buf bytes.Buffer
	st := startStage(newLogger(&buf, LogInfo), "preset", "center")
	st.done("Wrote 2 files", "files", 2)

	out := buf.String()
	for _, want := range []string{"Wrote 2 files", "preset=center", "files=2", "duration="} {
		if !strings.Contains(out, want) {
			t.Errorf("stage output missing %q: %q", want, out)
		}
	}
}

func TestStageFieldsReachChildLogs(t *testing.T) {
	var buf bytes.Buffer
	st := startStage(newLogger(&buf, LogDebug), "preset", "diagonal")
	st.logger.Debug("rendered format", "format", "svg")

	if !strings.Contains(buf.String(), "preset=diagonal") {
		t.Errorf("stage fields missing from child log: %q", buf.String())
	}
}

func TestCommandContextTagsCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "render"}
	cmd.SetContext(context.Background())

	ctx := commandContext(cmd, newLogger(&buf, LogInfo))
	commandLogger(ctx).Info("computed scores")

	if !strings.Contains(buf.String(), "command=render") {
		t.Errorf("log line missing command field: %q", buf.String())
	}
}

func TestCommandContextWithoutParentContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := commandContext(&cobra.Command{Use: "score"}, newLogger(&buf, LogInfo))
	if commandLogger(ctx) == log.Default() {
		t.Error("commandContext should attach a logger even without a parent context")
	}
}

func TestCommandLoggerDefault(t *testing.T) {
	if got := commandLogger(context.Background()); got != log.Default() {
		t.Error("commandLogger should fall back to log.Default()")
	}
}

func TestRenderCommandLogs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	base := filepath.Join(t.TempDir(), "board")

	var out, logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs([]string{"render", "-f", "svg,json", "-o", base, "--preset", "center"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	got := logs.String()
	for _, want := range []string{"Wrote 2 files", "computed scores", "command=render", "preset=center", "duration="} {
		if !strings.Contains(got, want) {
			t.Errorf("render logs missing %q:\n%s", want, got)
		}
	}
}
