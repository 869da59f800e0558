package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger writes to w with short wall-clock timestamps ("14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stage times one command step. Its fields are attached to every line it
// logs, so a render reports the preset and formats it ran with.
type stage struct {
	logger *log.Logger
	start  time.Time
}

func startStage(l *log.Logger, keyvals ...any) *stage {
	if len(keyvals) > 0 {
		l = l.With(keyvals...)
	}
	return &stage{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time as "duration".
func (s *stage) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "duration", time.Since(s.start).Round(time.Millisecond))
	s.logger.Info(msg, keyvals...)
}

type loggerKey struct{}

// commandContext attaches l to the command's context, tagged with the
// subcommand name.
func commandContext(cmd *cobra.Command, l *log.Logger) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l.With("command", cmd.Name()))
}

// commandLogger returns the logger attached by commandContext, or
// log.Default() outside a command.
func commandLogger(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
