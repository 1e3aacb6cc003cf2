package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter routes hertz's internal logs (hlog) through slog so the
// server emits one log format
type HertzSlogAdapter struct {
	logger *slog.Logger
}

var _ hlog.FullLogger = (*HertzSlogAdapter)(nil)

// NewHertzSlogAdapter creates a new hlog adapter
func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	return &HertzSlogAdapter{logger: logger.With("component", "hertz")}
}

func (h *HertzSlogAdapter) log(ctx context.Context, level slog.Level, msg string) {
	h.logger.Log(ctx, level, msg)
}

// Trace and Notice have no slog level; they map to Debug and Info.
// Fatal maps to Error: hertz must not terminate the process through the logger.

func (h *HertzSlogAdapter) Trace(v ...interface{})  { h.log(context.TODO(), slog.LevelDebug, sprint(v...)) }
func (h *HertzSlogAdapter) Debug(v ...interface{})  { h.log(context.TODO(), slog.LevelDebug, sprint(v...)) }
func (h *HertzSlogAdapter) Info(v ...interface{})   { h.log(context.TODO(), slog.LevelInfo, sprint(v...)) }
func (h *HertzSlogAdapter) Notice(v ...interface{}) { h.log(context.TODO(), slog.LevelInfo, sprint(v...)) }
func (h *HertzSlogAdapter) Warn(v ...interface{})   { h.log(context.TODO(), slog.LevelWarn, sprint(v...)) }
func (h *HertzSlogAdapter) Error(v ...interface{})  { h.log(context.TODO(), slog.LevelError, sprint(v...)) }
func (h *HertzSlogAdapter) Fatal(v ...interface{})  { h.log(context.TODO(), slog.LevelError, sprint(v...)) }

func (h *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	h.log(context.TODO(), slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	h.log(context.TODO(), slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	h.log(context.TODO(), slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	h.log(context.TODO(), slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	h.log(context.TODO(), slog.LevelWarn, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	h.log(context.TODO(), slog.LevelError, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	h.log(context.TODO(), slog.LevelError, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelWarn, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}

// SetLevel is a no-op; the level is fixed by the slog handler
func (h *HertzSlogAdapter) SetLevel(hlog.Level) {}

// SetOutput is a no-op; the output is fixed by the slog handler
func (h *HertzSlogAdapter) SetOutput(io.Writer) {}

func sprint(v ...interface{}) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v...)
}
