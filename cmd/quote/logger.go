package main

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// dualHandler writes every record to the console handler and copies errors to
// a second handler, usually a file.
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		err = h.coreHandler.Handle(ctx, r)
	}

	// a broken error file must not hide the console record
	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env, errorLogPath string) *slog.Logger {
	core := consoleHandler(env, os.Stdout)

	errorFile, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("cannot open error log file", "path", errorLogPath, "error", err)
		return slog.New(core)
	}

	return slog.New(newDualHandler(core, errorFile))
}

func newDualHandler(core slog.Handler, errOut io.Writer) *dualHandler {
	return &dualHandler{
		coreHandler:  core,
		errorHandler: slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelError}),
	}
}

func consoleHandler(env string, out io.Writer) slog.Handler {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if env == envDev {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}
