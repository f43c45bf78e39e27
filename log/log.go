// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides package scoped loggers on top of the go-ethereum log facility.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"

	ethlog "github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
)

// Levels accepted by Init, matching the --verbosity flag.
const (
	LvlCrit  = 0
	LvlError = 1
	LvlWarn  = 2
	LvlInfo  = 3
	LvlDebug = 4
	LvlTrace = 5
)

// Levels as used by the runtime level switch.
const (
	LevelTrace = ethlog.LevelTrace
	LevelDebug = ethlog.LevelDebug
	LevelInfo  = ethlog.LevelInfo
	LevelWarn  = ethlog.LevelWarn
	LevelError = ethlog.LevelError
	LevelCrit  = ethlog.LevelCrit
)

// level is the minimum level of the root handler, adjustable at runtime.
var level slog.LevelVar

// Level returns the level switch of the root handler.
func Level() *slog.LevelVar {
	return &level
}

// LevelString returns the lower case name of l.
func LevelString(l slog.Level) string {
	return ethlog.LevelString(l)
}

// Logger writes leveled, key/value structured records.
type Logger interface {
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)
	With(ctx ...any) Logger
}

// contextLogger resolves the root logger on every call, so loggers declared
// at package level pick up the handler installed later by Init.
type contextLogger struct {
	ctx []any
}

// WithContext returns a logger that prefixes every record with ctx.
func WithContext(ctx ...any) Logger {
	return &contextLogger{ctx: ctx}
}

func (l *contextLogger) root() ethlog.Logger {
	return ethlog.Root().With(l.ctx...)
}

func (l *contextLogger) Trace(msg string, ctx ...any) { l.root().Trace(msg, ctx...) }
func (l *contextLogger) Debug(msg string, ctx ...any) { l.root().Debug(msg, ctx...) }
func (l *contextLogger) Info(msg string, ctx ...any) { l.root().Info(msg, ctx...) }
func (l *contextLogger) Warn(msg string, ctx ...any) { l.root().Warn(msg, ctx...) }
func (l *contextLogger) Error(msg string, ctx ...any) { l.root().Error(msg, ctx...) }

// Crit logs and exits the process.
func (l *contextLogger) Crit(msg string, ctx ...any) { l.root().Crit(msg, ctx...) }

func (l *contextLogger) With(ctx ...any) Logger {
	merged := make([]any, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	return &contextLogger{ctx: append(merged, ctx...)}
}

// Init installs the root handler writing to stderr.
func Init(verbosity int, json bool) {
	SetOutput(os.Stderr, verbosity, json)
}

// SetOutput installs a root handler writing to w and resets the level switch to verbosity.
// Colors are used only when w is a terminal and json is false.
func SetOutput(w io.Writer, verbosity int, json bool) {
	level.Set(ethlog.FromLegacyLevel(verbosity))
	ethlog.SetDefault(ethlog.NewLogger(&levelHandler{&level, NewHandler(w, LevelTrace, json)}))
}

// NewHandler creates a handler dropping records below lvl.
func NewHandler(w io.Writer, lvl slog.Level, json bool) slog.Handler {
	if json {
		return ethlog.JSONHandlerWithLevel(w, lvl)
	}
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return ethlog.NewTerminalHandlerWithLevel(w, lvl, useColor)
}

// levelHandler filters records by a level that can change while running.
type levelHandler struct {
	level *slog.LevelVar
	next  slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.level.Level() && h.next.Enabled(ctx, l)
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.next.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{h.level, h.next.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{h.level, h.next.WithGroup(name)}
}

// Root returns the current root logger.
func Root() Logger {
	return WithContext()
}

// Info logs with the root logger.
func Info(msg string, ctx ...any) { ethlog.Root().Info(msg, ctx...) }

// Warn logs with the root logger.
func Warn(msg string, ctx ...any) { ethlog.Root().Warn(msg, ctx...) }

// Error logs with the root logger.
func Error(msg string, ctx ...any) { ethlog.Root().Error(msg, ctx...) }
