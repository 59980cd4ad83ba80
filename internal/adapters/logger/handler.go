// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/runner/internal/ui/output"
	"go.trai.ch/runner/internal/ui/style"
)

// levelLook is the glyph and color a level is printed with.
type levelLook struct {
	glyph string
	color lipgloss.Color
}

var looks = map[slog.Level]levelLook{
	slog.LevelDebug: {glyph: style.Tilde, color: style.Slate},
	slog.LevelInfo:  {color: style.White},
	slog.LevelWarn:  {glyph: style.Warning, color: style.Yellow},
	slog.LevelError: {glyph: style.Cross, color: style.Red},
}

// PrettyHandler is a slog.Handler printing one colored line per record.
// Attributes follow the message as key=value, qualified by the open groups.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	// attrs are already qualified and formatted.
	attrs []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, stderr when nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	look, ok := looks[r.Level]
	if !ok {
		look = looks[slog.LevelInfo]
	}

	var line strings.Builder
	if look.glyph != "" {
		line.WriteString(look.glyph + " ")
	}
	line.WriteString(r.Message)

	attrs := slices.Clip(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		attrs = appendAttr(attrs, h.prefix, a)
		return true
	})

	text := h.out.String(line.String()).Foreground(h.out.Color(string(look.color))).String()
	if len(attrs) > 0 {
		text += " " + h.out.String(strings.Join(attrs, " ")).Foreground(h.out.Color(string(style.Slate))).String()
	}

	_, err := h.out.WriteString(text + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, a)
	}
	return &next
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// appendAttr formats a, flattening group values into dotted keys.
func appendAttr(dst []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, prefix, ga)
		}
		return dst
	}
	return append(dst, prefix+a.Key+"="+a.Value.String())
}
