package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	keyColor   = color.New(color.FgHiBlack)
	msgColor   = color.New(color.Bold)
	levelColor = map[slog.Level]*color.Color{
		slog.Level(LevelTrace): color.New(color.FgMagenta),
		slog.LevelDebug:        color.New(color.FgBlue),
		slog.LevelInfo:         color.New(color.FgGreen),
		slog.LevelWarn:         color.New(color.FgYellow),
		slog.LevelError:        color.New(color.FgRed, color.Bold),
	}
	stringColor = color.New(color.FgCyan)
	numberColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

// prettyTextHandler writes colorized key=value records, one per line.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, nil, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeAttr(buf, nil, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, nil, slog.String(
				slog.SourceKey, src.File+":"+strconv.Itoa(src.Line),
			))
		}
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	msgColor.Fprint(buf, r.Message)

	for _, a := range h.attrs {
		h.writeAttr(buf, h.groups, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.groups, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

func (h *prettyTextHandler) writeAttr(
	buf *bytes.Buffer,
	groups []string,
	a slog.Attr,
) {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(groups, a)
	}

	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(groups[:len(groups):len(groups)], a.Key)
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, sub, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	// The level arrives as a string once ReplaceAttr has renamed it.
	if a.Key == slog.LevelKey && len(groups) == 0 {
		lc := levelColor[slog.LevelInfo]
		if c, ok := levelColor[h.levelOf(a.Value.String())]; ok {
			lc = c
		}

		lc.Fprint(buf, a.Value.String())

		return
	}

	keyColor.Fprint(buf, key+"=")

	switch a.Value.Kind() {
	case slog.KindString:
		stringColor.Fprint(buf, quoteIfNeeded(a.Value.String()))
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		numberColor.Fprint(buf, a.Value.String())
	default:
		if err, ok := a.Value.Any().(error); ok {
			errorColor.Fprint(buf, quoteIfNeeded(err.Error()))

			return
		}

		fmt.Fprint(buf, quoteIfNeeded(a.Value.String()))
	}
}

func (*prettyTextHandler) levelOf(name string) slog.Level {
	return slog.Level(ParseLevel(name))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}

	return s
}
