package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiYellow  = "\033[33m"
	ansiCyan    = "\033[36m"
	ansiMagenta = "\033[35m"
)

// handler is a slog.Handler writing one line per record with fields sorted by key.
// Groups are flattened.
type handler struct {
	s     settings
	mu    *sync.Mutex
	attrs []slog.Attr
}

func newHandler(s settings) *handler {
	return &handler{s: s, mu: &sync.Mutex{}}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.s.level
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(slices.Clip(h.attrs), attrs...)
	return &next
}

func (h *handler) WithGroup(string) slog.Handler { return h }

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	fields := slices.Clone(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, a)
		return true
	})
	slices.SortStableFunc(fields, func(a, b slog.Attr) int {
		return strings.Compare(a.Key, b.Key)
	})

	var buf bytes.Buffer
	if h.s.format == FormatJSON {
		h.encodeJSON(&buf, r, fields)
	} else {
		h.encodeLogfmt(&buf, r, fields)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.Copy(h.s.writer, &buf)
	return err
}

func (h *handler) encodeLogfmt(buf *bytes.Buffer, r slog.Record, fields []slog.Attr) {
	if h.s.timestamp && !r.Time.IsZero() {
		fmt.Fprintf(buf, "time=%s ", r.Time.Format(time.RFC3339))
	}

	level := levelName(r.Level)
	if h.s.color {
		level = paintLevel(level)
	}
	fmt.Fprintf(buf, "level=%s msg=%s", level, strconv.Quote(r.Message))

	for _, f := range fields {
		fmt.Fprintf(buf, " %s=%s", f.Key, logfmtValue(f.Value.Resolve()))
	}
	buf.WriteByte('\n')
}

func (h *handler) encodeJSON(buf *bytes.Buffer, r slog.Record, fields []slog.Attr) {
	buf.WriteByte('{')
	if h.s.timestamp && !r.Time.IsZero() {
		writeMember(buf, "time", r.Time.Format(time.RFC3339))
		buf.WriteByte(',')
	}
	writeMember(buf, "level", levelName(r.Level))
	buf.WriteByte(',')
	writeMember(buf, "msg", r.Message)
	for _, f := range fields {
		buf.WriteByte(',')
		writeMember(buf, f.Key, jsonValue(f.Value.Resolve()))
	}
	buf.WriteString("}\n")
}

func writeMember(buf *bytes.Buffer, key string, value any) {
	k, _ := json.Marshal(key)
	v, err := json.Marshal(value)
	if err != nil {
		v, _ = json.Marshal(fmt.Sprint(value))
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
}

func jsonValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().Milliseconds()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
	}
	return v.Any()
}

func logfmtValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindBool:
		return v.String()
	case slog.KindDuration:
		return strconv.FormatInt(v.Duration().Milliseconds(), 10)
	case slog.KindTime:
		return strconv.Quote(v.Time().Format(time.RFC3339))
	}
	return strconv.Quote(v.String())
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	}
	return "DEBUG"
}

func paintLevel(name string) string {
	switch name {
	case "DEBUG":
		return ansiMagenta + name + ansiReset
	case "INFO":
		return ansiCyan + name + ansiReset
	case "WARN":
		return ansiYellow + name + ansiReset
	case "ERROR":
		return ansiRed + name + ansiReset
	}
	return name
}
