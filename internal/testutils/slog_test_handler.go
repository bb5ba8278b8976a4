package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry represents a simplified log record for testing
type LogEntry map[string]interface{}

// TestSlogHandler is a memory-backed slog.Handler for testing
type TestSlogHandler struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	attrs   []slog.Attr
	prefix  string // open groups joined with ".", e.g. "request.user."
}

// NewTestSlogHandler creates a new memory-backed slog handler
func NewTestSlogHandler() *TestSlogHandler {
	entries := make([]LogEntry, 0)
	return &TestSlogHandler{
		mu:      &sync.Mutex{},
		entries: &entries,
	}
}

// Enabled satisfies slog.Handler interface
func (h *TestSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler interface
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := make(LogEntry)
	entry["level"] = r.Level.String()
	entry["message"] = r.Message

	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[h.prefix+attr.Key] = attr.Value.Any()
		return true
	})

	*h.entries = append(*h.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler interface. The returned handler shares
// the captured entries with h.
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		combined = append(combined, a)
	}
	return &TestSlogHandler{mu: h.mu, entries: h.entries, attrs: combined, prefix: h.prefix}
}

// WithGroup satisfies slog.Handler interface. Attributes added under a group
// are recorded with dotted keys, e.g. "group.key".
func (h *TestSlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &TestSlogHandler{
		mu:      h.mu,
		entries: h.entries,
		attrs:   h.attrs,
		prefix:  h.prefix + name + ".",
	}
}

// Entries returns all captured log entries
func (h *TestSlogHandler) Entries() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]LogEntry, len(*h.entries))
	copy(result, *h.entries)
	return result
}

// Clear resets the captured log entries
func (h *TestSlogHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	*h.entries = make([]LogEntry, 0)
}

// Messages returns the message of every captured entry at the given level
// ("INFO", "WARN", ...). An empty level matches all entries.
func (h *TestSlogHandler) Messages(level string) []string {
	var msgs []string
	for _, e := range h.Entries() {
		if level == "" || e["level"] == level {
			if msg, ok := e["message"].(string); ok {
				msgs = append(msgs, msg)
			}
		}
	}
	return msgs
}
