package testutils

import "sync"

// LoggedCall is one call made on a RecordingLogger.
type LoggedCall struct {
	Level   string // "info", "log", "warn" or "error"
	Message string
	Err     error
}

// RecordingLogger implements logger.Logger and keeps every call.
type RecordingLogger struct {
	mu    sync.Mutex
	calls []LoggedCall
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level, msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, LoggedCall{Level: level, Message: msg, Err: err})
}

// Info records an info call.
func (l *RecordingLogger) Info(msg string) { l.record("info", msg, nil) }

// Log records a log call.
func (l *RecordingLogger) Log(msg string) { l.record("log", msg, nil) }

// Warn records a warn call.
func (l *RecordingLogger) Warn(msg string) { l.record("warn", msg, nil) }

// Error records an error call.
func (l *RecordingLogger) Error(msg string, err error) { l.record("error", msg, err) }

// Calls returns a copy of all recorded calls.
func (l *RecordingLogger) Calls() []LoggedCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LoggedCall, len(l.calls))
	copy(out, l.calls)
	return out
}

// Messages returns the messages recorded at level, or all messages if level
// is empty.
func (l *RecordingLogger) Messages(level string) []string {
	var msgs []string
	for _, c := range l.Calls() {
		if level == "" || c.Level == level {
			msgs = append(msgs, c.Message)
		}
	}
	return msgs
}

// Reset discards recorded calls.
func (l *RecordingLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}

// PanickingLogger panics on every call. It exercises code that must not let
// logging failures escape.
type PanickingLogger struct{}

func (PanickingLogger) Info(string)         { panic("logger failure") }
func (PanickingLogger) Log(string)          { panic("logger failure") }
func (PanickingLogger) Warn(string)         { panic("logger failure") }
func (PanickingLogger) Error(string, error) { panic("logger failure") }
