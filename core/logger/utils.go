package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/josephlewis42/juokse/core/interp"
)

const (
	EventProcessStart  = "process_start"
	EventProcessFinish = "process_finish"
)

// LogEntry is a single recorded event.
type LogEntry struct {
	TimestampMicros int64    `json:"timestamp_micros"`
	SessionID       string   `json:"session_id,omitempty"`
	Event           string   `json:"event"`
	Executable      string   `json:"executable"`
	Args            []string `json:"args,omitempty"`
	Status          int      `json:"status"`
	Pid             int      `json:"pid,omitempty"`
	Signal          string   `json:"signal,omitempty"`
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures command events of script runs.
type Logger struct {
	Record LogRecorder
	// Now returns the time events are stamped with, time.Now if nil.
	Now func() time.Time
}

// NewJSONLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJSONLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

func (l *Logger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Logger) record(sessionID, event string, pe interp.ProcessEvent) error {
	return l.Record(&LogEntry{
		TimestampMicros: l.now().UnixMicro(),
		SessionID:       sessionID,
		Event:           event,
		Executable:      pe.Executable,
		Args:            pe.Args,
		Status:          pe.Status,
		Pid:             pe.Pid,
		Signal:          pe.Signal,
	})
}

// NewSession creates a logger with a random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// Sessionless creates a logger that doesn't attach a session ID.
func (l *Logger) Sessionless() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: ""}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// Attach records the process start and finish events of the context.
func (l *SessionLogger) Attach(c *interp.Context) {
	c.OnProcessStart(func(pe interp.ProcessEvent) {
		l.report(l.record(l.sessionID, EventProcessStart, pe))
	})
	c.OnProcessFinish(func(pe interp.ProcessEvent) {
		l.report(l.record(l.sessionID, EventProcessFinish, pe))
	})
}

func (l *SessionLogger) report(err error) {
	if err != nil {
		log.Printf("couldn't record event: %v", err)
	}
}
