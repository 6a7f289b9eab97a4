package logger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       int        `json:"sessions"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	ProcessStart  ProcessStartReport  `json:"process_start_report"`
	ProcessFinish ProcessFinishReport `json:"process_finish_report"`

	seenSessions map[string]bool
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	if r.seenSessions == nil {
		r.seenSessions = make(map[string]bool)
	}
	if !r.seenSessions[le.SessionID] {
		r.seenSessions[le.SessionID] = true
		r.Sessions++
	}

	switch le.Event {
	case EventProcessStart:
		r.ProcessStart.update(le)
	case EventProcessFinish:
		r.ProcessFinish.update(le)
	default:
		r.InvalidEntries.Increment(le.Event)
	}
}

type ProcessStartReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Full command lines
	CommandLines StrCounter `json:"command_lines"`
}

func (r *ProcessStartReport) update(le *LogEntry) {
	r.CommandNames.Increment(le.Executable)
	r.CommandLines.Increment(strings.Join(append([]string{le.Executable}, le.Args...), " "))
}

type ProcessFinishReport struct {
	Statuses *PathCounter `json:"statuses"`
	Signals  *PathCounter `json:"signals,omitempty"`
}

func (r *ProcessFinishReport) update(le *LogEntry) {
	if r.Statuses == nil {
		r.Statuses = NewPathCounter("command", "status")
	}
	r.Statuses.Increment(le.Executable, fmt.Sprintf("%d", le.Status))

	if le.Signal != "" {
		if r.Signals == nil {
			r.Signals = NewPathCounter("command", "signal")
		}
		r.Signals.Increment(le.Executable, le.Signal)
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count of the given key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of times each combination of column values
// was seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Get returns the count of the given column values.
func (ctr *PathCounter) Get(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implements a custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	var out []Count
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
