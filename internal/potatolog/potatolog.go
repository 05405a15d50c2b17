// Package potatolog keeps recent log entries in memory so they can be shown
// inside the editor.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// maxEntries bounds the retained entries; the oldest are dropped first.
const maxEntries = 1024

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects zerolog's JSON output, one entry per write.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	if len(w.log) >= maxEntries {
		w.log = append(w.log[:0], w.log[len(w.log)-maxEntries+1:]...)
	}
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Last returns the level and message of the most recent entry, if any.
func (w *MemoryLogReaderWriter) Last() (level, message string, ok bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if len(w.log) == 0 {
		return "", "", false
	}
	entry := w.log[len(w.log)-1]
	level, _ = entry["level"].(string)
	message, _ = entry["message"].(string)
	return level, message, true
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Last() (level, message string, ok bool)
}
