// Package sse writes the generation stream's wire format: one JSON payload
// per "data:" record, blank-line delimited, flushed immediately so fragments
// reach the client as they are produced.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Writer emits stream records over one SSE connection.
type Writer struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewWriter prepares a response for event streaming and returns a record
// writer for it. Fails when the underlying connection cannot flush.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	return &Writer{w: w, flusher: flusher}, nil
}

type textRecord struct {
	Text string `json:"text"`
}

type doneRecord struct {
	Done bool `json:"done"`
}

type errorRecord struct {
	Error string `json:"error"`
}

// WriteText sends one text fragment record.
func (s *Writer) WriteText(fragment string) error {
	return s.writeRecord(textRecord{Text: fragment})
}

// WriteDone sends the terminal success record.
func (s *Writer) WriteDone() error {
	return s.writeRecord(doneRecord{Done: true})
}

// WriteError sends the terminal failure record.
func (s *Writer) WriteError(message string) error {
	return s.writeRecord(errorRecord{Error: message})
}

func (s *Writer) writeRecord(payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal stream record: %w", err)
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("write stream record: %w", err)
	}
	s.flusher.Flush()
	return nil
}

// WriteKeepAlive writes an SSE comment line and flushes. Comments are
// ignored by the client decoder; they only keep proxies from timing out the
// idle connection.
func (s *Writer) WriteKeepAlive() error {
	if _, err := fmt.Fprintf(s.w, ": keepalive\n\n"); err != nil {
		return fmt.Errorf("write keepalive failed: %w", err)
	}
	s.flusher.Flush()
	return nil
}
