// Package stream implements the client side of the generation stream: the
// transport that opens a generation request and decodes its event records,
// the aggregator that folds fragments into a running full text, and the
// session that coordinates a generation against an idea's document.
package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Increment is one decoded unit of server output. Exactly one of the three
// forms is set: a text fragment, the terminal done marker, or a terminal
// error message.
type Increment struct {
	Text string
	Done bool
	Err  string
}

// ConnectionError reports that the generation endpoint could not be reached
// or refused the stream before any data was produced.
type ConnectionError struct {
	Status int
	Cause  error
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stream connection failed: %v", e.Cause)
	}
	return fmt.Sprintf("stream connection failed: status %d", e.Status)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Client opens generation streams against a single endpoint. It performs no
// retries; a failed generation is the caller's to reissue.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a stream client for the given generation endpoint URL.
// A nil httpClient falls back to http.DefaultClient; callers should pass a
// client without a response timeout since streams stay open indefinitely.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

type generatePayload struct {
	Prompt string `json:"prompt"`
}

// Stream submits a prompt and returns a channel of decoded increments. The
// returned error is a *ConnectionError when the endpoint cannot be reached or
// responds non-2xx; after a successful open, failures surface as a terminal
// error increment on the channel instead. Cancelling ctx closes the
// connection and the channel without a terminal increment.
func (c *Client) Stream(ctx context.Context, prompt, token string) (<-chan Increment, error) {
	body, err := json.Marshal(generatePayload{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &ConnectionError{Status: resp.StatusCode}
	}

	increments := make(chan Increment, 10)

	go func() {
		defer close(increments)
		defer resp.Body.Close()

		var dec decoder
		buf := make([]byte, 4096)
		for {
			n, readErr := resp.Body.Read(buf)
			if n > 0 {
				for _, inc := range dec.feed(buf[:n]) {
					select {
					case <-ctx.Done():
						return
					case increments <- inc:
					}
					if inc.Done || inc.Err != "" {
						return
					}
				}
			}
			if readErr != nil {
				if ctx.Err() != nil {
					return
				}
				// The server ended the stream without a terminal record
				select {
				case <-ctx.Done():
				case increments <- Increment{Err: "stream interrupted: " + readErr.Error()}:
				}
				return
			}
		}
	}()

	return increments, nil
}

// decoder turns raw byte chunks into increments. Records are delimited by a
// blank line and a record may be split across chunk boundaries, so incomplete
// tail bytes carry over to the next feed.
type decoder struct {
	carry []byte
}

const recordPrefix = "data: "

type recordPayload struct {
	Text  *string `json:"text"`
	Done  bool    `json:"done"`
	Error *string `json:"error"`
}

// feed appends a chunk to the carry-over buffer and returns the increments
// decoded from every complete record now available. Records that are missing
// the data prefix or do not decode as JSON are dropped without comment.
func (d *decoder) feed(chunk []byte) []Increment {
	d.carry = append(d.carry, chunk...)

	var out []Increment
	for {
		idx := bytes.Index(d.carry, []byte("\n\n"))
		if idx < 0 {
			return out
		}
		record := string(d.carry[:idx])
		d.carry = d.carry[idx+2:]

		if inc, ok := decodeRecord(record); ok {
			out = append(out, inc)
		}
	}
}

func decodeRecord(record string) (Increment, bool) {
	record = strings.TrimRight(record, "\r")
	rest, found := strings.CutPrefix(record, recordPrefix)
	if !found {
		return Increment{}, false
	}

	var payload recordPayload
	if err := json.Unmarshal([]byte(rest), &payload); err != nil {
		return Increment{}, false
	}

	switch {
	case payload.Error != nil:
		return Increment{Err: *payload.Error}, true
	case payload.Done:
		return Increment{Done: true}, true
	case payload.Text != nil:
		return Increment{Text: *payload.Text}, true
	default:
		return Increment{}, false
	}
}
