package stream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDecoderSplitAcrossChunks(t *testing.T) {
	var d decoder

	if got := d.feed([]byte("data: {\"te")); len(got) != 0 {
		t.Fatalf("incomplete record emitted %d increments", len(got))
	}
	if got := d.feed([]byte("xt\": \"Hel")); len(got) != 0 {
		t.Fatalf("incomplete record emitted %d increments", len(got))
	}

	got := d.feed([]byte("lo\"}\n\ndata: {\"text\": \" world\"}\n\n"))
	if len(got) != 2 {
		t.Fatalf("got %d increments, want 2", len(got))
	}
	if got[0].Text != "Hello" || got[1].Text != " world" {
		t.Errorf("unexpected fragments: %+v", got)
	}
}

func TestDecoderMultipleRecordsInOneChunk(t *testing.T) {
	var d decoder

	got := d.feed([]byte("data: {\"text\": \"a\"}\n\ndata: {\"text\": \"b\"}\n\ndata: {\"done\": true}\n\n"))
	if len(got) != 3 {
		t.Fatalf("got %d increments, want 3", len(got))
	}
	if !got[2].Done {
		t.Errorf("last increment not terminal: %+v", got[2])
	}
}

func TestDecoderDropsMalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing prefix", input: "{\"text\": \"a\"}\n\n"},
		{name: "not json", input: "data: not json at all\n\n"},
		{name: "comment line", input: ": keepalive\n\n"},
		{name: "json without known field", input: "data: {\"other\": 1}\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d decoder
			got := d.feed([]byte(tt.input + "data: {\"text\": \"ok\"}\n\n"))
			if len(got) != 1 || got[0].Text != "ok" {
				t.Errorf("got %+v, want only the valid record", got)
			}
		})
	}
}

func TestDecoderErrorRecord(t *testing.T) {
	var d decoder
	got := d.feed([]byte("data: {\"error\": \"rate limited\"}\n\n"))
	if len(got) != 1 || got[0].Err != "rate limited" {
		t.Fatalf("got %+v, want error increment", got)
	}
}

func TestStreamHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, rec := range []string{
			"data: {\"text\": \"Hello\"}\n\n",
			"data: {\"text\": \" world\"}\n\n",
			"data: {\"done\": true}\n\n",
		} {
			w.Write([]byte(rec))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	increments, err := client.Stream(context.Background(), "prompt", "tok")
	if err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	var text string
	var done bool
	for inc := range increments {
		text += inc.Text
		done = done || inc.Done
	}
	if text != "Hello world" {
		t.Errorf("aggregate = %q, want %q", text, "Hello world")
	}
	if !done {
		t.Error("never received the done increment")
	}
}

func TestStreamNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Stream(context.Background(), "prompt", "tok")

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error = %v, want *ConnectionError", err)
	}
	if connErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", connErr.Status)
	}
}

func TestStreamUnreachableEndpoint(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/v1/ideas/AIIdeaContent", nil)
	_, err := client.Stream(context.Background(), "prompt", "tok")

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error = %v, want *ConnectionError", err)
	}
}

func TestStreamInterruptedMidway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"text\": \"partial\"}\n\n"))
		w.(http.Flusher).Flush()
		// Drop the connection without a terminal record
		conn, _, _ := w.(http.Hijacker).Hijack()
		conn.Close()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	increments, err := client.Stream(context.Background(), "prompt", "tok")
	if err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	var got []Increment
	for inc := range increments {
		got = append(got, inc)
	}
	if len(got) != 2 {
		t.Fatalf("got %d increments, want fragment then error: %+v", len(got), got)
	}
	if got[0].Text != "partial" {
		t.Errorf("first increment = %+v", got[0])
	}
	if got[1].Err == "" {
		t.Errorf("second increment = %+v, want terminal error", got[1])
	}
}

func TestStreamCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"text\": \"a\"}\n\n"))
		w.(http.Flusher).Flush()
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(srv.URL, srv.Client())
	increments, err := client.Stream(ctx, "prompt", "tok")
	if err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	first := <-increments
	if first.Text != "a" {
		t.Fatalf("first increment = %+v", first)
	}
	cancel()

	select {
	case inc, ok := <-increments:
		if ok && (inc.Done || inc.Err != "") {
			t.Errorf("terminal increment after cancellation: %+v", inc)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancellation")
	}
}
