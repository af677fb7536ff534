package stream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	contentmodel "ideavault/internal/domain/models/aicontent"
	"ideavault/internal/domain/models/richtext"
)

// scriptedServer streams a fixed record sequence for every request.
func scriptedServer(t *testing.T, records ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, rec := range records {
			w.Write([]byte(rec))
			flusher.Flush()
		}
	}))
}

func TestSessionUnstructuredAppendsAfterSnapshot(t *testing.T) {
	srv := scriptedServer(t,
		"data: {\"text\": \"Hello\\n\\n\"}\n\n",
		"data: {\"text\": \"World\"}\n\n",
		"data: {\"done\": true}\n\n",
	)
	defer srv.Close()

	prior := []richtext.Node{richtext.Paragraph(richtext.Text("existing note"))}
	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", prior, nil)

	if err := session.Generate(context.Background(), "expand this", nil); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	content := session.Content()
	if len(content) != 3 {
		t.Fatalf("got %d nodes, want prior + 2 paragraphs", len(content))
	}
	if content[0].Children[0].Text != "existing note" {
		t.Errorf("prior content not preserved: %+v", content[0])
	}
	if content[1].Children[0].Text != "Hello" || content[2].Children[0].Text != "World" {
		t.Errorf("generated paragraphs wrong: %+v", content[1:])
	}
}

func TestSessionUnstructuredReplacesWhenEmpty(t *testing.T) {
	srv := scriptedServer(t,
		"data: {\"text\": \"Fresh idea\"}\n\n",
		"data: {\"done\": true}\n\n",
	)
	defer srv.Close()

	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", nil, nil)
	if err := session.Generate(context.Background(), "p", nil); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	content := session.Content()
	if len(content) != 1 || content[0].Children[0].Text != "Fresh idea" {
		t.Errorf("content = %+v", content)
	}
}

func TestSessionStructuredMergesResponse(t *testing.T) {
	srv := scriptedServer(t,
		"data: {\"text\": \"{\\\"platforms\\\":{\\\"facebook\\\":\"}\n\n",
		"data: {\"text\": \"{\\\"title\\\":\\\"New post\\\"}},\\\"generalTips\\\":[\\\"t2\\\"]}\"}\n\n",
		"data: {\"done\": true}\n\n",
	)
	defer srv.Close()

	existing := &contentmodel.Response{
		Platforms:   map[string]contentmodel.PlatformContent{"instagram": {Title: "Old post"}},
		GeneralTips: []string{"t1"},
	}
	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", nil, existing)

	if err := session.Generate(context.Background(), "p", nil); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	resp := session.Response()
	if len(resp.Platforms) != 2 {
		t.Fatalf("got %d platforms, want 2", len(resp.Platforms))
	}
	if resp.Platforms["instagram"].Title != "Old post" || resp.Platforms["facebook"].Title != "New post" {
		t.Errorf("platforms merged wrong: %+v", resp.Platforms)
	}
	if len(resp.GeneralTips) != 2 || resp.GeneralTips[0] != "t1" || resp.GeneralTips[1] != "t2" {
		t.Errorf("tips merged wrong: %+v", resp.GeneralTips)
	}

	// The document now renders a platform from the new result
	if session.Platform() != "facebook" {
		t.Errorf("selected platform = %q, want facebook", session.Platform())
	}
	content := session.Content()
	if len(content) == 0 || content[0].Children[1].Text != "New post" {
		t.Errorf("document not rebuilt for platform: %+v", content)
	}
}

func TestSessionStructuredMergeKeepsSelectedPlatform(t *testing.T) {
	srv := scriptedServer(t,
		"data: {\"text\": \"{\\\"platforms\\\":{\\\"facebook\\\":{\\\"title\\\":\\\"FB post\\\"}}}\"}\n\n",
		"data: {\"done\": true}\n\n",
	)
	defer srv.Close()

	existing := &contentmodel.Response{
		Platforms: map[string]contentmodel.PlatformContent{"instagram": {Title: "Insta post"}},
	}
	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", nil, existing)
	if err := session.SelectPlatform("instagram"); err != nil {
		t.Fatalf("SelectPlatform() error: %v", err)
	}

	if err := session.Generate(context.Background(), "p", nil); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// A generation that only adds other platforms must not steal the selection
	if session.Platform() != "instagram" {
		t.Errorf("selected platform = %q, want instagram", session.Platform())
	}
	content := session.Content()
	if len(content) == 0 || content[0].Children[1].Text != "Insta post" {
		t.Errorf("document no longer shows the selected platform: %+v", content)
	}
	if _, ok := session.Response().Platforms["facebook"]; !ok {
		t.Error("new platform missing from merged response")
	}
}

func TestSessionStreamErrorRevertsSnapshot(t *testing.T) {
	srv := scriptedServer(t,
		"data: {\"text\": \"partial\"}\n\n",
		"data: {\"error\": \"provider overloaded\"}\n\n",
	)
	defer srv.Close()

	prior := []richtext.Node{richtext.Paragraph(richtext.Text("keep me"))}
	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", prior, nil)

	err := session.Generate(context.Background(), "p", nil)
	var streamErr *StreamError
	if !errors.As(err, &streamErr) {
		t.Fatalf("error = %v, want *StreamError", err)
	}
	if streamErr.Message != "provider overloaded" {
		t.Errorf("message = %q", streamErr.Message)
	}

	content := session.Content()
	if len(content) != 1 || content[0].Children[0].Text != "keep me" {
		t.Errorf("content not reverted: %+v", content)
	}
}

func TestSessionCancellationRevertsSnapshot(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"text\": \"partial\"}\n\n"))
		w.(http.Flusher).Flush()
		close(started)
		<-release
	}))
	defer srv.Close()
	defer close(release)

	prior := []richtext.Node{richtext.Paragraph(richtext.Text("keep me"))}
	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", prior, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- session.Generate(ctx, "p", nil)
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Generate did not return after cancellation")
	}

	content := session.Content()
	if len(content) != 1 || content[0].Children[0].Text != "keep me" {
		t.Errorf("content not reverted: %+v", content)
	}
}

func TestSessionNoCarryOverBetweenGenerations(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		if requests.Add(1) == 1 {
			w.Write([]byte("data: {\"text\": \"first-partial\"}\n\n"))
			w.Write([]byte("data: {\"error\": \"boom\"}\n\n"))
		} else {
			w.Write([]byte("data: {\"text\": \"second\"}\n\n"))
			w.Write([]byte("data: {\"done\": true}\n\n"))
		}
		flusher.Flush()
	}))
	defer srv.Close()

	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", nil, nil)

	if err := session.Generate(context.Background(), "p", nil); err == nil {
		t.Fatal("first generation should have failed")
	}

	var updates []string
	if err := session.Generate(context.Background(), "p", func(full string) {
		updates = append(updates, full)
	}); err != nil {
		t.Fatalf("second generation error: %v", err)
	}

	for _, u := range updates {
		if u != "second" {
			t.Errorf("update %q carries text from the first generation", u)
		}
	}
	content := session.Content()
	if len(content) != 1 || content[0].Children[0].Text != "second" {
		t.Errorf("content = %+v", content)
	}
}

func TestSessionSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"text\": \"a\"}\n\n"))
		w.(http.Flusher).Flush()
		close(started)
		<-release
		w.Write([]byte("data: {\"done\": true}\n\n"))
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	session := NewSession(NewClient(srv.URL, srv.Client()), "tok", nil, nil)

	done := make(chan error, 1)
	go func() {
		done <- session.Generate(context.Background(), "p", nil)
	}()
	<-started

	if err := session.Generate(context.Background(), "p", nil); !errors.Is(err, ErrGenerationInFlight) {
		t.Errorf("error = %v, want ErrGenerationInFlight", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Errorf("first generation error: %v", err)
	}
}

func TestSessionSelectPlatform(t *testing.T) {
	resp := &contentmodel.Response{
		Platforms: map[string]contentmodel.PlatformContent{
			"instagram": {Title: "Insta"},
			"twitter":   {Title: "Tweet"},
		},
	}
	session := NewSession(nil, "", nil, resp)

	if err := session.SelectPlatform("twitter"); err != nil {
		t.Fatalf("SelectPlatform() error: %v", err)
	}
	content := session.Content()
	if len(content) != 1 || content[0].Children[1].Text != "Tweet" {
		t.Errorf("content = %+v", content)
	}

	if err := session.SelectPlatform("youtube"); err == nil {
		t.Error("expected error for missing platform")
	}
}
