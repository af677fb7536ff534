package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
	"ideavault/internal/domain/services"
)

type stubEventService struct {
	events     []*models.Event
	event      *models.Event
	err        error
	gotUserID  string
	gotEventID string
}

func (s *stubEventService) Create(ctx context.Context, userID string, req *services.EventInput) (*models.Event, error) {
	s.gotUserID = userID
	return s.event, s.err
}

func (s *stubEventService) List(ctx context.Context, userID string) ([]*models.Event, error) {
	s.gotUserID = userID
	return s.events, s.err
}

func (s *stubEventService) Update(ctx context.Context, userID, eventID string, req *services.EventInput) (*models.Event, error) {
	s.gotUserID = userID
	s.gotEventID = eventID
	return s.event, s.err
}

func (s *stubEventService) Delete(ctx context.Context, userID, eventID string) error {
	s.gotUserID = userID
	s.gotEventID = eventID
	return s.err
}

func TestGetEvents(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc := &stubEventService{events: []*models.Event{
		{ID: "ev-1", UserID: "user-1", Title: "Filming day", Start: start, End: start.Add(2 * time.Hour)},
	}}
	h := NewEventHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.GetEvents(rec, authedRequest(http.MethodGet, "/v1/events/getEvents", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotUserID != "user-1" {
		t.Errorf("userID = %q, want user-1", svc.gotUserID)
	}

	var resp struct {
		Success bool            `json:"success"`
		Data    []*models.Event `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || len(resp.Data) != 1 || resp.Data[0].Title != "Filming day" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateEvent(t *testing.T) {
	svc := &stubEventService{event: &models.Event{ID: "ev-1", Title: "Launch"}}
	h := NewEventHandler(svc, testLogger())

	body := `{"title":"Launch","start":"2025-06-02T09:00:00Z","end":"2025-06-02T10:00:00Z"}`
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, authedRequest(http.MethodPost, "/v1/events/createEvent", body))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestCreateEventValidationStatus(t *testing.T) {
	svc := &stubEventService{err: domain.NewValidationError("invalid event: end cannot be before start")}
	h := NewEventHandler(svc, testLogger())

	body := `{"title":"Launch","start":"2025-06-02T10:00:00Z","end":"2025-06-02T09:00:00Z"}`
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, authedRequest(http.MethodPost, "/v1/events/createEvent", body))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc := &stubEventService{err: domain.ErrNotFound}
	h := NewEventHandler(svc, testLogger())

	req := authedRequest(http.MethodPut, "/v1/events/updateEvent/ev-9", `{"title":"x","start":"2025-06-02T09:00:00Z","end":"2025-06-02T10:00:00Z"}`)
	req.SetPathValue("id", "ev-9")
	rec := httptest.NewRecorder()
	h.UpdateEvent(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if svc.gotEventID != "ev-9" {
		t.Errorf("eventID = %q, want ev-9", svc.gotEventID)
	}
}

func TestDeleteEvent(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc, testLogger())

	req := authedRequest(http.MethodDelete, "/v1/events/deleteEvent/ev-1", "")
	req.SetPathValue("id", "ev-1")
	rec := httptest.NewRecorder()
	h.DeleteEvent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "Event deleted successfully" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
