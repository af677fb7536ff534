package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"ideavault/internal/config"
	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
	"ideavault/internal/domain/repositories"
	"ideavault/internal/domain/services"
)

// EventServiceImpl implements the EventService interface.
type EventServiceImpl struct {
	events repositories.EventRepository
	logger *slog.Logger
}

// NewEventService creates a new event service.
func NewEventService(events repositories.EventRepository, logger *slog.Logger) services.EventService {
	return &EventServiceImpl{
		events: events,
		logger: logger,
	}
}

func validateEventInput(req *services.EventInput) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, config.MaxEventTitleLength),
		),
		validation.Field(&req.Start, validation.Required.Error("start is required")),
		validation.Field(&req.End, validation.Required.Error("end is required")),
	)
	if err != nil {
		return domain.NewValidationError(fmt.Sprintf("invalid event data: %v", err))
	}
	if req.End.Before(req.Start) {
		return domain.NewValidationError("invalid event data: end must not be before start")
	}
	return nil
}

// Create stores a new calendar event for the user.
func (s *EventServiceImpl) Create(ctx context.Context, userID string, req *services.EventInput) (*models.Event, error) {
	if err := validateEventInput(req); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Start:       req.Start,
		End:         req.End,
		AllDay:      req.AllDay,
		Description: req.Description,
		Color:       req.Color,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created", "event_id", event.ID, "user_id", userID)
	return event, nil
}

// List returns all of the user's events ordered by start time.
func (s *EventServiceImpl) List(ctx context.Context, userID string) ([]*models.Event, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Update replaces an event's fields wholesale.
func (s *EventServiceImpl) Update(ctx context.Context, userID, eventID string, req *services.EventInput) (*models.Event, error) {
	if err := validateEventInput(req); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Start = req.Start
	event.End = req.End
	event.AllDay = req.AllDay
	event.Description = req.Description
	event.Color = req.Color

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated", "event_id", event.ID, "user_id", userID)
	return event, nil
}

// Delete removes an event owned by the user.
func (s *EventServiceImpl) Delete(ctx context.Context, userID, eventID string) error {
	if err := s.events.Delete(ctx, eventID, userID); err != nil {
		return err
	}
	s.logger.Info("event deleted", "event_id", eventID, "user_id", userID)
	return nil
}
