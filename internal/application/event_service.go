package application

import (
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

// EventService manages resort events and keeps venues free of double
// bookings.
type EventService struct {
	eventRepo domain.EventRepository
	validator Validator
}

func NewEventService(eventRepo domain.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) GetAllEvents() ([]domain.Event, error) {
	return s.eventRepo.GetAll()
}

func (s *EventService) GetEventByID(id int) (*domain.Event, error) {
	return s.eventRepo.GetByID(id)
}

func (s *EventService) CreateEvent(event *domain.Event) error {
	if err := s.validateEvent(event); err != nil {
		return err
	}

	existing, err := s.eventRepo.GetByVenue(event.Venue)
	if err != nil {
		return fmt.Errorf("get events for venue %q: %w", event.Venue, err)
	}
	if err := domain.CheckVenueFree(existing, *event); err != nil {
		return err
	}

	if event.Status == "" {
		event.Status = domain.EventPlanned
	}
	event.CreatedAt = time.Now()

	if err := s.eventRepo.Create(event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *EventService) UpdateEvent(event *domain.Event) error {
	if _, err := s.eventRepo.GetByID(event.ID); err != nil {
		return err
	}
	if err := s.validateEvent(event); err != nil {
		return err
	}

	existing, err := s.eventRepo.GetByVenue(event.Venue)
	if err != nil {
		return fmt.Errorf("get events for venue %q: %w", event.Venue, err)
	}
	if err := domain.CheckVenueFree(existing, *event); err != nil {
		return err
	}

	if err := s.eventRepo.Update(event); err != nil {
		return fmt.Errorf("update event %d: %w", event.ID, err)
	}
	return nil
}

func (s *EventService) UpdateStatus(id int, status domain.EventStatus) error {
	switch status {
	case domain.EventPlanned, domain.EventConfirmed, domain.EventCompleted, domain.EventCancelled:
	default:
		return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	if _, err := s.eventRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.eventRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("update event %d status: %w", id, err)
	}
	return nil
}

func (s *EventService) validateEvent(event *domain.Event) error {
	if err := s.validator.ValidateName(event.Title, "title"); err != nil {
		return err
	}
	if event.Venue == "" {
		return domain.NewValidationError("venue", "venue is required")
	}
	if event.Capacity <= 0 {
		return domain.NewValidationError("capacity", "capacity must be greater than 0")
	}
	if event.TicketPrice < 0 {
		return domain.NewValidationError("ticketPrice", "ticket price cannot be negative")
	}
	if _, err := domain.NewDateInterval(event.Schedule.Start, event.Schedule.End); err != nil {
		return err
	}
	return nil
}
