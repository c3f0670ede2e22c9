package repository

import (
	"database/sql"
	"fmt"

	"github.com/raushan1895/resort360/internal/domain"
)

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new instance of eventRepository.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{db: db}
}

const eventSelect = `
	SELECT event_id, title, description, venue, start_date, end_date,
		capacity, ticket_price, status, image_url, created_at
	FROM event
`

func scanEvent(s interface{ Scan(...any) error }) (domain.Event, error) {
	var e domain.Event
	err := s.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Venue,
		&e.Schedule.Start,
		&e.Schedule.End,
		&e.Capacity,
		&e.TicketPrice,
		&e.Status,
		&e.ImageURL,
		&e.CreatedAt,
	)
	return e, err
}

func (r *eventRepository) GetAll() ([]domain.Event, error) {
	return r.queryEvents(eventSelect + " ORDER BY start_date")
}

func (r *eventRepository) GetByID(id int) (*domain.Event, error) {
	event, err := scanEvent(r.db.QueryRow(eventSelect+" WHERE event_id = $1", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("event", id)
		}
		return nil, fmt.Errorf("error querying event %d: %w", id, err)
	}
	return &event, nil
}

func (r *eventRepository) GetByVenue(venue string) ([]domain.Event, error) {
	return r.queryEvents(eventSelect+" WHERE venue = $1 ORDER BY start_date", venue)
}

func (r *eventRepository) queryEvents(query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(event *domain.Event) error {
	query := `
		INSERT INTO event (title, description, venue, start_date, end_date, capacity, ticket_price, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING event_id, created_at
	`
	err := r.db.QueryRow(
		query,
		event.Title,
		event.Description,
		event.Venue,
		event.Schedule.Start,
		event.Schedule.End,
		event.Capacity,
		event.TicketPrice,
		event.Status,
		event.ImageURL,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

func (r *eventRepository) Update(event *domain.Event) error {
	query := `
		UPDATE event
		SET title = $1, description = $2, venue = $3, start_date = $4, end_date = $5,
			capacity = $6, ticket_price = $7, status = $8, image_url = $9
		WHERE event_id = $10
	`
	result, err := r.db.Exec(
		query,
		event.Title,
		event.Description,
		event.Venue,
		event.Schedule.Start,
		event.Schedule.End,
		event.Capacity,
		event.TicketPrice,
		event.Status,
		event.ImageURL,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating event %d: %w", event.ID, err)
	}
	return requireRow(result, "event", event.ID)
}

func (r *eventRepository) UpdateStatus(id int, status domain.EventStatus) error {
	result, err := r.db.Exec(`UPDATE event SET status = $1 WHERE event_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating event %d status: %w", id, err)
	}
	return requireRow(result, "event", id)
}
