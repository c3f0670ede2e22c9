package domain

import "time"

type EventStatus string

const (
	EventPlanned   EventStatus = "planned"
	EventConfirmed EventStatus = "confirmed"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Active() bool {
	return s == EventPlanned || s == EventConfirmed
}

// Event is a resort activity held at a venue during a schedule interval.
type Event struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Venue       string       `json:"venue"`
	Schedule    DateInterval `json:"schedule"`
	Capacity    int          `json:"capacity"`
	TicketPrice float64      `json:"ticketPrice"`
	Status      EventStatus  `json:"status"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// CheckVenueFree rejects a candidate event whose schedule overlaps an active
// event at the same venue. Events at other venues never conflict.
func CheckVenueFree(existing []Event, candidate Event) error {
	for _, e := range existing {
		if e.ID == candidate.ID || e.Venue != candidate.Venue || !e.Status.Active() {
			continue
		}
		if e.Schedule.Overlaps(candidate.Schedule) {
			return NewConflictError("venue %q is booked by event %d for those dates", candidate.Venue, e.ID)
		}
	}
	return nil
}

type EventRepository interface {
	GetAll() ([]Event, error)
	GetByID(id int) (*Event, error)
	GetByVenue(venue string) ([]Event, error)
	Create(event *Event) error
	Update(event *Event) error
	UpdateStatus(id int, status EventStatus) error
}
