package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Active reports whether the booking still blocks its room. A cancelled
// booking never counts toward occupancy or conflict checks.
func (s BookingStatus) Active() bool {
	return s != BookingCancelled && s != ""
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCheckedOut},
}

// CanTransitionTo reports whether the status change is allowed. Checked-out
// and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// Booking ties a guest to a room for a stay interval. Room is an explicit
// join filled in by the call site when needed, never implicitly.
type Booking struct {
	ID         int             `json:"id"`
	Reference  string          `json:"reference"`
	RoomID     int             `json:"roomId"`
	GuestID    int             `json:"guestId"`
	Stay       DateInterval    `json:"stay"`
	Adults     int             `json:"adults"`
	Children   int             `json:"children"`
	Status     BookingStatus   `json:"status"`
	TotalPrice float64         `json:"totalPrice"`
	Services   []BookedService `json:"services,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	Room       *Room           `json:"room,omitempty"`
}

// BookedService is a resort service attached to a booking.
type BookedService struct {
	BookingID int     `json:"bookingId"`
	ServiceID int     `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID        int           `json:"id"`
	BookingID int           `json:"bookingId"`
	Amount    float64       `json:"amount"`
	Method    string        `json:"method"`
	Status    PaymentStatus `json:"status"`
	PaidAt    time.Time     `json:"paidAt"`
}

type BookingRepository interface {
	GetByID(id int) (*Booking, error)
	GetByReference(reference string) (*Booking, error)
	// GetByRoom returns every booking for the room regardless of status;
	// callers filter with BookingStatus.Active.
	GetByRoom(roomID int) ([]Booking, error)
	GetByGuest(guestID int) ([]Booking, error)
	GetInRange(from, to time.Time) ([]Booking, error)
	Create(booking *Booking) error
	UpdateStatus(id int, status BookingStatus) error
	// AddServices persists the attachments and adds their prices to the
	// booking total.
	AddServices(bookingID int, services []BookedService) error
	// CompleteExpired moves checked-in bookings whose stay ended before asOf
	// to checked-out and returns how many rows changed.
	CompleteExpired(asOf time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(payment *Payment) error
	GetByBooking(bookingID int) ([]Payment, error)
	UpdateStatus(id int, status PaymentStatus) error
}
