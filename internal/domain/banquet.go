package domain

import "time"

type BanquetStatus string

const (
	BanquetRequested BanquetStatus = "requested"
	BanquetConfirmed BanquetStatus = "confirmed"
	BanquetCompleted BanquetStatus = "completed"
	BanquetCancelled BanquetStatus = "cancelled"
)

func (s BanquetStatus) Active() bool {
	return s == BanquetRequested || s == BanquetConfirmed
}

// Banquet is a hosted function (wedding, conference dinner) in one of the
// resort's halls, priced per guest.
type Banquet struct {
	ID            int           `json:"id"`
	HostID        int           `json:"hostId"`
	Hall          string        `json:"hall"`
	Occasion      string        `json:"occasion"`
	Schedule      DateInterval  `json:"schedule"`
	GuestCount    int           `json:"guestCount"`
	PricePerGuest float64       `json:"pricePerGuest"`
	Menu          string        `json:"menu,omitempty"`
	Status        BanquetStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Total is the banquet price; derived, never stored.
func (b Banquet) Total() float64 {
	return float64(b.GuestCount) * b.PricePerGuest
}

// CheckHallFree rejects a candidate banquet whose schedule overlaps an
// active banquet in the same hall.
func CheckHallFree(existing []Banquet, candidate Banquet) error {
	for _, other := range existing {
		if other.ID == candidate.ID || other.Hall != candidate.Hall || !other.Status.Active() {
			continue
		}
		if other.Schedule.Overlaps(candidate.Schedule) {
			return NewConflictError("hall %q is booked by banquet %d for those dates", candidate.Hall, other.ID)
		}
	}
	return nil
}

type BanquetRepository interface {
	GetAll() ([]Banquet, error)
	GetByID(id int) (*Banquet, error)
	GetByHall(hall string) ([]Banquet, error)
	GetByHost(hostID int) ([]Banquet, error)
	Create(banquet *Banquet) error
	UpdateStatus(id int, status BanquetStatus) error
}
