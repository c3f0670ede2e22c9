package domain

import "time"

// Review is a guest's post-stay scoring of a booking. Every score runs 1-5.
type Review struct {
	ID          int       `json:"id"`
	BookingID   int       `json:"bookingId"`
	GuestID     int       `json:"guestId"`
	Overall     int       `json:"overall"`
	Cleanliness int       `json:"cleanliness"`
	Service     int       `json:"service"`
	Comfort     int       `json:"comfort"`
	Comments    *string   `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks every score is inside [1,5].
func (r *Review) Validate() error {
	scores := map[string]int{
		"overall":     r.Overall,
		"cleanliness": r.Cleanliness,
		"service":     r.Service,
		"comfort":     r.Comfort,
	}
	for field, score := range scores {
		if score < 1 || score > 5 {
			return NewValidationError(field, "score must be between 1 and 5")
		}
	}
	return nil
}

// AverageRating computes the mean overall score; 0 for an empty set.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Overall
	}
	return float64(sum) / float64(len(reviews))
}

type ReviewRepository interface {
	Create(review *Review) error
	GetByBooking(bookingID int) (*Review, error)
	GetByGuest(guestID int) ([]Review, error)
	GetAll(limit, offset int) ([]Review, error)
	GetAverageScores() (map[string]float64, error)
}
