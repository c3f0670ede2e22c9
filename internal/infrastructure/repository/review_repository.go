package repository

import (
	"database/sql"
	"fmt"

	"github.com/raushan1895/resort360/internal/domain"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new instance of reviewRepository.
func NewReviewRepository(db *sql.DB) domain.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewSelect = `
	SELECT review_id, booking_id, guest_id, overall, cleanliness, service, comfort, comments, created_at
	FROM review
`

func scanReview(s interface{ Scan(...any) error }) (domain.Review, error) {
	var r domain.Review
	err := s.Scan(
		&r.ID,
		&r.BookingID,
		&r.GuestID,
		&r.Overall,
		&r.Cleanliness,
		&r.Service,
		&r.Comfort,
		&r.Comments,
		&r.CreatedAt,
	)
	return r, err
}

func (r *reviewRepository) Create(review *domain.Review) error {
	query := `
		INSERT INTO review (booking_id, guest_id, overall, cleanliness, service, comfort, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING review_id, created_at
	`
	err := r.db.QueryRow(
		query,
		review.BookingID,
		review.GuestID,
		review.Overall,
		review.Cleanliness,
		review.Service,
		review.Comfort,
		review.Comments,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByBooking(bookingID int) (*domain.Review, error) {
	review, err := scanReview(r.db.QueryRow(reviewSelect+" WHERE booking_id = $1", bookingID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("review", bookingID)
		}
		return nil, fmt.Errorf("error querying review for booking %d: %w", bookingID, err)
	}
	return &review, nil
}

func (r *reviewRepository) GetByGuest(guestID int) ([]domain.Review, error) {
	return r.queryReviews(reviewSelect+" WHERE guest_id = $1 ORDER BY created_at DESC", guestID)
}

func (r *reviewRepository) GetAll(limit, offset int) ([]domain.Review, error) {
	return r.queryReviews(reviewSelect+" ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
}

func (r *reviewRepository) queryReviews(query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// GetAverageScores returns the mean of each score column across all reviews.
func (r *reviewRepository) GetAverageScores() (map[string]float64, error) {
	query := `
		SELECT
			COALESCE(AVG(overall), 0),
			COALESCE(AVG(cleanliness), 0),
			COALESCE(AVG(service), 0),
			COALESCE(AVG(comfort), 0)
		FROM review
	`
	var overall, cleanliness, service, comfort float64
	err := r.db.QueryRow(query).Scan(&overall, &cleanliness, &service, &comfort)
	if err != nil {
		return nil, fmt.Errorf("error querying average scores: %w", err)
	}
	return map[string]float64{
		"overall":     overall,
		"cleanliness": cleanliness,
		"service":     service,
		"comfort":     comfort,
	}, nil
}
