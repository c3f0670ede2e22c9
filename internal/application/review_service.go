package application

import (
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

// ReviewService accepts post-stay reviews and exposes rating aggregates.
type ReviewService struct {
	reviewRepo  domain.ReviewRepository
	bookingRepo domain.BookingRepository
}

func NewReviewService(reviewRepo domain.ReviewRepository, bookingRepo domain.BookingRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, bookingRepo: bookingRepo}
}

// CreateReview validates scores and ties the review to a completed booking
// by its guest.
func (s *ReviewService) CreateReview(review *domain.Review) error {
	booking, err := s.bookingRepo.GetByID(review.BookingID)
	if err != nil {
		return err
	}

	if booking.GuestID != review.GuestID {
		return domain.NewConflictError("booking %d does not belong to guest %d", review.BookingID, review.GuestID)
	}
	if booking.Status != domain.BookingCheckedOut {
		return domain.NewConflictError("booking %d has not been completed yet", review.BookingID)
	}

	if err := review.Validate(); err != nil {
		return err
	}

	if existing, err := s.reviewRepo.GetByBooking(review.BookingID); err == nil && existing != nil {
		return domain.NewConflictError("booking %d already has a review", review.BookingID)
	} else if err != nil && !domain.IsNotFoundError(err) {
		return fmt.Errorf("look up review: %w", err)
	}

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (s *ReviewService) GetByBooking(bookingID int) (*domain.Review, error) {
	return s.reviewRepo.GetByBooking(bookingID)
}

func (s *ReviewService) GetGuestReviews(guestID int) ([]domain.Review, error) {
	return s.reviewRepo.GetByGuest(guestID)
}

func (s *ReviewService) ListReviews(limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.reviewRepo.GetAll(limit, offset)
}

// AverageScores returns per-question means across all reviews.
func (s *ReviewService) AverageScores() (map[string]float64, error) {
	return s.reviewRepo.GetAverageScores()
}
