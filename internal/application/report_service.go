package application

import (
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

// ReportService produces occupancy and revenue reports by folding stored
// bookings through the domain aggregator.
type ReportService struct {
	bookingRepo domain.BookingRepository
	roomRepo    domain.RoomRepository
}

func NewReportService(bookingRepo domain.BookingRepository, roomRepo domain.RoomRepository) *ReportService {
	return &ReportService{bookingRepo: bookingRepo, roomRepo: roomRepo}
}

// OccupancyReport aggregates bookings intersecting the period.
func (s *ReportService) OccupancyReport(from, to time.Time) (*domain.Stats, error) {
	period, err := domain.NewDateInterval(from, to)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetInRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("get bookings in range: %w", err)
	}

	rooms, err := s.roomRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	stats := domain.Aggregate(bookings, rooms, period)
	return &stats, nil
}
