package scheduler

import (
	"log"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

// HousekeepingScheduler runs the daily cleanup pass: checks out bookings
// whose stay ended, closes finished maintenance windows and drops expired
// sessions.
type HousekeepingScheduler struct {
	bookingRepo domain.BookingRepository
	roomRepo    domain.RoomRepository
	sessionRepo domain.SessionRepository
	ticker      *time.Ticker
}

func NewHousekeepingScheduler(
	bookingRepo domain.BookingRepository,
	roomRepo domain.RoomRepository,
	sessionRepo domain.SessionRepository,
) *HousekeepingScheduler {
	return &HousekeepingScheduler{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		sessionRepo: sessionRepo,
	}
}

// Start runs the pass once immediately, then every night shortly after
// midnight.
func (s *HousekeepingScheduler) Start() {
	log.Println("Housekeeping scheduler started, running every 24 hours")

	s.Run()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())

	time.AfterFunc(time.Until(nextRun), func() {
		s.Run()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.Run()
			}
		}()
	})
}

func (s *HousekeepingScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Housekeeping scheduler stopped")
	}
}

// Run executes one cleanup pass. Each step is independent; a failure in one
// never skips the others.
func (s *HousekeepingScheduler) Run() {
	now := time.Now()

	if n, err := s.bookingRepo.CompleteExpired(now); err != nil {
		log.Printf("Error completing expired bookings: %v", err)
	} else if n > 0 {
		log.Printf("Checked out %d expired bookings", n)
	}

	if n, err := s.roomRepo.CompleteFinishedMaintenance(now); err != nil {
		log.Printf("Error completing maintenance windows: %v", err)
	} else if n > 0 {
		log.Printf("Completed %d finished maintenance windows", n)
	}

	if n, err := s.sessionRepo.DeleteExpired(now); err != nil {
		log.Printf("Error deleting expired sessions: %v", err)
	} else if n > 0 {
		log.Printf("Deleted %d expired sessions", n)
	}
}
