package application

import (
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

// BanquetService manages banquet requests against hall availability.
type BanquetService struct {
	banquetRepo domain.BanquetRepository
	userRepo    domain.UserRepository
}

func NewBanquetService(banquetRepo domain.BanquetRepository, userRepo domain.UserRepository) *BanquetService {
	return &BanquetService{banquetRepo: banquetRepo, userRepo: userRepo}
}

func (s *BanquetService) GetAllBanquets() ([]domain.Banquet, error) {
	return s.banquetRepo.GetAll()
}

func (s *BanquetService) GetBanquetByID(id int) (*domain.Banquet, error) {
	return s.banquetRepo.GetByID(id)
}

func (s *BanquetService) GetHostBanquets(hostID int) ([]domain.Banquet, error) {
	return s.banquetRepo.GetByHost(hostID)
}

// RequestBanquet validates and books a hall for a host.
func (s *BanquetService) RequestBanquet(banquet *domain.Banquet) error {
	if banquet.Hall == "" {
		return domain.NewValidationError("hall", "hall is required")
	}
	if banquet.GuestCount <= 0 {
		return domain.NewValidationError("guestCount", "guest count must be greater than 0")
	}
	if banquet.PricePerGuest <= 0 {
		return domain.NewValidationError("pricePerGuest", "price per guest must be greater than 0")
	}
	if _, err := domain.NewDateInterval(banquet.Schedule.Start, banquet.Schedule.End); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(banquet.HostID); err != nil {
		return err
	}

	existing, err := s.banquetRepo.GetByHall(banquet.Hall)
	if err != nil {
		return fmt.Errorf("get banquets for hall %q: %w", banquet.Hall, err)
	}
	if err := domain.CheckHallFree(existing, *banquet); err != nil {
		return err
	}

	if banquet.Status == "" {
		banquet.Status = domain.BanquetRequested
	}
	banquet.CreatedAt = time.Now()

	if err := s.banquetRepo.Create(banquet); err != nil {
		return fmt.Errorf("create banquet: %w", err)
	}
	return nil
}

func (s *BanquetService) UpdateStatus(id int, status domain.BanquetStatus) error {
	switch status {
	case domain.BanquetRequested, domain.BanquetConfirmed, domain.BanquetCompleted, domain.BanquetCancelled:
	default:
		return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	if _, err := s.banquetRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.banquetRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("update banquet %d status: %w", id, err)
	}
	return nil
}
