package application

import (
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

// RoomService orchestrates room reads and the validated mutations on the
// entries a room owns. Every decision runs in the domain layer over data
// fetched here; the repository only persists what was already validated.
type RoomService struct {
	roomRepo    domain.RoomRepository
	bookingRepo domain.BookingRepository
	validator   Validator
}

func NewRoomService(roomRepo domain.RoomRepository, bookingRepo domain.BookingRepository) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *RoomService) GetAllRooms() ([]domain.Room, error) {
	rooms, err := s.roomRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoomByID(id int) (*domain.Room, error) {
	return s.roomRepo.GetByID(id)
}

func (s *RoomService) GetRoomTypes() ([]domain.RoomType, error) {
	return s.roomRepo.GetRoomTypes()
}

func (s *RoomService) CreateRoom(room *domain.Room) error {
	if err := s.validator.ValidateName(room.Name, "name"); err != nil {
		return err
	}
	if room.Number == "" {
		return domain.NewValidationError("number", "room number is required")
	}
	if err := s.validator.ValidatePrice(room.PricePerNight, "pricePerNight"); err != nil {
		return err
	}
	if room.Status == "" {
		room.Status = domain.RoomStatusAvailable
	}

	if err := s.roomRepo.Create(room); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (s *RoomService) UpdateRoom(room *domain.Room) error {
	if _, err := s.roomRepo.GetByID(room.ID); err != nil {
		return err
	}
	if err := s.validator.ValidatePrice(room.PricePerNight, "pricePerNight"); err != nil {
		return err
	}

	if err := s.roomRepo.Update(room); err != nil {
		return fmt.Errorf("update room %d: %w", room.ID, err)
	}
	return nil
}

// GetAvailableRooms returns rooms bookable for the candidate stay. Bookings
// for the window are fetched once and grouped per room.
func (s *RoomService) GetAvailableRooms(stay domain.DateInterval) ([]domain.Room, error) {
	rooms, err := s.roomRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetInRange(stay.Start, stay.End)
	if err != nil {
		return nil, fmt.Errorf("get bookings in range: %w", err)
	}

	byRoom := make(map[int][]domain.Booking)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	var available []domain.Room
	for _, room := range rooms {
		r := room
		if domain.IsAvailable(&r, byRoom[r.ID], stay) {
			available = append(available, r)
		}
	}

	return available, nil
}

// GetBlockedDates returns each day inside the range on which no room is
// available, for the booking calendar.
func (s *RoomService) GetBlockedDates(from, to time.Time) ([]time.Time, error) {
	window, err := domain.NewDateInterval(from, to)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	// The last night checked runs [to, to+1], so the fetch window must reach
	// one day past the range or a stay starting at to+1 is missed.
	bookings, err := s.bookingRepo.GetInRange(from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("get bookings in range: %w", err)
	}

	byRoom := make(map[int][]domain.Booking)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	var blocked []time.Time
	for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 1) {
		night := domain.DateInterval{Start: d, End: d.AddDate(0, 0, 1)}
		free := false
		for _, room := range rooms {
			r := room
			if domain.IsAvailable(&r, byRoom[r.ID], night) {
				free = true
				break
			}
		}
		if !free {
			blocked = append(blocked, d)
		}
	}

	return blocked, nil
}

// CurrentPrice resolves the effective nightly price of a room for a date.
func (s *RoomService) CurrentPrice(roomID int, asOf time.Time) (float64, error) {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return 0, err
	}
	return domain.EffectivePrice(room, asOf, 0), nil
}

func (s *RoomService) AddSeasonalPricing(roomID int, sp domain.SeasonalPricing) (*domain.SeasonalPricing, error) {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	if err := domain.AddSeasonalPricing(room, sp); err != nil {
		return nil, err
	}

	if err := s.roomRepo.AddSeasonalPricing(roomID, &sp); err != nil {
		return nil, fmt.Errorf("persist seasonal pricing: %w", err)
	}
	return &sp, nil
}

func (s *RoomService) UpdateSeasonalPricing(roomID int, sp domain.SeasonalPricing) error {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return err
	}

	if err := domain.ReplaceSeasonalPricing(room, sp); err != nil {
		return err
	}

	if err := s.roomRepo.UpdateSeasonalPricing(roomID, &sp); err != nil {
		return fmt.Errorf("persist seasonal pricing %d: %w", sp.ID, err)
	}
	return nil
}

func (s *RoomService) DeleteSeasonalPricing(roomID, pricingID int) error {
	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		return err
	}
	if err := s.roomRepo.DeleteSeasonalPricing(roomID, pricingID); err != nil {
		return fmt.Errorf("delete seasonal pricing %d: %w", pricingID, err)
	}
	return nil
}

func (s *RoomService) AddDiscount(roomID int, d domain.Discount) (*domain.Discount, error) {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	if err := domain.AddDiscount(room, d); err != nil {
		return nil, err
	}

	if err := s.roomRepo.AddDiscount(roomID, &d); err != nil {
		return nil, fmt.Errorf("persist discount: %w", err)
	}
	return &d, nil
}

func (s *RoomService) UpdateDiscount(roomID int, d domain.Discount) error {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return err
	}

	if err := domain.ReplaceDiscount(room, d); err != nil {
		return err
	}

	if err := s.roomRepo.UpdateDiscount(roomID, &d); err != nil {
		return fmt.Errorf("persist discount %d: %w", d.ID, err)
	}
	return nil
}

func (s *RoomService) DeleteDiscount(roomID, discountID int) error {
	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		return err
	}
	if err := s.roomRepo.DeleteDiscount(roomID, discountID); err != nil {
		return fmt.Errorf("delete discount %d: %w", discountID, err)
	}
	return nil
}

// ScheduleMaintenance books a maintenance window on a room after checking
// it against the room's bookings.
func (s *RoomService) ScheduleMaintenance(roomID int, w domain.MaintenanceWindow) (*domain.MaintenanceWindow, error) {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByRoom(roomID)
	if err != nil {
		return nil, fmt.Errorf("get bookings for room %d: %w", roomID, err)
	}

	if w.Status == "" {
		w.Status = domain.MaintenanceScheduled
	}

	previousStatus := room.Status
	if err := domain.ScheduleMaintenance(room, bookings, w); err != nil {
		return nil, err
	}

	if err := s.roomRepo.AddMaintenanceWindow(roomID, &w); err != nil {
		return nil, fmt.Errorf("persist maintenance window: %w", err)
	}
	if room.Status != previousStatus {
		if err := s.roomRepo.UpdateStatus(roomID, room.Status); err != nil {
			return nil, fmt.Errorf("update room %d status: %w", roomID, err)
		}
	}

	return &w, nil
}

// BulkMaintenanceResult is the per-room outcome of a bulk schedule request.
type BulkMaintenanceResult struct {
	RoomID int    `json:"roomId"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// ScheduleBulkMaintenance applies the same window to several rooms. Each
// room is an independent decision; one conflict does not roll back the rest.
func (s *RoomService) ScheduleBulkMaintenance(roomIDs []int, w domain.MaintenanceWindow) []BulkMaintenanceResult {
	results := make([]BulkMaintenanceResult, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		result := BulkMaintenanceResult{RoomID: roomID, OK: true}
		if _, err := s.ScheduleMaintenance(roomID, w); err != nil {
			result.OK = false
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}

// CompleteMaintenance closes a window and returns the room to service when
// no other blocking window remains.
func (s *RoomService) CompleteMaintenance(roomID, windowID int) error {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return err
	}

	found := false
	for i := range room.Maintenance {
		if room.Maintenance[i].ID == windowID {
			room.Maintenance[i].Status = domain.MaintenanceCompleted
			found = true
		}
	}
	if !found {
		return domain.NewNotFoundError("maintenance window", windowID)
	}

	if err := s.roomRepo.UpdateMaintenanceStatus(roomID, windowID, domain.MaintenanceCompleted); err != nil {
		return fmt.Errorf("update maintenance window %d: %w", windowID, err)
	}

	if room.Status == domain.RoomStatusMaintenance {
		stillBlocked := false
		for _, mw := range room.Maintenance {
			if mw.Status == domain.MaintenanceInProgress {
				stillBlocked = true
			}
		}
		if !stillBlocked {
			if err := s.roomRepo.UpdateStatus(roomID, domain.RoomStatusAvailable); err != nil {
				return fmt.Errorf("update room %d status: %w", roomID, err)
			}
		}
	}

	return nil
}
