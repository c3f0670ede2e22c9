package application

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/raushan1895/resort360/internal/domain"
	"github.com/raushan1895/resort360/internal/email"
)

// BookingService runs the fetch-decide-persist flow for bookings. The
// availability decision itself is pure; this layer supplies the documents
// and writes the outcome.
type BookingService struct {
	bookingRepo domain.BookingRepository
	roomRepo    domain.RoomRepository
	userRepo    domain.UserRepository
	paymentRepo domain.PaymentRepository
	serviceRepo domain.ServiceRepository
	emailClient *email.Client
}

func NewBookingService(
	bookingRepo domain.BookingRepository,
	roomRepo domain.RoomRepository,
	userRepo domain.UserRepository,
	paymentRepo domain.PaymentRepository,
	serviceRepo domain.ServiceRepository,
	emailClient *email.Client,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		serviceRepo: serviceRepo,
		emailClient: emailClient,
	}
}

// CreateBooking validates the stay, checks availability and prices the stay
// when the caller did not supply a total.
func (s *BookingService) CreateBooking(booking *domain.Booking) error {
	stay, err := domain.NewDateInterval(booking.Stay.Start, booking.Stay.End)
	if err != nil {
		return err
	}
	if booking.Adults <= 0 {
		return domain.NewValidationError("adults", "at least one adult is required")
	}

	room, err := s.roomRepo.GetByID(booking.RoomID)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(booking.GuestID); err != nil {
		return err
	}

	bookings, err := s.bookingRepo.GetByRoom(booking.RoomID)
	if err != nil {
		return fmt.Errorf("get bookings for room %d: %w", booking.RoomID, err)
	}

	if !domain.IsAvailable(room, bookings, stay) {
		return domain.NewConflictError("room %d is not available for the selected dates", booking.RoomID)
	}

	if booking.TotalPrice <= 0 {
		booking.TotalPrice = domain.StayQuote(room, stay)
	}
	if booking.Reference == "" {
		booking.Reference = uuid.NewString()
	}
	if booking.Status == "" {
		booking.Status = domain.BookingPending
	}
	booking.CreatedAt = time.Now()

	if err := s.bookingRepo.Create(booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// Quote prices a candidate stay without persisting anything.
func (s *BookingService) Quote(roomID int, stay domain.DateInterval) (float64, error) {
	if _, err := domain.NewDateInterval(stay.Start, stay.End); err != nil {
		return 0, err
	}
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return 0, err
	}
	return domain.StayQuote(room, stay), nil
}

// VerifyAvailability answers whether a room can take a candidate stay.
func (s *BookingService) VerifyAvailability(roomID int, stay domain.DateInterval) (bool, error) {
	if _, err := domain.NewDateInterval(stay.Start, stay.End); err != nil {
		return false, err
	}

	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return false, err
	}

	bookings, err := s.bookingRepo.GetByRoom(roomID)
	if err != nil {
		return false, fmt.Errorf("get bookings for room %d: %w", roomID, err)
	}

	return domain.IsAvailable(room, bookings, stay), nil
}

// GetBooking returns a booking with its room joined in.
func (s *BookingService) GetBooking(id int) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room %d for booking %d: %w", booking.RoomID, id, err)
	}
	booking.Room = room

	return booking, nil
}

// GetBookingByReference resolves a booking by its public reference, for
// guests following a confirmation link.
func (s *BookingService) GetBookingByReference(reference string) (*domain.Booking, error) {
	if reference == "" {
		return nil, domain.NewValidationError("reference", "reference is required")
	}

	booking, err := s.bookingRepo.GetByReference(reference)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room %d for booking %s: %w", booking.RoomID, reference, err)
	}
	booking.Room = room

	return booking, nil
}

func (s *BookingService) GetGuestBookings(guestID int) ([]domain.Booking, error) {
	return s.bookingRepo.GetByGuest(guestID)
}

func (s *BookingService) GetBookingsInRange(from, to time.Time) ([]domain.Booking, error) {
	if _, err := domain.NewDateInterval(from, to); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetInRange(from, to)
}

// UpdateStatus applies a lifecycle transition, rejecting disallowed ones.
func (s *BookingService) UpdateStatus(id int, next domain.BookingStatus) error {
	if !next.Valid() {
		return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", next))
	}

	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return err
	}

	if !booking.Status.CanTransitionTo(next) {
		return domain.NewConflictError("booking %d cannot go from %s to %s", id, booking.Status, next)
	}

	if err := s.bookingRepo.UpdateStatus(id, next); err != nil {
		return fmt.Errorf("update booking %d status: %w", id, err)
	}

	return nil
}

// CancelBooking cancels and notifies the guest. Cancelled bookings free the
// room immediately.
func (s *BookingService) CancelBooking(id int) error {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.UpdateStatus(id, domain.BookingCancelled); err != nil {
		return err
	}

	// Cancelling voids any payment still awaiting processing.
	payments, err := s.paymentRepo.GetByBooking(id)
	if err != nil {
		return fmt.Errorf("get payments for booking %d: %w", id, err)
	}
	for _, p := range payments {
		if p.Status != domain.PaymentPending {
			continue
		}
		if err := s.paymentRepo.UpdateStatus(p.ID, domain.PaymentFailed); err != nil {
			return fmt.Errorf("void payment %d: %w", p.ID, err)
		}
	}

	s.notify(booking, func(info email.BookingInfo) error {
		return s.emailClient.SendBookingCancellation(info)
	})

	return nil
}

// GetPayments lists the payments recorded against a booking.
func (s *BookingService) GetPayments(bookingID int) ([]domain.Payment, error) {
	if _, err := s.bookingRepo.GetByID(bookingID); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetByBooking(bookingID)
}

// ConfirmBooking confirms a pending booking and sends the confirmation mail.
func (s *BookingService) ConfirmBooking(id int) error {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.UpdateStatus(id, domain.BookingConfirmed); err != nil {
		return err
	}

	s.notify(booking, func(info email.BookingInfo) error {
		return s.emailClient.SendBookingConfirmation(info)
	})

	return nil
}

// ConfirmPayment records a payment, confirms the booking when it was
// pending, and mails the guest.
func (s *BookingService) ConfirmPayment(bookingID int, payment *domain.Payment) error {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}

	if payment.Amount <= 0 {
		return domain.NewValidationError("amount", "payment amount must be greater than 0")
	}

	payment.BookingID = bookingID
	payment.Status = domain.PaymentCompleted
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	if booking.Status == domain.BookingPending {
		if err := s.bookingRepo.UpdateStatus(bookingID, domain.BookingConfirmed); err != nil {
			return fmt.Errorf("confirm booking %d: %w", bookingID, err)
		}
		s.notify(booking, func(info email.BookingInfo) error {
			return s.emailClient.SendBookingConfirmation(info)
		})
	}

	return nil
}

// AttachServices adds resort services to a booking at catalog price and
// bumps the booking total.
func (s *BookingService) AttachServices(bookingID int, serviceIDs []int) error {
	if _, err := s.bookingRepo.GetByID(bookingID); err != nil {
		return err
	}

	booked := make([]domain.BookedService, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		svc, err := s.serviceRepo.GetByID(serviceID)
		if err != nil {
			return err
		}
		if !svc.Active {
			return domain.NewConflictError("service %d is not currently offered", serviceID)
		}
		booked = append(booked, domain.BookedService{
			BookingID: bookingID,
			ServiceID: svc.ID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}

	if len(booked) == 0 {
		return nil
	}

	if err := s.bookingRepo.AddServices(bookingID, booked); err != nil {
		return fmt.Errorf("attach services to booking %d: %w", bookingID, err)
	}

	return nil
}

// notify sends a booking email, joining guest and room details. Email is
// best effort: failures are logged, never returned.
func (s *BookingService) notify(booking *domain.Booking, send func(email.BookingInfo) error) {
	if s.emailClient == nil {
		return
	}

	guest, err := s.userRepo.GetByID(booking.GuestID)
	if err != nil {
		log.Printf("booking %d: could not load guest for email: %v", booking.ID, err)
		return
	}

	room, err := s.roomRepo.GetByID(booking.RoomID)
	if err != nil {
		log.Printf("booking %d: could not load room for email: %v", booking.ID, err)
		return
	}

	info := email.BookingInfo{
		ID:         booking.ID,
		Reference:  booking.Reference,
		GuestEmail: guest.Email,
		GuestName:  guest.Name,
		RoomName:   room.Name,
		RoomNumber: room.Number,
		CheckIn:    booking.Stay.Start,
		CheckOut:   booking.Stay.End,
		Nights:     booking.Stay.Nights(),
		Adults:     booking.Adults,
		Children:   booking.Children,
		TotalPrice: booking.TotalPrice,
	}

	if err := send(info); err != nil {
		log.Printf("booking %d: email failed: %v", booking.ID, err)
	}
}
