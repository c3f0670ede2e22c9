package http

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type stubBookingRepo struct {
	domain.BookingRepository
	booking *domain.Booking
}

func (s *stubBookingRepo) GetByID(id int) (*domain.Booking, error) {
	if s.booking == nil || s.booking.ID != id {
		return nil, domain.NewNotFoundError("booking", id)
	}
	found := *s.booking
	return &found, nil
}

func (s *stubBookingRepo) GetByGuest(guestID int) ([]domain.Booking, error) {
	if s.booking != nil && s.booking.GuestID == guestID {
		return []domain.Booking{*s.booking}, nil
	}
	return nil, nil
}

func (s *stubBookingRepo) UpdateStatus(id int, status domain.BookingStatus) error {
	s.booking.Status = status
	return nil
}

func (s *stubBookingRepo) AddServices(bookingID int, services []domain.BookedService) error {
	s.booking.Services = append(s.booking.Services, services...)
	for _, svc := range services {
		s.booking.TotalPrice += svc.Price
	}
	return nil
}

type stubRoomRepo struct {
	domain.RoomRepository
	room *domain.Room
}

func (s *stubRoomRepo) GetByID(id int) (*domain.Room, error) {
	if s.room == nil || s.room.ID != id {
		return nil, domain.NewNotFoundError("room", id)
	}
	return s.room, nil
}

type stubPaymentRepo struct {
	domain.PaymentRepository
}

func (s *stubPaymentRepo) GetByBooking(bookingID int) ([]domain.Payment, error) {
	return nil, nil
}

type stubCatalogRepo struct {
	domain.ServiceRepository
}

func (s *stubCatalogRepo) GetByID(id int) (*domain.Service, error) {
	return &domain.Service{ID: id, Name: "Spa", Price: 80, Active: true}, nil
}

// bookingTestApp wires the booking routes the way the server does, with a
// single booking owned by guest 2 and the given actor authenticated.
func bookingTestApp(actor *domain.User) (*fiber.App, *stubBookingRepo) {
	bookingRepo := &stubBookingRepo{booking: &domain.Booking{
		ID:      7,
		RoomID:  1,
		GuestID: 2,
		Status:  domain.BookingConfirmed,
		Stay: domain.DateInterval{
			Start: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
		TotalPrice: 300,
	}}
	roomRepo := &stubRoomRepo{room: &domain.Room{ID: 1, Name: "Sea View", Number: "101"}}

	bookings := application.NewBookingService(bookingRepo, roomRepo, nil, &stubPaymentRepo{}, &stubCatalogRepo{}, nil)
	handler := NewBookingHandler(bookings)

	session := &domain.Session{Token: "valid-token", UserID: actor.ID, ExpiresAt: time.Now().Add(time.Hour)}
	users := application.NewUserService(&stubUserRepo{user: actor}, &stubSessionRepo{session: session}, nil)
	auth := RequireAuth(users)

	app := fiber.New()
	api := app.Group("/api/bookings")
	api.Get("/guest/:guestId", auth, handler.GetGuestBookings)
	api.Get("/:id", auth, handler.GetBookingByID)
	api.Post("/:id/cancel", auth, handler.CancelBooking)
	api.Post("/:id/services", auth, handler.AttachServices)
	return app, bookingRepo
}

func doAuthed(t *testing.T, app *fiber.App, method, target, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid-token")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestBookingOwnership(t *testing.T) {
	otherGuest := &domain.User{ID: 1, Name: "Ravi", Role: domain.RoleGuest}
	owner := &domain.User{ID: 2, Name: "Mina", Role: domain.RoleGuest}
	staff := &domain.User{ID: 9, Name: "Asha", Role: domain.RoleStaff}

	t.Run("another guest cannot cancel", func(t *testing.T) {
		app, repo := bookingTestApp(otherGuest)
		status := doAuthed(t, app, "POST", "/api/bookings/7/cancel", "")
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, domain.BookingConfirmed, repo.booking.Status)
	})

	t.Run("owner can cancel", func(t *testing.T) {
		app, repo := bookingTestApp(owner)
		status := doAuthed(t, app, "POST", "/api/bookings/7/cancel", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, domain.BookingCancelled, repo.booking.Status)
	})

	t.Run("staff can cancel any booking", func(t *testing.T) {
		app, repo := bookingTestApp(staff)
		status := doAuthed(t, app, "POST", "/api/bookings/7/cancel", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, domain.BookingCancelled, repo.booking.Status)
	})

	t.Run("another guest cannot read the booking", func(t *testing.T) {
		app, _ := bookingTestApp(otherGuest)
		assert.Equal(t, fiber.StatusForbidden, doAuthed(t, app, "GET", "/api/bookings/7", ""))
	})

	t.Run("owner can read the booking", func(t *testing.T) {
		app, _ := bookingTestApp(owner)
		assert.Equal(t, fiber.StatusOK, doAuthed(t, app, "GET", "/api/bookings/7", ""))
	})

	t.Run("another guest cannot list someone else's bookings", func(t *testing.T) {
		app, _ := bookingTestApp(otherGuest)
		assert.Equal(t, fiber.StatusForbidden, doAuthed(t, app, "GET", "/api/bookings/guest/2", ""))
	})

	t.Run("owner can list own bookings", func(t *testing.T) {
		app, _ := bookingTestApp(owner)
		assert.Equal(t, fiber.StatusOK, doAuthed(t, app, "GET", "/api/bookings/guest/2", ""))
	})

	t.Run("another guest cannot attach services", func(t *testing.T) {
		app, repo := bookingTestApp(otherGuest)
		status := doAuthed(t, app, "POST", "/api/bookings/7/services", `{"serviceIds":[1]}`)
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, 300.0, repo.booking.TotalPrice)
	})

	t.Run("owner can attach services", func(t *testing.T) {
		app, repo := bookingTestApp(owner)
		status := doAuthed(t, app, "POST", "/api/bookings/7/services", `{"serviceIds":[1]}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, 380.0, repo.booking.TotalPrice)
	})
}
