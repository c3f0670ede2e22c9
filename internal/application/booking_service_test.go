package application

import (
	"testing"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func june(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func stay(d1, d2 int) domain.DateInterval {
	return domain.DateInterval{Start: june(d1), End: june(d2)}
}

func serviceRoom() *domain.Room {
	return &domain.Room{
		ID:            1,
		Name:          "Lagoon View",
		Number:        "101",
		Status:        domain.RoomStatusAvailable,
		PricePerNight: 100,
		Type:          domain.RoomType{ID: 1, Title: "Standard", BasePrice: 100},
	}
}

func newBookingService(roomRepo *fakeRoomRepo, bookingRepo *fakeBookingRepo, userRepo *fakeUserRepo) *BookingService {
	return NewBookingService(bookingRepo, roomRepo, userRepo, &fakePaymentRepo{}, newFakeServiceRepo(), nil)
}

func TestCreateBooking(t *testing.T) {
	roomRepo := newFakeRoomRepo(serviceRoom())
	bookingRepo := newFakeBookingRepo()
	userRepo := newFakeUserRepo(&domain.User{ID: 7, Name: "Ana Reyes", Email: "ana@example.com", Role: domain.RoleGuest})
	svc := newBookingService(roomRepo, bookingRepo, userRepo)

	booking := &domain.Booking{RoomID: 1, GuestID: 7, Stay: stay(10, 14), Adults: 2}
	require.NoError(t, svc.CreateBooking(booking))

	assert.NotZero(t, booking.ID)
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, domain.BookingPending, booking.Status)
	// 4 nights at the base price
	assert.Equal(t, 400.0, booking.TotalPrice)
}

func TestCreateBookingConflicts(t *testing.T) {
	roomRepo := newFakeRoomRepo(serviceRoom())
	existing := &domain.Booking{ID: 1, RoomID: 1, GuestID: 7, Status: domain.BookingConfirmed, Stay: stay(1, 5)}
	bookingRepo := newFakeBookingRepo(existing)
	userRepo := newFakeUserRepo(&domain.User{ID: 7, Email: "ana@example.com"})
	svc := newBookingService(roomRepo, bookingRepo, userRepo)

	t.Run("touching stay rejected", func(t *testing.T) {
		err := svc.CreateBooking(&domain.Booking{RoomID: 1, GuestID: 7, Stay: stay(5, 10), Adults: 2})
		require.Error(t, err)
		assert.True(t, domain.IsConflictError(err))
	})

	t.Run("disjoint stay accepted", func(t *testing.T) {
		err := svc.CreateBooking(&domain.Booking{RoomID: 1, GuestID: 7, Stay: stay(6, 10), Adults: 2})
		require.NoError(t, err)
	})
}

func TestCreateBookingAgainstCancelled(t *testing.T) {
	roomRepo := newFakeRoomRepo(serviceRoom())
	cancelled := &domain.Booking{ID: 1, RoomID: 1, GuestID: 7, Status: domain.BookingCancelled, Stay: stay(1, 5)}
	bookingRepo := newFakeBookingRepo(cancelled)
	userRepo := newFakeUserRepo(&domain.User{ID: 7, Email: "ana@example.com"})
	svc := newBookingService(roomRepo, bookingRepo, userRepo)

	err := svc.CreateBooking(&domain.Booking{RoomID: 1, GuestID: 7, Stay: stay(2, 4), Adults: 1})
	require.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	roomRepo := newFakeRoomRepo(serviceRoom())
	svc := newBookingService(roomRepo, newFakeBookingRepo(), newFakeUserRepo(&domain.User{ID: 7}))

	t.Run("reversed dates", func(t *testing.T) {
		err := svc.CreateBooking(&domain.Booking{RoomID: 1, GuestID: 7, Stay: stay(10, 5), Adults: 2})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("no adults", func(t *testing.T) {
		err := svc.CreateBooking(&domain.Booking{RoomID: 1, GuestID: 7, Stay: stay(5, 10)})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		err := svc.CreateBooking(&domain.Booking{RoomID: 99, GuestID: 7, Stay: stay(5, 10), Adults: 2})
		assert.True(t, domain.IsNotFoundError(err))
	})

	t.Run("unknown guest", func(t *testing.T) {
		err := svc.CreateBooking(&domain.Booking{RoomID: 1, GuestID: 99, Stay: stay(5, 10), Adults: 2})
		assert.True(t, domain.IsNotFoundError(err))
	})
}

func TestCreateBookingSeasonalQuote(t *testing.T) {
	room := serviceRoom()
	room.Seasonal = []domain.SeasonalPricing{
		{ID: 1, Validity: stay(1, 30), Price: 200},
	}
	room.Discounts = []domain.Discount{
		{ID: 1, Type: domain.DiscountSeasonal, Percentage: 20, Validity: stay(1, 30)},
	}
	svc := newBookingService(newFakeRoomRepo(room), newFakeBookingRepo(), newFakeUserRepo(&domain.User{ID: 7}))

	booking := &domain.Booking{RoomID: 1, GuestID: 7, Stay: stay(10, 12), Adults: 2}
	require.NoError(t, svc.CreateBooking(booking))

	// 2 nights at 200 with a single 20% discount
	assert.Equal(t, 320.0, booking.TotalPrice)
}

func TestUpdateStatusTransitions(t *testing.T) {
	booking := &domain.Booking{ID: 1, RoomID: 1, GuestID: 7, Status: domain.BookingPending, Stay: stay(5, 10)}
	bookingRepo := newFakeBookingRepo(booking)
	svc := newBookingService(newFakeRoomRepo(serviceRoom()), bookingRepo, newFakeUserRepo(&domain.User{ID: 7}))

	require.NoError(t, svc.UpdateStatus(1, domain.BookingConfirmed))
	require.NoError(t, svc.UpdateStatus(1, domain.BookingCheckedIn))

	err := svc.UpdateStatus(1, domain.BookingCancelled)
	require.Error(t, err)
	assert.True(t, domain.IsConflictError(err))

	require.NoError(t, svc.UpdateStatus(1, domain.BookingCheckedOut))

	assert.True(t, domain.IsValidationError(svc.UpdateStatus(1, "teleported")))
}

func TestVerifyAvailability(t *testing.T) {
	roomRepo := newFakeRoomRepo(serviceRoom())
	existing := &domain.Booking{ID: 1, RoomID: 1, Status: domain.BookingConfirmed, Stay: stay(1, 5)}
	svc := newBookingService(roomRepo, newFakeBookingRepo(existing), newFakeUserRepo())

	available, err := svc.VerifyAvailability(1, stay(5, 10))
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.VerifyAvailability(1, stay(6, 10))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestConfirmPayment(t *testing.T) {
	booking := &domain.Booking{ID: 1, RoomID: 1, GuestID: 7, Status: domain.BookingPending, Stay: stay(5, 10), TotalPrice: 500}
	bookingRepo := newFakeBookingRepo(booking)
	paymentRepo := &fakePaymentRepo{}
	svc := NewBookingService(bookingRepo, newFakeRoomRepo(serviceRoom()), newFakeUserRepo(&domain.User{ID: 7}), paymentRepo, newFakeServiceRepo(), nil)

	err := svc.ConfirmPayment(1, &domain.Payment{Amount: 500, Method: "card"})
	require.NoError(t, err)

	updated, err := bookingRepo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, updated.Status)
	require.Len(t, paymentRepo.payments, 1)
	assert.Equal(t, domain.PaymentCompleted, paymentRepo.payments[0].Status)

	assert.True(t, domain.IsValidationError(svc.ConfirmPayment(1, &domain.Payment{Amount: 0})))
}

func TestAttachServices(t *testing.T) {
	booking := &domain.Booking{ID: 1, RoomID: 1, GuestID: 7, Status: domain.BookingConfirmed, Stay: stay(5, 10), TotalPrice: 500}
	bookingRepo := newFakeBookingRepo(booking)
	serviceRepo := newFakeServiceRepo(
		&domain.Service{ID: 1, Name: "Spa", Price: 80, Active: true},
		&domain.Service{ID: 2, Name: "Old package", Price: 50, Active: false},
	)
	svc := NewBookingService(bookingRepo, newFakeRoomRepo(serviceRoom()), newFakeUserRepo(), &fakePaymentRepo{}, serviceRepo, nil)

	require.NoError(t, svc.AttachServices(1, []int{1}))
	updated, _ := bookingRepo.GetByID(1)
	require.Len(t, updated.Services, 1)
	assert.Equal(t, "Spa", updated.Services[0].Name)
	assert.Equal(t, 580.0, updated.TotalPrice)

	err := svc.AttachServices(1, []int{2})
	assert.True(t, domain.IsConflictError(err))
}
