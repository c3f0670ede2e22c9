package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(t *testing.T, roomID int, status BookingStatus, start, end int) Booking {
	t.Helper()
	return Booking{ID: start*100 + end, RoomID: roomID, Status: status, Stay: interval(t, start, end)}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name      string
		room      func(t *testing.T) *Room
		bookings  []Booking
		candidate DateInterval
		want      bool
	}{
		{
			name:      "no bookings",
			room:      testRoom,
			candidate: interval(t, 5, 10),
			want:      true,
		},
		{
			name:      "disjoint booking",
			room:      testRoom,
			bookings:  []Booking{booking(t, 1, BookingConfirmed, 1, 3)},
			candidate: interval(t, 5, 10),
			want:      true,
		},
		{
			name:      "overlapping booking",
			room:      testRoom,
			bookings:  []Booking{booking(t, 1, BookingConfirmed, 4, 7)},
			candidate: interval(t, 5, 10),
			want:      false,
		},
		{
			name:      "touching booking conflicts",
			room:      testRoom,
			bookings:  []Booking{booking(t, 1, BookingConfirmed, 1, 5)},
			candidate: interval(t, 5, 10),
			want:      false,
		},
		{
			name:      "cancelled booking ignored",
			room:      testRoom,
			bookings:  []Booking{booking(t, 1, BookingCancelled, 4, 7)},
			candidate: interval(t, 5, 10),
			want:      true,
		},
		{
			name:      "other room booking ignored",
			room:      testRoom,
			bookings:  []Booking{booking(t, 2, BookingConfirmed, 4, 7)},
			candidate: interval(t, 5, 10),
			want:      true,
		},
		{
			name: "scheduled maintenance blocks",
			room: func(t *testing.T) *Room {
				r := testRoom(t)
				r.Maintenance = []MaintenanceWindow{{ID: 1, Window: interval(t, 8, 12), Status: MaintenanceScheduled}}
				return r
			},
			candidate: interval(t, 5, 10),
			want:      false,
		},
		{
			name: "completed maintenance does not block",
			room: func(t *testing.T) *Room {
				r := testRoom(t)
				r.Maintenance = []MaintenanceWindow{{ID: 1, Window: interval(t, 8, 12), Status: MaintenanceCompleted}}
				return r
			},
			candidate: interval(t, 5, 10),
			want:      true,
		},
		{
			name: "out of order room",
			room: func(t *testing.T) *Room {
				r := testRoom(t)
				r.Status = RoomStatusOutOfOrder
				return r
			},
			candidate: interval(t, 5, 10),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAvailable(tt.room(t), tt.bookings, tt.candidate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleMaintenance(t *testing.T) {
	t.Run("conflicts with confirmed booking", func(t *testing.T) {
		room := testRoom(t)
		bookings := []Booking{booking(t, 1, BookingConfirmed, 5, 10)}

		err := ScheduleMaintenance(room, bookings, MaintenanceWindow{Window: interval(t, 8, 12), Status: MaintenanceScheduled})
		require.Error(t, err)
		assert.True(t, IsConflictError(err))
		assert.Empty(t, room.Maintenance)
	})

	t.Run("cancelled booking dates are free", func(t *testing.T) {
		room := testRoom(t)
		bookings := []Booking{booking(t, 1, BookingCancelled, 5, 10)}

		err := ScheduleMaintenance(room, bookings, MaintenanceWindow{Window: interval(t, 8, 12), Status: MaintenanceScheduled})
		require.NoError(t, err)
		assert.Len(t, room.Maintenance, 1)
		assert.Equal(t, RoomStatusAvailable, room.Status)
	})

	t.Run("in-progress window flips room status", func(t *testing.T) {
		room := testRoom(t)

		err := ScheduleMaintenance(room, nil, MaintenanceWindow{Window: interval(t, 8, 12), Status: MaintenanceInProgress})
		require.NoError(t, err)
		assert.Equal(t, RoomStatusMaintenance, room.Status)
	})

	t.Run("malformed window rejected", func(t *testing.T) {
		room := testRoom(t)

		err := ScheduleMaintenance(room, nil, MaintenanceWindow{Window: DateInterval{Start: day(12), End: day(8)}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAddSeasonalPricing(t *testing.T) {
	room := testRoom(t)

	require.NoError(t, AddSeasonalPricing(room, SeasonalPricing{ID: 1, Validity: interval(t, 1, 10), Price: 150}))

	t.Run("overlapping window rejected", func(t *testing.T) {
		err := AddSeasonalPricing(room, SeasonalPricing{ID: 2, Validity: interval(t, 8, 15), Price: 180})
		require.Error(t, err)
		assert.True(t, IsConflictError(err))
	})

	t.Run("touching window rejected", func(t *testing.T) {
		err := AddSeasonalPricing(room, SeasonalPricing{ID: 2, Validity: interval(t, 10, 15), Price: 180})
		require.Error(t, err)
		assert.True(t, IsConflictError(err))
	})

	t.Run("disjoint window accepted", func(t *testing.T) {
		require.NoError(t, AddSeasonalPricing(room, SeasonalPricing{ID: 2, Validity: interval(t, 11, 15), Price: 180}))
		assert.Len(t, room.Seasonal, 2)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		err := AddSeasonalPricing(room, SeasonalPricing{ID: 3, Validity: interval(t, 20, 25), Price: 0})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestReplaceSeasonalPricing(t *testing.T) {
	room := testRoom(t)
	require.NoError(t, AddSeasonalPricing(room, SeasonalPricing{ID: 1, Validity: interval(t, 1, 10), Price: 150}))
	require.NoError(t, AddSeasonalPricing(room, SeasonalPricing{ID: 2, Validity: interval(t, 15, 20), Price: 180}))

	t.Run("shrinking own window is fine", func(t *testing.T) {
		require.NoError(t, ReplaceSeasonalPricing(room, SeasonalPricing{ID: 1, Validity: interval(t, 1, 8), Price: 160}))
		assert.Equal(t, 160.0, room.Seasonal[0].Price)
	})

	t.Run("growing into sibling rejected", func(t *testing.T) {
		err := ReplaceSeasonalPricing(room, SeasonalPricing{ID: 1, Validity: interval(t, 1, 16), Price: 160})
		require.Error(t, err)
		assert.True(t, IsConflictError(err))
	})

	t.Run("unknown entry", func(t *testing.T) {
		err := ReplaceSeasonalPricing(room, SeasonalPricing{ID: 99, Validity: interval(t, 25, 28), Price: 160})
		require.Error(t, err)
		assert.True(t, IsNotFoundError(err))
	})
}

func TestAddDiscount(t *testing.T) {
	room := testRoom(t)

	require.NoError(t, AddDiscount(room, Discount{ID: 1, Type: DiscountSeasonal, Percentage: 20, Validity: interval(t, 1, 10)}))

	t.Run("same type overlap rejected", func(t *testing.T) {
		err := AddDiscount(room, Discount{ID: 2, Type: DiscountSeasonal, Percentage: 10, Validity: interval(t, 5, 15)})
		require.Error(t, err)
		assert.True(t, IsConflictError(err))
	})

	t.Run("different type may overlap", func(t *testing.T) {
		require.NoError(t, AddDiscount(room, Discount{ID: 2, Type: DiscountEarlyBird, Percentage: 10, Validity: interval(t, 5, 15)}))
	})

	t.Run("percentage bounds", func(t *testing.T) {
		err := AddDiscount(room, Discount{ID: 3, Type: DiscountLongStay, Percentage: 100, Validity: interval(t, 20, 25)})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
