package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsRooms(t *testing.T) []Room {
	t.Helper()
	std := RoomType{ID: 1, Title: "Standard"}
	suite := RoomType{ID: 2, Title: "Suite"}
	return []Room{
		{ID: 1, Number: "101", Type: std},
		{ID: 2, Number: "102", Type: std},
		{ID: 3, Number: "201", Type: suite},
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, statsRooms(t), interval(t, 1, 11))

	assert.Zero(t, stats.BookingCount)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.OccupancyRate)
	assert.Empty(t, stats.ByRoom)
	assert.Empty(t, stats.ByType)
}

func TestAggregateNoRooms(t *testing.T) {
	bookings := []Booking{
		{ID: 1, RoomID: 1, Status: BookingConfirmed, Stay: interval(t, 2, 5), TotalPrice: 300},
	}

	// rate stays 0 instead of dividing by zero
	stats := Aggregate(bookings, nil, interval(t, 1, 11))
	assert.Equal(t, 1, stats.BookingCount)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.Zero(t, stats.OccupancyRate)
}

func TestAggregate(t *testing.T) {
	rooms := statsRooms(t)
	bookings := []Booking{
		{ID: 1, RoomID: 1, Status: BookingConfirmed, Stay: interval(t, 2, 5), TotalPrice: 300},
		{ID: 2, RoomID: 1, Status: BookingCheckedOut, Stay: interval(t, 6, 8), TotalPrice: 200},
		{ID: 3, RoomID: 3, Status: BookingCheckedIn, Stay: interval(t, 4, 9), TotalPrice: 1000},
		// cancelled never counts
		{ID: 4, RoomID: 2, Status: BookingCancelled, Stay: interval(t, 2, 9), TotalPrice: 999},
		// outside the period
		{ID: 5, RoomID: 2, Status: BookingConfirmed, Stay: interval(t, 20, 25), TotalPrice: 500},
	}

	period := interval(t, 1, 11) // 10 days, 3 rooms
	stats := Aggregate(bookings, rooms, period)

	assert.Equal(t, 3, stats.BookingCount)
	assert.Equal(t, 3+2+5, stats.OccupiedNights)
	assert.Equal(t, 1500.0, stats.TotalRevenue)
	assert.InDelta(t, float64(10)/float64(30)*100, stats.OccupancyRate, 1e-9)

	require.Len(t, stats.ByRoom, 2)
	assert.Equal(t, 1, stats.ByRoom[0].RoomID)
	assert.Equal(t, 2, stats.ByRoom[0].Bookings)
	assert.Equal(t, 5, stats.ByRoom[0].Nights)
	assert.Equal(t, 500.0, stats.ByRoom[0].Revenue)
	assert.Equal(t, 3, stats.ByRoom[1].RoomID)
	assert.Equal(t, 1000.0, stats.ByRoom[1].Revenue)

	require.Len(t, stats.ByType, 2)
	assert.Equal(t, "Standard", stats.ByType[0].Title)
	assert.Equal(t, 500.0, stats.ByType[0].Revenue)
	assert.Equal(t, "Suite", stats.ByType[1].Title)
	assert.Equal(t, 1000.0, stats.ByType[1].Revenue)
}

func TestAggregateBoundaryStay(t *testing.T) {
	// stay touching the period end is inside it under inclusive overlap
	bookings := []Booking{
		{ID: 1, RoomID: 1, Status: BookingConfirmed, Stay: interval(t, 11, 14), TotalPrice: 300},
	}

	stats := Aggregate(bookings, statsRooms(t), interval(t, 1, 11))
	assert.Equal(t, 1, stats.BookingCount)
	assert.Equal(t, 3, stats.OccupiedNights)
}

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))

	reviews := []Review{{Overall: 5}, {Overall: 4}, {Overall: 3}}
	assert.InDelta(t, 4.0, AverageRating(reviews), 1e-9)
}
