package domain

import "sort"

// RoomStat accumulates nights and revenue for a single room.
type RoomStat struct {
	RoomID   int     `json:"roomId"`
	Number   string  `json:"number"`
	Bookings int     `json:"bookings"`
	Nights   int     `json:"nights"`
	Revenue  float64 `json:"revenue"`
}

// TypeStat accumulates nights and revenue per room type.
type TypeStat struct {
	RoomTypeID int     `json:"roomTypeId"`
	Title      string  `json:"title"`
	Bookings   int     `json:"bookings"`
	Nights     int     `json:"nights"`
	Revenue    float64 `json:"revenue"`
}

// Stats is the occupancy and revenue report for a period.
type Stats struct {
	Period         DateInterval `json:"period"`
	BookingCount   int          `json:"bookingCount"`
	OccupiedNights int          `json:"occupiedNights"`
	TotalRevenue   float64      `json:"totalRevenue"`
	OccupancyRate  float64      `json:"occupancyRate"`
	ByRoom         []RoomStat   `json:"byRoom"`
	ByType         []TypeStat   `json:"byType"`
}

// Aggregate folds bookings over a reporting period. A booking contributes
// its full nights and revenue once its stay intersects the period; cancelled
// bookings never count. The occupancy rate guards against an empty room set
// or a degenerate period by returning 0 instead of failing.
func Aggregate(bookings []Booking, rooms []Room, period DateInterval) Stats {
	stats := Stats{Period: period}

	roomsByID := make(map[int]Room, len(rooms))
	for _, r := range rooms {
		roomsByID[r.ID] = r
	}

	byRoom := make(map[int]*RoomStat)
	byType := make(map[int]*TypeStat)

	for _, b := range bookings {
		if !b.Status.Active() || !b.Stay.Overlaps(period) {
			continue
		}

		nights := b.Stay.Nights()
		stats.BookingCount++
		stats.OccupiedNights += nights
		stats.TotalRevenue += b.TotalPrice

		room, known := roomsByID[b.RoomID]

		rs, ok := byRoom[b.RoomID]
		if !ok {
			rs = &RoomStat{RoomID: b.RoomID, Number: room.Number}
			byRoom[b.RoomID] = rs
		}
		rs.Bookings++
		rs.Nights += nights
		rs.Revenue += b.TotalPrice

		if !known {
			continue
		}

		ts, ok := byType[room.Type.ID]
		if !ok {
			ts = &TypeStat{RoomTypeID: room.Type.ID, Title: room.Type.Title}
			byType[room.Type.ID] = ts
		}
		ts.Bookings++
		ts.Nights += nights
		ts.Revenue += b.TotalPrice
	}

	periodDays := 0
	if !period.IsZero() && period.End.After(period.Start) {
		periodDays = period.Nights()
	}
	if len(rooms) > 0 && periodDays > 0 {
		stats.OccupancyRate = float64(stats.OccupiedNights) / float64(len(rooms)*periodDays) * 100
	}

	for _, rs := range byRoom {
		stats.ByRoom = append(stats.ByRoom, *rs)
	}
	sort.Slice(stats.ByRoom, func(i, j int) bool { return stats.ByRoom[i].RoomID < stats.ByRoom[j].RoomID })

	for _, ts := range byType {
		stats.ByType = append(stats.ByType, *ts)
	}
	sort.Slice(stats.ByType, func(i, j int) bool { return stats.ByType[i].RoomTypeID < stats.ByType[j].RoomTypeID })

	return stats
}
