package domain

// IsAvailable decides booking eligibility for a candidate stay. The room is
// unavailable when it is out of order, when any active booking's stay
// overlaps the candidate, or when a scheduled or in-progress maintenance
// window does. Read-only over the supplied collections; fetching them is the
// caller's concern.
func IsAvailable(room *Room, bookings []Booking, candidate DateInterval) bool {
	if room.Status == RoomStatusOutOfOrder {
		return false
	}

	for _, b := range bookings {
		if b.RoomID == room.ID && b.Status.Active() && b.Stay.Overlaps(candidate) {
			return false
		}
	}

	for _, w := range room.Maintenance {
		if w.Status.Blocking() && w.Window.Overlaps(candidate) {
			return false
		}
	}

	return true
}

// ScheduleMaintenance appends a maintenance window to the room after
// checking it against active bookings. An in-progress window also moves the
// room into maintenance status. The caller persists the mutated room.
func ScheduleMaintenance(room *Room, bookings []Booking, w MaintenanceWindow) error {
	if _, err := NewDateInterval(w.Window.Start, w.Window.End); err != nil {
		return err
	}

	for _, b := range bookings {
		if b.RoomID == room.ID && b.Status.Active() && b.Stay.Overlaps(w.Window) {
			return NewConflictError("room %d has booking %d during the maintenance window", room.ID, b.ID)
		}
	}

	room.Maintenance = append(room.Maintenance, w)
	if w.Status == MaintenanceInProgress {
		room.Status = RoomStatusMaintenance
	}

	return nil
}

// AddSeasonalPricing appends a seasonal price window, rejecting any overlap
// with an existing one.
func AddSeasonalPricing(room *Room, sp SeasonalPricing) error {
	if _, err := NewDateInterval(sp.Validity.Start, sp.Validity.End); err != nil {
		return err
	}
	if sp.Price <= 0 {
		return NewValidationError("price", "seasonal price must be greater than 0")
	}

	for _, existing := range room.Seasonal {
		if existing.Validity.Overlaps(sp.Validity) {
			return NewConflictError("seasonal pricing overlaps existing window %d", existing.ID)
		}
	}

	room.Seasonal = append(room.Seasonal, sp)
	return nil
}

// ReplaceSeasonalPricing validates an updated window against the others,
// excluding the entry being replaced.
func ReplaceSeasonalPricing(room *Room, sp SeasonalPricing) error {
	if _, err := NewDateInterval(sp.Validity.Start, sp.Validity.End); err != nil {
		return err
	}
	if sp.Price <= 0 {
		return NewValidationError("price", "seasonal price must be greater than 0")
	}

	found := false
	for _, existing := range room.Seasonal {
		if existing.ID == sp.ID {
			found = true
			continue
		}
		if existing.Validity.Overlaps(sp.Validity) {
			return NewConflictError("seasonal pricing overlaps existing window %d", existing.ID)
		}
	}
	if !found {
		return NewNotFoundError("seasonal pricing", sp.ID)
	}

	for i := range room.Seasonal {
		if room.Seasonal[i].ID == sp.ID {
			room.Seasonal[i] = sp
		}
	}
	return nil
}

// AddDiscount appends a discount, rejecting overlap with an existing
// discount of the same type. Different types may coexist on the same dates.
func AddDiscount(room *Room, d Discount) error {
	if _, err := NewDateInterval(d.Validity.Start, d.Validity.End); err != nil {
		return err
	}
	if d.Percentage <= 0 || d.Percentage >= 100 {
		return NewValidationError("percentage", "discount percentage must be between 0 and 100")
	}
	if d.MinimumStay < 0 {
		return NewValidationError("minimumStay", "minimum stay cannot be negative")
	}

	for _, existing := range room.Discounts {
		if existing.Type == d.Type && existing.Validity.Overlaps(d.Validity) {
			return NewConflictError("%s discount overlaps existing discount %d", d.Type, existing.ID)
		}
	}

	room.Discounts = append(room.Discounts, d)
	return nil
}

// ReplaceDiscount validates an updated discount against the others of the
// same type, excluding the entry being replaced.
func ReplaceDiscount(room *Room, d Discount) error {
	if _, err := NewDateInterval(d.Validity.Start, d.Validity.End); err != nil {
		return err
	}
	if d.Percentage <= 0 || d.Percentage >= 100 {
		return NewValidationError("percentage", "discount percentage must be between 0 and 100")
	}

	found := false
	for _, existing := range room.Discounts {
		if existing.ID == d.ID {
			found = true
			continue
		}
		if existing.Type == d.Type && existing.Validity.Overlaps(d.Validity) {
			return NewConflictError("%s discount overlaps existing discount %d", d.Type, existing.ID)
		}
	}
	if !found {
		return NewNotFoundError("discount", d.ID)
	}

	for i := range room.Discounts {
		if room.Discounts[i].ID == d.ID {
			room.Discounts[i] = d
		}
	}
	return nil
}
