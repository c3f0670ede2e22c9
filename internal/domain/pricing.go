package domain

import "time"

// EffectivePrice resolves the nightly price of a room for a reference date.
//
// The seasonal window containing asOf (at most one, by the non-overlap
// invariant) overrides the room's base price. Then the first discount in
// stored order whose validity contains asOf and whose minimum stay is
// satisfied is applied. Discounts of different types can be valid at the same
// time; only the first match is applied, never compounded.
//
// stayNights filters discounts by MinimumStay. Callers that only have a
// reference date and no stay pass 0, which skips the minimum-stay check.
func EffectivePrice(room *Room, asOf time.Time, stayNights int) float64 {
	price := room.PricePerNight
	if price <= 0 {
		price = room.Type.BasePrice
	}

	for _, sp := range room.Seasonal {
		if sp.Validity.Contains(asOf) {
			price = sp.Price
			break
		}
	}

	for _, d := range room.Discounts {
		if !d.Validity.Contains(asOf) {
			continue
		}
		if stayNights > 0 && stayNights < d.MinimumStay {
			continue
		}
		price = price * (1 - d.Percentage/100)
		break
	}

	return price
}

// StayQuote prices a stay night by night using EffectivePrice, so a stay
// crossing a seasonal boundary pays each night at that night's rate.
func StayQuote(room *Room, stay DateInterval) float64 {
	nights := stay.Nights()

	total := 0.0
	night := stay.Start
	for n := 0; n < nights; n++ {
		total += EffectivePrice(room, night, nights)
		night = night.AddDate(0, 0, 1)
	}

	return total
}
