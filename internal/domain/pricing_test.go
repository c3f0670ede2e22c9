package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRoom(t *testing.T) *Room {
	t.Helper()
	return &Room{
		ID:            1,
		Number:        "101",
		Status:        RoomStatusAvailable,
		PricePerNight: 100,
		Type:          RoomType{ID: 1, Title: "Standard", BasePrice: 100},
	}
}

func TestEffectivePriceBase(t *testing.T) {
	room := testRoom(t)

	assert.Equal(t, 100.0, EffectivePrice(room, day(15), 0))
}

func TestEffectivePriceSeasonal(t *testing.T) {
	room := testRoom(t)
	room.Seasonal = []SeasonalPricing{
		{ID: 1, Validity: interval(t, 1, 30), Price: 200},
	}

	assert.Equal(t, 200.0, EffectivePrice(room, day(15), 0))
}

func TestEffectivePriceDiscountOnSeasonal(t *testing.T) {
	room := testRoom(t)
	room.Seasonal = []SeasonalPricing{
		{ID: 1, Validity: interval(t, 1, 30), Price: 200},
	}
	room.Discounts = []Discount{
		{ID: 1, Type: DiscountSeasonal, Percentage: 20, Validity: interval(t, 1, 30)},
	}

	assert.Equal(t, 160.0, EffectivePrice(room, day(15), 0))
}

func TestEffectivePriceSingleDiscountNoCompounding(t *testing.T) {
	room := testRoom(t)
	room.Seasonal = []SeasonalPricing{
		{ID: 1, Validity: interval(t, 1, 30), Price: 200},
	}
	// two different discount types valid at once: only the first applies
	room.Discounts = []Discount{
		{ID: 1, Type: DiscountSeasonal, Percentage: 20, Validity: interval(t, 1, 30)},
		{ID: 2, Type: DiscountEarlyBird, Percentage: 10, Validity: interval(t, 1, 30)},
	}

	assert.Equal(t, 160.0, EffectivePrice(room, day(15), 0))
}

func TestEffectivePriceOutsideWindows(t *testing.T) {
	room := testRoom(t)
	room.Seasonal = []SeasonalPricing{
		{ID: 1, Validity: interval(t, 1, 10), Price: 200},
	}
	room.Discounts = []Discount{
		{ID: 1, Type: DiscountSeasonal, Percentage: 20, Validity: interval(t, 1, 10)},
	}

	assert.Equal(t, 100.0, EffectivePrice(room, day(20), 0))
}

func TestEffectivePriceMinimumStay(t *testing.T) {
	room := testRoom(t)
	room.Discounts = []Discount{
		{ID: 1, Type: DiscountLongStay, Percentage: 25, Validity: interval(t, 1, 30), MinimumStay: 7},
	}

	// short stay misses the long-stay discount
	assert.Equal(t, 100.0, EffectivePrice(room, day(15), 3))
	// long enough stay gets it
	assert.Equal(t, 75.0, EffectivePrice(room, day(15), 7))
	// no stay supplied skips the minimum-stay check
	assert.Equal(t, 75.0, EffectivePrice(room, day(15), 0))
}

func TestStayQuoteAcrossSeasonBoundary(t *testing.T) {
	room := testRoom(t)
	room.Seasonal = []SeasonalPricing{
		{ID: 1, Validity: interval(t, 3, 30), Price: 200},
	}

	// nights of Jun 1 and Jun 2 at 100, nights of Jun 3 and Jun 4 at 200
	stay := interval(t, 1, 5)
	assert.Equal(t, 600.0, StayQuote(room, stay))
}

func TestStayQuotePlainRoom(t *testing.T) {
	room := testRoom(t)

	assert.Equal(t, 400.0, StayQuote(room, interval(t, 1, 5)))
}
