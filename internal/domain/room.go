package domain

import "time"

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusOutOfOrder  RoomStatus = "out-of-order"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// Blocking reports whether the window makes the room unbookable.
func (s MaintenanceStatus) Blocking() bool {
	return s == MaintenanceScheduled || s == MaintenanceInProgress
}

type DiscountType string

const (
	DiscountEarlyBird DiscountType = "early-bird"
	DiscountLongStay  DiscountType = "long-stay"
	DiscountSeasonal  DiscountType = "seasonal"
)

// RoomType groups rooms sharing capacity, layout and base pricing.
type RoomType struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	AdultCapacity int     `json:"adultCapacity"`
	ChildCapacity int     `json:"childCapacity"`
	BedCount      int     `json:"bedCount"`
	Area          float64 `json:"area"`
	BasePrice     float64 `json:"basePrice"`
}

// SeasonalPricing overrides the room's nightly price inside its validity
// window. Windows on a room never overlap; add/update operations enforce it.
type SeasonalPricing struct {
	ID       int          `json:"id"`
	Validity DateInterval `json:"validity"`
	Price    float64      `json:"price"`
}

// Discount is a percentage off the resolved nightly price, valid inside its
// window. Per discount type the windows on a room never overlap.
type Discount struct {
	ID          int          `json:"id"`
	Type        DiscountType `json:"type"`
	Percentage  float64      `json:"percentage"`
	Validity    DateInterval `json:"validity"`
	MinimumStay int          `json:"minimumStay"`
}

type MaintenanceWindow struct {
	ID     int               `json:"id"`
	Window DateInterval      `json:"window"`
	Status MaintenanceStatus `json:"status"`
	Notes  string            `json:"notes,omitempty"`
}

type RoomImage struct {
	ID      int    `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Room is a bookable unit. Seasonal pricing, discounts and maintenance
// windows are owned by the room and mutated only through the validated
// operations in availability.go.
type Room struct {
	ID            int                 `json:"id"`
	Name          string              `json:"name"`
	Number        string              `json:"number"`
	Capacity      int                 `json:"capacity"`
	Status        RoomStatus          `json:"status"`
	Description   string              `json:"description"`
	PricePerNight float64             `json:"pricePerNight"`
	Type          RoomType            `json:"type"`
	Seasonal      []SeasonalPricing   `json:"seasonalPricing,omitempty"`
	Discounts     []Discount          `json:"discounts,omitempty"`
	Maintenance   []MaintenanceWindow `json:"maintenanceWindows,omitempty"`
	Images        []RoomImage         `json:"images,omitempty"`
}

// BlockedDate marks a day on which no room of any type is free.
type BlockedDate struct {
	Date time.Time `json:"date"`
}

// RoomRepository defines the storage operations for rooms and the entries
// they own. Implementations persist whole entries; invariant checks happen
// in the domain layer before the write.
type RoomRepository interface {
	GetAll() ([]Room, error)
	GetByID(id int) (*Room, error)
	Create(room *Room) error
	Update(room *Room) error
	UpdateStatus(id int, status RoomStatus) error
	GetRoomTypes() ([]RoomType, error)

	AddSeasonalPricing(roomID int, sp *SeasonalPricing) error
	UpdateSeasonalPricing(roomID int, sp *SeasonalPricing) error
	DeleteSeasonalPricing(roomID, pricingID int) error

	AddDiscount(roomID int, d *Discount) error
	UpdateDiscount(roomID int, d *Discount) error
	DeleteDiscount(roomID, discountID int) error

	AddMaintenanceWindow(roomID int, w *MaintenanceWindow) error
	UpdateMaintenanceStatus(roomID, windowID int, status MaintenanceStatus) error
	// CompleteFinishedMaintenance marks blocking windows that ended before
	// asOf as completed and returns how many rows changed.
	CompleteFinishedMaintenance(asOf time.Time) (int64, error)

	AddImage(roomID int, img *RoomImage) error
}
