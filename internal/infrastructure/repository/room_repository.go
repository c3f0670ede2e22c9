package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new instance of roomRepository.
func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{db: db}
}

const roomSelect = `
	SELECT
		r.room_id,
		r.name,
		r.number,
		r.capacity,
		r.status,
		r.description,
		r.price_per_night,
		t.room_type_id,
		t.title,
		t.description,
		t.adult_capacity,
		t.child_capacity,
		t.bed_count,
		t.area,
		t.base_price
	FROM room r
	INNER JOIN room_type t ON r.room_type_id = t.room_type_id
`

func scanRoom(s interface{ Scan(...any) error }) (domain.Room, error) {
	var r domain.Room
	err := s.Scan(
		&r.ID,
		&r.Name,
		&r.Number,
		&r.Capacity,
		&r.Status,
		&r.Description,
		&r.PricePerNight,
		&r.Type.ID,
		&r.Type.Title,
		&r.Type.Description,
		&r.Type.AdultCapacity,
		&r.Type.ChildCapacity,
		&r.Type.BedCount,
		&r.Type.Area,
		&r.Type.BasePrice,
	)
	return r, err
}

// GetAll implements domain.RoomRepository.
func (r *roomRepository) GetAll() ([]domain.Room, error) {
	rows, err := r.db.Query(roomSelect + " ORDER BY r.room_id")
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range rooms {
		if err := r.attachOwned(&rooms[i]); err != nil {
			return nil, err
		}
	}

	return rooms, nil
}

// GetByID returns the room with its seasonal pricing, discounts, maintenance
// windows and images attached.
func (r *roomRepository) GetByID(id int) (*domain.Room, error) {
	room, err := scanRoom(r.db.QueryRow(roomSelect+" WHERE r.room_id = $1", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("room", id)
		}
		return nil, fmt.Errorf("error querying room %d: %w", id, err)
	}

	if err := r.attachOwned(&room); err != nil {
		return nil, err
	}

	return &room, nil
}

// attachOwned loads the entries owned by the room.
func (r *roomRepository) attachOwned(room *domain.Room) error {
	seasonal, err := r.getSeasonalPricing(room.ID)
	if err != nil {
		return err
	}
	room.Seasonal = seasonal

	discounts, err := r.getDiscounts(room.ID)
	if err != nil {
		return err
	}
	room.Discounts = discounts

	maintenance, err := r.getMaintenanceWindows(room.ID)
	if err != nil {
		return err
	}
	room.Maintenance = maintenance

	images, err := r.getImages(room.ID)
	if err != nil {
		return err
	}
	room.Images = images

	return nil
}

func (r *roomRepository) getSeasonalPricing(roomID int) ([]domain.SeasonalPricing, error) {
	query := `
		SELECT pricing_id, start_date, end_date, price
		FROM seasonal_pricing
		WHERE room_id = $1
		ORDER BY start_date
	`
	rows, err := r.db.Query(query, roomID)
	if err != nil {
		return nil, fmt.Errorf("error querying seasonal pricing: %w", err)
	}
	defer rows.Close()

	var entries []domain.SeasonalPricing
	for rows.Next() {
		var sp domain.SeasonalPricing
		if err := rows.Scan(&sp.ID, &sp.Validity.Start, &sp.Validity.End, &sp.Price); err != nil {
			return nil, fmt.Errorf("error scanning seasonal pricing: %w", err)
		}
		entries = append(entries, sp)
	}
	return entries, rows.Err()
}

func (r *roomRepository) getDiscounts(roomID int) ([]domain.Discount, error) {
	query := `
		SELECT discount_id, discount_type, percentage, start_date, end_date, minimum_stay
		FROM discount
		WHERE room_id = $1
		ORDER BY start_date
	`
	rows, err := r.db.Query(query, roomID)
	if err != nil {
		return nil, fmt.Errorf("error querying discounts: %w", err)
	}
	defer rows.Close()

	var entries []domain.Discount
	for rows.Next() {
		var d domain.Discount
		if err := rows.Scan(&d.ID, &d.Type, &d.Percentage, &d.Validity.Start, &d.Validity.End, &d.MinimumStay); err != nil {
			return nil, fmt.Errorf("error scanning discount: %w", err)
		}
		entries = append(entries, d)
	}
	return entries, rows.Err()
}

func (r *roomRepository) getMaintenanceWindows(roomID int) ([]domain.MaintenanceWindow, error) {
	query := `
		SELECT window_id, start_date, end_date, status, notes
		FROM maintenance_window
		WHERE room_id = $1
		ORDER BY start_date
	`
	rows, err := r.db.Query(query, roomID)
	if err != nil {
		return nil, fmt.Errorf("error querying maintenance windows: %w", err)
	}
	defer rows.Close()

	var entries []domain.MaintenanceWindow
	for rows.Next() {
		var w domain.MaintenanceWindow
		if err := rows.Scan(&w.ID, &w.Window.Start, &w.Window.End, &w.Status, &w.Notes); err != nil {
			return nil, fmt.Errorf("error scanning maintenance window: %w", err)
		}
		entries = append(entries, w)
	}
	return entries, rows.Err()
}

func (r *roomRepository) getImages(roomID int) ([]domain.RoomImage, error) {
	query := `
		SELECT image_id, url, caption
		FROM room_image
		WHERE room_id = $1
		ORDER BY image_id
	`
	rows, err := r.db.Query(query, roomID)
	if err != nil {
		return nil, fmt.Errorf("error querying room images: %w", err)
	}
	defer rows.Close()

	var images []domain.RoomImage
	for rows.Next() {
		var img domain.RoomImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Caption); err != nil {
			return nil, fmt.Errorf("error scanning room image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Create inserts a room referencing an existing room type.
func (r *roomRepository) Create(room *domain.Room) error {
	query := `
		INSERT INTO room (name, number, capacity, status, description, price_per_night, room_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING room_id
	`
	err := r.db.QueryRow(
		query,
		room.Name,
		room.Number,
		room.Capacity,
		room.Status,
		room.Description,
		room.PricePerNight,
		room.Type.ID,
	).Scan(&room.ID)
	if err != nil {
		return fmt.Errorf("error creating room: %w", err)
	}
	return nil
}

func (r *roomRepository) Update(room *domain.Room) error {
	query := `
		UPDATE room
		SET name = $1, number = $2, capacity = $3, status = $4, description = $5, price_per_night = $6, room_type_id = $7
		WHERE room_id = $8
	`
	result, err := r.db.Exec(
		query,
		room.Name,
		room.Number,
		room.Capacity,
		room.Status,
		room.Description,
		room.PricePerNight,
		room.Type.ID,
		room.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating room %d: %w", room.ID, err)
	}
	return requireRow(result, "room", room.ID)
}

func (r *roomRepository) UpdateStatus(id int, status domain.RoomStatus) error {
	result, err := r.db.Exec(`UPDATE room SET status = $1 WHERE room_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating room %d status: %w", id, err)
	}
	return requireRow(result, "room", id)
}

// GetRoomTypes implements domain.RoomRepository.
func (r *roomRepository) GetRoomTypes() ([]domain.RoomType, error) {
	query := `
		SELECT room_type_id, title, description, adult_capacity, child_capacity, bed_count, area, base_price
		FROM room_type
		ORDER BY room_type_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying room types: %w", err)
	}
	defer rows.Close()

	var types []domain.RoomType
	for rows.Next() {
		var t domain.RoomType
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.AdultCapacity, &t.ChildCapacity, &t.BedCount, &t.Area, &t.BasePrice)
		if err != nil {
			return nil, fmt.Errorf("error scanning room type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *roomRepository) AddSeasonalPricing(roomID int, sp *domain.SeasonalPricing) error {
	query := `
		INSERT INTO seasonal_pricing (room_id, start_date, end_date, price)
		VALUES ($1, $2, $3, $4)
		RETURNING pricing_id
	`
	err := r.db.QueryRow(query, roomID, sp.Validity.Start, sp.Validity.End, sp.Price).Scan(&sp.ID)
	if err != nil {
		return fmt.Errorf("error creating seasonal pricing: %w", err)
	}
	return nil
}

func (r *roomRepository) UpdateSeasonalPricing(roomID int, sp *domain.SeasonalPricing) error {
	query := `
		UPDATE seasonal_pricing
		SET start_date = $1, end_date = $2, price = $3
		WHERE pricing_id = $4 AND room_id = $5
	`
	result, err := r.db.Exec(query, sp.Validity.Start, sp.Validity.End, sp.Price, sp.ID, roomID)
	if err != nil {
		return fmt.Errorf("error updating seasonal pricing %d: %w", sp.ID, err)
	}
	return requireRow(result, "seasonal pricing", sp.ID)
}

func (r *roomRepository) DeleteSeasonalPricing(roomID, pricingID int) error {
	result, err := r.db.Exec(`DELETE FROM seasonal_pricing WHERE pricing_id = $1 AND room_id = $2`, pricingID, roomID)
	if err != nil {
		return fmt.Errorf("error deleting seasonal pricing %d: %w", pricingID, err)
	}
	return requireRow(result, "seasonal pricing", pricingID)
}

func (r *roomRepository) AddDiscount(roomID int, d *domain.Discount) error {
	query := `
		INSERT INTO discount (room_id, discount_type, percentage, start_date, end_date, minimum_stay)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING discount_id
	`
	err := r.db.QueryRow(query, roomID, d.Type, d.Percentage, d.Validity.Start, d.Validity.End, d.MinimumStay).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("error creating discount: %w", err)
	}
	return nil
}

func (r *roomRepository) UpdateDiscount(roomID int, d *domain.Discount) error {
	query := `
		UPDATE discount
		SET discount_type = $1, percentage = $2, start_date = $3, end_date = $4, minimum_stay = $5
		WHERE discount_id = $6 AND room_id = $7
	`
	result, err := r.db.Exec(query, d.Type, d.Percentage, d.Validity.Start, d.Validity.End, d.MinimumStay, d.ID, roomID)
	if err != nil {
		return fmt.Errorf("error updating discount %d: %w", d.ID, err)
	}
	return requireRow(result, "discount", d.ID)
}

func (r *roomRepository) DeleteDiscount(roomID, discountID int) error {
	result, err := r.db.Exec(`DELETE FROM discount WHERE discount_id = $1 AND room_id = $2`, discountID, roomID)
	if err != nil {
		return fmt.Errorf("error deleting discount %d: %w", discountID, err)
	}
	return requireRow(result, "discount", discountID)
}

func (r *roomRepository) AddMaintenanceWindow(roomID int, w *domain.MaintenanceWindow) error {
	query := `
		INSERT INTO maintenance_window (room_id, start_date, end_date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING window_id
	`
	err := r.db.QueryRow(query, roomID, w.Window.Start, w.Window.End, w.Status, w.Notes).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("error creating maintenance window: %w", err)
	}
	return nil
}

func (r *roomRepository) UpdateMaintenanceStatus(roomID, windowID int, status domain.MaintenanceStatus) error {
	query := `UPDATE maintenance_window SET status = $1 WHERE window_id = $2 AND room_id = $3`
	result, err := r.db.Exec(query, status, windowID, roomID)
	if err != nil {
		return fmt.Errorf("error updating maintenance window %d: %w", windowID, err)
	}
	return requireRow(result, "maintenance window", windowID)
}

// CompleteFinishedMaintenance implements domain.RoomRepository.
func (r *roomRepository) CompleteFinishedMaintenance(asOf time.Time) (int64, error) {
	query := `
		UPDATE maintenance_window
		SET status = $1
		WHERE status IN ($2, $3) AND end_date < $4
	`
	result, err := r.db.Exec(query, domain.MaintenanceCompleted, domain.MaintenanceScheduled, domain.MaintenanceInProgress, asOf)
	if err != nil {
		return 0, fmt.Errorf("error completing maintenance windows: %w", err)
	}
	return result.RowsAffected()
}

func (r *roomRepository) AddImage(roomID int, img *domain.RoomImage) error {
	query := `
		INSERT INTO room_image (room_id, url, caption)
		VALUES ($1, $2, $3)
		RETURNING image_id
	`
	err := r.db.QueryRow(query, roomID, img.URL, img.Caption).Scan(&img.ID)
	if err != nil {
		return fmt.Errorf("error creating room image: %w", err)
	}
	return nil
}

// requireRow converts a zero-row update/delete into a NotFoundError.
func requireRow(result sql.Result, resource string, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(resource, id)
	}
	return nil
}
