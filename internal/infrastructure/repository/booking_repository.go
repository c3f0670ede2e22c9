package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of bookingRepository.
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingSelect = `
	SELECT booking_id, reference, room_id, guest_id, check_in, check_out,
		adults, children, status, total_price, created_at
	FROM booking
`

func scanBooking(s interface{ Scan(...any) error }) (domain.Booking, error) {
	var b domain.Booking
	err := s.Scan(
		&b.ID,
		&b.Reference,
		&b.RoomID,
		&b.GuestID,
		&b.Stay.Start,
		&b.Stay.End,
		&b.Adults,
		&b.Children,
		&b.Status,
		&b.TotalPrice,
		&b.CreatedAt,
	)
	return b, err
}

func (r *bookingRepository) GetByID(id int) (*domain.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(bookingSelect+" WHERE booking_id = $1", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("error querying booking %d: %w", id, err)
	}

	services, err := r.getServices(booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Services = services

	return &booking, nil
}

func (r *bookingRepository) GetByReference(reference string) (*domain.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(bookingSelect+" WHERE reference = $1", reference))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("booking", reference)
		}
		return nil, fmt.Errorf("error querying booking %s: %w", reference, err)
	}

	services, err := r.getServices(booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Services = services

	return &booking, nil
}

func (r *bookingRepository) GetByRoom(roomID int) ([]domain.Booking, error) {
	return r.queryBookings(bookingSelect+" WHERE room_id = $1 ORDER BY check_in", roomID)
}

func (r *bookingRepository) GetByGuest(guestID int) ([]domain.Booking, error) {
	return r.queryBookings(bookingSelect+" WHERE guest_id = $1 ORDER BY check_in DESC", guestID)
}

// GetInRange returns bookings whose stay touches [from, to]. Boundaries are
// inclusive on both sides, matching DateInterval.Overlaps.
func (r *bookingRepository) GetInRange(from, to time.Time) ([]domain.Booking, error) {
	return r.queryBookings(bookingSelect+" WHERE check_in <= $2 AND check_out >= $1 ORDER BY check_in", from, to)
}

func (r *bookingRepository) queryBookings(query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) getServices(bookingID int) ([]domain.BookedService, error) {
	query := `
		SELECT bs.booking_id, bs.service_id, s.name, bs.price
		FROM booking_service bs
		INNER JOIN service s ON bs.service_id = s.service_id
		WHERE bs.booking_id = $1
		ORDER BY bs.service_id
	`
	rows, err := r.db.Query(query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("error querying booking services: %w", err)
	}
	defer rows.Close()

	var services []domain.BookedService
	for rows.Next() {
		var bs domain.BookedService
		if err := rows.Scan(&bs.BookingID, &bs.ServiceID, &bs.Name, &bs.Price); err != nil {
			return nil, fmt.Errorf("error scanning booking service: %w", err)
		}
		services = append(services, bs)
	}
	return services, rows.Err()
}

func (r *bookingRepository) Create(booking *domain.Booking) error {
	query := `
		INSERT INTO booking (reference, room_id, guest_id, check_in, check_out, adults, children, status, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING booking_id, created_at
	`
	err := r.db.QueryRow(
		query,
		booking.Reference,
		booking.RoomID,
		booking.GuestID,
		booking.Stay.Start,
		booking.Stay.End,
		booking.Adults,
		booking.Children,
		booking.Status,
		booking.TotalPrice,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) UpdateStatus(id int, status domain.BookingStatus) error {
	result, err := r.db.Exec(`UPDATE booking SET status = $1 WHERE booking_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating booking %d status: %w", id, err)
	}
	return requireRow(result, "booking", id)
}

// AddServices attaches services and bumps the booking total in a single
// transaction so a partial attach never persists.
func (r *bookingRepository) AddServices(bookingID int, services []domain.BookedService) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO booking_service (booking_id, service_id, price)
		VALUES ($1, $2, $3)
	`
	var total float64
	for _, s := range services {
		if _, err := tx.Exec(query, bookingID, s.ServiceID, s.Price); err != nil {
			return fmt.Errorf("error attaching service %d: %w", s.ServiceID, err)
		}
		total += s.Price
	}

	if _, err := tx.Exec(`UPDATE booking SET total_price = total_price + $1 WHERE booking_id = $2`, total, bookingID); err != nil {
		return fmt.Errorf("error updating booking %d total: %w", bookingID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing services: %w", err)
	}
	return nil
}

// CompleteExpired implements domain.BookingRepository.
func (r *bookingRepository) CompleteExpired(asOf time.Time) (int64, error) {
	query := `UPDATE booking SET status = $1 WHERE status = $2 AND check_out < $3`
	result, err := r.db.Exec(query, domain.BookingCheckedOut, domain.BookingCheckedIn, asOf)
	if err != nil {
		return 0, fmt.Errorf("error completing expired bookings: %w", err)
	}
	return result.RowsAffected()
}

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new instance of paymentRepository.
func NewPaymentRepository(db *sql.DB) domain.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *domain.Payment) error {
	query := `
		INSERT INTO payment (booking_id, amount, method, status, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id
	`
	err := r.db.QueryRow(query, payment.BookingID, payment.Amount, payment.Method, payment.Status, payment.PaidAt).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("error creating payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) GetByBooking(bookingID int) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, booking_id, amount, method, status, paid_at
		FROM payment
		WHERE booking_id = $1
		ORDER BY paid_at
	`
	rows, err := r.db.Query(query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.Status, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("error scanning payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) UpdateStatus(id int, status domain.PaymentStatus) error {
	result, err := r.db.Exec(`UPDATE payment SET status = $1 WHERE payment_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating payment %d status: %w", id, err)
	}
	return requireRow(result, "payment", id)
}
