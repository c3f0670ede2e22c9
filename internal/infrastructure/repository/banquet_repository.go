package repository

import (
	"database/sql"
	"fmt"

	"github.com/raushan1895/resort360/internal/domain"
)

type banquetRepository struct {
	db *sql.DB
}

// NewBanquetRepository creates a new instance of banquetRepository.
func NewBanquetRepository(db *sql.DB) domain.BanquetRepository {
	return &banquetRepository{db: db}
}

const banquetSelect = `
	SELECT banquet_id, host_id, hall, occasion, start_date, end_date,
		guest_count, price_per_guest, menu, status, created_at
	FROM banquet
`

func scanBanquet(s interface{ Scan(...any) error }) (domain.Banquet, error) {
	var b domain.Banquet
	err := s.Scan(
		&b.ID,
		&b.HostID,
		&b.Hall,
		&b.Occasion,
		&b.Schedule.Start,
		&b.Schedule.End,
		&b.GuestCount,
		&b.PricePerGuest,
		&b.Menu,
		&b.Status,
		&b.CreatedAt,
	)
	return b, err
}

func (r *banquetRepository) GetAll() ([]domain.Banquet, error) {
	return r.queryBanquets(banquetSelect + " ORDER BY start_date")
}

func (r *banquetRepository) GetByID(id int) (*domain.Banquet, error) {
	banquet, err := scanBanquet(r.db.QueryRow(banquetSelect+" WHERE banquet_id = $1", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("banquet", id)
		}
		return nil, fmt.Errorf("error querying banquet %d: %w", id, err)
	}
	return &banquet, nil
}

func (r *banquetRepository) GetByHall(hall string) ([]domain.Banquet, error) {
	return r.queryBanquets(banquetSelect+" WHERE hall = $1 ORDER BY start_date", hall)
}

func (r *banquetRepository) GetByHost(hostID int) ([]domain.Banquet, error) {
	return r.queryBanquets(banquetSelect+" WHERE host_id = $1 ORDER BY start_date DESC", hostID)
}

func (r *banquetRepository) queryBanquets(query string, args ...any) ([]domain.Banquet, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying banquets: %w", err)
	}
	defer rows.Close()

	var banquets []domain.Banquet
	for rows.Next() {
		banquet, err := scanBanquet(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning banquet: %w", err)
		}
		banquets = append(banquets, banquet)
	}
	return banquets, rows.Err()
}

func (r *banquetRepository) Create(banquet *domain.Banquet) error {
	query := `
		INSERT INTO banquet (host_id, hall, occasion, start_date, end_date, guest_count, price_per_guest, menu, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING banquet_id, created_at
	`
	err := r.db.QueryRow(
		query,
		banquet.HostID,
		banquet.Hall,
		banquet.Occasion,
		banquet.Schedule.Start,
		banquet.Schedule.End,
		banquet.GuestCount,
		banquet.PricePerGuest,
		banquet.Menu,
		banquet.Status,
	).Scan(&banquet.ID, &banquet.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating banquet: %w", err)
	}
	return nil
}

func (r *banquetRepository) UpdateStatus(id int, status domain.BanquetStatus) error {
	result, err := r.db.Exec(`UPDATE banquet SET status = $1 WHERE banquet_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating banquet %d status: %w", id, err)
	}
	return requireRow(result, "banquet", id)
}
