package repository

import (
	"database/sql"
	"fmt"

	"github.com/raushan1895/resort360/internal/domain"
)

type serviceRepository struct {
	db *sql.DB
}

// NewServiceRepository creates a new instance of serviceRepository.
func NewServiceRepository(db *sql.DB) domain.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) GetAll() ([]domain.Service, error) {
	query := `
		SELECT service_id, name, description, price, active
		FROM service
		ORDER BY service_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying services: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Active); err != nil {
			return nil, fmt.Errorf("error scanning service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *serviceRepository) GetByID(id int) (*domain.Service, error) {
	query := `
		SELECT service_id, name, description, price, active
		FROM service
		WHERE service_id = $1
	`
	var s domain.Service
	err := r.db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("service", id)
		}
		return nil, fmt.Errorf("error querying service %d: %w", id, err)
	}
	return &s, nil
}
