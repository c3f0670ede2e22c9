package repository

import (
	"database/sql"
	"fmt"

	"github.com/raushan1895/resort360/internal/domain"
)

type inquiryRepository struct {
	db *sql.DB
}

// NewInquiryRepository creates a new instance of inquiryRepository.
func NewInquiryRepository(db *sql.DB) domain.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(inquiry *domain.Inquiry) error {
	query := `
		INSERT INTO inquiry (name, email, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING inquiry_id, created_at
	`
	err := r.db.QueryRow(
		query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Subject,
		inquiry.Message,
		inquiry.Status,
	).Scan(&inquiry.ID, &inquiry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating inquiry: %w", err)
	}
	return nil
}

func (r *inquiryRepository) List() ([]domain.Inquiry, error) {
	query := `
		SELECT inquiry_id, name, email, subject, message, status, created_at
		FROM inquiry
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		var i domain.Inquiry
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Subject, &i.Message, &i.Status, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning inquiry: %w", err)
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, rows.Err()
}

func (r *inquiryRepository) UpdateStatus(id int, status domain.InquiryStatus) error {
	result, err := r.db.Exec(`UPDATE inquiry SET status = $1 WHERE inquiry_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating inquiry %d status: %w", id, err)
	}
	return requireRow(result, "inquiry", id)
}
