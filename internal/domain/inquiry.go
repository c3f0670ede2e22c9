package domain

import "time"

type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryInProgress InquiryStatus = "in-progress"
	InquiryClosed     InquiryStatus = "closed"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryInProgress, InquiryClosed:
		return true
	}
	return false
}

// Inquiry is a message from the contact form; staff work it through the
// status lifecycle.
type Inquiry struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type InquiryRepository interface {
	Create(inquiry *Inquiry) error
	List() ([]Inquiry, error)
	UpdateStatus(id int, status InquiryStatus) error
}
