package application

import (
	"fmt"
	"log"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
	emailclient "github.com/raushan1895/resort360/internal/email"
)

// InquiryService stores contact-form messages and forwards them to staff.
type InquiryService struct {
	inquiryRepo domain.InquiryRepository
	emailClient *emailclient.Client
	staffEmail  string
	validator   Validator
}

func NewInquiryService(inquiryRepo domain.InquiryRepository, emailClient *emailclient.Client, staffEmail string) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		emailClient: emailClient,
		staffEmail:  staffEmail,
	}
}

func (s *InquiryService) CreateInquiry(inquiry *domain.Inquiry) error {
	if err := s.validator.ValidateName(inquiry.Name, "name"); err != nil {
		return err
	}
	if err := s.validator.ValidateEmail(inquiry.Email); err != nil {
		return err
	}
	if inquiry.Message == "" {
		return domain.NewValidationError("message", "message is required")
	}

	inquiry.Status = domain.InquiryNew
	inquiry.CreatedAt = time.Now()

	if err := s.inquiryRepo.Create(inquiry); err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}

	if s.emailClient != nil && s.staffEmail != "" {
		err := s.emailClient.SendInquiryNotification(emailclient.InquiryInfo{
			StaffEmail: s.staffEmail,
			Name:       inquiry.Name,
			Email:      inquiry.Email,
			Subject:    inquiry.Subject,
			Message:    inquiry.Message,
		})
		if err != nil {
			log.Printf("inquiry %d: notification email failed: %v", inquiry.ID, err)
		}
	}

	return nil
}

func (s *InquiryService) ListInquiries() ([]domain.Inquiry, error) {
	return s.inquiryRepo.List()
}

func (s *InquiryService) UpdateStatus(id int, status domain.InquiryStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	if err := s.inquiryRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("update inquiry %d status: %w", id, err)
	}
	return nil
}
