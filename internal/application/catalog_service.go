package application

import "github.com/raushan1895/resort360/internal/domain"

// CatalogService exposes the resort service catalog.
type CatalogService struct {
	serviceRepo domain.ServiceRepository
}

func NewCatalogService(serviceRepo domain.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

func (s *CatalogService) GetAllServices() ([]domain.Service, error) {
	return s.serviceRepo.GetAll()
}

func (s *CatalogService) GetServiceByID(id int) (*domain.Service, error) {
	return s.serviceRepo.GetByID(id)
}
