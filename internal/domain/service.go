package domain

// Service is a bookable resort add-on: spa access, airport transfer,
// breakfast package.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}

type ServiceRepository interface {
	GetAll() ([]Service, error)
	GetByID(id int) (*Service, error)
}
