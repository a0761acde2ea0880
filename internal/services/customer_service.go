package services

import (
	"context"
	"time"

	"mangan/internal/models"
	"mangan/internal/repository"
	"mangan/pkg/imagestore"
)

// UpdateProfileInput carries optional profile fields; empty values leave the
// stored ones untouched. Photo and id-card are base64 data URIs.
type UpdateProfileInput struct {
	Name         string `json:"name" binding:"omitempty,min=2,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"omitempty,max=15"`
	Address1     string `json:"address1" binding:"omitempty,max=255"`
	Address2     string `json:"address2" binding:"omitempty,max=255"`
	Address3     string `json:"address3" binding:"omitempty,max=255"`
	BirthDate    string `json:"birth_date"` // YYYY-MM-DD
	PhotoBase64  string `json:"photo_base64"`
	IDCardBase64 string `json:"id_card_base64"`
}

type CustomerService interface {
	GetByID(id uint) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*models.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	images       imagestore.Uploader
}

func NewCustomerService(customerRepo repository.CustomerRepository, images imagestore.Uploader) CustomerService {
	return &customerService{customerRepo: customerRepo, images: images}
}

func (s *customerService) GetByID(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) GetAll() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		customer.Name = input.Name
	}
	if input.Email != "" {
		customer.Email = input.Email
	}
	if input.Phone != "" {
		customer.Phone = input.Phone
	}
	if input.Address1 != "" {
		customer.Address1 = input.Address1
	}
	if input.Address2 != "" {
		customer.Address2 = input.Address2
	}
	if input.Address3 != "" {
		customer.Address3 = input.Address3
	}
	if input.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", input.BirthDate)
		if err != nil {
			return nil, err
		}
		customer.BirthDate = &birthDate
	}

	if imagestore.IsDataImage(input.PhotoBase64) {
		url, err := s.images.Upload(ctx, input.PhotoBase64, "mangan/customers/photos")
		if err != nil {
			return nil, err
		}
		customer.PhotoURL = url
	}
	if imagestore.IsDataImage(input.IDCardBase64) {
		url, err := s.images.Upload(ctx, input.IDCardBase64, "mangan/customers/id-cards")
		if err != nil {
			return nil, err
		}
		customer.IDCardURL = url
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
