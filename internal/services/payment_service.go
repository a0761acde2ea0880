package services

import (
	"context"
	"errors"

	"mangan/internal/models"
	"mangan/internal/repository"
	"mangan/pkg/imagestore"

	"gorm.io/gorm"
)

type PaymentService interface {
	// ResolveMethod finds a payment method by its exact label, creating it on a
	// miss, and returns the resolved id. It is the one deliberate
	// write-on-read in the system; it runs in its own transaction boundary,
	// outside the order-creation transaction.
	ResolveMethod(label string) (uint, error)

	CreateMethod(label string) (*models.PaymentMethod, error)
	UpdateMethod(id uint, label string) error
	DeleteMethod(id uint) error
	GetAllMethods() ([]models.PaymentMethod, error)
	GetMethodByID(id uint) (*models.PaymentMethod, error)

	AddDetail(ctx context.Context, methodID uint, accountNumber, payeeName, logoBase64 string) error
	UpdateDetail(ctx context.Context, id uint, accountNumber, payeeName, logoBase64 string) error
	DeleteDetail(id uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentMethodRepository
	images      imagestore.Uploader
}

func NewPaymentService(paymentRepo repository.PaymentMethodRepository, images imagestore.Uploader) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, images: images}
}

func (s *paymentService) ResolveMethod(label string) (uint, error) {
	method, err := s.paymentRepo.GetByLabel(label)
	if err == nil {
		return method.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	created := &models.PaymentMethod{Label: label}
	if err := s.paymentRepo.Create(created); err != nil {
		return 0, err
	}
	logger.Info().Str("label", label).Uint("id", created.ID).Msg("created payment method on first use")
	return created.ID, nil
}

func (s *paymentService) CreateMethod(label string) (*models.PaymentMethod, error) {
	method := &models.PaymentMethod{Label: label}
	if err := s.paymentRepo.Create(method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *paymentService) UpdateMethod(id uint, label string) error {
	method, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	method.Label = label
	return s.paymentRepo.Update(method)
}

func (s *paymentService) DeleteMethod(id uint) error {
	return s.paymentRepo.Delete(id)
}

func (s *paymentService) GetAllMethods() ([]models.PaymentMethod, error) {
	return s.paymentRepo.GetAll()
}

func (s *paymentService) GetMethodByID(id uint) (*models.PaymentMethod, error) {
	return s.paymentRepo.GetByID(id)
}

func (s *paymentService) AddDetail(ctx context.Context, methodID uint, accountNumber, payeeName, logoBase64 string) error {
	if _, err := s.paymentRepo.GetByID(methodID); err != nil {
		return err
	}

	detail := &models.PaymentMethodDetail{
		PaymentMethodID: methodID,
		AccountNumber:   accountNumber,
		PayeeName:       payeeName,
	}
	if imagestore.IsDataImage(logoBase64) {
		url, err := s.images.Upload(ctx, logoBase64, "mangan/payments")
		if err != nil {
			return err
		}
		detail.LogoURL = url
	}
	return s.paymentRepo.CreateDetail(detail)
}

func (s *paymentService) UpdateDetail(ctx context.Context, id uint, accountNumber, payeeName, logoBase64 string) error {
	detail, err := s.paymentRepo.GetDetailByID(id)
	if err != nil {
		return err
	}
	if accountNumber != "" {
		detail.AccountNumber = accountNumber
	}
	if payeeName != "" {
		detail.PayeeName = payeeName
	}
	if imagestore.IsDataImage(logoBase64) {
		url, err := s.images.Upload(ctx, logoBase64, "mangan/payments")
		if err != nil {
			return err
		}
		detail.LogoURL = url
	}
	return s.paymentRepo.UpdateDetail(detail)
}

func (s *paymentService) DeleteDetail(id uint) error {
	return s.paymentRepo.DeleteDetail(id)
}
