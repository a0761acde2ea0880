package repository

import (
	"mangan/internal/models"

	"gorm.io/gorm"
)

type PaymentMethodRepository interface {
	Create(method *models.PaymentMethod) error
	GetByID(id uint) (*models.PaymentMethod, error)
	GetByLabel(label string) (*models.PaymentMethod, error)
	GetAll() ([]models.PaymentMethod, error)
	Update(method *models.PaymentMethod) error
	Delete(id uint) error

	CreateDetail(detail *models.PaymentMethodDetail) error
	GetDetailByID(id uint) (*models.PaymentMethodDetail, error)
	UpdateDetail(detail *models.PaymentMethodDetail) error
	DeleteDetail(id uint) error
}

type paymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) Create(method *models.PaymentMethod) error {
	return r.db.Create(method).Error
}

func (r *paymentMethodRepository) GetByID(id uint) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := r.db.Preload("Details").First(&method, id).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *paymentMethodRepository) GetByLabel(label string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := r.db.Where("label = ?", label).First(&method).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *paymentMethodRepository) GetAll() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.db.Preload("Details").Order("created_at desc").Find(&methods).Error
	return methods, err
}

func (r *paymentMethodRepository) Update(method *models.PaymentMethod) error {
	return r.db.Save(method).Error
}

func (r *paymentMethodRepository) Delete(id uint) error {
	return r.db.Delete(&models.PaymentMethod{}, id).Error
}

func (r *paymentMethodRepository) CreateDetail(detail *models.PaymentMethodDetail) error {
	return r.db.Create(detail).Error
}

func (r *paymentMethodRepository) GetDetailByID(id uint) (*models.PaymentMethodDetail, error) {
	var detail models.PaymentMethodDetail
	err := r.db.First(&detail, id).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *paymentMethodRepository) UpdateDetail(detail *models.PaymentMethodDetail) error {
	return r.db.Save(detail).Error
}

func (r *paymentMethodRepository) DeleteDetail(id uint) error {
	return r.db.Delete(&models.PaymentMethodDetail{}, id).Error
}
