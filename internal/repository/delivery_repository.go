package repository

import (
	"mangan/internal/models"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	WithTx(tx *gorm.DB) DeliveryRepository

	Create(delivery *models.Delivery) error
	GetByID(id uint) (*models.Delivery, error)
	GetByOrderID(orderID uint) (*models.Delivery, error)
	GetByCourierID(courierID uint) ([]models.Delivery, error)
	GetActiveByCourierID(courierID uint) ([]models.Delivery, error)
	GetAll() ([]models.Delivery, error)
	Update(delivery *models.Delivery) error

	CountByCourier(courierID uint) (int64, error)
	CountByCourierAndStatus(courierID uint, status models.DeliveryStatus) (int64, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) WithTx(tx *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: tx}
}

func (r *deliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Create(delivery).Error
}

func (r *deliveryRepository) GetByID(id uint) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.Preload("Courier").First(&delivery, id).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) GetByOrderID(orderID uint) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.Where("order_id = ?", orderID).First(&delivery).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) GetByCourierID(courierID uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.
		Where("courier_id = ?", courierID).
		Order("created_at desc").
		Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) GetActiveByCourierID(courierID uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.
		Where("courier_id = ? AND status = ?", courierID, models.DeliveryShipping).
		Order("created_at desc").
		Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) GetAll() ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.Preload("Courier").Order("created_at desc").Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) Update(delivery *models.Delivery) error {
	return r.db.Save(delivery).Error
}

func (r *deliveryRepository) CountByCourier(courierID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Delivery{}).Where("courier_id = ?", courierID).Count(&count).Error
	return count, err
}

func (r *deliveryRepository) CountByCourierAndStatus(courierID uint, status models.DeliveryStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Delivery{}).
		Where("courier_id = ? AND status = ?", courierID, status).
		Count(&count).Error
	return count, err
}
