package repository

import (
	"time"

	"mangan/internal/models"

	"gorm.io/gorm"
)

// PackageSales is a projection row for the best-seller listing: one catalog
// package together with how many order lines reference it.
type PackageSales struct {
	PackageID uint                   `json:"package_id"`
	Name      string                 `json:"name"`
	Price     int64                  `json:"price"`
	Type      models.PackageType     `json:"type"`
	Category  models.PackageCategory `json:"category"`
	UnitsSold int64                  `json:"units_sold"`
}

type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository

	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByTrackingCode(code string) (*models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	GetByStatus(status models.OrderStatus) ([]models.Order, error)
	GetAwaitingCourier() ([]models.Order, error)
	Update(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
	SetPaymentProof(id uint, url string) error
	DeleteWithLines(id uint) error

	Count() (int64, error)
	CountByStatus(status models.OrderStatus) (int64, error)
	SumDeliveredRevenue() (int64, error)
	GetDeliveredByYear(year int) ([]models.Order, error)
	TopPackages(limit int) ([]PackageSales, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Customer").
		Preload("PaymentMethod.Details").
		Preload("Lines.Package").
		Preload("Delivery.Courier").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByTrackingCode(code string) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Lines.Package").
		Preload("Delivery").
		Where("tracking_code = ?", code).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("PaymentMethod").
		Preload("Lines.Package").
		Preload("Delivery.Courier").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Customer").
		Preload("PaymentMethod").
		Preload("Lines.Package").
		Preload("Delivery.Courier").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Customer").
		Where("status = ?", status).
		Order("ordered_at asc").
		Find(&orders).Error
	return orders, err
}

// GetAwaitingCourier lists orders ready for dispatch that have no delivery row yet.
func (r *orderRepository) GetAwaitingCourier() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Customer").
		Preload("Lines.Package").
		Where("status = ?", models.OrderAwaitingCourier).
		Where("id NOT IN (?)", r.db.Model(&models.Delivery{}).Select("order_id")).
		Order("ordered_at asc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepository) SetPaymentProof(id uint, url string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_proof_url", url).Error
}

// DeleteWithLines removes an order and its lines in one transaction. Lines have
// no standalone delete path anywhere else.
func (r *orderRepository) DeleteWithLines(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) CountByStatus(status models.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// SumDeliveredRevenue totals paid-out orders; only delivered ones count as revenue.
func (r *orderRepository) SumDeliveredRevenue() (int64, error) {
	var total int64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepository) GetDeliveredByYear(year int) ([]models.Order, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var orders []models.Order
	err := r.db.
		Where("status = ?", models.OrderDelivered).
		Where("ordered_at >= ? AND ordered_at < ?", start, end).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) TopPackages(limit int) ([]PackageSales, error) {
	var rows []PackageSales
	err := r.db.Model(&models.OrderLine{}).
		Select("order_lines.package_id as package_id, packages.name as name, packages.price as price, packages.type as type, packages.category as category, COUNT(order_lines.id) as units_sold").
		Joins("JOIN packages ON packages.id = order_lines.package_id").
		Where("order_lines.deleted_at IS NULL").
		Group("order_lines.package_id, packages.name, packages.price, packages.type, packages.category").
		Order("units_sold desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
