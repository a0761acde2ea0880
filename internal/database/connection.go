package database

import (
	"fmt"

	"mangan/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for every entity, including the
// unique index on deliveries.order_id that enforces one delivery per order.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.StaffUser{},
		&models.Package{},
		&models.PaymentMethod{},
		&models.PaymentMethodDetail{},
		&models.Order{},
		&models.OrderLine{},
		&models.Delivery{},
	)
}
