package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentMethod struct {
	ID        uint                  `json:"id" gorm:"primaryKey"`
	Label     string                `json:"label" gorm:"unique;not null"`
	Details   []PaymentMethodDetail `json:"details,omitempty" gorm:"foreignKey:PaymentMethodID"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	DeletedAt gorm.DeletedAt        `json:"deleted_at" gorm:"index"`
}

type PaymentMethodDetail struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	PaymentMethodID uint           `json:"payment_method_id" gorm:"not null;index"`
	AccountNumber   string         `json:"account_number"`
	PayeeName       string         `json:"payee_name"`
	LogoURL         string         `json:"logo_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
