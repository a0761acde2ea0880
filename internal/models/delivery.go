package models

import (
	"time"

	"gorm.io/gorm"
)

// Delivery holds the courier-fulfillment record for a single order. The unique
// index on OrderID is what serializes two simultaneous courier assignments: the
// second insert fails at the storage layer instead of overwriting the first.
type Delivery struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	OrderID          uint           `json:"order_id" gorm:"uniqueIndex;not null"`
	CourierID        uint           `json:"courier_id" gorm:"not null;index"`
	Courier          *StaffUser     `json:"courier,omitempty" gorm:"foreignKey:CourierID"`
	DispatchedAt     time.Time      `json:"dispatched_at"`
	ArrivedAt        *time.Time     `json:"arrived_at"`
	Status           DeliveryStatus `json:"status" gorm:"not null;default:'shipping'"`
	DeliveryProofURL string         `json:"delivery_proof_url"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type DeliveryStatus string

const (
	DeliveryShipping  DeliveryStatus = "shipping"
	DeliveryDelivered DeliveryStatus = "delivered"
)
