package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	CustomerID      uint           `json:"customer_id" gorm:"not null;index"`
	Customer        *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	PaymentMethodID uint           `json:"payment_method_id" gorm:"not null"`
	PaymentMethod   *PaymentMethod `json:"payment_method,omitempty" gorm:"foreignKey:PaymentMethodID"`
	TrackingCode    string         `json:"tracking_code" gorm:"unique;not null"`
	OrderedAt       time.Time      `json:"ordered_at" gorm:"not null"`
	TotalAmount     int64          `json:"total_amount" gorm:"not null"`
	Status          OrderStatus    `json:"status" gorm:"not null;default:'awaiting_confirmation'"`
	PaymentProofURL string         `json:"payment_proof_url"`
	Lines           []OrderLine    `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
	Delivery        *Delivery      `json:"delivery,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderProcessing           OrderStatus = "processing"
	OrderAwaitingCourier      OrderStatus = "awaiting_courier"
	OrderShipping             OrderStatus = "shipping"
	OrderDelivered            OrderStatus = "delivered"
	OrderCancelled            OrderStatus = "cancelled"
)

// orderTransitions is the canonical lifecycle:
// awaiting_confirmation -> processing -> awaiting_courier -> shipping -> delivered,
// with cancelled reachable from every state before delivered.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderAwaitingConfirmation: {OrderProcessing, OrderCancelled},
	OrderProcessing:           {OrderAwaitingCourier, OrderCancelled},
	OrderAwaitingCourier:      {OrderShipping, OrderCancelled},
	OrderShipping:             {OrderDelivered, OrderCancelled},
	OrderDelivered:            {},
	OrderCancelled:            {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to target is a legal lifecycle step.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
