package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderLine rows are immutable once created; they are written together with
// their parent Order and only go away when the order itself is deleted.
type OrderLine struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"not null;index"`
	PackageID uint           `json:"package_id" gorm:"not null;index"`
	Package   *Package       `json:"package,omitempty" gorm:"foreignKey:PackageID"`
	Subtotal  int64          `json:"subtotal" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
