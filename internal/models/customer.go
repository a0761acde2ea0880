package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Phone        string         `json:"phone"`
	Address1     string         `json:"address1"`
	Address2     string         `json:"address2"`
	Address3     string         `json:"address3"`
	PhotoURL     string         `json:"photo_url"`
	IDCardURL    string         `json:"id_card_url"`
	BirthDate    *time.Time     `json:"birth_date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
