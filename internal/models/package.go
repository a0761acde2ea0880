package models

import (
	"time"

	"gorm.io/gorm"
)

type Package struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Type        PackageType     `json:"type" gorm:"not null"`
	Category    PackageCategory `json:"category" gorm:"not null"`
	PaxCount    int             `json:"pax_count" gorm:"not null"`
	Price       int64           `json:"price" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	Photo1      string          `json:"photo1"`
	Photo2      string          `json:"photo2"`
	Photo3      string          `json:"photo3"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type PackageType string

const (
	PackageBuffet PackageType = "buffet"
	PackageBox    PackageType = "box"
)

type PackageCategory string

const (
	CategoryWedding   PackageCategory = "wedding"
	CategoryMemorial  PackageCategory = "memorial"
	CategoryBirthday  PackageCategory = "birthday"
	CategoryFieldTrip PackageCategory = "field_trip"
	CategoryMeeting   PackageCategory = "meeting"
)

func (t PackageType) Valid() bool {
	return t == PackageBuffet || t == PackageBox
}

func (c PackageCategory) Valid() bool {
	switch c {
	case CategoryWedding, CategoryMemorial, CategoryBirthday, CategoryFieldTrip, CategoryMeeting:
		return true
	}
	return false
}
