package repository

import (
	"mangan/internal/models"

	"gorm.io/gorm"
)

type StaffUserRepository interface {
	Create(user *models.StaffUser) error
	GetByID(id uint) (*models.StaffUser, error)
	GetByEmail(email string) (*models.StaffUser, error)
	GetAll() ([]models.StaffUser, error)
	GetByRole(role models.StaffRole) ([]models.StaffUser, error)
	Update(user *models.StaffUser) error
	Delete(id uint) error
}

type staffUserRepository struct {
	db *gorm.DB
}

func NewStaffUserRepository(db *gorm.DB) StaffUserRepository {
	return &staffUserRepository{db: db}
}

func (r *staffUserRepository) Create(user *models.StaffUser) error {
	return r.db.Create(user).Error
}

func (r *staffUserRepository) GetByID(id uint) (*models.StaffUser, error) {
	var user models.StaffUser
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *staffUserRepository) GetByEmail(email string) (*models.StaffUser, error) {
	var user models.StaffUser
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *staffUserRepository) GetAll() ([]models.StaffUser, error) {
	var users []models.StaffUser
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *staffUserRepository) GetByRole(role models.StaffRole) ([]models.StaffUser, error) {
	var users []models.StaffUser
	err := r.db.Where("role = ?", role).Find(&users).Error
	return users, err
}

func (r *staffUserRepository) Update(user *models.StaffUser) error {
	return r.db.Save(user).Error
}

func (r *staffUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.StaffUser{}, id).Error
}
