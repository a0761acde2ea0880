package services

import (
	"errors"

	"mangan/internal/models"
	"mangan/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateStaffInput struct {
	Name     string           `json:"name" binding:"required,min=2,max=30"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=6"`
	Role     models.StaffRole `json:"role" binding:"required"`
}

// StaffService manages the fixed-role staff accounts. The role is set once at
// creation and never changed afterwards.
type StaffService interface {
	CreateStaff(input CreateStaffInput) (*models.StaffUser, error)
	GetByID(id uint) (*models.StaffUser, error)
	GetAll() ([]models.StaffUser, error)
	GetCouriers() ([]models.StaffUser, error)
	UpdateStaff(id uint, name, email, password string) (*models.StaffUser, error)
	DeleteStaff(id uint) error
}

type staffService struct {
	staffRepo repository.StaffUserRepository
}

func NewStaffService(staffRepo repository.StaffUserRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) CreateStaff(input CreateStaffInput) (*models.StaffUser, error) {
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	_, err := s.staffRepo.GetByEmail(input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	staff := &models.StaffUser{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.staffRepo.Create(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) GetByID(id uint) (*models.StaffUser, error) {
	return s.staffRepo.GetByID(id)
}

func (s *staffService) GetAll() ([]models.StaffUser, error) {
	return s.staffRepo.GetAll()
}

func (s *staffService) GetCouriers() ([]models.StaffUser, error) {
	return s.staffRepo.GetByRole(models.RoleCourier)
}

func (s *staffService) UpdateStaff(id uint, name, email, password string) (*models.StaffUser, error) {
	staff, err := s.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		staff.Name = name
	}
	if email != "" {
		staff.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, err
		}
		staff.PasswordHash = string(hash)
	}

	if err := s.staffRepo.Update(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) DeleteStaff(id uint) error {
	return s.staffRepo.Delete(id)
}
