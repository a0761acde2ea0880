package migrations

import (
	"errors"

	"mangan/internal/models"
	"mangan/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaults creates the default staff accounts and payment methods on a
// fresh database. Safe to run on every boot; existing rows are left alone.
func SeedDefaults(db *gorm.DB) error {
	if err := seedStaff(db); err != nil {
		return err
	}
	return seedPaymentMethods(db)
}

func seedStaff(db *gorm.DB) error {
	staffRepo := repository.NewStaffUserRepository(db)

	defaults := []struct {
		name  string
		email string
		role  models.StaffRole
	}{
		{"Admin Mangan", "admin@mangan.id", models.RoleAdmin},
		{"Owner Mangan", "owner@mangan.id", models.RoleOwner},
		{"Kurir Mangan", "kurir@mangan.id", models.RoleCourier},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, d := range defaults {
		_, err := staffRepo.GetByEmail(d.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		staff := &models.StaffUser{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
		}
		if err := staffRepo.Create(staff); err != nil {
			return err
		}
	}
	return nil
}

func seedPaymentMethods(db *gorm.DB) error {
	paymentRepo := repository.NewPaymentMethodRepository(db)

	for _, label := range []string{"COD", "Transfer Bank - BCA", "Transfer Bank - Mandiri"} {
		_, err := paymentRepo.GetByLabel(label)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := paymentRepo.Create(&models.PaymentMethod{Label: label}); err != nil {
			return err
		}
	}
	return nil
}
