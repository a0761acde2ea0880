package services

import (
	"testing"

	"mangan/internal/models"
	"mangan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newStaffFixture(t *testing.T) StaffService {
	t.Helper()
	return NewStaffService(repository.NewStaffUserRepository(setupTestDB(t)))
}

func TestCreateStaff(t *testing.T) {
	svc := newStaffFixture(t)

	staff, err := svc.CreateStaff(CreateStaffInput{
		Name:     "Kurir Dua",
		Email:    "kurir2@mangan.id",
		Password: "password123",
		Role:     models.RoleCourier,
	})
	require.NoError(t, err)
	assert.NotZero(t, staff.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte("password123")))

	_, err = svc.CreateStaff(CreateStaffInput{
		Name:     "Kurir Tiga",
		Email:    "kurir2@mangan.id",
		Password: "password123",
		Role:     models.RoleCourier,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	svc := newStaffFixture(t)

	_, err := svc.CreateStaff(CreateStaffInput{
		Name:     "Tamu",
		Email:    "tamu@mangan.id",
		Password: "password123",
		Role:     models.StaffRole("intern"),
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateStaffNeverChangesRole(t *testing.T) {
	svc := newStaffFixture(t)

	staff, err := svc.CreateStaff(CreateStaffInput{
		Name:     "Owner Mangan",
		Email:    "owner@mangan.id",
		Password: "password123",
		Role:     models.RoleOwner,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStaff(staff.ID, "New Name", "", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "owner@mangan.id", updated.Email)
	assert.Equal(t, models.RoleOwner, updated.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpassword")))
}

func TestGetCouriers(t *testing.T) {
	svc := newStaffFixture(t)

	for _, in := range []CreateStaffInput{
		{Name: "Admin", Email: "a@mangan.id", Password: "password123", Role: models.RoleAdmin},
		{Name: "Kurir A", Email: "ka@mangan.id", Password: "password123", Role: models.RoleCourier},
		{Name: "Kurir B", Email: "kb@mangan.id", Password: "password123", Role: models.RoleCourier},
	} {
		_, err := svc.CreateStaff(in)
		require.NoError(t, err)
	}

	couriers, err := svc.GetCouriers()
	require.NoError(t, err)
	require.Len(t, couriers, 2)
	for _, c := range couriers {
		assert.Equal(t, models.RoleCourier, c.Role)
	}
}
