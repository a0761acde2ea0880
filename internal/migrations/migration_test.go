package migrations

import (
	"testing"

	"mangan/internal/database"
	"mangan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestSeedDefaults(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedDefaults(db))

	var staffCount, methodCount int64
	require.NoError(t, db.Model(&models.StaffUser{}).Count(&staffCount).Error)
	require.NoError(t, db.Model(&models.PaymentMethod{}).Count(&methodCount).Error)
	assert.Equal(t, int64(3), staffCount)
	assert.Equal(t, int64(3), methodCount)

	var admin models.StaffUser
	require.NoError(t, db.Where("email = ?", "admin@mangan.id").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedDefaults(db))
	require.NoError(t, SeedDefaults(db))

	var staffCount, methodCount int64
	require.NoError(t, db.Model(&models.StaffUser{}).Count(&staffCount).Error)
	require.NoError(t, db.Model(&models.PaymentMethod{}).Count(&methodCount).Error)
	assert.Equal(t, int64(3), staffCount)
	assert.Equal(t, int64(3), methodCount)
}

func TestSeedDefaultsKeepsExistingRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDefaults(db))

	var admin models.StaffUser
	require.NoError(t, db.Where("email = ?", "admin@mangan.id").First(&admin).Error)
	originalHash := admin.PasswordHash

	// A later boot must not reset a changed password.
	require.NoError(t, db.Model(&admin).Update("password_hash", "changed").Error)
	require.NoError(t, SeedDefaults(db))

	require.NoError(t, db.First(&admin, admin.ID).Error)
	assert.Equal(t, "changed", admin.PasswordHash)
	assert.NotEqual(t, originalHash, admin.PasswordHash)
}
