package services

import (
	"context"
	"fmt"
	"testing"

	"mangan/internal/database"
	"mangan/internal/models"
	"mangan/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database with the real schema.
// Max one open connection so every query sees the same :memory: database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// fakeUploader satisfies imagestore.Uploader without talking to cloudinary.
type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) Upload(_ context.Context, _, folder string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://img.test/%s/%d.jpg", folder, f.uploads), nil
}

func (f *fakeUploader) Delete(_ context.Context, _ string) (bool, error) {
	return true, nil
}

type fixture struct {
	db        *gorm.DB
	images    *fakeUploader
	customer  *models.Customer
	courier   *models.StaffUser
	packages  []models.Package
	payments  PaymentService
	orders    OrderService
	delivery  DeliveryService
	dashboard DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)

	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	paymentRepo := repository.NewPaymentMethodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	images := &fakeUploader{}
	payments := NewPaymentService(paymentRepo, images)

	f := &fixture{
		db:        db,
		images:    images,
		payments:  payments,
		orders:    NewOrderService(db, orderRepo, packageRepo, payments, images),
		delivery:  NewDeliveryService(db, deliveryRepo, orderRepo, staffRepo, images),
		dashboard: NewDashboardService(orderRepo, customerRepo, packageRepo),
	}

	f.customer = &models.Customer{
		Name:         "Budi Santoso",
		Email:        "budi@example.com",
		PasswordHash: "x",
		Phone:        "081234567890",
		Address1:     "Jl. Merdeka No. 1, Surabaya",
	}
	if err := customerRepo.Create(f.customer); err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	f.courier = &models.StaffUser{
		Name:         "Kurir Satu",
		Email:        "kurir@example.com",
		PasswordHash: "x",
		Role:         models.RoleCourier,
	}
	if err := staffRepo.Create(f.courier); err != nil {
		t.Fatalf("failed to create test courier: %v", err)
	}

	f.packages = []models.Package{
		{Name: "Paket Pernikahan Gold", Type: models.PackageBuffet, Category: models.CategoryWedding, PaxCount: 500, Price: 100000},
		{Name: "Nasi Box Rapat", Type: models.PackageBox, Category: models.CategoryMeeting, PaxCount: 30, Price: 50000},
	}
	for i := range f.packages {
		if err := packageRepo.Create(&f.packages[i]); err != nil {
			t.Fatalf("failed to create test package: %v", err)
		}
	}

	if _, err := payments.CreateMethod("COD"); err != nil {
		t.Fatalf("failed to create payment method: %v", err)
	}

	return f
}

// placeOrder creates a valid two-line order and returns its id.
func (f *fixture) placeOrder(t *testing.T) *CreateOrderResult {
	t.Helper()
	result, err := f.orders.CreateOrder(f.customer.ID, []CartItem{
		{PackageID: f.packages[0].ID, Subtotal: f.packages[0].Price},
		{PackageID: f.packages[1].ID, Subtotal: f.packages[1].Price},
	}, "COD")
	if err != nil {
		t.Fatalf("failed to place order: %v", err)
	}
	return result
}

// advanceToAwaitingCourier walks a fresh order to the awaiting_courier state.
func (f *fixture) advanceToAwaitingCourier(t *testing.T, orderID uint) {
	t.Helper()
	if err := f.orders.ConfirmPayment(orderID); err != nil {
		t.Fatalf("failed to confirm payment: %v", err)
	}
	if err := f.orders.MarkReadyForCourier(orderID); err != nil {
		t.Fatalf("failed to mark ready for courier: %v", err)
	}
}
