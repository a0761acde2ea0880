package main

import (
	"fmt"
	"log"

	"mangan/internal/config"
	"mangan/internal/database"
	"mangan/internal/migrations"
	"mangan/internal/models"
)

// Resets the schema and reseeds default data. Development use only.
func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Delivery{},
		&models.OrderLine{},
		&models.Order{},
		&models.PaymentMethodDetail{},
		&models.PaymentMethod{},
		&models.Package{},
		&models.StaffUser{},
		&models.Customer{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	fmt.Println("Recreating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding default data...")
	if err := migrations.SeedDefaults(db); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	fmt.Println("Database initialized successfully!")
	fmt.Println("Default staff login: admin@mangan.id / password123")
}
