package database

import (
	"fmt"
	"log"

	"github.com/mobishop/pos-api/internal/config"
	"github.com/mobishop/pos-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.InvoiceSequence{},
		&entity.ShopSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the default admin and shop settings
func SeedDefaultData(db *gorm.DB, cfg *config.AdminConfig) error {
	log.Println("Seeding default data...")

	var existing entity.User
	if err := db.Where("username = ?", cfg.Username).First(&existing).Error; err != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := entity.User{
			Username: cfg.Username,
			Password: string(hashedPassword),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Warning: failed to create admin user: %v", err)
		} else {
			log.Printf("Admin user created: %s", cfg.Username)
		}
	}

	var settings entity.ShopSettings
	if err := db.First(&settings).Error; err != nil {
		if err := db.Create(entity.DefaultShopSettings()).Error; err != nil {
			log.Printf("Warning: failed to create default settings: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
