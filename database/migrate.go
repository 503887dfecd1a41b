package database

import (
	"fmt"

	"homepro_backend/internal/logger"
	"homepro_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect открывает встроенную SQLite БД по указанному пути.
// Хендл не хранится глобально: жизненным циклом владеет вызывающий
// (app.Run открывает и закрывает, тесты используют ":memory:").
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite по умолчанию не проверяет внешние ключи
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей.
// Порядок важен: сателлиты и зависимые таблицы после своих родителей.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.Customer{},
		&models.ProviderService{},
		&models.ProviderPortfolioImage{},
		&models.Service{},
		&models.ServiceRequest{},
		&models.Review{},
		&models.DisputeEvidence{},
		&models.GamificationReward{},
		&models.Message{},
		&models.LeadPackageRow{},
		&models.Lead{},
		&models.LeadPurchase{},
		&models.PaymentMethod{},
		&models.PaymentTransaction{},
		&models.BackgroundCheck{},
		&models.BackgroundCheckConsent{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("✅ AutoMigrate completed")
	return nil
}

// Close закрывает подключение к БД
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
