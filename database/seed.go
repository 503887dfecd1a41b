package database

import (
	"fmt"
	"time"

	"homepro_backend/internal/auth"
	"homepro_backend/internal/logger"
	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"

	"gorm.io/gorm"
)

// SeedDatabase заливает демо-данные. Идемпотентность обеспечивает один
// guard: если в users уже есть строки, заливка пропускается целиком
// (частичный re-seed не детектируется).
// defaultPassword - единый пароль всех демо-аккаунтов; это dev-фикстура,
// не продакшен-путь.
func SeedDatabase(db *gorm.DB, defaultPassword string) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("seed guard query failed: %w", err)
	}

	if userCount > 0 {
		logger.Info("Database already seeded, skipping")
		return nil
	}

	logger.Info("Seeding database with demo data...")

	passwordHash, err := auth.HashPassword(defaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	// Порядок важен для внешних ключей:
	// services -> providers(+users) -> customers(+users) -> reviews ->
	// service_requests -> messages -> gamification_rewards -> lead_packages ->
	// lead_purchases -> payment_methods -> payment_transactions ->
	// background_checks -> leads
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedServices(tx); err != nil {
			return err
		}
		if err := seedProviders(tx, passwordHash); err != nil {
			return err
		}
		if err := seedCustomers(tx, passwordHash); err != nil {
			return err
		}
		if err := seedReviews(tx); err != nil {
			return err
		}
		if err := seedServiceRequests(tx); err != nil {
			return err
		}
		if err := seedMessages(tx); err != nil {
			return err
		}
		if err := seedGamificationRewards(tx); err != nil {
			return err
		}
		if err := seedLeadPackages(tx); err != nil {
			return err
		}
		if err := seedLeadPurchases(tx); err != nil {
			return err
		}
		if err := seedPaymentMethods(tx); err != nil {
			return err
		}
		if err := seedPaymentTransactions(tx); err != nil {
			return err
		}
		if err := seedBackgroundChecks(tx); err != nil {
			return err
		}
		if err := seedLeads(tx); err != nil {
			return err
		}

		logger.Info("✅ Database seeded")
		return nil
	})
}

func seedServices(tx *gorm.DB) error {
	return tx.Create(seedServiceCatalog).Error
}

func seedProviders(tx *gorm.DB, passwordHash string) error {
	for i := range seedProviderUsers {
		user := seedProviderUsers[i]
		user.PasswordHash = passwordHash
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("seed provider user %s: %w", user.Email, err)
		}
	}
	for i := range seedProviderProfiles {
		if err := tx.Create(&seedProviderProfiles[i]).Error; err != nil {
			return fmt.Errorf("seed provider profile %s: %w", seedProviderProfiles[i].UserID, err)
		}
	}
	return nil
}

func seedCustomers(tx *gorm.DB, passwordHash string) error {
	for i := range seedCustomerUsers {
		user := seedCustomerUsers[i]
		user.PasswordHash = passwordHash
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("seed customer user %s: %w", user.Email, err)
		}
	}
	return tx.Create(seedCustomerProfiles).Error
}

func seedReviews(tx *gorm.DB) error {
	return tx.Create(seedReviewRows).Error
}

func seedServiceRequests(tx *gorm.DB) error {
	return tx.Create(seedServiceRequestRows).Error
}

func seedMessages(tx *gorm.DB) error {
	return tx.Create(seedMessageRows).Error
}

func seedGamificationRewards(tx *gorm.DB) error {
	return tx.Create(seedRewardRows).Error
}

// seedLeadPackages заливает каталог из internal/pricing.
// Исходная демо-фикстура расходилась с собственным каталогом цен;
// каталог авторитетен, поэтому сидим из него.
func seedLeadPackages(tx *gorm.DB) error {
	rows := make([]models.LeadPackageRow, 0, len(pricing.LeadPackages))
	for _, pkg := range pricing.LeadPackages {
		rows = append(rows, models.LeadPackageRow{
			ID:                pkg.ID,
			Name:              pkg.Name,
			LeadsCount:        pkg.LeadsCount,
			Price:             pkg.Price,
			Duration:          pkg.Duration,
			SavingsPercentage: pkg.SavingsPercentage,
		})
	}
	return tx.Create(rows).Error
}

func seedLeadPurchases(tx *gorm.DB) error {
	return tx.Create(seedLeadPurchaseRows).Error
}

func seedPaymentMethods(tx *gorm.DB) error {
	return tx.Create(seedPaymentMethodRows).Error
}

func seedPaymentTransactions(tx *gorm.DB) error {
	return tx.Create(seedPaymentTransactionRows).Error
}

func seedBackgroundChecks(tx *gorm.DB) error {
	return tx.Create(seedBackgroundCheckRows).Error
}

func seedLeads(tx *gorm.DB) error {
	return tx.Create(seedLeadRows).Error
}

func daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

func daysAgoPtr(days int) *time.Time {
	t := daysAgo(days)
	return &t
}
