package workers

import (
	"context"
	"time"

	"homepro_backend/internal/logger"
	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

type SubscriptionWorker struct {
	db *gorm.DB
}

func NewSubscriptionWorker(db *gorm.DB) *SubscriptionWorker {
	return &SubscriptionWorker{db: db}
}

// Start запускает фоновые задачи для подписок
func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.downgradeExpiredSubscriptions(ctx)
}

// downgradeExpiredSubscriptions возвращает истекшие подписки на бесплатный план
func (w *SubscriptionWorker) downgradeExpiredSubscriptions(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			result := w.db.Model(&models.Provider{}).
				Where("subscription_plan <> ? AND subscription_expires_at IS NOT NULL AND subscription_expires_at < ?",
					models.SubscriptionPlanNone, time.Now()).
				Updates(map[string]interface{}{
					"subscription_plan":       models.SubscriptionPlanNone,
					"subscription_expires_at": nil,
					"updated_at":              time.Now(),
				})
			if result.Error != nil {
				logger.WorkerLog("subscription", "downgrade_expired", result.Error)
				continue
			}
			if result.RowsAffected > 0 {
				logger.Info("Downgraded expired subscriptions", "count", result.RowsAffected)
			}
		}
	}
}
