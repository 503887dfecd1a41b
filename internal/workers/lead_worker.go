package workers

import (
	"context"
	"time"

	"homepro_backend/internal/logger"
	"homepro_backend/internal/repositories"

	"gorm.io/gorm"
)

// leadTTL - время жизни непроданного лида
const leadTTL = 7 * 24 * time.Hour

type LeadWorker struct {
	db       *gorm.DB
	leadRepo repositories.LeadRepository
}

func NewLeadWorker(db *gorm.DB, leadRepo repositories.LeadRepository) *LeadWorker {
	return &LeadWorker{db: db, leadRepo: leadRepo}
}

// Start запускает фоновые задачи для лидов
func (w *LeadWorker) Start(ctx context.Context) {
	go w.expireStaleLeads(ctx)
}

// expireStaleLeads помечает залежавшиеся лиды как истекшие
func (w *LeadWorker) expireStaleLeads(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Lead worker stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-leadTTL)
			expired, err := w.leadRepo.ExpireLeadsOlderThan(w.db, cutoff)
			if err != nil {
				logger.WorkerLog("lead", "expire_stale_leads", err)
				continue
			}
			if expired > 0 {
				logger.Info("Expired stale leads", "count", expired)
			}
		}
	}
}
