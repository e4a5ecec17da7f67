package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled inventory jobs. Currently a single daily
// replenishment summary so operators see stock-outs without polling.
type CronService struct {
	cron    *cron.Cron
	reports *ReportService
}

// NewCronService creates a new cron service.
func NewCronService(reports *ReportService) *CronService {
	return &CronService{
		cron:    cron.New(),
		reports: reports,
	}
}

// Start schedules and launches the jobs.
func (s *CronService) Start() {
	// Replenishment summary at 07:00 daily
	if _, err := s.cron.AddFunc("0 7 * * *", s.logReplenishmentSummary); err != nil {
		log.Printf("❌ Failed to schedule replenishment summary: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 CronService started (daily replenishment summary at 07:00)")
}

// Stop stops the scheduler, waiting for a running job to finish.
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
		log.Println("⚠️ CronService stop timed out")
	}
	log.Println("🛑 CronService stopped")
}

func (s *CronService) logReplenishmentSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := s.reports.CriticalProducts(ctx)
	if err != nil {
		log.Printf("❌ Replenishment summary query error: %v", err)
		return
	}

	totalNeed := 0
	for _, product := range products {
		totalNeed += product.PurchaseNeed
	}

	log.Printf("📦 Replenishment summary: %d critical products, total purchase need %d units", len(products), totalNeed)
}
