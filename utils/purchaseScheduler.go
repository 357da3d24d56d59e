package utils

import (
	"log"
	"time"

	"github.com/sanjanathakeri/courseappone/config"
	"github.com/sanjanathakeri/courseappone/database"
	"github.com/sanjanathakeri/courseappone/models"

	"github.com/robfig/cron/v3"
)

// InitializePurchaseScheduler sets up the stale purchase cleanup job.
// A pending purchase holds the (user, course) slot; if the payment is
// never completed the row has to be removed so the user can retry.
func InitializePurchaseScheduler() *cron.Cron {
	log.Println("[PURCHASE-SCHEDULER] Initializing purchase scheduler...")

	c := cron.New()

	// Run hourly to drop pending purchases past their TTL
	c.AddFunc("0 * * * *", func() {
		log.Println("[PURCHASE-SCHEDULER] Running stale purchase cleanup...")
		ExpireStalePurchases()
	})

	c.Start()
	log.Println("[PURCHASE-SCHEDULER] Purchase scheduler started - runs hourly")
	return c
}

// ExpireStalePurchases hard-deletes pending purchases older than the
// configured TTL
func ExpireStalePurchases() {
	db := database.Database.Db
	ttl := time.Duration(config.AppConfig.PendingPurchaseTTLHours) * time.Hour
	cutoff := time.Now().Add(-ttl)

	// Unscoped delete: a soft-deleted row would still occupy the unique
	// (user_id, course_id) slot
	result := db.Unscoped().
		Where("status = ? AND created_at < ?", models.PurchaseStatusPending, cutoff).
		Delete(&models.Purchase{})
	if result.Error != nil {
		log.Printf("[PURCHASE-SCHEDULER] Error deleting stale purchases: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[PURCHASE-SCHEDULER] Deleted %d stale pending purchases", result.RowsAffected)
	}
}
