package utils

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"eduportal/services"
)

// InitializeProgressScheduler sets up the nightly progress reconciliation.
// It recomputes every in-progress enrollment so percentages stay consistent
// after catalog edits that change a course's active material set.
func InitializeProgressScheduler(enrollments *services.EnrollmentService) *cron.Cron {
	log.Println("[PROGRESS-SCHEDULER] Initializing progress scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[PROGRESS-SCHEDULER] Running nightly progress reconciliation...")
		updated, err := enrollments.RefreshInProgressEnrollments(context.Background())
		if err != nil {
			log.Printf("[PROGRESS-SCHEDULER] Error refreshing enrollments: %v", err)
			return
		}
		log.Printf("[PROGRESS-SCHEDULER] Refreshed %d enrollments", updated)
	})

	c.Start()
	log.Println("[PROGRESS-SCHEDULER] Progress scheduler started - runs daily at 3 AM")
	return c
}
