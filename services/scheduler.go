package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[OTP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeOTPScheduler starts the periodic sweep that purges expired OTP
// records. The sweep is a safety net; expired codes are already unusable, it
// just keeps the table from growing.
func InitializeOTPScheduler(svc *OTPService) *cron.Cron {
	c := cron.New()

	// Every 5 minutes
	c.AddFunc("*/5 * * * *", func() {
		deleted, err := svc.CleanupExpired()
		if err != nil {
			logScheduler("Error cleaning up expired OTPs: " + err.Error())
			return
		}
		if deleted > 0 {
			logScheduler("Purged expired OTP records")
		}
	})

	c.Start()
	logScheduler("OTP cleanup scheduler started - runs every 5 minutes")
	return c
}
