package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	helpersAuth "hadirku_backend/internals/helpers/auth"
)

const BlacklistCleanupSpec = "15 2 * * *"

// RegisterBlacklistCleanup: hapus baris token_blacklist yang sudah expired tiap malam.
func RegisterBlacklistCleanup(c *cron.Cron, db *gorm.DB) (cron.EntryID, error) {
	return c.AddFunc(BlacklistCleanupSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := helpersAuth.PurgeExpired(ctx, db)
		if err != nil {
			log.Printf("[CLEANUP ERROR] token_blacklist: %v", err)
			return
		}
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	})
}
