package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"hadirku_backend/internals/features/attendance/qrtoken/service"
	"hadirku_backend/internals/helpers/dbtime"
)

// Satu menit lewat tengah malam, setelah token lama kedaluwarsa.
const DailyRotationSpec = "1 0 * * *"

func RegisterDailyRotation(c *cron.Cron, svc *service.QRService) (cron.EntryID, error) {
	return c.AddFunc(DailyRotationSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		tok, err := svc.Rotate(ctx, dbtime.NowInSchool())
		if err != nil {
			log.Printf("[CRON ERROR] rotasi QR: %v", err)
			return
		}
		log.Printf("[CRON] token QR baru berlaku sampai %s", tok.ExpiresAt.Format(time.RFC3339))
	})
}
