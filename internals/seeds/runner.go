package seeds

import (
	"log"

	"gorm.io/gorm"

	"hadirku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User demo
	if err := users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json"); err != nil {
		log.Printf("❌ Seed users gagal: %v", err)
	}
}
