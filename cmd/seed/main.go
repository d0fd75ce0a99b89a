package main

import (
	"log"

	"hadirku_backend/internals/configs"
	database "hadirku_backend/internals/databases"
	"hadirku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	db := configs.InitSeederDB()

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	seeds.RunAllSeeds(db)
}
