package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"certification-backend/config"
	"certification-backend/internal/database"
)

func main() {
	fmt.Println("Memulai Database Seeding...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)

	fmt.Println("Seeding selesai!")
}
