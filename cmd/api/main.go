package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"certification-backend/config"
	"certification-backend/internal/mailer"
	"certification-backend/internal/middleware"
	"certification-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()
	middleware.DB = config.DB

	mail := mailer.NewFromEnv()

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve file sertifikat yang diupload
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB, mail)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupOrganizationRoutes(app, config.DB)
	routes.SetupCatalogRoutes(app, config.DB)
	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupEmployeeCertificationRoutes(app, config.DB)
	routes.SetupCertificationRuleRoutes(app, config.DB)
	routes.SetupJobMappingRoutes(app, config.DB)
	routes.SetupHistoryRoutes(app, config.DB)
	routes.SetupBatchRoutes(app, config.DB)
	routes.SetupEligibilityRoutes(app, config.DB, mail)
	routes.SetupExceptionRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Printf("Server siap! Menunggu request di port :%s\n", port)
	app.Listen(":" + port)
}
