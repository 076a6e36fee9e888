package routes

import (
	"certification-backend/internal/handler"
	"certification-backend/internal/middleware"
	"certification-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCertificationRuleRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewCertificationRuleRepository(db)
	hdl := handler.NewCertificationRuleHandler(repo, repository.NewHistoryRepository(db))

	api := app.Group("/api/certification-rules", middleware.Auth)
	api.Get("/paged", hdl.GetPaged)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/certification-rules", middleware.Auth, middleware.Role("Superadmin", "PIC"))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Put("/:id/toggle", hdl.Toggle)
	admin.Delete("/:id", hdl.SoftDelete)
}

func SetupJobMappingRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewJobCertificationMappingRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	ruleRepo := repository.NewCertificationRuleRepository(db)
	hdl := handler.NewJobMappingHandler(repo, orgRepo, ruleRepo, repository.NewHistoryRepository(db))

	api := app.Group("/api/job-certification-mappings", middleware.Auth)
	api.Get("/paged", hdl.GetPaged)
	api.Get("/job/:jobId", hdl.GetByJobPosition)

	admin := app.Group("/api/job-certification-mappings", middleware.Auth, middleware.Role("Superadmin", "PIC"))
	admin.Post("/", hdl.Create)
	admin.Put("/:id/toggle", hdl.Toggle)
	admin.Delete("/:id", hdl.SoftDelete)
}

// SetupHistoryRoutes: riwayat perubahan rule dan mapping (read only).
func SetupHistoryRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewHistoryHandler(repository.NewHistoryRepository(db))

	ruleAPI := app.Group("/api/certification-rule-histories", middleware.Auth)
	ruleAPI.Get("/paged", hdl.GetRuleHistories)

	mappingAPI := app.Group("/api/job-mapping-histories", middleware.Auth)
	mappingAPI.Get("/paged", hdl.GetMappingHistories)
}
