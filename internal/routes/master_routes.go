package routes

import (
	"certification-backend/internal/handler"
	"certification-backend/internal/middleware"
	"certification-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCatalogRoutes: master data sertifikasi (certification, level,
// sub bidang, jenis refreshment, lembaga).
func SetupCatalogRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewCatalogRepository(db)
	hdl := handler.NewCatalogHandler(repo)

	api := app.Group("/api/master", middleware.Auth)
	api.Get("/certifications", hdl.GetCertifications)
	api.Get("/certification-levels", hdl.GetLevels)
	api.Get("/sub-fields", hdl.GetSubFields)
	api.Get("/refreshment-types", hdl.GetRefreshmentTypes)
	api.Get("/institutions", hdl.GetInstitutions)

	admin := app.Group("/api/master", middleware.Auth, middleware.Role("Superadmin"))
	admin.Post("/certifications", hdl.CreateCertification)
	admin.Put("/certifications/:id", hdl.UpdateCertification)
	admin.Delete("/certifications/:id", hdl.DeleteCertification)

	admin.Post("/certification-levels", hdl.CreateLevel)
	admin.Put("/certification-levels/:id", hdl.UpdateLevel)
	admin.Delete("/certification-levels/:id", hdl.DeleteLevel)

	admin.Post("/sub-fields", hdl.CreateSubField)
	admin.Put("/sub-fields/:id", hdl.UpdateSubField)
	admin.Delete("/sub-fields/:id", hdl.DeleteSubField)

	admin.Post("/refreshment-types", hdl.CreateRefreshmentType)
	admin.Delete("/refreshment-types/:id", hdl.DeleteRefreshmentType)

	admin.Post("/institutions", hdl.CreateInstitution)
	admin.Put("/institutions/:id", hdl.UpdateInstitution)
	admin.Delete("/institutions/:id", hdl.DeleteInstitution)
}

// SetupOrganizationRoutes: struktur organisasi (regional, divisi, unit, jabatan).
func SetupOrganizationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewOrganizationRepository(db)
	hdl := handler.NewOrganizationHandler(repo)

	api := app.Group("/api/organization", middleware.Auth)
	api.Get("/regionals", hdl.GetRegionals)
	api.Get("/divisions", hdl.GetDivisions)
	api.Get("/units", hdl.GetUnits)
	api.Get("/job-positions", hdl.GetJobPositions)

	admin := app.Group("/api/organization", middleware.Auth, middleware.Role("Superadmin"))
	admin.Post("/regionals", hdl.CreateRegional)
	admin.Put("/regionals/:id", hdl.UpdateRegional)
	admin.Delete("/regionals/:id", hdl.DeleteRegional)

	admin.Post("/divisions", hdl.CreateDivision)
	admin.Put("/divisions/:id", hdl.UpdateDivision)
	admin.Delete("/divisions/:id", hdl.DeleteDivision)

	admin.Post("/units", hdl.CreateUnit)
	admin.Put("/units/:id", hdl.UpdateUnit)
	admin.Delete("/units/:id", hdl.DeleteUnit)

	admin.Post("/job-positions", hdl.CreateJobPosition)
	admin.Put("/job-positions/:id", hdl.UpdateJobPosition)
	admin.Delete("/job-positions/:id", hdl.DeleteJobPosition)
}
