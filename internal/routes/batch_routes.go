package routes

import (
	"certification-backend/internal/handler"
	"certification-backend/internal/middleware"
	"certification-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupBatchRoutes: gelombang pelaksanaan sertifikasi beserta pesertanya.
func SetupBatchRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewBatchHandler(
		repository.NewBatchRepository(db),
		repository.NewEmployeeBatchRepository(db),
		repository.NewCertificationRuleRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewEligibilityRepository(db),
		repository.NewEmployeeCertificationRepository(db),
	)

	api := app.Group("/api/batches", middleware.Auth)
	api.Get("/paged", hdl.GetPaged)
	api.Get("/:id/participants", hdl.GetParticipants)
	api.Get("/:id/eligible", hdl.GetEligible)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/batches", middleware.Auth, middleware.Role("Superadmin", "PIC"))
	admin.Post("/", hdl.Create)
	admin.Put("/participants/:id/status", hdl.UpdateParticipantStatus)
	admin.Delete("/participants/:id", hdl.RemoveParticipant)
	admin.Post("/:id/participants/bulk", hdl.AddParticipantsBulk)
	admin.Post("/:id/participants/:employeeId", hdl.AddParticipant)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.SoftDelete)
}
