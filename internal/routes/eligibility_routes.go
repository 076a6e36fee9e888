package routes

import (
	"certification-backend/internal/eligibility"
	"certification-backend/internal/handler"
	"certification-backend/internal/mailer"
	"certification-backend/internal/middleware"
	"certification-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEligibilityRoutes(app *fiber.App, db *gorm.DB, mail *mailer.Mailer) {
	repo := repository.NewEligibilityRepository(db)
	rebuilder := eligibility.NewRebuilder(repo, mail)
	hdl := handler.NewEligibilityHandler(repo, rebuilder)

	api := app.Group("/api/employee-eligibility", middleware.Auth)
	api.Get("/paged", hdl.GetPaged)
	api.Get("/:id", hdl.GetByID)
	api.Post("/refresh", middleware.Role("Superadmin", "PIC"), hdl.Refresh)
	api.Put("/:id/toggle", middleware.Role("Superadmin", "PIC"), hdl.ToggleActive)
	api.Delete("/:id", middleware.Role("Superadmin"), hdl.SoftDelete)
}

func SetupExceptionRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewExceptionRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	ruleRepo := repository.NewCertificationRuleRepository(db)
	certRepo := repository.NewEmployeeCertificationRepository(db)
	eligibilityRepo := repository.NewEligibilityRepository(db)
	hdl := handler.NewExceptionHandler(repo, employeeRepo, ruleRepo, certRepo, eligibilityRepo)

	api := app.Group("/api/employee-eligibility/manual", middleware.Auth, middleware.Permission("manage_exceptions"))
	api.Get("/paged", hdl.GetPaged)
	api.Post("/", hdl.Create)
	api.Put("/:id/toggle", hdl.Toggle)
	api.Delete("/:id", hdl.Delete)
}
