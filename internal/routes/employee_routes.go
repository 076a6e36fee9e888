package routes

import (
	"certification-backend/internal/handler"
	"certification-backend/internal/middleware"
	"certification-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(repo)

	api := app.Group("/api/employees", middleware.Auth)
	api.Get("/paged", hdl.GetPaged)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/employees", middleware.Auth, middleware.Role("Superadmin", "PIC"))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.SoftDelete)
}

func SetupEmployeeCertificationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeCertificationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	ruleRepo := repository.NewCertificationRuleRepository(db)
	hdl := handler.NewEmployeeCertificationHandler(repo, employeeRepo, ruleRepo)

	api := app.Group("/api/employee-certifications", middleware.Auth)
	api.Get("/employee/:employeeId", hdl.GetByEmployee)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/employee-certifications", middleware.Auth, middleware.Permission("upload_certificates"))
	admin.Post("/employee/:employeeId/rule/:ruleId", hdl.Create)
	admin.Put("/:id/file", hdl.ReuploadFile)
	admin.Delete("/:id", hdl.SoftDelete)
}
