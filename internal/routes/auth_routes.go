package routes

import (
	"certification-backend/internal/handler"
	"certification-backend/internal/mailer"
	"certification-backend/internal/middleware"
	"certification-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, mail *mailer.Mailer) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(userRepo, mail)

	app.Post("/api/auth/login", hdl.Login)
	app.Post("/api/auth/forgot-password", hdl.ForgotPassword)

	api := app.Group("/api/auth", middleware.Auth)
	api.Get("/profile", hdl.GetProfile)
	api.Put("/change-password", hdl.ChangePassword)
}

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	hdl := handler.NewUserHandler(userRepo, roleRepo)

	admin := app.Group("/api/admin/users", middleware.Auth, middleware.Role("Superadmin"))
	admin.Get("/", hdl.GetUsers)
	admin.Post("/", hdl.CreateUser)
	admin.Put("/:id/toggle", hdl.ToggleUser)
	admin.Delete("/:id", hdl.DeleteUser)

	roles := app.Group("/api/admin/roles", middleware.Auth, middleware.Role("Superadmin"))
	roles.Get("/", hdl.GetRoles)
	roles.Post("/", hdl.CreateRole)
	roles.Put("/:id", hdl.UpdateRole)
	roles.Delete("/:id", hdl.DeleteRole)
	roles.Get("/permissions", hdl.GetPermissions)
}

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	app.Get("/api/dashboard/stats", middleware.Auth, hdl.GetStats)
}
