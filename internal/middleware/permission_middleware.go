package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

// DB diset dari main sebelum route dipasang; dipakai untuk cek permission.
var DB *gorm.DB

func Permission(requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		// Superadmin lewat tanpa cek permission
		if userRole == "Superadmin" {
			return c.Next()
		}

		var role model.Role
		if err := DB.Preload("Permissions").Where("name = ?", userRole).First(&role).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memvalidasi permission"})
		}

		for _, p := range role.Permissions {
			if p.Name == requiredPermission {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda tidak memiliki izin " + requiredPermission})
	}
}
