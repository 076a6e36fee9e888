package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

// UserHandler melayani manajemen akun portal beserta role dan permission.
type UserHandler struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserHandler(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, roleRepo: roleRepo}
}

type CreateUserRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
	Email      string `json:"email" validate:"omitempty,email"`
	RoleID     uint   `json:"roleId" validate:"required"`
	EmployeeID *uint  `json:"employeeId"`
}

// --- Users ---

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil users"})
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if existing, err := h.userRepo.FindByUsername(req.Username); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username sudah terdaftar"})
	}
	if _, err := h.roleRepo.GetByID(req.RoleID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role tidak ditemukan"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}

	user := model.User{
		Username:   req.Username,
		Password:   string(hashedPassword),
		Email:      req.Email,
		RoleID:     req.RoleID,
		EmployeeID: req.EmployeeID,
		IsActive:   true,
	}
	if err := h.userRepo.Create(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat user"})
	}

	created, err := h.userRepo.GetByID(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat user"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *UserHandler) ToggleUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	user, err := h.userRepo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	user.IsActive = !user.IsActive
	if err := h.userRepo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status user"})
	}
	return c.JSON(user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.userRepo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus user"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Roles ---

type RoleRequest struct {
	Name          string `json:"name" validate:"required"`
	PermissionIDs []uint `json:"permissionIds"`
}

func (h *UserHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roleRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil roles"})
	}
	return c.JSON(fiber.Map{"data": roles})
}

func (h *UserHandler) CreateRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if existing, err := h.roleRepo.FindByName(req.Name); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Role sudah ada"})
	}

	role := model.Role{Name: req.Name}
	for _, pid := range req.PermissionIDs {
		role.Permissions = append(role.Permissions, model.Permission{Model: gorm.Model{ID: pid}})
	}

	if err := h.roleRepo.Create(&role); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat role"})
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	role, err := h.roleRepo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role tidak ditemukan"})
	}

	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Name != "" {
		role.Name = req.Name
	}
	role.Permissions = nil
	for _, pid := range req.PermissionIDs {
		role.Permissions = append(role.Permissions, model.Permission{Model: gorm.Model{ID: pid}})
	}

	if err := h.roleRepo.Update(role); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update role"})
	}
	return c.JSON(role)
}

func (h *UserHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.roleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus role"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) GetPermissions(c *fiber.Ctx) error {
	perms, err := h.roleRepo.GetPermissions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil permissions"})
	}
	return c.JSON(fiber.Map{"data": perms})
}
