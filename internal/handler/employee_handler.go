package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

type EmployeeRequest struct {
	NIP           string     `json:"nip" validate:"required"`
	Name          string     `json:"name" validate:"required"`
	Email         string     `json:"email" validate:"omitempty,email"`
	JoinDate      *time.Time `json:"joinDate"`
	EffectiveDate *time.Time `json:"effectiveDate"`
	JobPositionID *uint      `json:"jobPositionId"`
	UnitID        *uint      `json:"unitId"`
	IsActive      *bool      `json:"isActive"`
}

type EmployeeResponse struct {
	ID              uint       `json:"id"`
	NIP             string     `json:"nip"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PhotoURL        string     `json:"photoUrl"`
	JoinDate        *time.Time `json:"joinDate"`
	EffectiveDate   *time.Time `json:"effectiveDate"`
	JobPositionID   *uint      `json:"jobPositionId"`
	JobPositionName *string    `json:"jobPositionName"`
	UnitID          *uint      `json:"unitId"`
	UnitName        *string    `json:"unitName"`
	IsActive        bool       `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toEmployeeResponse(emp model.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            emp.ID,
		NIP:           emp.NIP,
		Name:          emp.Name,
		Email:         emp.Email,
		PhotoURL:      emp.PhotoURL,
		JoinDate:      emp.JoinDate,
		EffectiveDate: emp.EffectiveDate,
		JobPositionID: emp.JobPositionID,
		UnitID:        emp.UnitID,
		IsActive:      emp.IsActive,
		CreatedAt:     emp.CreatedAt,
		UpdatedAt:     emp.UpdatedAt,
	}
	if jp := emp.JobPosition; jp != nil {
		resp.JobPositionName = &jp.Name
	}
	if unit := emp.Unit; unit != nil {
		resp.UnitName = &unit.Name
	}
	return resp
}

// GetPaged: GET /api/employees/paged
func (h *EmployeeHandler) GetPaged(c *fiber.Ctx) error {
	jobIDs, ok := helper.QueryUintList(c, "jobIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jobIds harus berupa angka"})
	}
	unitIDs, ok := helper.QueryUintList(c, "unitIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unitIds harus berupa angka"})
	}

	filter := repository.EmployeeFilter{
		JobIDs:  jobIDs,
		UnitIDs: unitIDs,
		Status:  c.Query("status"),
		Search:  c.Query("search"),
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetPagedFiltered(filter, params)
	if err != nil {
		log.Printf("employee: query paged gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]EmployeeResponse, 0, len(list))
	for _, emp := range list {
		content = append(content, toEmployeeResponse(emp))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// GetAll: GET /api/employees (untuk dropdown)
func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pegawai"})
	}
	content := make([]EmployeeResponse, 0, len(list))
	for _, emp := range list {
		content = append(content, toEmployeeResponse(emp))
	}
	return c.JSON(content)
}

// GetByID: GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	emp, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
	}
	return c.JSON(toEmployeeResponse(*emp))
}

// Create: POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if existing, err := h.repo.FindByNIP(req.NIP); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "NIP sudah terdaftar"})
	}

	emp := model.Employee{
		NIP:           req.NIP,
		Name:          req.Name,
		Email:         req.Email,
		JoinDate:      req.JoinDate,
		EffectiveDate: req.EffectiveDate,
		JobPositionID: req.JobPositionID,
		UnitID:        req.UnitID,
		IsActive:      true,
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := h.repo.Create(&emp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat pegawai"})
	}

	created, err := h.repo.GetByID(emp.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat pegawai"})
	}
	return c.Status(fiber.StatusCreated).JSON(toEmployeeResponse(*created))
}

// Update: PUT /api/employees/:id
// Mutasi jabatan cukup mengganti JobPositionID; kewajiban baru muncul
// pada refresh berikutnya.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	emp, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.NIP != "" && req.NIP != emp.NIP {
		if existing, err := h.repo.FindByNIP(req.NIP); err == nil && existing != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "NIP sudah terdaftar"})
		}
		emp.NIP = req.NIP
	}
	if req.Name != "" {
		emp.Name = req.Name
	}
	if req.Email != "" {
		emp.Email = req.Email
	}
	if req.JoinDate != nil {
		emp.JoinDate = req.JoinDate
	}
	if req.EffectiveDate != nil {
		emp.EffectiveDate = req.EffectiveDate
	}
	if req.JobPositionID != nil {
		emp.JobPositionID = req.JobPositionID
	}
	if req.UnitID != nil {
		emp.UnitID = req.UnitID
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := h.repo.Update(emp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update pegawai"})
	}

	updated, err := h.repo.GetByID(emp.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat pegawai"})
	}
	return c.JSON(toEmployeeResponse(*updated))
}

// SoftDelete: DELETE /api/employees/:id
func (h *EmployeeHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus pegawai"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
