package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

// OrganizationHandler melayani master struktur organisasi:
// regional, divisi, unit, dan jabatan.
type OrganizationHandler struct {
	repo repository.OrganizationRepository
}

func NewOrganizationHandler(repo repository.OrganizationRepository) *OrganizationHandler {
	return &OrganizationHandler{repo: repo}
}

func orgDeleteStatus(c *fiber.Ctx, err error, label string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": label + " tidak ditemukan"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus " + label})
}

// --- Regional ---

func (h *OrganizationHandler) GetRegionals(c *fiber.Ctx) error {
	list, err := h.repo.GetRegionals()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil regional"})
	}
	return c.JSON(list)
}

func (h *OrganizationHandler) CreateRegional(c *fiber.Ctx) error {
	var reg model.Regional
	if err := c.BodyParser(&reg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if reg.Code == "" || reg.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code dan name wajib diisi"})
	}
	if err := h.repo.CreateRegional(&reg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat regional"})
	}
	return c.Status(fiber.StatusCreated).JSON(reg)
}

func (h *OrganizationHandler) UpdateRegional(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	reg, err := h.repo.GetRegionalByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Regional tidak ditemukan"})
	}

	var req struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Code != "" {
		reg.Code = req.Code
	}
	if req.Name != "" {
		reg.Name = req.Name
	}
	if err := h.repo.UpdateRegional(reg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update regional"})
	}
	return c.JSON(reg)
}

func (h *OrganizationHandler) DeleteRegional(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteRegional(id); err != nil {
		return orgDeleteStatus(c, err, "regional")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Division ---

func (h *OrganizationHandler) GetDivisions(c *fiber.Ctx) error {
	list, err := h.repo.GetDivisions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil divisi"})
	}
	return c.JSON(list)
}

func (h *OrganizationHandler) CreateDivision(c *fiber.Ctx) error {
	var div model.Division
	if err := c.BodyParser(&div); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if div.Code == "" || div.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code dan name wajib diisi"})
	}
	if err := h.repo.CreateDivision(&div); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat divisi"})
	}
	return c.Status(fiber.StatusCreated).JSON(div)
}

func (h *OrganizationHandler) UpdateDivision(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	div, err := h.repo.GetDivisionByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Divisi tidak ditemukan"})
	}

	var req struct {
		Code       string `json:"code"`
		Name       string `json:"name"`
		RegionalID *uint  `json:"regional_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Code != "" {
		div.Code = req.Code
	}
	if req.Name != "" {
		div.Name = req.Name
	}
	if req.RegionalID != nil {
		div.RegionalID = req.RegionalID
	}
	if err := h.repo.UpdateDivision(div); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update divisi"})
	}
	return c.JSON(div)
}

func (h *OrganizationHandler) DeleteDivision(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteDivision(id); err != nil {
		return orgDeleteStatus(c, err, "divisi")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Unit ---

func (h *OrganizationHandler) GetUnits(c *fiber.Ctx) error {
	list, err := h.repo.GetUnits()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil unit"})
	}
	return c.JSON(list)
}

func (h *OrganizationHandler) CreateUnit(c *fiber.Ctx) error {
	var unit model.Unit
	if err := c.BodyParser(&unit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if unit.Code == "" || unit.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code dan name wajib diisi"})
	}
	if err := h.repo.CreateUnit(&unit); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat unit"})
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

func (h *OrganizationHandler) UpdateUnit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	unit, err := h.repo.GetUnitByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unit tidak ditemukan"})
	}

	var req struct {
		Code       string `json:"code"`
		Name       string `json:"name"`
		DivisionID *uint  `json:"division_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Code != "" {
		unit.Code = req.Code
	}
	if req.Name != "" {
		unit.Name = req.Name
	}
	if req.DivisionID != nil {
		unit.DivisionID = req.DivisionID
	}
	if err := h.repo.UpdateUnit(unit); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update unit"})
	}
	return c.JSON(unit)
}

func (h *OrganizationHandler) DeleteUnit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteUnit(id); err != nil {
		return orgDeleteStatus(c, err, "unit")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Job Position ---

func (h *OrganizationHandler) GetJobPositions(c *fiber.Ctx) error {
	list, err := h.repo.GetJobPositions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jabatan"})
	}
	return c.JSON(list)
}

func (h *OrganizationHandler) CreateJobPosition(c *fiber.Ctx) error {
	var jp model.JobPosition
	if err := c.BodyParser(&jp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if jp.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name wajib diisi"})
	}
	jp.IsActive = true
	if err := h.repo.CreateJobPosition(&jp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat jabatan"})
	}
	return c.Status(fiber.StatusCreated).JSON(jp)
}

func (h *OrganizationHandler) UpdateJobPosition(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	jp, err := h.repo.GetJobPositionByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
	}

	var req struct {
		Name     string `json:"name"`
		UnitID   *uint  `json:"unit_id"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Name != "" {
		jp.Name = req.Name
	}
	if req.UnitID != nil {
		jp.UnitID = req.UnitID
	}
	if req.IsActive != nil {
		jp.IsActive = *req.IsActive
	}
	if err := h.repo.UpdateJobPosition(jp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update jabatan"})
	}
	return c.JSON(jp)
}

func (h *OrganizationHandler) DeleteJobPosition(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteJobPosition(id); err != nil {
		return orgDeleteStatus(c, err, "jabatan")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
