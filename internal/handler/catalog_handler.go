package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

// CatalogHandler melayani master data sertifikasi: certification,
// level, sub bidang, jenis refreshment, dan lembaga.
type CatalogHandler struct {
	repo repository.CatalogRepository
}

func NewCatalogHandler(repo repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("ID tidak valid")
	}
	return uint(id), nil
}

func catalogDeleteStatus(c *fiber.Ctx, err error, label string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": label + " tidak ditemukan"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus " + label})
}

// --- Certification ---

func (h *CatalogHandler) GetCertifications(c *fiber.Ctx) error {
	list, err := h.repo.GetCertifications()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil certifications"})
	}
	return c.JSON(list)
}

func (h *CatalogHandler) CreateCertification(c *fiber.Ctx) error {
	var cert model.Certification
	if err := c.BodyParser(&cert); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if cert.Code == "" || cert.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code dan name wajib diisi"})
	}
	if err := h.repo.CreateCertification(&cert); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat certification"})
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

func (h *CatalogHandler) UpdateCertification(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	cert, err := h.repo.GetCertificationByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification tidak ditemukan"})
	}

	var req model.Certification
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Code != "" {
		cert.Code = req.Code
	}
	if req.Name != "" {
		cert.Name = req.Name
	}
	if err := h.repo.UpdateCertification(cert); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update certification"})
	}
	return c.JSON(cert)
}

func (h *CatalogHandler) DeleteCertification(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteCertification(id); err != nil {
		return catalogDeleteStatus(c, err, "certification")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Certification Level ---

func (h *CatalogHandler) GetLevels(c *fiber.Ctx) error {
	list, err := h.repo.GetLevels()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil levels"})
	}
	return c.JSON(list)
}

func (h *CatalogHandler) CreateLevel(c *fiber.Ctx) error {
	var level model.CertificationLevel
	if err := c.BodyParser(&level); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if level.Level <= 0 || level.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Level dan name wajib diisi"})
	}
	if err := h.repo.CreateLevel(&level); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat level"})
	}
	return c.Status(fiber.StatusCreated).JSON(level)
}

func (h *CatalogHandler) UpdateLevel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	level, err := h.repo.GetLevelByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Level tidak ditemukan"})
	}

	var req model.CertificationLevel
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Level > 0 {
		level.Level = req.Level
	}
	if req.Name != "" {
		level.Name = req.Name
	}
	if err := h.repo.UpdateLevel(level); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update level"})
	}
	return c.JSON(level)
}

func (h *CatalogHandler) DeleteLevel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteLevel(id); err != nil {
		return catalogDeleteStatus(c, err, "level")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Sub Field ---

func (h *CatalogHandler) GetSubFields(c *fiber.Ctx) error {
	list, err := h.repo.GetSubFields()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil sub bidang"})
	}
	return c.JSON(list)
}

func (h *CatalogHandler) CreateSubField(c *fiber.Ctx) error {
	var sub model.SubField
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if sub.CertificationID == 0 || sub.Code == "" || sub.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "CertificationId, code, dan name wajib diisi"})
	}
	if err := h.repo.CreateSubField(&sub); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat sub bidang"})
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *CatalogHandler) UpdateSubField(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sub, err := h.repo.GetSubFieldByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sub bidang tidak ditemukan"})
	}

	var req model.SubField
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.CertificationID != 0 {
		sub.CertificationID = req.CertificationID
	}
	if req.Code != "" {
		sub.Code = req.Code
	}
	if req.Name != "" {
		sub.Name = req.Name
	}
	if err := h.repo.UpdateSubField(sub); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update sub bidang"})
	}
	return c.JSON(sub)
}

func (h *CatalogHandler) DeleteSubField(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteSubField(id); err != nil {
		return catalogDeleteStatus(c, err, "sub bidang")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Refreshment Type ---

func (h *CatalogHandler) GetRefreshmentTypes(c *fiber.Ctx) error {
	list, err := h.repo.GetRefreshmentTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jenis refreshment"})
	}
	return c.JSON(list)
}

func (h *CatalogHandler) CreateRefreshmentType(c *fiber.Ctx) error {
	var rt model.RefreshmentType
	if err := c.BodyParser(&rt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if rt.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name wajib diisi"})
	}
	if err := h.repo.CreateRefreshmentType(&rt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat jenis refreshment"})
	}
	return c.Status(fiber.StatusCreated).JSON(rt)
}

func (h *CatalogHandler) DeleteRefreshmentType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteRefreshmentType(id); err != nil {
		return catalogDeleteStatus(c, err, "jenis refreshment")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Institution ---

func (h *CatalogHandler) GetInstitutions(c *fiber.Ctx) error {
	list, err := h.repo.GetInstitutions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil lembaga"})
	}
	return c.JSON(list)
}

func (h *CatalogHandler) CreateInstitution(c *fiber.Ctx) error {
	var inst model.Institution
	if err := c.BodyParser(&inst); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if inst.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name wajib diisi"})
	}
	if err := h.repo.CreateInstitution(&inst); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat lembaga"})
	}
	return c.Status(fiber.StatusCreated).JSON(inst)
}

func (h *CatalogHandler) UpdateInstitution(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	inst, err := h.repo.GetInstitutionByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lembaga tidak ditemukan"})
	}

	var req model.Institution
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Name != "" {
		inst.Name = req.Name
	}
	if req.Address != "" {
		inst.Address = req.Address
	}
	if err := h.repo.UpdateInstitution(inst); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update lembaga"})
	}
	return c.JSON(inst)
}

func (h *CatalogHandler) DeleteInstitution(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.DeleteInstitution(id); err != nil {
		return catalogDeleteStatus(c, err, "lembaga")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
