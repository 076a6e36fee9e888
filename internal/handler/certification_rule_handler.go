package handler

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

var validate = validator.New()

type CertificationRuleHandler struct {
	repo    repository.CertificationRuleRepository
	history repository.HistoryRepository
}

func NewCertificationRuleHandler(repo repository.CertificationRuleRepository, history repository.HistoryRepository) *CertificationRuleHandler {
	return &CertificationRuleHandler{repo: repo, history: history}
}

type CertificationRuleRequest struct {
	CertificationID      uint  `json:"certificationId" validate:"required"`
	CertificationLevelID *uint `json:"certificationLevelId"`
	SubFieldID           *uint `json:"subFieldId"`
	RefreshmentTypeID    *uint `json:"refreshmentTypeId"`
	ValidityMonths       *int  `json:"validityMonths" validate:"omitempty,min=1"`
	ReminderMonths       *int  `json:"reminderMonths" validate:"omitempty,min=0"`
	WajibSetelahMasuk    *int  `json:"wajibSetelahMasuk" validate:"omitempty,min=0"`
	IsActive             *bool `json:"isActive"`
}

type CertificationRuleResponse struct {
	ID                      uint    `json:"id"`
	CertificationID         uint    `json:"certificationId"`
	CertificationCode       string  `json:"certificationCode"`
	CertificationName       string  `json:"certificationName"`
	CertificationLevelID    *uint   `json:"certificationLevelId"`
	CertificationLevelName  *string `json:"certificationLevelName"`
	CertificationLevelLevel *int    `json:"certificationLevelLevel"`
	SubFieldID              *uint   `json:"subFieldId"`
	SubFieldName            *string `json:"subFieldName"`
	SubFieldCode            *string `json:"subFieldCode"`
	RefreshmentTypeID       *uint   `json:"refreshmentTypeId"`
	RefreshmentTypeName     *string `json:"refreshmentTypeName"`

	ValidityMonths    *int `json:"validityMonths"`
	ReminderMonths    *int `json:"reminderMonths"`
	WajibSetelahMasuk *int `json:"wajibSetelahMasuk"`
	IsActive          bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCertificationRuleResponse(rule model.CertificationRule) CertificationRuleResponse {
	resp := CertificationRuleResponse{
		ID:                rule.ID,
		CertificationID:   rule.CertificationID,
		CertificationCode: rule.Certification.Code,
		CertificationName: rule.Certification.Name,
		ValidityMonths:    rule.ValidityMonths,
		ReminderMonths:    rule.ReminderMonths,
		WajibSetelahMasuk: rule.WajibSetelahMasuk,
		IsActive:          rule.IsActive,
		CreatedAt:         rule.CreatedAt,
		UpdatedAt:         rule.UpdatedAt,
	}
	if lvl := rule.CertificationLevel; lvl != nil {
		resp.CertificationLevelID = rule.CertificationLevelID
		resp.CertificationLevelName = &lvl.Name
		resp.CertificationLevelLevel = &lvl.Level
	}
	if sub := rule.SubField; sub != nil {
		resp.SubFieldID = rule.SubFieldID
		resp.SubFieldName = &sub.Name
		resp.SubFieldCode = &sub.Code
	}
	if rt := rule.RefreshmentType; rt != nil {
		resp.RefreshmentTypeID = rule.RefreshmentTypeID
		resp.RefreshmentTypeName = &rt.Name
	}
	return resp
}

// GetPaged: GET /api/certification-rules/paged
func (h *CertificationRuleHandler) GetPaged(c *fiber.Ctx) error {
	certIDs, ok := helper.QueryUintList(c, "certIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "certIds harus berupa angka"})
	}
	levelIDs, ok := helper.QueryUintList(c, "levelIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "levelIds harus berupa angka"})
	}
	subIDs, ok := helper.QueryUintList(c, "subIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "subIds harus berupa angka"})
	}

	filter := repository.CertificationRuleFilter{
		CertificationIDs: certIDs,
		LevelIDs:         levelIDs,
		SubFieldIDs:      subIDs,
		Status:           c.Query("status"),
		Search:           c.Query("search"),
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetPagedFiltered(filter, params)
	if err != nil {
		log.Printf("certification-rule: query paged gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]CertificationRuleResponse, 0, len(list))
	for _, rule := range list {
		content = append(content, toCertificationRuleResponse(rule))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// GetAll: GET /api/certification-rules (untuk dropdown)
func (h *CertificationRuleHandler) GetAll(c *fiber.Ctx) error {
	var (
		list []model.CertificationRule
		err  error
	)
	if c.Query("active") == "true" {
		list, err = h.repo.GetAllActive()
	} else {
		list, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil certification rules"})
	}

	content := make([]CertificationRuleResponse, 0, len(list))
	for _, rule := range list {
		content = append(content, toCertificationRuleResponse(rule))
	}
	return c.JSON(content)
}

// GetByID: GET /api/certification-rules/:id
func (h *CertificationRuleHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	rule, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}
	return c.JSON(toCertificationRuleResponse(*rule))
}

// Create: POST /api/certification-rules
func (h *CertificationRuleHandler) Create(c *fiber.Ctx) error {
	var req CertificationRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Tolak duplikat kombinasi (sertifikasi, jenjang, sub bidang)
	if existing, err := h.repo.FindByCombo(req.CertificationID, req.CertificationLevelID, req.SubFieldID); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Rule untuk kombinasi ini sudah ada"})
	}

	rule := model.CertificationRule{
		CertificationID:      req.CertificationID,
		CertificationLevelID: req.CertificationLevelID,
		SubFieldID:           req.SubFieldID,
		RefreshmentTypeID:    req.RefreshmentTypeID,
		ValidityMonths:       req.ValidityMonths,
		ReminderMonths:       req.ReminderMonths,
		WajibSetelahMasuk:    req.WajibSetelahMasuk,
		IsActive:             true,
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := h.repo.Create(&rule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat certification rule"})
	}

	created, err := h.repo.GetByID(rule.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat certification rule"})
	}
	h.history.SnapshotRule(*created, model.ActionCreated)
	return c.Status(fiber.StatusCreated).JSON(toCertificationRuleResponse(*created))
}

// Update: PUT /api/certification-rules/:id
func (h *CertificationRuleHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	rule, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}

	var req CertificationRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.CertificationID != 0 {
		rule.CertificationID = req.CertificationID
	}
	rule.CertificationLevelID = req.CertificationLevelID
	rule.SubFieldID = req.SubFieldID
	rule.RefreshmentTypeID = req.RefreshmentTypeID
	if req.ValidityMonths != nil {
		rule.ValidityMonths = req.ValidityMonths
	}
	if req.ReminderMonths != nil {
		rule.ReminderMonths = req.ReminderMonths
	}
	if req.WajibSetelahMasuk != nil {
		rule.WajibSetelahMasuk = req.WajibSetelahMasuk
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := h.repo.Update(rule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update certification rule"})
	}

	updated, err := h.repo.GetByID(rule.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat certification rule"})
	}
	h.history.SnapshotRule(*updated, model.ActionUpdated)
	return c.JSON(toCertificationRuleResponse(*updated))
}

// Toggle: PUT /api/certification-rules/:id/toggle
// Rule nonaktif berhenti menghasilkan kewajiban baru lewat mapping; baris
// eligibility lama baru hilang pada refresh berikutnya.
func (h *CertificationRuleHandler) Toggle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	rule, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}

	rule.IsActive = !rule.IsActive
	if err := h.repo.Update(rule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status certification rule"})
	}
	h.history.SnapshotRule(*rule, model.ActionToggled)
	return c.JSON(toCertificationRuleResponse(*rule))
}

// SoftDelete: DELETE /api/certification-rules/:id
func (h *CertificationRuleHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	// Ambil dulu untuk history, sebelum barisnya soft-deleted
	rule, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}

	if err := h.repo.SoftDelete(rule.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus certification rule"})
	}
	h.history.SnapshotRule(*rule, model.ActionDeleted)
	return c.SendStatus(fiber.StatusNoContent)
}
