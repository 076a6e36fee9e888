package handler

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

type JobMappingHandler struct {
	repo     repository.JobCertificationMappingRepository
	jobRepo  repository.OrganizationRepository
	ruleRepo repository.CertificationRuleRepository
	history  repository.HistoryRepository
}

func NewJobMappingHandler(repo repository.JobCertificationMappingRepository, jobRepo repository.OrganizationRepository, ruleRepo repository.CertificationRuleRepository, history repository.HistoryRepository) *JobMappingHandler {
	return &JobMappingHandler{repo: repo, jobRepo: jobRepo, ruleRepo: ruleRepo, history: history}
}

type JobMappingRequest struct {
	JobPositionID       uint  `json:"jobPositionId" validate:"required"`
	CertificationRuleID uint  `json:"certificationRuleId" validate:"required"`
	IsActive            *bool `json:"isActive"`
}

type JobMappingResponse struct {
	ID                  uint    `json:"id"`
	JobPositionID       uint    `json:"jobPositionId"`
	JobPositionName     string  `json:"jobPositionName"`
	UnitName            *string `json:"unitName"`
	CertificationRuleID uint    `json:"certificationRuleId"`
	CertificationCode   string  `json:"certificationCode"`
	CertificationName   string  `json:"certificationName"`
	CertificationLevel  *int    `json:"certificationLevel"`
	SubFieldCode        *string `json:"subFieldCode"`
	IsActive            bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toJobMappingResponse(m model.JobCertificationMapping) JobMappingResponse {
	resp := JobMappingResponse{
		ID:                  m.ID,
		JobPositionID:       m.JobPositionID,
		JobPositionName:     m.JobPosition.Name,
		CertificationRuleID: m.CertificationRuleID,
		CertificationCode:   m.CertificationRule.Certification.Code,
		CertificationName:   m.CertificationRule.Certification.Name,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if unit := m.JobPosition.Unit; unit != nil {
		resp.UnitName = &unit.Name
	}
	if lvl := m.CertificationRule.CertificationLevel; lvl != nil {
		resp.CertificationLevel = &lvl.Level
	}
	if sub := m.CertificationRule.SubField; sub != nil {
		resp.SubFieldCode = &sub.Code
	}
	return resp
}

// GetPaged: GET /api/job-certification-mappings/paged
func (h *JobMappingHandler) GetPaged(c *fiber.Ctx) error {
	jobIDs, ok := helper.QueryUintList(c, "jobIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jobIds harus berupa angka"})
	}
	levels, ok := helper.QueryIntList(c, "levels")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "levels harus berupa angka"})
	}

	filter := repository.JobMappingFilter{
		JobIDs:    jobIDs,
		CertCodes: helper.QueryList(c, "certCodes"),
		Levels:    levels,
		SubCodes:  helper.QueryList(c, "subCodes"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetPagedFiltered(filter, params)
	if err != nil {
		log.Printf("job-mapping: query paged gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]JobMappingResponse, 0, len(list))
	for _, m := range list {
		content = append(content, toJobMappingResponse(m))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// GetByJobPosition: GET /api/job-certification-mappings/job/:jobId
func (h *JobMappingHandler) GetByJobPosition(c *fiber.Ctx) error {
	jobID, err := strconv.Atoi(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jabatan tidak valid"})
	}

	list, err := h.repo.GetActiveByJobPosition(uint(jobID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil mapping"})
	}

	content := make([]JobMappingResponse, 0, len(list))
	for _, m := range list {
		content = append(content, toJobMappingResponse(m))
	}
	return c.JSON(content)
}

// Create: POST /api/job-certification-mappings
func (h *JobMappingHandler) Create(c *fiber.Ctx) error {
	var req JobMappingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.jobRepo.GetJobPositionByID(req.JobPositionID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
	}
	if _, err := h.ruleRepo.GetByID(req.CertificationRuleID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}

	exists, err := h.repo.ExistsByJobAndRule(req.JobPositionID, req.CertificationRuleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa mapping"})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Mapping jabatan dan rule ini sudah ada"})
	}

	mapping := model.JobCertificationMapping{
		JobPositionID:       req.JobPositionID,
		CertificationRuleID: req.CertificationRuleID,
		IsActive:            true,
	}
	if req.IsActive != nil {
		mapping.IsActive = *req.IsActive
	}

	if err := h.repo.Create(&mapping); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat mapping"})
	}

	created, err := h.repo.GetByID(mapping.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat mapping"})
	}
	h.history.SnapshotMapping(*created, model.ActionCreated)
	return c.Status(fiber.StatusCreated).JSON(toJobMappingResponse(*created))
}

// Toggle: PUT /api/job-certification-mappings/:id/toggle
func (h *JobMappingHandler) Toggle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	mapping, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mapping tidak ditemukan"})
	}

	mapping.IsActive = !mapping.IsActive
	if err := h.repo.Update(mapping); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status mapping"})
	}
	h.history.SnapshotMapping(*mapping, model.ActionToggled)
	return c.JSON(toJobMappingResponse(*mapping))
}

// SoftDelete: DELETE /api/job-certification-mappings/:id
func (h *JobMappingHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	// Ambil dulu untuk history, sebelum barisnya soft-deleted
	mapping, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mapping tidak ditemukan"})
	}

	if err := h.repo.SoftDelete(mapping.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mapping tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus mapping"})
	}
	h.history.SnapshotMapping(*mapping, model.ActionDeleted)
	return c.SendStatus(fiber.StatusNoContent)
}
