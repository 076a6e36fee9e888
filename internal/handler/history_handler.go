package handler

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

// HistoryHandler melayani halaman riwayat perubahan rule dan mapping.
type HistoryHandler struct {
	repo repository.HistoryRepository
}

func NewHistoryHandler(repo repository.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

type RuleHistoryResponse struct {
	ID                  uint    `json:"id"`
	CertificationRuleID uint    `json:"certificationRuleId"`
	CertificationCode   string  `json:"certificationCode"`
	CertificationName   string  `json:"certificationName"`
	CertificationLevel  *int    `json:"certificationLevel"`
	SubFieldCode        *string `json:"subFieldCode"`
	ValidityMonths      *int    `json:"validityMonths"`
	ReminderMonths      *int    `json:"reminderMonths"`
	WajibSetelahMasuk   *int    `json:"wajibSetelahMasuk"`
	IsActive            bool    `json:"isActive"`
	Action              string  `json:"action"`
	ActionAt            string  `json:"actionAt"`
}

type MappingHistoryResponse struct {
	ID                 uint    `json:"id"`
	MappingID          uint    `json:"mappingId"`
	JobName            string  `json:"jobName"`
	CertificationCode  string  `json:"certificationCode"`
	CertificationLevel *int    `json:"certificationLevel"`
	SubFieldCode       *string `json:"subFieldCode"`
	IsActive           bool    `json:"isActive"`
	Action             string  `json:"action"`
	ActionAt           string  `json:"actionAt"`
}

func queryUintParam(c *fiber.Ctx, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return uint(v), true
}

// GetRuleHistories: GET /api/certification-rule-histories/paged
func (h *HistoryHandler) GetRuleHistories(c *fiber.Ctx) error {
	ruleID, ok := queryUintParam(c, "ruleId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ruleId harus berupa angka"})
	}

	filter := repository.RuleHistoryFilter{
		RuleID: ruleID,
		Action: c.Query("action"),
		Search: c.Query("search"),
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetRulePaged(filter, params)
	if err != nil {
		log.Printf("history: query rule histories gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]RuleHistoryResponse, 0, len(list))
	for _, rec := range list {
		content = append(content, toRuleHistoryResponse(rec))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// GetMappingHistories: GET /api/job-mapping-histories/paged
func (h *HistoryHandler) GetMappingHistories(c *fiber.Ctx) error {
	mappingID, ok := queryUintParam(c, "mappingId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mappingId harus berupa angka"})
	}

	filter := repository.MappingHistoryFilter{
		MappingID: mappingID,
		Action:    c.Query("action"),
		Search:    c.Query("search"),
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetMappingPaged(filter, params)
	if err != nil {
		log.Printf("history: query mapping histories gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]MappingHistoryResponse, 0, len(list))
	for _, rec := range list {
		content = append(content, toMappingHistoryResponse(rec))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

func toRuleHistoryResponse(h model.CertificationRuleHistory) RuleHistoryResponse {
	return RuleHistoryResponse{
		ID:                  h.ID,
		CertificationRuleID: h.CertificationRuleID,
		CertificationCode:   h.CertificationCode,
		CertificationName:   h.CertificationName,
		CertificationLevel:  h.CertificationLevel,
		SubFieldCode:        h.SubFieldCode,
		ValidityMonths:      h.ValidityMonths,
		ReminderMonths:      h.ReminderMonths,
		WajibSetelahMasuk:   h.WajibSetelahMasuk,
		IsActive:            h.IsActive,
		Action:              string(h.Action),
		ActionAt:            h.ActionAt.Format("2006-01-02 15:04:05"),
	}
}

func toMappingHistoryResponse(h model.JobCertificationMappingHistory) MappingHistoryResponse {
	return MappingHistoryResponse{
		ID:                 h.ID,
		MappingID:          h.MappingID,
		JobName:            h.JobName,
		CertificationCode:  h.CertificationCode,
		CertificationLevel: h.CertificationLevel,
		SubFieldCode:       h.SubFieldCode,
		IsActive:           h.IsActive,
		Action:             string(h.Action),
		ActionAt:           h.ActionAt.Format("2006-01-02 15:04:05"),
	}
}
