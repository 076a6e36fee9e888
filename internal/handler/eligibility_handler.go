package handler

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certification-backend/internal/eligibility"
	"certification-backend/internal/helper"
	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

type EligibilityHandler struct {
	repo      repository.EligibilityRepository
	rebuilder *eligibility.Rebuilder
}

func NewEligibilityHandler(repo repository.EligibilityRepository, rebuilder *eligibility.Rebuilder) *EligibilityHandler {
	return &EligibilityHandler{repo: repo, rebuilder: rebuilder}
}

// EligibilityResponse mengikuti bentuk field yang sudah dipakai frontend.
type EligibilityResponse struct {
	ID               uint       `json:"id"`
	EmployeeID       uint       `json:"employeeId"`
	EmployeeName     string     `json:"employeeName"`
	NIP              string     `json:"nip"`
	JobPositionTitle string     `json:"jobPositionTitle"`
	JoinDate         *time.Time `json:"joinDate"`

	CertificationRuleID     uint    `json:"certificationRuleId"`
	CertificationCode       string  `json:"certificationCode"`
	CertificationName       string  `json:"certificationName"`
	CertificationLevelName  *string `json:"certificationLevelName"`
	CertificationLevelLevel *int    `json:"certificationLevelLevel"`
	SubFieldName            *string `json:"subFieldName"`
	SubFieldCode            *string `json:"subFieldCode"`

	Status   model.EligibilityStatus `json:"status"`
	DueDate  *time.Time              `json:"dueDate"`
	Source   model.EligibilitySource `json:"source"`
	IsActive bool                    `json:"isActive"`

	WajibPunyaSertifikasiSampai *time.Time `json:"wajibPunyaSertifikasiSampai"`
	MasaBerlakuBulan            *int       `json:"masaBerlakuBulan"`
	SisaWaktu                   string     `json:"sisaWaktu"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toEligibilityResponse(e model.EmployeeEligibility, now time.Time) EligibilityResponse {
	resp := EligibilityResponse{
		ID:                  e.ID,
		EmployeeID:          e.EmployeeID,
		EmployeeName:        e.Employee.Name,
		NIP:                 e.Employee.NIP,
		JoinDate:            e.Employee.JoinDate,
		CertificationRuleID: e.CertificationRuleID,
		CertificationCode:   e.CertificationRule.Certification.Code,
		CertificationName:   e.CertificationRule.Certification.Name,
		Status:              e.Status,
		DueDate:             e.DueDate,
		Source:              e.Source,
		IsActive:            e.IsActive,
		MasaBerlakuBulan:    e.ValidityMonths,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	if e.Employee.JobPosition != nil {
		resp.JobPositionTitle = e.Employee.JobPosition.Name
	}
	if lvl := e.CertificationRule.CertificationLevel; lvl != nil {
		resp.CertificationLevelName = &lvl.Name
		resp.CertificationLevelLevel = &lvl.Level
	}
	if sub := e.CertificationRule.SubField; sub != nil {
		resp.SubFieldName = &sub.Name
		resp.SubFieldCode = &sub.Code
	}
	if e.WajibSetelahMasuk != nil && e.Employee.JoinDate != nil {
		wajib := eligibility.AddMonths(*e.Employee.JoinDate, *e.WajibSetelahMasuk)
		resp.WajibPunyaSertifikasiSampai = &wajib
	}
	if e.DueDate != nil {
		resp.SisaWaktu = remainingTime(now, *e.DueDate)
	}
	return resp
}

// remainingTime memformat sisa waktu sampai due date: "X bulan Y hari",
// atau "Kadaluarsa" kalau sudah lewat.
func remainingTime(now, due time.Time) string {
	if due.Before(now) {
		return "Kadaluarsa"
	}
	months := 0
	cursor := now
	for {
		next := eligibility.AddMonths(cursor, 1)
		if next.After(due) {
			break
		}
		months++
		cursor = next
	}
	days := int(due.Sub(cursor).Hours() / 24)
	return fmt.Sprintf("%d bulan %d hari", months, days)
}

func parseEligibilityFilter(c *fiber.Ctx) (eligibility.Filter, error) {
	var f eligibility.Filter

	employeeIDs, ok := helper.QueryUintList(c, "employeeIds")
	if !ok {
		return f, errors.New("employeeIds harus berupa angka")
	}
	jobIDs, ok := helper.QueryUintList(c, "jobIds")
	if !ok {
		return f, errors.New("jobIds harus berupa angka")
	}
	levels, ok := helper.QueryIntList(c, "levels")
	if !ok {
		return f, errors.New("levels harus berupa angka")
	}

	for _, s := range helper.QueryList(c, "statuses") {
		status := model.EligibilityStatus(s)
		if !status.Valid() {
			return f, fmt.Errorf("status tidak dikenal: %s", s)
		}
		f.Statuses = append(f.Statuses, status)
	}
	for _, s := range helper.QueryList(c, "sources") {
		source := model.EligibilitySource(s)
		if !source.Valid() {
			return f, fmt.Errorf("source tidak dikenal: %s", s)
		}
		f.Sources = append(f.Sources, source)
	}

	f.EmployeeIDs = employeeIDs
	f.JobIDs = jobIDs
	f.Levels = levels
	f.CertCodes = helper.QueryList(c, "certCodes")
	f.SubCodes = helper.QueryList(c, "subCodes")
	f.Search = c.Query("search")
	return f, nil
}

// GetPaged: GET /api/employee-eligibility/paged
func (h *EligibilityHandler) GetPaged(c *fiber.Ctx) error {
	filter, err := parseEligibilityFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetPagedFiltered(filter, params)
	if err != nil {
		// Frontend cukup render empty state; jangan bikin client special-case error
		log.Printf("eligibility: query paged gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	now := time.Now()
	content := make([]EligibilityResponse, 0, len(list))
	for _, e := range list {
		content = append(content, toEligibilityResponse(e, now))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// GetByID: GET /api/employee-eligibility/:id
func (h *EligibilityHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	e, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Eligibility tidak ditemukan"})
	}
	return c.JSON(toEligibilityResponse(*e, time.Now()))
}

// Refresh: POST /api/employee-eligibility/refresh
// Hitung ulang seluruh read model. Hanya satu refresh boleh jalan.
func (h *EligibilityHandler) Refresh(c *fiber.Ctx) error {
	if err := h.rebuilder.Rebuild(); err != nil {
		if errors.Is(err, eligibility.ErrRebuildInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Refresh eligibility sedang berjalan"})
		}
		log.Printf("eligibility: rebuild gagal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Refresh eligibility gagal, data sebelumnya tetap dipakai",
		})
	}
	return c.JSON(fiber.Map{"message": "Refresh eligibility berhasil"})
}

// ToggleActive: PUT /api/employee-eligibility/:id/toggle
func (h *EligibilityHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	e, err := h.repo.ToggleActive(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Eligibility tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status eligibility"})
	}
	return c.JSON(toEligibilityResponse(*e, time.Now()))
}

// SoftDelete: DELETE /api/employee-eligibility/:id
func (h *EligibilityHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.SoftDelete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Eligibility tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus eligibility"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
