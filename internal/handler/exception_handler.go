package handler

import (
	"errors"
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

// ExceptionHandler melayani penunjukan manual (eligibility by name):
// pegawai diwajibkan satu rule terlepas dari mapping jabatannya.
type ExceptionHandler struct {
	repo            repository.ExceptionRepository
	employeeRepo    repository.EmployeeRepository
	ruleRepo        repository.CertificationRuleRepository
	certRepo        repository.EmployeeCertificationRepository
	eligibilityRepo repository.EligibilityRepository
}

func NewExceptionHandler(
	repo repository.ExceptionRepository,
	employeeRepo repository.EmployeeRepository,
	ruleRepo repository.CertificationRuleRepository,
	certRepo repository.EmployeeCertificationRepository,
	eligibilityRepo repository.EligibilityRepository,
) *ExceptionHandler {
	return &ExceptionHandler{
		repo:            repo,
		employeeRepo:    employeeRepo,
		ruleRepo:        ruleRepo,
		certRepo:        certRepo,
		eligibilityRepo: eligibilityRepo,
	}
}

type ExceptionResponse struct {
	ID               uint   `json:"id"`
	EmployeeID       uint   `json:"employeeId"`
	EmployeeName     string `json:"employeeName"`
	NIP              string `json:"nip"`
	JobPositionTitle string `json:"jobPositionTitle"`

	CertificationRuleID     uint    `json:"certificationRuleId"`
	CertificationCode       string  `json:"certificationCode"`
	CertificationName       string  `json:"certificationName"`
	CertificationLevelName  *string `json:"certificationLevelName"`
	CertificationLevelLevel *int    `json:"certificationLevelLevel"`
	SubFieldName            *string `json:"subFieldName"`
	SubFieldCode            *string `json:"subFieldCode"`

	Reason   string `json:"reason"`
	IsActive bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toExceptionResponse(exc model.EmployeeCertificationException) ExceptionResponse {
	resp := ExceptionResponse{
		ID:                  exc.ID,
		EmployeeID:          exc.EmployeeID,
		EmployeeName:        exc.Employee.Name,
		NIP:                 exc.Employee.NIP,
		CertificationRuleID: exc.CertificationRuleID,
		CertificationCode:   exc.CertificationRule.Certification.Code,
		CertificationName:   exc.CertificationRule.Certification.Name,
		Reason:              exc.Reason,
		IsActive:            exc.IsActive,
		CreatedAt:           exc.CreatedAt,
		UpdatedAt:           exc.UpdatedAt,
	}
	if exc.Employee.JobPosition != nil {
		resp.JobPositionTitle = exc.Employee.JobPosition.Name
	}
	if lvl := exc.CertificationRule.CertificationLevel; lvl != nil {
		resp.CertificationLevelName = &lvl.Name
		resp.CertificationLevelLevel = &lvl.Level
	}
	if sub := exc.CertificationRule.SubField; sub != nil {
		resp.SubFieldName = &sub.Name
		resp.SubFieldCode = &sub.Code
	}
	return resp
}

// GetPaged: GET /api/employee-eligibility/manual/paged
func (h *ExceptionHandler) GetPaged(c *fiber.Ctx) error {
	employeeIDs, ok := helper.QueryUintList(c, "employeeIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employeeIds harus berupa angka"})
	}
	filter := repository.ExceptionFilter{
		EmployeeIDs: employeeIDs,
		CertCodes:   helper.QueryList(c, "certCodes"),
		Search:      c.Query("search"),
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetPagedFiltered(filter, params)
	if err != nil {
		log.Printf("exception: query paged gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]ExceptionResponse, 0, len(list))
	for _, exc := range list {
		content = append(content, toExceptionResponse(exc))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

type CreateExceptionRequest struct {
	ID     uint   `json:"id"` // certification rule ID, mengikuti kontrak frontend lama
	Reason string `json:"reason"`
}

// Create: POST /api/employee-eligibility/manual?employeeId=...
// Body: {id: certificationRuleId}
func (h *ExceptionHandler) Create(c *fiber.Ctx) error {
	employeeID, err := strconv.Atoi(c.Query("employeeId"))
	if err != nil || employeeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employeeId wajib diisi"})
	}

	var req CreateExceptionRequest
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Certification rule wajib dipilih"})
	}

	employee, err := h.employeeRepo.GetByID(uint(employeeID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
	}
	rule, err := h.ruleRepo.GetByID(req.ID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}

	if existing, err := h.repo.FindByEmployeeAndRule(employee.ID, rule.ID); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Penunjukan manual untuk kombinasi ini sudah ada"})
	}

	exc := model.EmployeeCertificationException{
		EmployeeID:          employee.ID,
		CertificationRuleID: rule.ID,
		Reason:              req.Reason,
		IsActive:            true,
	}
	if err := h.repo.Create(&exc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat penunjukan manual"})
	}

	// Langsung tulis satu baris read model supaya terlihat tanpa menunggu
	// refresh; refresh berikutnya tetap menghitung ulang dari awal
	h.upsertEligibilityRow(*employee, *rule)

	exc.Employee = *employee
	exc.CertificationRule = *rule
	return c.Status(fiber.StatusCreated).JSON(toExceptionResponse(exc))
}

func (h *ExceptionHandler) upsertEligibilityRow(employee model.Employee, rule model.CertificationRule) {
	var certs []model.EmployeeCertification
	if latest, err := h.certRepo.GetLatestByEmployeeAndRule(employee.ID, rule.ID); err == nil && latest != nil {
		certs = append(certs, *latest)
	}
	status, dueDate := eligibility.Derive(rule, employee, certs, time.Now())

	rec := model.EmployeeEligibility{
		EmployeeID:          employee.ID,
		CertificationRuleID: rule.ID,
		Status:              status,
		Source:              model.SourceByName,
		DueDate:             dueDate,
		ValidityMonths:      rule.ValidityMonths,
		ReminderMonths:      rule.ReminderMonths,
		WajibSetelahMasuk:   rule.WajibSetelahMasuk,
		IsActive:            true,
	}
	if err := h.eligibilityRepo.Upsert(&rec); err != nil {
		log.Printf("exception: upsert eligibility (%d,%d) gagal: %v", employee.ID, rule.ID, err)
	}
}

// Toggle: PUT /api/employee-eligibility/manual/:id/toggle
func (h *ExceptionHandler) Toggle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	exc, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penunjukan manual tidak ditemukan"})
	}

	exc.IsActive = !exc.IsActive
	if err := h.repo.Update(exc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status penunjukan manual"})
	}
	return c.JSON(toExceptionResponse(*exc))
}

// Delete: DELETE /api/employee-eligibility/manual/:id
func (h *ExceptionHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.SoftDelete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penunjukan manual tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus penunjukan manual"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
