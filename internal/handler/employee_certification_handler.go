package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
	"certification-backend/internal/repository"
)

type EmployeeCertificationHandler struct {
	repo         repository.EmployeeCertificationRepository
	employeeRepo repository.EmployeeRepository
	ruleRepo     repository.CertificationRuleRepository
}

func NewEmployeeCertificationHandler(repo repository.EmployeeCertificationRepository, employeeRepo repository.EmployeeRepository, ruleRepo repository.CertificationRuleRepository) *EmployeeCertificationHandler {
	return &EmployeeCertificationHandler{repo: repo, employeeRepo: employeeRepo, ruleRepo: ruleRepo}
}

type EmployeeCertificationResponse struct {
	ID                  uint       `json:"id"`
	EmployeeID          uint       `json:"employeeId"`
	EmployeeName        string     `json:"employeeName"`
	NIP                 string     `json:"nip"`
	CertificationRuleID uint       `json:"certificationRuleId"`
	CertificationCode   string     `json:"certificationCode"`
	CertificationName   string     `json:"certificationName"`
	InstitutionID       *uint      `json:"institutionId"`
	InstitutionName     *string    `json:"institutionName"`
	CertNumber          string     `json:"certNumber"`
	CertDate            *time.Time `json:"certDate"`
	ValidFrom           *time.Time `json:"validFrom"`
	ValidUntil          *time.Time `json:"validUntil"`
	FileURL             string     `json:"fileUrl"`
	ProcessType         string     `json:"processType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toEmployeeCertificationResponse(cert model.EmployeeCertification) EmployeeCertificationResponse {
	resp := EmployeeCertificationResponse{
		ID:                  cert.ID,
		EmployeeID:          cert.EmployeeID,
		EmployeeName:        cert.Employee.Name,
		NIP:                 cert.Employee.NIP,
		CertificationRuleID: cert.CertificationRuleID,
		CertificationCode:   cert.CertificationRule.Certification.Code,
		CertificationName:   cert.CertificationRule.Certification.Name,
		InstitutionID:       cert.InstitutionID,
		CertNumber:          cert.CertNumber,
		CertDate:            cert.CertDate,
		ValidFrom:           cert.ValidFrom,
		ValidUntil:          cert.ValidUntil,
		FileURL:             cert.FileURL,
		ProcessType:         string(cert.ProcessType),
		CreatedAt:           cert.CreatedAt,
		UpdatedAt:           cert.UpdatedAt,
	}
	if inst := cert.Institution; inst != nil {
		resp.InstitutionName = &inst.Name
	}
	return resp
}

// saveCertificateFile menyimpan file bukti sertifikat dengan nama acak
// agar nama file upload tidak bentrok.
func saveCertificateFile(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", nil // file opsional
	}

	uploadDir := "./uploads/certificates"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	pathFile := fmt.Sprintf("uploads/certificates/%s", filename)

	if err := c.SaveFile(file, pathFile); err != nil {
		return "", err
	}
	return pathFile, nil
}

// GetByEmployee: GET /api/employee-certifications/employee/:employeeId
func (h *EmployeeCertificationHandler) GetByEmployee(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil || employeeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID pegawai tidak valid"})
	}

	params := helper.ParsePageParams(c)
	list, total, err := h.repo.GetPagedByEmployee(uint(employeeID), params)
	if err != nil {
		return c.JSON(helper.EmptyPage())
	}

	content := make([]EmployeeCertificationResponse, 0, len(list))
	for _, cert := range list {
		content = append(content, toEmployeeCertificationResponse(cert))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// GetByID: GET /api/employee-certifications/:id
func (h *EmployeeCertificationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	cert, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sertifikat tidak ditemukan"})
	}
	return c.JSON(toEmployeeCertificationResponse(*cert))
}

// Create: POST /api/employee-certifications (multipart form)
// Sertifikat baru mempengaruhi status eligibility pada refresh berikutnya.
func (h *EmployeeCertificationHandler) Create(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil || employeeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID pegawai tidak valid"})
	}
	if _, err := h.employeeRepo.GetByID(uint(employeeID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
	}

	ruleID, err := c.ParamsInt("ruleId")
	if err != nil || ruleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID rule tidak valid"})
	}
	if _, err := h.ruleRepo.GetByID(uint(ruleID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}

	processType := model.ProcessType(c.FormValue("processType", string(model.ProcessSertifikasi)))
	if !processType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Process type tidak dikenal"})
	}

	cert := model.EmployeeCertification{
		EmployeeID:          uint(employeeID),
		CertificationRuleID: uint(ruleID),
		CertNumber:          c.FormValue("certNumber"),
		ProcessType:         processType,
	}

	if v := c.FormValue("institutionId"); v != "" {
		var instID uint
		if _, err := fmt.Sscanf(v, "%d", &instID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID lembaga tidak valid"})
		}
		cert.InstitutionID = &instID
	}
	for field, dst := range map[string]**time.Time{
		"certDate":   &cert.CertDate,
		"validFrom":  &cert.ValidFrom,
		"validUntil": &cert.ValidUntil,
	} {
		if v := c.FormValue(field); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": field + " harus format YYYY-MM-DD"})
			}
			*dst = &t
		}
	}

	pathFile, err := saveCertificateFile(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file sertifikat"})
	}
	cert.FileURL = pathFile

	if err := h.repo.Create(&cert); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan sertifikat"})
	}

	created, err := h.repo.GetByID(cert.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat sertifikat"})
	}
	return c.Status(fiber.StatusCreated).JSON(toEmployeeCertificationResponse(*created))
}

// ReuploadFile: PUT /api/employee-certifications/:id/file (multipart form)
func (h *EmployeeCertificationHandler) ReuploadFile(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	cert, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sertifikat tidak ditemukan"})
	}

	if _, err := c.FormFile("file"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File wajib diupload"})
	}
	pathFile, err := saveCertificateFile(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file sertifikat"})
	}

	// Hapus file lama kalau ada
	if cert.FileURL != "" {
		os.Remove("./" + cert.FileURL)
	}

	cert.FileURL = pathFile
	if err := h.repo.Update(cert); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update sertifikat"})
	}
	return c.JSON(toEmployeeCertificationResponse(*cert))
}

// SoftDelete: DELETE /api/employee-certifications/:id
func (h *EmployeeCertificationHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sertifikat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus sertifikat"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
