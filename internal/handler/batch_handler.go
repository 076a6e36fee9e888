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

// BatchHandler melayani gelombang pelaksanaan sertifikasi: data batch,
// peserta, dan pemilihan calon peserta dari read model eligibility.
type BatchHandler struct {
	repo         repository.BatchRepository
	participants repository.EmployeeBatchRepository
	ruleRepo     repository.CertificationRuleRepository
	catalogRepo  repository.CatalogRepository
	employeeRepo repository.EmployeeRepository
	eligRepo     repository.EligibilityRepository
	certRepo     repository.EmployeeCertificationRepository
}

func NewBatchHandler(
	repo repository.BatchRepository,
	participants repository.EmployeeBatchRepository,
	ruleRepo repository.CertificationRuleRepository,
	catalogRepo repository.CatalogRepository,
	employeeRepo repository.EmployeeRepository,
	eligRepo repository.EligibilityRepository,
	certRepo repository.EmployeeCertificationRepository,
) *BatchHandler {
	return &BatchHandler{
		repo:         repo,
		participants: participants,
		ruleRepo:     ruleRepo,
		catalogRepo:  catalogRepo,
		employeeRepo: employeeRepo,
		eligRepo:     eligRepo,
		certRepo:     certRepo,
	}
}

type BatchRequest struct {
	Name                string  `json:"name" validate:"required"`
	CertificationRuleID uint    `json:"certificationRuleId" validate:"required"`
	InstitutionID       *uint   `json:"institutionId"`
	StartDate           *string `json:"startDate"` // "2006-01-02"
	EndDate             *string `json:"endDate"`
	Quota               *int    `json:"quota"`
	Status              string  `json:"status"`
	Notes               string  `json:"notes"`
}

type BatchResponse struct {
	ID                  uint    `json:"id"`
	Name                string  `json:"name"`
	CertificationRuleID uint    `json:"certificationRuleId"`
	CertificationCode   string  `json:"certificationCode"`
	CertificationName   string  `json:"certificationName"`
	CertificationLevel  *int    `json:"certificationLevel"`
	SubFieldCode        *string `json:"subFieldCode"`
	InstitutionID       *uint   `json:"institutionId"`
	InstitutionName     *string `json:"institutionName"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Quota     *int       `json:"quota"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`

	TotalParticipants int64 `json:"totalParticipants"`
	TotalPassed       int64 `json:"totalPassed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ParticipantResponse struct {
	ID           uint       `json:"id"`
	EmployeeID   uint       `json:"employeeId"`
	EmployeeNIP  string     `json:"employeeNip"`
	EmployeeName string     `json:"employeeName"`
	BatchID      uint       `json:"batchId"`
	BatchName    string     `json:"batchName"`
	Status       string     `json:"status"`
	Registration *time.Time `json:"registrationDate"`
	AttendedAt   *time.Time `json:"attendedAt"`
	ResultDate   *time.Time `json:"resultDate"`
	Score        *int       `json:"score"`
	Notes        string     `json:"notes"`
}

type EligibleEmployeeResponse struct {
	EmployeeID      uint    `json:"employeeId"`
	NIP             string  `json:"nip"`
	EmployeeName    string  `json:"employeeName"`
	JobPositionName *string `json:"jobPositionName"`
	Status          string  `json:"status"`
}

func (h *BatchHandler) toBatchResponse(b model.Batch) BatchResponse {
	resp := BatchResponse{
		ID:                  b.ID,
		Name:                b.Name,
		CertificationRuleID: b.CertificationRuleID,
		CertificationCode:   b.CertificationRule.Certification.Code,
		CertificationName:   b.CertificationRule.Certification.Name,
		StartDate:           b.StartDate,
		EndDate:             b.EndDate,
		Quota:               b.Quota,
		Status:              string(b.Status),
		Notes:               b.Notes,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
	if lvl := b.CertificationRule.CertificationLevel; lvl != nil {
		resp.CertificationLevel = &lvl.Level
	}
	if sub := b.CertificationRule.SubField; sub != nil {
		resp.SubFieldCode = &sub.Code
	}
	if inst := b.Institution; inst != nil {
		resp.InstitutionID = b.InstitutionID
		resp.InstitutionName = &inst.Name
	}

	total, passed, err := h.repo.CountParticipants(b.ID)
	if err != nil {
		log.Printf("batch: hitung peserta batch %d gagal: %v", b.ID, err)
	}
	resp.TotalParticipants = total
	resp.TotalPassed = passed
	return resp
}

func toParticipantResponse(eb model.EmployeeBatch) ParticipantResponse {
	return ParticipantResponse{
		ID:           eb.ID,
		EmployeeID:   eb.EmployeeID,
		EmployeeNIP:  eb.Employee.NIP,
		EmployeeName: eb.Employee.Name,
		BatchID:      eb.BatchID,
		BatchName:    eb.Batch.Name,
		Status:       string(eb.Status),
		Registration: eb.RegistrationDate,
		AttendedAt:   eb.AttendedAt,
		ResultDate:   eb.ResultDate,
		Score:        eb.Score,
		Notes:        eb.Notes,
	}
}

func parseDateField(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetPaged: GET /api/batches/paged
func (h *BatchHandler) GetPaged(c *fiber.Ctx) error {
	ruleIDs, ok := helper.QueryUintList(c, "ruleIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ruleIds harus berupa angka"})
	}
	instIDs, ok := helper.QueryUintList(c, "institutionIds")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "institutionIds harus berupa angka"})
	}

	filter := repository.BatchFilter{
		RuleIDs:        ruleIDs,
		InstitutionIDs: instIDs,
		Status:         c.Query("status"),
		Search:         c.Query("search"),
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.repo.GetPagedFiltered(filter, params)
	if err != nil {
		log.Printf("batch: query paged gagal: %v", err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]BatchResponse, 0, len(list))
	for _, b := range list {
		content = append(content, h.toBatchResponse(b))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// GetByID: GET /api/batches/:id
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	b, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch tidak ditemukan"})
	}
	return c.JSON(h.toBatchResponse(*b))
}

// Create: POST /api/batches
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !model.ValidBatchQuota(req.Quota) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quota harus antara 1 dan 250"})
	}

	if _, err := h.ruleRepo.GetByID(req.CertificationRuleID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
	}
	if req.InstitutionID != nil {
		if _, err := h.catalogRepo.GetInstitutionByID(*req.InstitutionID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lembaga tidak ditemukan"})
		}
	}

	startDate, err := parseDateField(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format startDate harus YYYY-MM-DD"})
	}
	endDate, err := parseDateField(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format endDate harus YYYY-MM-DD"})
	}

	status := model.BatchPlanned
	if req.Status != "" {
		status = model.BatchStatus(req.Status)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status batch tidak valid"})
		}
	}

	b := model.Batch{
		Name:                req.Name,
		CertificationRuleID: req.CertificationRuleID,
		InstitutionID:       req.InstitutionID,
		StartDate:           startDate,
		EndDate:             endDate,
		Quota:               req.Quota,
		Status:              status,
		Notes:               req.Notes,
	}
	if err := h.repo.Create(&b); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat batch"})
	}

	created, err := h.repo.GetByID(b.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat batch"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.toBatchResponse(*created))
}

// Update: PUT /api/batches/:id
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	b, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch tidak ditemukan"})
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if !model.ValidBatchQuota(req.Quota) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quota harus antara 1 dan 250"})
	}

	if req.Status != "" && model.BatchStatus(req.Status) != b.Status {
		next := model.BatchStatus(req.Status)
		if !next.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status batch tidak valid"})
		}
		if !b.Status.CanTransition(next) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Batch " + string(b.Status) + " tidak bisa diubah ke " + string(next),
			})
		}
		b.Status = next
	}

	if req.Name != "" {
		b.Name = req.Name
	}
	if req.CertificationRuleID != 0 && req.CertificationRuleID != b.CertificationRuleID {
		if _, err := h.ruleRepo.GetByID(req.CertificationRuleID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certification rule tidak ditemukan"})
		}
		b.CertificationRuleID = req.CertificationRuleID
	}
	if req.InstitutionID != nil {
		if _, err := h.catalogRepo.GetInstitutionByID(*req.InstitutionID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lembaga tidak ditemukan"})
		}
		b.InstitutionID = req.InstitutionID
	}
	if req.StartDate != nil {
		startDate, err := parseDateField(req.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format startDate harus YYYY-MM-DD"})
		}
		b.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDateField(req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format endDate harus YYYY-MM-DD"})
		}
		b.EndDate = endDate
	}
	if req.Quota != nil {
		b.Quota = req.Quota
	}
	if req.Notes != "" {
		b.Notes = req.Notes
	}

	if err := h.repo.Update(b); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update batch"})
	}

	updated, err := h.repo.GetByID(b.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat batch"})
	}
	return c.JSON(h.toBatchResponse(*updated))
}

// SoftDelete: DELETE /api/batches/:id
func (h *BatchHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus batch"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetParticipants: GET /api/batches/:id/participants
func (h *BatchHandler) GetParticipants(c *fiber.Ctx) error {
	batchID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	params := helper.ParsePageParams(c)

	list, total, err := h.participants.GetPagedByBatch(batchID, c.Query("search"), c.Query("status"), params)
	if err != nil {
		log.Printf("batch: query peserta batch %d gagal: %v", batchID, err)
		return c.JSON(helper.EmptyPage())
	}

	content := make([]ParticipantResponse, 0, len(list))
	for _, eb := range list {
		content = append(content, toParticipantResponse(eb))
	}
	return c.JSON(helper.NewPagedResponse(content, total, params.Size))
}

// AddParticipant: POST /api/batches/:id/participants/:employeeId
func (h *BatchHandler) AddParticipant(c *fiber.Ctx) error {
	batchID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	employeeID, err := strconv.Atoi(c.Params("employeeId"))
	if err != nil || employeeID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID pegawai tidak valid"})
	}

	batch, err := h.repo.GetByID(batchID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch tidak ditemukan"})
	}
	if _, err := h.employeeRepo.GetByID(uint(employeeID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
	}

	count, err := h.participants.CountByBatch(batchID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa quota batch"})
	}
	if batch.Quota != nil && count >= int64(*batch.Quota) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Quota batch sudah penuh"})
	}

	existing, err := h.participants.FindByBatchAndEmployee(batchID, uint(employeeID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa peserta"})
	}

	now := time.Now()
	if existing != nil {
		if !existing.DeletedAt.Valid {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Peserta sudah ada di batch ini"})
		}
		// Pernah dikeluarkan: hidupkan lagi baris lama sebagai REGISTERED
		existing.Status = model.ParticipantRegistered
		existing.RegistrationDate = &now
		existing.AttendedAt = nil
		existing.ResultDate = nil
		existing.Score = nil
		if err := h.participants.Restore(existing); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah peserta"})
		}
		restored, err := h.participants.GetByID(existing.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat peserta"})
		}
		return c.Status(fiber.StatusCreated).JSON(toParticipantResponse(*restored))
	}

	eb := model.EmployeeBatch{
		BatchID:          batchID,
		EmployeeID:       uint(employeeID),
		Status:           model.ParticipantRegistered,
		RegistrationDate: &now,
	}
	if err := h.participants.Create(&eb); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah peserta"})
	}

	created, err := h.participants.GetByID(eb.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat peserta"})
	}
	return c.Status(fiber.StatusCreated).JSON(toParticipantResponse(*created))
}

// AddParticipantsBulk: POST /api/batches/:id/participants/bulk
// Body: {"employeeIds": [1,2,3]}. Pegawai yang sudah terdaftar dilewati.
func (h *BatchHandler) AddParticipantsBulk(c *fiber.Ctx) error {
	batchID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		EmployeeIDs []uint `json:"employeeIds"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.EmployeeIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employeeIds wajib diisi"})
	}

	batch, err := h.repo.GetByID(batchID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch tidak ditemukan"})
	}

	count, err := h.participants.CountByBatch(batchID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa quota batch"})
	}
	if batch.Quota != nil && count+int64(len(req.EmployeeIDs)) > int64(*batch.Quota) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Jumlah peserta melebihi quota batch"})
	}

	now := time.Now()
	added := make([]ParticipantResponse, 0, len(req.EmployeeIDs))
	for _, empID := range req.EmployeeIDs {
		if _, err := h.employeeRepo.GetByID(empID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
		}

		existing, err := h.participants.FindByBatchAndEmployee(batchID, empID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa peserta"})
		}
		if existing != nil && !existing.DeletedAt.Valid {
			continue
		}

		if existing != nil {
			existing.Status = model.ParticipantRegistered
			existing.RegistrationDate = &now
			existing.AttendedAt = nil
			existing.ResultDate = nil
			existing.Score = nil
			if err := h.participants.Restore(existing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah peserta"})
			}
			if loaded, err := h.participants.GetByID(existing.ID); err == nil {
				added = append(added, toParticipantResponse(*loaded))
			}
			continue
		}

		eb := model.EmployeeBatch{
			BatchID:          batchID,
			EmployeeID:       empID,
			Status:           model.ParticipantRegistered,
			RegistrationDate: &now,
		}
		if err := h.participants.Create(&eb); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah peserta"})
		}
		if loaded, err := h.participants.GetByID(eb.ID); err == nil {
			added = append(added, toParticipantResponse(*loaded))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(added)
}

// UpdateParticipantStatus: PUT /api/batches/participants/:id/status
// Body: {"status": "...", "score": 80, "notes": "..."}
func (h *BatchHandler) UpdateParticipantStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	eb, err := h.participants.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Peserta tidak ditemukan"})
	}

	var req struct {
		Status string `json:"status"`
		Score  *int   `json:"score"`
		Notes  string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	next := model.ParticipantStatus(req.Status)
	if !next.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status peserta tidak valid"})
	}
	if !eb.Status.CanTransition(next) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Peserta " + string(eb.Status) + " tidak bisa diubah ke " + string(next),
		})
	}

	now := time.Now()
	eb.Status = next
	if next == model.ParticipantAttended && eb.AttendedAt == nil {
		eb.AttendedAt = &now
	}
	if (next == model.ParticipantPassed || next == model.ParticipantFailed) && eb.ResultDate == nil {
		eb.ResultDate = &now
	}
	if req.Score != nil {
		eb.Score = req.Score
	}
	if req.Notes != "" {
		eb.Notes = req.Notes
	}

	if err := h.participants.Update(eb); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update peserta"})
	}

	// Lulus berarti pegawai punya sertifikat baru; tulis/update langsung
	// supaya refresh eligibility berikutnya membacanya.
	if next == model.ParticipantPassed {
		if err := h.recordPassedCertification(eb); err != nil {
			log.Printf("batch: catat sertifikat peserta %d gagal: %v", eb.ID, err)
		}
	}

	return c.JSON(toParticipantResponse(*eb))
}

func (h *BatchHandler) recordPassedCertification(eb *model.EmployeeBatch) error {
	batch, err := h.repo.GetByID(eb.BatchID)
	if err != nil {
		return err
	}
	rule := batch.CertificationRule

	certDate := time.Now()
	if eb.ResultDate != nil {
		certDate = *eb.ResultDate
	}

	cert, err := h.certRepo.GetLatestByEmployeeAndRule(eb.EmployeeID, batch.CertificationRuleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if cert == nil {
		cert = &model.EmployeeCertification{
			EmployeeID:          eb.EmployeeID,
			CertificationRuleID: batch.CertificationRuleID,
			InstitutionID:       batch.InstitutionID,
			ProcessType:         model.ProcessSertifikasi,
		}
	}

	cert.CertDate = &certDate
	cert.ValidFrom = &certDate
	if rule.ValidityMonths != nil {
		until := eligibility.AddMonths(certDate, *rule.ValidityMonths)
		cert.ValidUntil = &until
	}

	if cert.ID == 0 {
		return h.certRepo.Create(cert)
	}
	return h.certRepo.Update(cert)
}

// RemoveParticipant: DELETE /api/batches/participants/:id
func (h *BatchHandler) RemoveParticipant(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.participants.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Peserta tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus peserta"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetEligible: GET /api/batches/:id/eligible
// Calon peserta: baris eligibility aktif untuk rule batch ini, minus
// pegawai yang sudah masuk batch.
func (h *BatchHandler) GetEligible(c *fiber.Ctx) error {
	batchID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	batch, err := h.repo.GetByID(batchID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch tidak ditemukan"})
	}

	eligibles, err := h.eligRepo.GetActiveByRule(batch.CertificationRuleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil calon peserta"})
	}

	participants, err := h.participants.GetByBatch(batchID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil peserta batch"})
	}
	registered := make(map[uint]bool, len(participants))
	for _, eb := range participants {
		registered[eb.EmployeeID] = true
	}

	content := make([]EligibleEmployeeResponse, 0, len(eligibles))
	for _, rec := range eligibles {
		if registered[rec.EmployeeID] {
			continue
		}
		resp := EligibleEmployeeResponse{
			EmployeeID:   rec.EmployeeID,
			NIP:          rec.Employee.NIP,
			EmployeeName: rec.Employee.Name,
			Status:       string(rec.Status),
		}
		if jp := rec.Employee.JobPosition; jp != nil {
			resp.JobPositionName = &jp.Name
		}
		content = append(content, resp)
	}
	return c.JSON(content)
}
