package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"certification-backend/internal/eligibility"
	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type EligibilityRepository interface {
	GetPagedFiltered(f eligibility.Filter, p helper.PageParams) ([]model.EmployeeEligibility, int64, error)
	GetActiveByRule(ruleID uint) ([]model.EmployeeEligibility, error)
	GetByID(id uint) (*model.EmployeeEligibility, error)
	ToggleActive(id uint) (*model.EmployeeEligibility, error)
	SoftDelete(id uint) error
	Upsert(rec *model.EmployeeEligibility) error

	// eligibility.Store
	LoadSnapshot() (*eligibility.Snapshot, error)
	ReplaceAll(records []model.EmployeeEligibility) error
}

type eligibilityRepository struct {
	db *gorm.DB
}

func NewEligibilityRepository(db *gorm.DB) EligibilityRepository {
	return &eligibilityRepository{db}
}

func (r *eligibilityRepository) applyFilter(q *gorm.DB, f eligibility.Filter) *gorm.DB {
	q = q.Joins("JOIN employees ON employees.id = employee_eligibilities.employee_id").
		Joins("JOIN certification_rules ON certification_rules.id = employee_eligibilities.certification_rule_id").
		Joins("JOIN certifications ON certifications.id = certification_rules.certification_id").
		Joins("LEFT JOIN certification_levels ON certification_levels.id = certification_rules.certification_level_id").
		Joins("LEFT JOIN sub_fields ON sub_fields.id = certification_rules.sub_field_id").
		Joins("LEFT JOIN job_positions ON job_positions.id = employees.job_position_id")

	if len(f.EmployeeIDs) > 0 {
		q = q.Where("employee_eligibilities.employee_id IN ?", f.EmployeeIDs)
	}
	if len(f.JobIDs) > 0 {
		q = q.Where("employees.job_position_id IN ?", f.JobIDs)
	}
	if len(f.CertCodes) > 0 {
		q = q.Where("certifications.code IN ?", f.CertCodes)
	}
	if len(f.Levels) > 0 {
		q = q.Where("certification_levels.level IN ?", f.Levels)
	}
	if len(f.SubCodes) > 0 {
		q = q.Where("sub_fields.code IN ?", f.SubCodes)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("employee_eligibilities.status IN ?", f.Statuses)
	}
	if len(f.Sources) > 0 {
		q = q.Where("employee_eligibilities.source IN ?", f.Sources)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(employees.nip) LIKE ? OR LOWER(employees.name) LIKE ? OR LOWER(job_positions.name) LIKE ?"+
				" OR LOWER(certifications.code) LIKE ? OR LOWER(certifications.name) LIKE ?"+
				" OR LOWER(sub_fields.name) LIKE ? OR LOWER(employee_eligibilities.source) LIKE ?",
			like, like, like, like, like, like, like,
		)
	}
	return q
}

func (r *eligibilityRepository) GetPagedFiltered(f eligibility.Filter, p helper.PageParams) ([]model.EmployeeEligibility, int64, error) {
	var total int64
	base := r.applyFilter(r.db.Model(&model.EmployeeEligibility{}), f)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.EmployeeEligibility
	err := r.applyFilter(r.db.Model(&model.EmployeeEligibility{}), f).
		Select("employee_eligibilities.*").
		Preload("Employee.JobPosition").
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		Order("job_positions.name asc, certifications.code asc, certification_levels.level asc, sub_fields.code asc, employee_eligibilities.status asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

// GetActiveByRule mengambil baris eligibility aktif untuk satu rule,
// dipakai untuk memilih calon peserta batch.
func (r *eligibilityRepository) GetActiveByRule(ruleID uint) ([]model.EmployeeEligibility, error) {
	var list []model.EmployeeEligibility
	err := r.db.Where("certification_rule_id = ? AND is_active = ?", ruleID, true).
		Preload("Employee.JobPosition").
		Preload("CertificationRule.Certification").
		Find(&list).Error
	return list, err
}

func (r *eligibilityRepository) GetByID(id uint) (*model.EmployeeEligibility, error) {
	var e model.EmployeeEligibility
	err := r.db.
		Preload("Employee.JobPosition").
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eligibilityRepository) ToggleActive(id uint) (*model.EmployeeEligibility, error) {
	e, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	e.IsActive = !e.IsActive
	if err := r.db.Model(e).Update("is_active", e.IsActive).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eligibilityRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&model.EmployeeEligibility{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Upsert menulis satu baris read model untuk (employee, rule) di luar siklus
// rebuild, dipakai saat penunjukan manual dibuat supaya langsung terlihat
// tanpa menunggu refresh.
func (r *eligibilityRepository) Upsert(rec *model.EmployeeEligibility) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "certification_rule_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "source", "due_date",
			"validity_months", "reminder_months", "wajib_setelah_masuk",
			"is_active", "deleted_at", "updated_at",
		}),
	}).Omit(clause.Associations).Create(rec).Error
}

// LoadSnapshot memuat seluruh input engine dalam satu tarikan: pegawai aktif,
// mapping aktif per jabatan, penunjukan manual aktif per pegawai, dan riwayat
// sertifikat per (pegawai, rule).
func (r *eligibilityRepository) LoadSnapshot() (*eligibility.Snapshot, error) {
	var employees []model.Employee
	if err := r.db.Where("is_active = ?", true).Preload("JobPosition").Find(&employees).Error; err != nil {
		return nil, err
	}

	var mappings []model.JobCertificationMapping
	err := r.db.Where("is_active = ?", true).
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	mappingsByJob := make(map[uint][]model.JobCertificationMapping)
	for _, m := range mappings {
		mappingsByJob[m.JobPositionID] = append(mappingsByJob[m.JobPositionID], m)
	}

	var exceptions []model.EmployeeCertificationException
	err = r.db.Where("is_active = ?", true).
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		Find(&exceptions).Error
	if err != nil {
		return nil, err
	}
	excByEmployee := make(map[uint][]model.EmployeeCertificationException)
	for _, e := range exceptions {
		excByEmployee[e.EmployeeID] = append(excByEmployee[e.EmployeeID], e)
	}

	var certs []model.EmployeeCertification
	if err := r.db.Find(&certs).Error; err != nil {
		return nil, err
	}
	certsByKey := make(map[eligibility.CertKey][]model.EmployeeCertification)
	for _, c := range certs {
		key := eligibility.CertKey{EmployeeID: c.EmployeeID, CertificationRuleID: c.CertificationRuleID}
		certsByKey[key] = append(certsByKey[key], c)
	}

	return &eligibility.Snapshot{
		Employees:            employees,
		MappingsByJob:        mappingsByJob,
		ExceptionsByEmployee: excByEmployee,
		Certifications:       certsByKey,
	}, nil
}

// ReplaceAll mengganti seluruh read model dalam satu transaksi: hapus semua
// baris lama lalu insert batch baris baru. Pembaca tidak pernah melihat
// campuran baris lama dan baru.
func (r *eligibilityRepository) ReplaceAll(records []model.EmployeeEligibility) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.EmployeeEligibility{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		// Omit associations: engine mengisi relasi untuk keperluan notifikasi,
		// jangan sampai GORM ikut meng-upsert employee/rule
		return tx.Omit(clause.Associations).CreateInBatches(records, 500).Error
	})
}
