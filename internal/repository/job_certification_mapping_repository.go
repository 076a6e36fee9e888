package repository

import (
	"strings"

	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type JobMappingFilter struct {
	JobIDs    []uint
	CertCodes []string
	Levels    []int
	SubCodes  []string
	Status    string // "active" | "inactive" | ""
	Search    string
}

type JobCertificationMappingRepository interface {
	GetPagedFiltered(f JobMappingFilter, p helper.PageParams) ([]model.JobCertificationMapping, int64, error)
	GetByID(id uint) (*model.JobCertificationMapping, error)
	GetActiveByJobPosition(jobPositionID uint) ([]model.JobCertificationMapping, error)
	ExistsByJobAndRule(jobPositionID, ruleID uint) (bool, error)
	Create(m *model.JobCertificationMapping) error
	Update(m *model.JobCertificationMapping) error
	SoftDelete(id uint) error
}

type jobCertificationMappingRepository struct {
	db *gorm.DB
}

func NewJobCertificationMappingRepository(db *gorm.DB) JobCertificationMappingRepository {
	return &jobCertificationMappingRepository{db}
}

func (r *jobCertificationMappingRepository) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("JobPosition").
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField")
}

func (r *jobCertificationMappingRepository) applyFilter(q *gorm.DB, f JobMappingFilter) *gorm.DB {
	q = q.Joins("JOIN job_positions ON job_positions.id = job_certification_mappings.job_position_id").
		Joins("JOIN certification_rules ON certification_rules.id = job_certification_mappings.certification_rule_id").
		Joins("JOIN certifications ON certifications.id = certification_rules.certification_id").
		Joins("LEFT JOIN certification_levels ON certification_levels.id = certification_rules.certification_level_id").
		Joins("LEFT JOIN sub_fields ON sub_fields.id = certification_rules.sub_field_id")

	if len(f.JobIDs) > 0 {
		q = q.Where("job_certification_mappings.job_position_id IN ?", f.JobIDs)
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
	switch strings.ToLower(f.Status) {
	case "active":
		q = q.Where("job_certification_mappings.is_active = ?", true)
	case "inactive":
		q = q.Where("job_certification_mappings.is_active = ?", false)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(job_positions.name) LIKE ? OR LOWER(certifications.code) LIKE ? OR LOWER(certifications.name) LIKE ?",
			like, like, like,
		)
	}
	return q
}

func (r *jobCertificationMappingRepository) GetPagedFiltered(f JobMappingFilter, p helper.PageParams) ([]model.JobCertificationMapping, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.JobCertificationMapping{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.JobCertificationMapping
	err := r.preload(r.applyFilter(r.db.Model(&model.JobCertificationMapping{}), f)).
		Select("job_certification_mappings.*").
		Order("job_positions.name asc, certifications.code asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *jobCertificationMappingRepository) GetByID(id uint) (*model.JobCertificationMapping, error) {
	var m model.JobCertificationMapping
	if err := r.preload(r.db).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *jobCertificationMappingRepository) GetActiveByJobPosition(jobPositionID uint) ([]model.JobCertificationMapping, error) {
	var list []model.JobCertificationMapping
	err := r.preload(r.db.Where("job_position_id = ? AND is_active = ?", jobPositionID, true)).Find(&list).Error
	return list, err
}

func (r *jobCertificationMappingRepository) ExistsByJobAndRule(jobPositionID, ruleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.JobCertificationMapping{}).
		Where("job_position_id = ? AND certification_rule_id = ?", jobPositionID, ruleID).
		Count(&count).Error
	return count > 0, err
}

func (r *jobCertificationMappingRepository) Create(m *model.JobCertificationMapping) error {
	return r.db.Create(m).Error
}

func (r *jobCertificationMappingRepository) Update(m *model.JobCertificationMapping) error {
	return r.db.Save(m).Error
}

func (r *jobCertificationMappingRepository) SoftDelete(id uint) error {
	res := r.db.Model(&model.JobCertificationMapping{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.db.Delete(&model.JobCertificationMapping{}, id).Error
}
