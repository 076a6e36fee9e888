package repository

import (
	"strings"

	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type CertificationRuleFilter struct {
	CertificationIDs []uint
	LevelIDs         []uint
	SubFieldIDs      []uint
	Status           string // "active" | "inactive" | ""
	Search           string
}

type CertificationRuleRepository interface {
	GetPagedFiltered(f CertificationRuleFilter, p helper.PageParams) ([]model.CertificationRule, int64, error)
	GetAll() ([]model.CertificationRule, error)
	GetAllActive() ([]model.CertificationRule, error)
	GetByID(id uint) (*model.CertificationRule, error)
	FindByCombo(certID uint, levelID, subID *uint) (*model.CertificationRule, error)
	Create(rule *model.CertificationRule) error
	Update(rule *model.CertificationRule) error
	SoftDelete(id uint) error
}

type certificationRuleRepository struct {
	db *gorm.DB
}

func NewCertificationRuleRepository(db *gorm.DB) CertificationRuleRepository {
	return &certificationRuleRepository{db}
}

func (r *certificationRuleRepository) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("Certification").
		Preload("CertificationLevel").
		Preload("SubField").
		Preload("RefreshmentType")
}

func (r *certificationRuleRepository) applyFilter(q *gorm.DB, f CertificationRuleFilter) *gorm.DB {
	q = q.Joins("JOIN certifications ON certifications.id = certification_rules.certification_id").
		Joins("LEFT JOIN certification_levels ON certification_levels.id = certification_rules.certification_level_id").
		Joins("LEFT JOIN sub_fields ON sub_fields.id = certification_rules.sub_field_id")

	if len(f.CertificationIDs) > 0 {
		q = q.Where("certification_rules.certification_id IN ?", f.CertificationIDs)
	}
	if len(f.LevelIDs) > 0 {
		q = q.Where("certification_rules.certification_level_id IN ?", f.LevelIDs)
	}
	if len(f.SubFieldIDs) > 0 {
		q = q.Where("certification_rules.sub_field_id IN ?", f.SubFieldIDs)
	}
	switch strings.ToLower(f.Status) {
	case "active":
		q = q.Where("certification_rules.is_active = ?", true)
	case "inactive":
		q = q.Where("certification_rules.is_active = ?", false)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(certifications.code) LIKE ? OR LOWER(certifications.name) LIKE ? OR LOWER(sub_fields.name) LIKE ? OR LOWER(sub_fields.code) LIKE ?",
			like, like, like, like,
		)
	}
	return q
}

func (r *certificationRuleRepository) GetPagedFiltered(f CertificationRuleFilter, p helper.PageParams) ([]model.CertificationRule, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.CertificationRule{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.CertificationRule
	err := r.preload(r.applyFilter(r.db.Model(&model.CertificationRule{}), f)).
		Select("certification_rules.*").
		Order("certifications.code asc, certification_levels.level asc, sub_fields.code asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *certificationRuleRepository) GetAll() ([]model.CertificationRule, error) {
	var list []model.CertificationRule
	err := r.preload(r.db).Find(&list).Error
	return list, err
}

func (r *certificationRuleRepository) GetAllActive() ([]model.CertificationRule, error) {
	var list []model.CertificationRule
	err := r.preload(r.db.Where("is_active = ?", true)).Find(&list).Error
	return list, err
}

func (r *certificationRuleRepository) GetByID(id uint) (*model.CertificationRule, error) {
	var rule model.CertificationRule
	if err := r.preload(r.db).First(&rule, id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// FindByCombo mencari rule dengan kombinasi (sertifikasi, jenjang, sub bidang)
// yang sama, untuk menolak duplikat saat create.
func (r *certificationRuleRepository) FindByCombo(certID uint, levelID, subID *uint) (*model.CertificationRule, error) {
	q := r.db.Where("certification_id = ?", certID)
	if levelID != nil {
		q = q.Where("certification_level_id = ?", *levelID)
	} else {
		q = q.Where("certification_level_id IS NULL")
	}
	if subID != nil {
		q = q.Where("sub_field_id = ?", *subID)
	} else {
		q = q.Where("sub_field_id IS NULL")
	}

	var rule model.CertificationRule
	if err := q.First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *certificationRuleRepository) Create(rule *model.CertificationRule) error {
	return r.db.Create(rule).Error
}

func (r *certificationRuleRepository) Update(rule *model.CertificationRule) error {
	return r.db.Save(rule).Error
}

func (r *certificationRuleRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&model.CertificationRule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
