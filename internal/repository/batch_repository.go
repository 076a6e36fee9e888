package repository

import (
	"strings"

	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type BatchFilter struct {
	RuleIDs        []uint
	InstitutionIDs []uint
	Status         string // PLANNED/ONGOING/FINISHED/CANCELED, kosong = semua
	Search         string
}

type BatchRepository interface {
	GetPagedFiltered(f BatchFilter, p helper.PageParams) ([]model.Batch, int64, error)
	GetByID(id uint) (*model.Batch, error)
	Create(b *model.Batch) error
	Update(b *model.Batch) error
	SoftDelete(id uint) error
	CountParticipants(batchID uint) (total int64, passed int64, err error)
}

type batchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db}
}

func (r *batchRepository) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		Preload("Institution")
}

func (r *batchRepository) applyFilter(q *gorm.DB, f BatchFilter) *gorm.DB {
	if len(f.RuleIDs) > 0 {
		q = q.Where("certification_rule_id IN ?", f.RuleIDs)
	}
	if len(f.InstitutionIDs) > 0 {
		q = q.Where("institution_id IN ?", f.InstitutionIDs)
	}
	if s := strings.ToUpper(strings.TrimSpace(f.Status)); s != "" {
		q = q.Where("status = ?", s)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(notes) LIKE ?", like, like)
	}
	return q
}

func (r *batchRepository) GetPagedFiltered(f BatchFilter, p helper.PageParams) ([]model.Batch, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.Batch{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Batch
	err := r.preload(r.applyFilter(r.db.Model(&model.Batch{}), f)).
		Order("start_date asc, id asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *batchRepository) GetByID(id uint) (*model.Batch, error) {
	var b model.Batch
	if err := r.preload(r.db).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepository) Create(b *model.Batch) error {
	return r.db.Create(b).Error
}

func (r *batchRepository) Update(b *model.Batch) error {
	return r.db.Save(b).Error
}

func (r *batchRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&model.Batch{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *batchRepository) CountParticipants(batchID uint) (int64, int64, error) {
	var total int64
	err := r.db.Model(&model.EmployeeBatch{}).Where("batch_id = ?", batchID).Count(&total).Error
	if err != nil {
		return 0, 0, err
	}

	var passed int64
	err = r.db.Model(&model.EmployeeBatch{}).
		Where("batch_id = ? AND status = ?", batchID, model.ParticipantPassed).
		Count(&passed).Error
	return total, passed, err
}
