package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type EmployeeBatchRepository interface {
	GetByBatch(batchID uint) ([]model.EmployeeBatch, error)
	GetPagedByBatch(batchID uint, search, status string, p helper.PageParams) ([]model.EmployeeBatch, int64, error)
	GetByID(id uint) (*model.EmployeeBatch, error)
	// FindByBatchAndEmployee ikut melihat baris soft-deleted supaya peserta
	// yang pernah dikeluarkan bisa di-restore, bukan dobel insert.
	FindByBatchAndEmployee(batchID, employeeID uint) (*model.EmployeeBatch, error)
	CountByBatch(batchID uint) (int64, error)
	Create(eb *model.EmployeeBatch) error
	Update(eb *model.EmployeeBatch) error
	Restore(eb *model.EmployeeBatch) error
	SoftDelete(id uint) error
}

type employeeBatchRepository struct {
	db *gorm.DB
}

func NewEmployeeBatchRepository(db *gorm.DB) EmployeeBatchRepository {
	return &employeeBatchRepository{db}
}

func (r *employeeBatchRepository) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("Employee.JobPosition").Preload("Batch")
}

func (r *employeeBatchRepository) GetByBatch(batchID uint) ([]model.EmployeeBatch, error) {
	var list []model.EmployeeBatch
	err := r.preload(r.db.Where("batch_id = ?", batchID)).
		Joins("JOIN employees ON employees.id = employee_batches.employee_id").
		Select("employee_batches.*").
		Order("employees.nip asc").
		Find(&list).Error
	return list, err
}

func (r *employeeBatchRepository) GetPagedByBatch(batchID uint, search, status string, p helper.PageParams) ([]model.EmployeeBatch, int64, error) {
	apply := func(q *gorm.DB) *gorm.DB {
		q = q.Joins("JOIN employees ON employees.id = employee_batches.employee_id").
			Where("employee_batches.batch_id = ?", batchID)
		if s := strings.ToUpper(strings.TrimSpace(status)); s != "" {
			q = q.Where("employee_batches.status = ?", s)
		}
		if s := strings.TrimSpace(search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			q = q.Where("LOWER(employees.nip) LIKE ? OR LOWER(employees.name) LIKE ?", like, like)
		}
		return q
	}

	var total int64
	if err := apply(r.db.Model(&model.EmployeeBatch{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.EmployeeBatch
	err := r.preload(apply(r.db.Model(&model.EmployeeBatch{}))).
		Select("employee_batches.*").
		Order("employees.nip asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *employeeBatchRepository) GetByID(id uint) (*model.EmployeeBatch, error) {
	var eb model.EmployeeBatch
	if err := r.preload(r.db).First(&eb, id).Error; err != nil {
		return nil, err
	}
	return &eb, nil
}

func (r *employeeBatchRepository) FindByBatchAndEmployee(batchID, employeeID uint) (*model.EmployeeBatch, error) {
	var eb model.EmployeeBatch
	err := r.db.Unscoped().
		Where("batch_id = ? AND employee_id = ?", batchID, employeeID).
		First(&eb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &eb, nil
}

func (r *employeeBatchRepository) CountByBatch(batchID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.EmployeeBatch{}).Where("batch_id = ?", batchID).Count(&count).Error
	return count, err
}

func (r *employeeBatchRepository) Create(eb *model.EmployeeBatch) error {
	return r.db.Create(eb).Error
}

func (r *employeeBatchRepository) Update(eb *model.EmployeeBatch) error {
	return r.db.Save(eb).Error
}

// Restore menghidupkan lagi baris soft-deleted (peserta masuk ulang).
func (r *employeeBatchRepository) Restore(eb *model.EmployeeBatch) error {
	eb.DeletedAt = gorm.DeletedAt{}
	return r.db.Unscoped().Save(eb).Error
}

func (r *employeeBatchRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&model.EmployeeBatch{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
