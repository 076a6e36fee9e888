package repository

import (
	"strings"

	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type EmployeeFilter struct {
	JobIDs  []uint
	UnitIDs []uint
	Status  string // "active" | "inactive" | ""
	Search  string // NIP atau nama
}

type EmployeeRepository interface {
	GetPagedFiltered(f EmployeeFilter, p helper.PageParams) ([]model.Employee, int64, error)
	GetAll() ([]model.Employee, error)
	GetByID(id uint) (*model.Employee, error)
	FindByNIP(nip string) (*model.Employee, error)
	Create(emp *model.Employee) error
	Update(emp *model.Employee) error
	SoftDelete(id uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) applyFilter(q *gorm.DB, f EmployeeFilter) *gorm.DB {
	if len(f.JobIDs) > 0 {
		q = q.Where("job_position_id IN ?", f.JobIDs)
	}
	if len(f.UnitIDs) > 0 {
		q = q.Where("unit_id IN ?", f.UnitIDs)
	}
	switch strings.ToLower(f.Status) {
	case "active":
		q = q.Where("is_active = ?", true)
	case "inactive":
		q = q.Where("is_active = ?", false)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(nip) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}
	return q
}

func (r *employeeRepository) GetPagedFiltered(f EmployeeFilter, p helper.PageParams) ([]model.Employee, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.Employee{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Employee
	err := r.applyFilter(r.db.Model(&model.Employee{}), f).
		Preload("JobPosition").
		Preload("Unit.Division").
		Order("name asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var list []model.Employee
	err := r.db.Preload("JobPosition").Order("name asc").Find(&list).Error
	return list, err
}

func (r *employeeRepository) GetByID(id uint) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("JobPosition").Preload("Unit.Division").First(&emp, id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) FindByNIP(nip string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("JobPosition").Where("nip = ?", nip).First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Create(emp *model.Employee) error {
	return r.db.Create(emp).Error
}

func (r *employeeRepository) Update(emp *model.Employee) error {
	return r.db.Save(emp).Error
}

func (r *employeeRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&model.Employee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
