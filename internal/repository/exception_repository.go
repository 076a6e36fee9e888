package repository

import (
	"strings"

	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

// Filter list penunjukan manual (halaman eligibility manual).
type ExceptionFilter struct {
	EmployeeIDs []uint
	CertCodes   []string
	Search      string
}

type ExceptionRepository interface {
	GetPagedFiltered(f ExceptionFilter, p helper.PageParams) ([]model.EmployeeCertificationException, int64, error)
	GetByID(id uint) (*model.EmployeeCertificationException, error)
	FindByEmployeeAndRule(employeeID, ruleID uint) (*model.EmployeeCertificationException, error)
	Create(exc *model.EmployeeCertificationException) error
	Update(exc *model.EmployeeCertificationException) error
	SoftDelete(id uint) error
}

type exceptionRepository struct {
	db *gorm.DB
}

func NewExceptionRepository(db *gorm.DB) ExceptionRepository {
	return &exceptionRepository{db}
}

func (r *exceptionRepository) applyFilter(q *gorm.DB, f ExceptionFilter) *gorm.DB {
	q = q.Joins("JOIN employees ON employees.id = employee_certification_exceptions.employee_id").
		Joins("JOIN certification_rules ON certification_rules.id = employee_certification_exceptions.certification_rule_id").
		Joins("JOIN certifications ON certifications.id = certification_rules.certification_id")

	if len(f.EmployeeIDs) > 0 {
		q = q.Where("employee_certification_exceptions.employee_id IN ?", f.EmployeeIDs)
	}
	if len(f.CertCodes) > 0 {
		q = q.Where("certifications.code IN ?", f.CertCodes)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(employees.nip) LIKE ? OR LOWER(employees.name) LIKE ? OR LOWER(certifications.code) LIKE ? OR LOWER(certifications.name) LIKE ?",
			like, like, like, like,
		)
	}
	return q
}

func (r *exceptionRepository) GetPagedFiltered(f ExceptionFilter, p helper.PageParams) ([]model.EmployeeCertificationException, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.EmployeeCertificationException{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.EmployeeCertificationException
	err := r.applyFilter(r.db.Model(&model.EmployeeCertificationException{}), f).
		Select("employee_certification_exceptions.*").
		Preload("Employee.JobPosition").
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		Order("employees.name asc, certifications.code asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *exceptionRepository) GetByID(id uint) (*model.EmployeeCertificationException, error) {
	var exc model.EmployeeCertificationException
	err := r.db.
		Preload("Employee.JobPosition").
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		First(&exc, id).Error
	if err != nil {
		return nil, err
	}
	return &exc, nil
}

func (r *exceptionRepository) FindByEmployeeAndRule(employeeID, ruleID uint) (*model.EmployeeCertificationException, error) {
	var exc model.EmployeeCertificationException
	err := r.db.Where("employee_id = ? AND certification_rule_id = ?", employeeID, ruleID).First(&exc).Error
	if err != nil {
		return nil, err
	}
	return &exc, nil
}

func (r *exceptionRepository) Create(exc *model.EmployeeCertificationException) error {
	return r.db.Create(exc).Error
}

func (r *exceptionRepository) Update(exc *model.EmployeeCertificationException) error {
	return r.db.Save(exc).Error
}

func (r *exceptionRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&model.EmployeeCertificationException{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
