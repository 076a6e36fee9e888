package repository

import (
	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type EmployeeCertificationRepository interface {
	GetPagedByEmployee(employeeID uint, p helper.PageParams) ([]model.EmployeeCertification, int64, error)
	GetByID(id uint) (*model.EmployeeCertification, error)
	GetLatestByEmployeeAndRule(employeeID, ruleID uint) (*model.EmployeeCertification, error)
	Create(cert *model.EmployeeCertification) error
	Update(cert *model.EmployeeCertification) error
	SoftDelete(id uint) error
}

type employeeCertificationRepository struct {
	db *gorm.DB
}

func NewEmployeeCertificationRepository(db *gorm.DB) EmployeeCertificationRepository {
	return &employeeCertificationRepository{db}
}

func (r *employeeCertificationRepository) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("Employee").
		Preload("CertificationRule.Certification").
		Preload("CertificationRule.CertificationLevel").
		Preload("CertificationRule.SubField").
		Preload("Institution")
}

func (r *employeeCertificationRepository) GetPagedByEmployee(employeeID uint, p helper.PageParams) ([]model.EmployeeCertification, int64, error) {
	var total int64
	if err := r.db.Model(&model.EmployeeCertification{}).Where("employee_id = ?", employeeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.EmployeeCertification
	err := r.preload(r.db.Where("employee_id = ?", employeeID)).
		Order("cert_date desc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *employeeCertificationRepository) GetByID(id uint) (*model.EmployeeCertification, error) {
	var cert model.EmployeeCertification
	if err := r.preload(r.db).First(&cert, id).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

// GetLatestByEmployeeAndRule mengambil sertifikat dengan certDate terbaru;
// tanggal seri dipecah dengan ID terbesar.
func (r *employeeCertificationRepository) GetLatestByEmployeeAndRule(employeeID, ruleID uint) (*model.EmployeeCertification, error) {
	var cert model.EmployeeCertification
	err := r.db.Where("employee_id = ? AND certification_rule_id = ?", employeeID, ruleID).
		Order("cert_date desc, id desc").
		First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *employeeCertificationRepository) Create(cert *model.EmployeeCertification) error {
	return r.db.Create(cert).Error
}

func (r *employeeCertificationRepository) Update(cert *model.EmployeeCertification) error {
	return r.db.Save(cert).Error
}

func (r *employeeCertificationRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&model.EmployeeCertification{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
