package repository

import (
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

// OrganizationRepository membungkus hirarki organisasi:
// Regional -> Division -> Unit -> JobPosition.
type OrganizationRepository interface {
	GetRegionals() ([]model.Regional, error)
	GetRegionalByID(id uint) (*model.Regional, error)
	CreateRegional(reg *model.Regional) error
	UpdateRegional(reg *model.Regional) error
	DeleteRegional(id uint) error

	GetDivisions() ([]model.Division, error)
	GetDivisionByID(id uint) (*model.Division, error)
	CreateDivision(div *model.Division) error
	UpdateDivision(div *model.Division) error
	DeleteDivision(id uint) error

	GetUnits() ([]model.Unit, error)
	GetUnitByID(id uint) (*model.Unit, error)
	CreateUnit(u *model.Unit) error
	UpdateUnit(u *model.Unit) error
	DeleteUnit(id uint) error

	GetJobPositions() ([]model.JobPosition, error)
	GetJobPositionByID(id uint) (*model.JobPosition, error)
	CreateJobPosition(jp *model.JobPosition) error
	UpdateJobPosition(jp *model.JobPosition) error
	DeleteJobPosition(id uint) error
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db}
}

func (r *organizationRepository) GetRegionals() ([]model.Regional, error) {
	var list []model.Regional
	err := r.db.Order("code asc").Find(&list).Error
	return list, err
}

func (r *organizationRepository) GetRegionalByID(id uint) (*model.Regional, error) {
	var reg model.Regional
	if err := r.db.First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *organizationRepository) CreateRegional(reg *model.Regional) error { return r.db.Create(reg).Error }
func (r *organizationRepository) UpdateRegional(reg *model.Regional) error { return r.db.Save(reg).Error }

func (r *organizationRepository) DeleteRegional(id uint) error {
	return deleteByID(r.db, &model.Regional{}, id)
}

func (r *organizationRepository) GetDivisions() ([]model.Division, error) {
	var list []model.Division
	err := r.db.Preload("Regional").Order("code asc").Find(&list).Error
	return list, err
}

func (r *organizationRepository) GetDivisionByID(id uint) (*model.Division, error) {
	var div model.Division
	if err := r.db.First(&div, id).Error; err != nil {
		return nil, err
	}
	return &div, nil
}

func (r *organizationRepository) CreateDivision(div *model.Division) error { return r.db.Create(div).Error }
func (r *organizationRepository) UpdateDivision(div *model.Division) error { return r.db.Save(div).Error }

func (r *organizationRepository) DeleteDivision(id uint) error {
	return deleteByID(r.db, &model.Division{}, id)
}

func (r *organizationRepository) GetUnits() ([]model.Unit, error) {
	var list []model.Unit
	err := r.db.Preload("Division.Regional").Order("code asc").Find(&list).Error
	return list, err
}

func (r *organizationRepository) GetUnitByID(id uint) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *organizationRepository) CreateUnit(u *model.Unit) error { return r.db.Create(u).Error }
func (r *organizationRepository) UpdateUnit(u *model.Unit) error { return r.db.Save(u).Error }

func (r *organizationRepository) DeleteUnit(id uint) error {
	return deleteByID(r.db, &model.Unit{}, id)
}

func (r *organizationRepository) GetJobPositions() ([]model.JobPosition, error) {
	var list []model.JobPosition
	err := r.db.Preload("Unit").Order("name asc").Find(&list).Error
	return list, err
}

func (r *organizationRepository) GetJobPositionByID(id uint) (*model.JobPosition, error) {
	var jp model.JobPosition
	if err := r.db.Preload("Unit").First(&jp, id).Error; err != nil {
		return nil, err
	}
	return &jp, nil
}

func (r *organizationRepository) CreateJobPosition(jp *model.JobPosition) error {
	return r.db.Create(jp).Error
}

func (r *organizationRepository) UpdateJobPosition(jp *model.JobPosition) error {
	return r.db.Save(jp).Error
}

func (r *organizationRepository) DeleteJobPosition(id uint) error {
	return deleteByID(r.db, &model.JobPosition{}, id)
}
