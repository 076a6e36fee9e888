package repository

import (
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

// CatalogRepository membungkus master data katalog sertifikasi yang dipakai
// dropdown frontend: sertifikasi, jenjang, sub bidang, jenis refreshment,
// dan lembaga penyelenggara.
type CatalogRepository interface {
	GetCertifications() ([]model.Certification, error)
	GetCertificationByID(id uint) (*model.Certification, error)
	CreateCertification(c *model.Certification) error
	UpdateCertification(c *model.Certification) error
	DeleteCertification(id uint) error

	GetLevels() ([]model.CertificationLevel, error)
	GetLevelByID(id uint) (*model.CertificationLevel, error)
	CreateLevel(l *model.CertificationLevel) error
	UpdateLevel(l *model.CertificationLevel) error
	DeleteLevel(id uint) error

	GetSubFields() ([]model.SubField, error)
	GetSubFieldByID(id uint) (*model.SubField, error)
	CreateSubField(s *model.SubField) error
	UpdateSubField(s *model.SubField) error
	DeleteSubField(id uint) error

	GetRefreshmentTypes() ([]model.RefreshmentType, error)
	CreateRefreshmentType(t *model.RefreshmentType) error
	DeleteRefreshmentType(id uint) error

	GetInstitutions() ([]model.Institution, error)
	GetInstitutionByID(id uint) (*model.Institution, error)
	CreateInstitution(i *model.Institution) error
	UpdateInstitution(i *model.Institution) error
	DeleteInstitution(id uint) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db}
}

func (r *catalogRepository) GetCertifications() ([]model.Certification, error) {
	var list []model.Certification
	err := r.db.Order("code asc").Find(&list).Error
	return list, err
}

func (r *catalogRepository) GetCertificationByID(id uint) (*model.Certification, error) {
	var c model.Certification
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepository) CreateCertification(c *model.Certification) error { return r.db.Create(c).Error }
func (r *catalogRepository) UpdateCertification(c *model.Certification) error { return r.db.Save(c).Error }

func (r *catalogRepository) DeleteCertification(id uint) error {
	return deleteByID(r.db, &model.Certification{}, id)
}

func (r *catalogRepository) GetLevels() ([]model.CertificationLevel, error) {
	var list []model.CertificationLevel
	err := r.db.Order("level asc").Find(&list).Error
	return list, err
}

func (r *catalogRepository) GetLevelByID(id uint) (*model.CertificationLevel, error) {
	var l model.CertificationLevel
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *catalogRepository) CreateLevel(l *model.CertificationLevel) error { return r.db.Create(l).Error }
func (r *catalogRepository) UpdateLevel(l *model.CertificationLevel) error { return r.db.Save(l).Error }

func (r *catalogRepository) DeleteLevel(id uint) error {
	return deleteByID(r.db, &model.CertificationLevel{}, id)
}

func (r *catalogRepository) GetSubFields() ([]model.SubField, error) {
	var list []model.SubField
	err := r.db.Preload("Certification").Order("code asc").Find(&list).Error
	return list, err
}

func (r *catalogRepository) GetSubFieldByID(id uint) (*model.SubField, error) {
	var s model.SubField
	if err := r.db.Preload("Certification").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *catalogRepository) CreateSubField(s *model.SubField) error { return r.db.Create(s).Error }
func (r *catalogRepository) UpdateSubField(s *model.SubField) error { return r.db.Save(s).Error }

func (r *catalogRepository) DeleteSubField(id uint) error {
	return deleteByID(r.db, &model.SubField{}, id)
}

func (r *catalogRepository) GetRefreshmentTypes() ([]model.RefreshmentType, error) {
	var list []model.RefreshmentType
	err := r.db.Order("name asc").Find(&list).Error
	return list, err
}

func (r *catalogRepository) CreateRefreshmentType(t *model.RefreshmentType) error {
	return r.db.Create(t).Error
}

func (r *catalogRepository) DeleteRefreshmentType(id uint) error {
	return deleteByID(r.db, &model.RefreshmentType{}, id)
}

func (r *catalogRepository) GetInstitutions() ([]model.Institution, error) {
	var list []model.Institution
	err := r.db.Order("name asc").Find(&list).Error
	return list, err
}

func (r *catalogRepository) GetInstitutionByID(id uint) (*model.Institution, error) {
	var i model.Institution
	if err := r.db.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *catalogRepository) CreateInstitution(i *model.Institution) error { return r.db.Create(i).Error }
func (r *catalogRepository) UpdateInstitution(i *model.Institution) error { return r.db.Save(i).Error }

func (r *catalogRepository) DeleteInstitution(id uint) error {
	return deleteByID(r.db, &model.Institution{}, id)
}

func deleteByID(db *gorm.DB, m interface{}, id uint) error {
	res := db.Delete(m, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
