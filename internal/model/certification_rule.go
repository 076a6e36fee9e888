package model

import "gorm.io/gorm"

// CertificationRule adalah aturan sertifikasi untuk satu kombinasi
// (sertifikasi, jenjang, sub bidang). Rule nonaktif tidak menghasilkan
// kewajiban baru lewat job mapping.
type CertificationRule struct {
	gorm.Model
	CertificationID      uint  `json:"certification_id" gorm:"not null;uniqueIndex:idx_rule_combo"`
	CertificationLevelID *uint `json:"certification_level_id" gorm:"uniqueIndex:idx_rule_combo"`
	SubFieldID           *uint `json:"sub_field_id" gorm:"uniqueIndex:idx_rule_combo"`
	RefreshmentTypeID    *uint `json:"refreshment_type_id"`

	ValidityMonths    *int `json:"validity_months"`                // masa berlaku sertifikat (bulan)
	ReminderMonths    *int `json:"reminder_months"`                // mulai status DUE sebelum kadaluarsa (bulan)
	WajibSetelahMasuk *int `json:"wajib_setelah_masuk"`            // wajib punya sertifikat X bulan setelah join
	IsActive          bool `json:"is_active" gorm:"default:true"`

	// Relasi
	Certification      Certification       `json:"certification" gorm:"foreignKey:CertificationID"`
	CertificationLevel *CertificationLevel `json:"certification_level" gorm:"foreignKey:CertificationLevelID"`
	SubField           *SubField           `json:"sub_field" gorm:"foreignKey:SubFieldID"`
	RefreshmentType    *RefreshmentType    `json:"refreshment_type" gorm:"foreignKey:RefreshmentTypeID"`
}

// JobCertificationMapping menghubungkan jabatan dengan rule sertifikasi.
// Kewajiban "BY_JOB" hanya berlaku saat mapping DAN rule sama-sama aktif.
type JobCertificationMapping struct {
	gorm.Model
	JobPositionID       uint `json:"job_position_id" gorm:"not null;uniqueIndex:idx_job_rule"`
	CertificationRuleID uint `json:"certification_rule_id" gorm:"not null;uniqueIndex:idx_job_rule"`
	IsActive            bool `json:"is_active" gorm:"default:true"`

	JobPosition       JobPosition       `json:"job_position" gorm:"foreignKey:JobPositionID"`
	CertificationRule CertificationRule `json:"certification_rule" gorm:"foreignKey:CertificationRuleID"`
}
