package model

import (
	"time"

	"gorm.io/gorm"
)

type ProcessType string

const (
	ProcessSertifikasi ProcessType = "SERTIFIKASI"
	ProcessRefreshment ProcessType = "REFRESHMENT"
	ProcessTraining    ProcessType = "TRAINING"
)

func (p ProcessType) Valid() bool {
	switch p {
	case ProcessSertifikasi, ProcessRefreshment, ProcessTraining:
		return true
	}
	return false
}

// EmployeeCertification adalah sertifikat yang sudah dipegang pegawai.
// CertDate terbaru untuk satu (employee, rule) yang dipakai engine.
type EmployeeCertification struct {
	gorm.Model
	EmployeeID          uint  `json:"employee_id" gorm:"not null;index"`
	CertificationRuleID uint  `json:"certification_rule_id" gorm:"not null;index"`
	InstitutionID       *uint `json:"institution_id"`

	CertNumber  string      `json:"cert_number" gorm:"size:100"`
	CertDate    *time.Time  `json:"cert_date"`
	ValidFrom   *time.Time  `json:"valid_from"`
	ValidUntil  *time.Time  `json:"valid_until"`
	FileURL     string      `json:"file_url" gorm:"size:255"`
	ProcessType ProcessType `json:"process_type" gorm:"type:varchar(30)"`

	Employee          Employee          `json:"employee" gorm:"foreignKey:EmployeeID"`
	CertificationRule CertificationRule `json:"certification_rule" gorm:"foreignKey:CertificationRuleID"`
	Institution       *Institution      `json:"institution" gorm:"foreignKey:InstitutionID"`
}
