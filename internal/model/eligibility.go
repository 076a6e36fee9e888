package model

import (
	"time"

	"gorm.io/gorm"
)

type EligibilityStatus string

const (
	StatusNotYetCertified EligibilityStatus = "NOT_YET_CERTIFIED"
	StatusActive          EligibilityStatus = "ACTIVE"
	StatusDue             EligibilityStatus = "DUE"
	StatusExpired         EligibilityStatus = "EXPIRED"
)

func (s EligibilityStatus) Valid() bool {
	switch s {
	case StatusNotYetCertified, StatusActive, StatusDue, StatusExpired:
		return true
	}
	return false
}

// Asal kewajiban: dari mapping jabatan atau penunjukan manual per nama.
type EligibilitySource string

const (
	SourceByJob  EligibilitySource = "BY_JOB"
	SourceByName EligibilitySource = "BY_NAME"
)

func (s EligibilitySource) Valid() bool {
	return s == SourceByJob || s == SourceByName
}

// EmployeeEligibility adalah read model hasil perhitungan engine.
// Satu baris per (employee, rule), seluruhnya bisa dihitung ulang kapan saja.
type EmployeeEligibility struct {
	gorm.Model
	EmployeeID          uint              `json:"employee_id" gorm:"not null;uniqueIndex:idx_emp_rule"`
	CertificationRuleID uint              `json:"certification_rule_id" gorm:"not null;uniqueIndex:idx_emp_rule"`
	Status              EligibilityStatus `json:"status" gorm:"type:varchar(30);not null"`
	Source              EligibilitySource `json:"source" gorm:"type:varchar(30);not null"`
	DueDate             *time.Time        `json:"due_date"`

	// Snapshot aturan saat rebuild, agar baris tetap bisa dibaca
	// walau rule-nya kemudian diedit
	ValidityMonths    *int `json:"validity_months"`
	ReminderMonths    *int `json:"reminder_months"`
	WajibSetelahMasuk *int `json:"wajib_setelah_masuk"`
	IsActive          bool `json:"is_active" gorm:"default:true"`

	Employee          Employee          `json:"employee" gorm:"foreignKey:EmployeeID"`
	CertificationRule CertificationRule `json:"certification_rule" gorm:"foreignKey:CertificationRuleID"`
}

// EmployeeCertificationException adalah penunjukan manual (eligibility by name):
// satu pegawai diwajibkan satu rule tertentu terlepas dari jabatannya.
type EmployeeCertificationException struct {
	gorm.Model
	EmployeeID          uint   `json:"employee_id" gorm:"not null;uniqueIndex:idx_exc_emp_rule"`
	CertificationRuleID uint   `json:"certification_rule_id" gorm:"not null;uniqueIndex:idx_exc_emp_rule"`
	Reason              string `json:"reason"`
	IsActive            bool   `json:"is_active" gorm:"default:true"`

	Employee          Employee          `json:"employee" gorm:"foreignKey:EmployeeID"`
	CertificationRule CertificationRule `json:"certification_rule" gorm:"foreignKey:CertificationRuleID"`
}
