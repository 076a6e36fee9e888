package model

import (
	"time"

	"gorm.io/gorm"
)

// Aksi yang memicu baris history pada rule dan mapping.
type HistoryAction string

const (
	ActionCreated HistoryAction = "CREATED"
	ActionUpdated HistoryAction = "UPDATED"
	ActionToggled HistoryAction = "TOGGLED"
	ActionDeleted HistoryAction = "DELETED"
)

func (a HistoryAction) Valid() bool {
	switch a {
	case ActionCreated, ActionUpdated, ActionToggled, ActionDeleted:
		return true
	}
	return false
}

// CertificationRuleHistory adalah potret rule pada saat aksi terjadi.
// Field disimpan denormalized supaya history tetap terbaca walau
// certification/level/sub bidangnya kemudian diedit atau dihapus.
type CertificationRuleHistory struct {
	gorm.Model
	CertificationRuleID uint `json:"certification_rule_id" gorm:"not null;index"`

	CertificationCode  string  `json:"certification_code" gorm:"size:50"`
	CertificationName  string  `json:"certification_name"`
	CertificationLevel *int    `json:"certification_level"`
	SubFieldCode       *string `json:"sub_field_code"`
	ValidityMonths     *int    `json:"validity_months"`
	ReminderMonths     *int    `json:"reminder_months"`
	WajibSetelahMasuk  *int    `json:"wajib_setelah_masuk"`
	IsActive           bool    `json:"is_active"`

	Action   HistoryAction `json:"action" gorm:"type:varchar(20);not null"`
	ActionAt time.Time     `json:"action_at" gorm:"not null;index"`
}

// JobCertificationMappingHistory adalah potret mapping pada saat aksi terjadi.
type JobCertificationMappingHistory struct {
	gorm.Model
	MappingID uint `json:"mapping_id" gorm:"not null;index"`

	JobName            string  `json:"job_name"`
	CertificationCode  string  `json:"certification_code" gorm:"size:50"`
	CertificationLevel *int    `json:"certification_level"`
	SubFieldCode       *string `json:"sub_field_code"`
	IsActive           bool    `json:"is_active"`

	Action   HistoryAction `json:"action" gorm:"type:varchar(20);not null"`
	ActionAt time.Time     `json:"action_at" gorm:"not null;index"`
}

// NewRuleHistory membekukan keadaan rule menjadi satu baris history.
// Relasi rule harus sudah ter-preload; level/sub bidang boleh nil.
func NewRuleHistory(rule CertificationRule, action HistoryAction, at time.Time) CertificationRuleHistory {
	h := CertificationRuleHistory{
		CertificationRuleID: rule.ID,
		CertificationCode:   rule.Certification.Code,
		CertificationName:   rule.Certification.Name,
		ValidityMonths:      rule.ValidityMonths,
		ReminderMonths:      rule.ReminderMonths,
		WajibSetelahMasuk:   rule.WajibSetelahMasuk,
		IsActive:            rule.IsActive,
		Action:              action,
		ActionAt:            at,
	}
	if lvl := rule.CertificationLevel; lvl != nil {
		h.CertificationLevel = &lvl.Level
	}
	if sub := rule.SubField; sub != nil {
		h.SubFieldCode = &sub.Code
	}
	return h
}

// NewMappingHistory membekukan keadaan mapping menjadi satu baris history.
func NewMappingHistory(m JobCertificationMapping, action HistoryAction, at time.Time) JobCertificationMappingHistory {
	h := JobCertificationMappingHistory{
		MappingID:         m.ID,
		JobName:           m.JobPosition.Name,
		CertificationCode: m.CertificationRule.Certification.Code,
		IsActive:          m.IsActive,
		Action:            action,
		ActionAt:          at,
	}
	if lvl := m.CertificationRule.CertificationLevel; lvl != nil {
		h.CertificationLevel = &lvl.Level
	}
	if sub := m.CertificationRule.SubField; sub != nil {
		h.SubFieldCode = &sub.Code
	}
	return h
}
