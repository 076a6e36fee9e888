package model

import (
	"time"

	"gorm.io/gorm"
)

type BatchStatus string

const (
	BatchPlanned  BatchStatus = "PLANNED"
	BatchOngoing  BatchStatus = "ONGOING"
	BatchFinished BatchStatus = "FINISHED"
	BatchCanceled BatchStatus = "CANCELED"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchPlanned, BatchOngoing, BatchFinished, BatchCanceled:
		return true
	}
	return false
}

// CanTransition: PLANNED -> ONGOING/CANCELED, ONGOING -> FINISHED/CANCELED.
// FINISHED dan CANCELED final, tidak bisa diubah lagi.
func (s BatchStatus) CanTransition(next BatchStatus) bool {
	switch s {
	case BatchPlanned:
		return next == BatchOngoing || next == BatchCanceled
	case BatchOngoing:
		return next == BatchFinished || next == BatchCanceled
	}
	return false
}

const (
	MinBatchQuota = 1
	MaxBatchQuota = 250
)

// ValidBatchQuota: quota opsional, tapi kalau diisi harus 1..250.
func ValidBatchQuota(quota *int) bool {
	if quota == nil {
		return true
	}
	return *quota >= MinBatchQuota && *quota <= MaxBatchQuota
}

// Batch adalah satu gelombang pelaksanaan sertifikasi untuk satu rule:
// punya jadwal, lembaga penyelenggara, quota, dan daftar peserta.
type Batch struct {
	gorm.Model
	Name                string `json:"name" gorm:"not null"`
	CertificationRuleID uint   `json:"certification_rule_id" gorm:"not null;index"`
	InstitutionID       *uint  `json:"institution_id"`

	StartDate *time.Time  `json:"start_date"`
	EndDate   *time.Time  `json:"end_date"`
	Quota     *int        `json:"quota"`
	Status    BatchStatus `json:"status" gorm:"type:varchar(20);not null;default:PLANNED"`
	Notes     string      `json:"notes"`

	CertificationRule CertificationRule `json:"certification_rule" gorm:"foreignKey:CertificationRuleID"`
	Institution       *Institution      `json:"institution" gorm:"foreignKey:InstitutionID"`
}

type ParticipantStatus string

const (
	ParticipantRegistered ParticipantStatus = "REGISTERED"
	ParticipantAttended   ParticipantStatus = "ATTENDED"
	ParticipantPassed     ParticipantStatus = "PASSED"
	ParticipantFailed     ParticipantStatus = "FAILED"
)

func (s ParticipantStatus) Valid() bool {
	switch s {
	case ParticipantRegistered, ParticipantAttended, ParticipantPassed, ParticipantFailed:
		return true
	}
	return false
}

// CanTransition: REGISTERED -> ATTENDED, ATTENDED -> PASSED/FAILED.
// Peserta harus tercatat hadir dulu sebelum dinyatakan lulus/gagal.
func (s ParticipantStatus) CanTransition(next ParticipantStatus) bool {
	switch s {
	case ParticipantRegistered:
		return next == ParticipantAttended
	case ParticipantAttended:
		return next == ParticipantPassed || next == ParticipantFailed
	}
	return false
}

// EmployeeBatch adalah keikutsertaan satu pegawai di satu batch.
type EmployeeBatch struct {
	gorm.Model
	BatchID    uint `json:"batch_id" gorm:"not null;uniqueIndex:idx_batch_emp"`
	EmployeeID uint `json:"employee_id" gorm:"not null;uniqueIndex:idx_batch_emp"`

	Status           ParticipantStatus `json:"status" gorm:"type:varchar(20);not null;default:REGISTERED"`
	RegistrationDate *time.Time        `json:"registration_date"`
	AttendedAt       *time.Time        `json:"attended_at"`
	ResultDate       *time.Time        `json:"result_date"`
	Score            *int              `json:"score"`
	Notes            string            `json:"notes"`

	Batch    Batch    `json:"batch" gorm:"foreignKey:BatchID"`
	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
}
