package model

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	NIP           string     `json:"nip" gorm:"column:nip;unique;not null"`
	Name          string     `json:"name" gorm:"not null"`
	Email         string     `json:"email"`
	PhotoURL      string     `json:"photo_url"`
	JoinDate      *time.Time `json:"join_date"`
	EffectiveDate *time.Time `json:"effective_date"` // tanggal efektif jabatan terakhir
	JobPositionID *uint      `json:"job_position_id"`
	UnitID        *uint      `json:"unit_id"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`

	// Relasi
	JobPosition    *JobPosition            `json:"job_position" gorm:"foreignKey:JobPositionID"`
	Unit           *Unit                   `json:"unit" gorm:"foreignKey:UnitID"`
	Certifications []EmployeeCertification `json:"certifications" gorm:"foreignKey:EmployeeID"`
}
