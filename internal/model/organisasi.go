package model

import "gorm.io/gorm"

// Struktur organisasi: Regional -> Division -> Unit -> JobPosition
type Regional struct {
	gorm.Model
	Code string `json:"code" gorm:"unique;not null"`
	Name string `json:"name" gorm:"not null"`
}

type Division struct {
	gorm.Model
	RegionalID *uint  `json:"regional_id"`
	Code       string `json:"code" gorm:"unique;not null"`
	Name       string `json:"name" gorm:"not null"`

	Regional *Regional `json:"regional" gorm:"foreignKey:RegionalID"`
}

type Unit struct {
	gorm.Model
	DivisionID *uint  `json:"division_id"`
	Code       string `json:"code" gorm:"unique;not null"`
	Name       string `json:"name" gorm:"not null"`

	Division *Division `json:"division" gorm:"foreignKey:DivisionID"`
}

type JobPosition struct {
	gorm.Model
	UnitID   *uint  `json:"unit_id"`
	Name     string `json:"name" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Unit *Unit `json:"unit" gorm:"foreignKey:UnitID"`
}
