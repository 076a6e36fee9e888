package model

import "gorm.io/gorm"

// Master data sertifikasi (katalog)
type Certification struct {
	gorm.Model
	Code string `json:"code" gorm:"unique;not null"`
	Name string `json:"name" gorm:"not null"`
}

type CertificationLevel struct {
	gorm.Model
	Level int    `json:"level" gorm:"unique;not null"` // jenjang 1, 2, 3, ...
	Name  string `json:"name" gorm:"not null"`
}

type SubField struct {
	gorm.Model
	CertificationID uint   `json:"certification_id"`
	Code            string `json:"code" gorm:"not null"`
	Name            string `json:"name" gorm:"not null"`

	Certification Certification `json:"certification" gorm:"foreignKey:CertificationID"`
}

// Jenis penyegaran saat sertifikat mendekati kadaluarsa (ujian ulang / refreshment)
type RefreshmentType struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
}

// Lembaga penyelenggara sertifikasi
type Institution struct {
	gorm.Model
	Name    string `json:"name" gorm:"unique;not null"`
	Address string `json:"address"`
}
