package config

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "certification_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	log.Println("Koneksi database berhasil")

	// Auto migration seluruh tabel
	err = db.AutoMigrate(
		&model.Regional{},
		&model.Division{},
		&model.Unit{},
		&model.JobPosition{},
		&model.Employee{},
		&model.Certification{},
		&model.CertificationLevel{},
		&model.SubField{},
		&model.RefreshmentType{},
		&model.Institution{},
		&model.CertificationRule{},
		&model.JobCertificationMapping{},
		&model.EmployeeCertification{},
		&model.EmployeeCertificationException{},
		&model.EmployeeEligibility{},
		&model.CertificationRuleHistory{},
		&model.JobCertificationMappingHistory{},
		&model.Batch{},
		&model.EmployeeBatch{},
		&model.Role{},
		&model.Permission{},
		&model.User{},
	)
	if err != nil {
		log.Fatalf("Auto migration gagal: %v", err)
	}

	DB = db
}
