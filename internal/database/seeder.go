package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Roles
	roles := []model.Role{
		{Name: "Superadmin"},
		{Name: "PIC"},
		{Name: "Pegawai"},
	}
	for _, r := range roles {
		db.FirstOrCreate(&r, model.Role{Name: r.Name})
	}

	// 2. Seed Permissions
	perms := []model.Permission{
		{Name: "manage_rules"},
		{Name: "manage_mappings"},
		{Name: "manage_exceptions"},
		{Name: "refresh_eligibility"},
		{Name: "upload_certificates"},
	}
	for _, p := range perms {
		db.FirstOrCreate(&p, model.Permission{Name: p.Name})
	}

	// PIC dapat semua permission operasional (Superadmin lewat tanpa cek)
	var picRole model.Role
	if err := db.Where("name = ?", "PIC").First(&picRole).Error; err == nil {
		var allPerms []model.Permission
		db.Find(&allPerms)
		db.Model(&picRole).Association("Permissions").Replace(allPerms)
	}

	// 3. Seed Akun Superadmin Pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	var adminRole model.Role
	db.Where("name = ?", "Superadmin").First(&adminRole)

	admin := model.User{
		Username: "superadmin",
		Password: string(hashedPassword),
		Email:    "admin@example.com",
		RoleID:   adminRole.ID,
		IsActive: true,
	}
	result := db.FirstOrCreate(&admin, model.User{Username: admin.Username})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan "admin123" meskipun user sudah ada
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Superadmin berhasil!")
	}

	// 4. Seed Struktur Organisasi Contoh
	regional := model.Regional{Code: "REG-01", Name: "Regional Jakarta"}
	db.FirstOrCreate(&regional, model.Regional{Code: regional.Code})

	division := model.Division{RegionalID: &regional.ID, Code: "DIV-TRS", Name: "Divisi Treasury"}
	db.FirstOrCreate(&division, model.Division{Code: division.Code})

	unit := model.Unit{DivisionID: &division.ID, Code: "UNT-DEAL", Name: "Unit Dealing Room"}
	db.FirstOrCreate(&unit, model.Unit{Code: unit.Code})

	jobDealer := model.JobPosition{UnitID: &unit.ID, Name: "Dealer Treasury", IsActive: true}
	db.FirstOrCreate(&jobDealer, model.JobPosition{Name: jobDealer.Name})

	// 5. Seed Katalog Sertifikasi
	certTreasury := model.Certification{Code: "TRS", Name: "Sertifikasi Treasury"}
	db.FirstOrCreate(&certTreasury, model.Certification{Code: certTreasury.Code})

	certMR := model.Certification{Code: "MR", Name: "Manajemen Risiko"}
	db.FirstOrCreate(&certMR, model.Certification{Code: certMR.Code})

	levels := []model.CertificationLevel{
		{Level: 1, Name: "Level 1"},
		{Level: 2, Name: "Level 2"},
		{Level: 3, Name: "Level 3"},
	}
	for _, l := range levels {
		db.FirstOrCreate(&l, model.CertificationLevel{Level: l.Level})
	}

	refreshment := model.RefreshmentType{Name: "Refreshment Ujian Ulang"}
	db.FirstOrCreate(&refreshment, model.RefreshmentType{Name: refreshment.Name})

	institution := model.Institution{Name: "LSP Perbankan", Address: "Jakarta"}
	db.FirstOrCreate(&institution, model.Institution{Name: institution.Name})

	// 6. Seed Rule + Mapping Contoh
	var level1 model.CertificationLevel
	db.Where("level = ?", 1).First(&level1)

	validity := 48
	reminder := 6
	wajib := 12
	rule := model.CertificationRule{
		CertificationID:      certMR.ID,
		CertificationLevelID: &level1.ID,
		ValidityMonths:       &validity,
		ReminderMonths:       &reminder,
		WajibSetelahMasuk:    &wajib,
		IsActive:             true,
	}
	db.FirstOrCreate(&rule, model.CertificationRule{
		CertificationID:      rule.CertificationID,
		CertificationLevelID: rule.CertificationLevelID,
	})

	mapping := model.JobCertificationMapping{
		JobPositionID:       jobDealer.ID,
		CertificationRuleID: rule.ID,
		IsActive:            true,
	}
	db.FirstOrCreate(&mapping, model.JobCertificationMapping{
		JobPositionID:       mapping.JobPositionID,
		CertificationRuleID: mapping.CertificationRuleID,
	})

	// 7. Seed Pegawai Contoh
	joinDate := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	employee := model.Employee{
		NIP:           "198701012010011001",
		Name:          "Budi Santoso",
		Email:         "budi.santoso@example.com",
		JoinDate:      &joinDate,
		JobPositionID: &jobDealer.ID,
		UnitID:        &unit.ID,
		IsActive:      true,
	}
	db.FirstOrCreate(&employee, model.Employee{NIP: employee.NIP})
}
