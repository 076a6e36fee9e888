package model

import "gorm.io/gorm"

// Akun portal admin/PIC. Pegawai biasa login memakai NIP-nya.
type User struct {
	gorm.Model
	Username   string `json:"username" gorm:"unique;not null"`
	Password   string `json:"-"`
	Email      string `json:"email"`
	RoleID     uint   `json:"role_id"`
	EmployeeID *uint  `json:"employee_id"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`

	Role     Role      `json:"role" gorm:"foreignKey:RoleID"`
	Employee *Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
}

type Role struct {
	gorm.Model
	Name        string       `json:"name" gorm:"unique;not null"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions;"`
}

type Permission struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
}
