package repository

import (
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

type UserRepository interface {
	GetAll() ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(u *model.User) error
	Update(u *model.User) error
	SoftDelete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) GetAll() ([]model.User, error) {
	var list []model.User
	err := r.db.Preload("Role").Preload("Employee").Order("username asc").Find(&list).Error
	return list, err
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.db.Preload("Role.Permissions").Preload("Employee").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var u model.User
	if err := r.db.Preload("Role.Permissions").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var u model.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(u *model.User) error { return r.db.Create(u).Error }
func (r *userRepository) Update(u *model.User) error { return r.db.Save(u).Error }

func (r *userRepository) SoftDelete(id uint) error {
	return deleteByID(r.db, &model.User{}, id)
}

type RoleRepository interface {
	GetAll() ([]model.Role, error)
	GetByID(id uint) (*model.Role, error)
	FindByName(name string) (*model.Role, error)
	Create(role *model.Role) error
	Update(role *model.Role) error
	Delete(id uint) error
	GetPermissions() ([]model.Permission, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db}
}

func (r *roleRepository) GetAll() ([]model.Role, error) {
	var list []model.Role
	err := r.db.Preload("Permissions").Order("name asc").Find(&list).Error
	return list, err
}

func (r *roleRepository) GetByID(id uint) (*model.Role, error) {
	var role model.Role
	if err := r.db.Preload("Permissions").First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByName(name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.Preload("Permissions").Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Create(role *model.Role) error { return r.db.Create(role).Error }

func (r *roleRepository) Update(role *model.Role) error {
	if err := r.db.Model(role).Association("Permissions").Replace(role.Permissions); err != nil {
		return err
	}
	return r.db.Save(role).Error
}

func (r *roleRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.Role{}, id)
}

func (r *roleRepository) GetPermissions() ([]model.Permission, error) {
	var list []model.Permission
	err := r.db.Order("name asc").Find(&list).Error
	return list, err
}
