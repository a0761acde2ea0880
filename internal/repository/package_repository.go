package repository

import (
	"mangan/internal/models"

	"gorm.io/gorm"
)

type PackageRepository interface {
	Create(pkg *models.Package) error
	GetByID(id uint) (*models.Package, error)
	GetByIDs(ids []uint) ([]models.Package, error)
	GetAll() ([]models.Package, error)
	GetByCategory(category models.PackageCategory) ([]models.Package, error)
	Update(pkg *models.Package) error
	Delete(id uint) error
	Count() (int64, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

func (r *packageRepository) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) GetByIDs(ids []uint) ([]models.Package, error) {
	var pkgs []models.Package
	err := r.db.Where("id IN ?", ids).Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepository) GetAll() ([]models.Package, error) {
	var pkgs []models.Package
	err := r.db.Order("created_at desc").Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepository) GetByCategory(category models.PackageCategory) ([]models.Package, error) {
	var pkgs []models.Package
	err := r.db.Where("category = ?", category).Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepository) Update(pkg *models.Package) error {
	return r.db.Save(pkg).Error
}

func (r *packageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Package{}, id).Error
}

func (r *packageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Package{}).Count(&count).Error
	return count, err
}
