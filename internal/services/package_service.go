package services

import (
	"context"

	"mangan/internal/models"
	"mangan/internal/repository"
	"mangan/pkg/imagestore"
)

type PackageInput struct {
	Name        string                 `json:"name" binding:"required,min=2,max=50"`
	Type        models.PackageType     `json:"type" binding:"required"`
	Category    models.PackageCategory `json:"category" binding:"required"`
	PaxCount    int                    `json:"pax_count" binding:"required,min=1"`
	Price       int64                  `json:"price" binding:"required,min=1000"`
	Description string                 `json:"description"`
	Photo1      string                 `json:"photo1"` // base64 data URIs, up to 3
	Photo2      string                 `json:"photo2"`
	Photo3      string                 `json:"photo3"`
}

type PackageService interface {
	CreatePackage(ctx context.Context, input PackageInput) (*models.Package, error)
	GetByID(id uint) (*models.Package, error)
	GetAll() ([]models.Package, error)
	GetByCategory(category models.PackageCategory) ([]models.Package, error)
	UpdatePackage(ctx context.Context, id uint, input PackageInput) (*models.Package, error)
	DeletePackage(id uint) error
}

type packageService struct {
	packageRepo repository.PackageRepository
	images      imagestore.Uploader
}

func NewPackageService(packageRepo repository.PackageRepository, images imagestore.Uploader) PackageService {
	return &packageService{packageRepo: packageRepo, images: images}
}

func (s *packageService) CreatePackage(ctx context.Context, input PackageInput) (*models.Package, error) {
	if !input.Type.Valid() || !input.Category.Valid() {
		return nil, ErrInvalidPackageKind
	}
	pkg := &models.Package{
		Name:        input.Name,
		Type:        input.Type,
		Category:    input.Category,
		PaxCount:    input.PaxCount,
		Price:       input.Price,
		Description: input.Description,
	}
	if err := s.applyPhotos(ctx, pkg, input); err != nil {
		return nil, err
	}
	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) GetByID(id uint) (*models.Package, error) {
	return s.packageRepo.GetByID(id)
}

func (s *packageService) GetAll() ([]models.Package, error) {
	return s.packageRepo.GetAll()
}

func (s *packageService) GetByCategory(category models.PackageCategory) ([]models.Package, error) {
	return s.packageRepo.GetByCategory(category)
}

func (s *packageService) UpdatePackage(ctx context.Context, id uint, input PackageInput) (*models.Package, error) {
	if !input.Type.Valid() || !input.Category.Valid() {
		return nil, ErrInvalidPackageKind
	}
	pkg, err := s.packageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	pkg.Name = input.Name
	pkg.Type = input.Type
	pkg.Category = input.Category
	pkg.PaxCount = input.PaxCount
	pkg.Price = input.Price
	pkg.Description = input.Description
	if err := s.applyPhotos(ctx, pkg, input); err != nil {
		return nil, err
	}

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) DeletePackage(id uint) error {
	return s.packageRepo.Delete(id)
}

func (s *packageService) applyPhotos(ctx context.Context, pkg *models.Package, input PackageInput) error {
	slots := []struct {
		data string
		dest *string
	}{
		{input.Photo1, &pkg.Photo1},
		{input.Photo2, &pkg.Photo2},
		{input.Photo3, &pkg.Photo3},
	}
	for _, slot := range slots {
		if !imagestore.IsDataImage(slot.data) {
			continue
		}
		url, err := s.images.Upload(ctx, slot.data, "mangan/packages")
		if err != nil {
			return err
		}
		*slot.dest = url
	}
	return nil
}
