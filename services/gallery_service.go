package services

import (
	"fmt"

	"tastings-with-tay/models"
	"tastings-with-tay/repositories"
)

type GalleryService interface {
	GetImages(params models.GalleryListParams, isPublic bool) (*models.Page[models.GalleryImage], error)
	CreateImage(req models.CreateGalleryImageRequest) (*models.GalleryImage, error)
	UpdateImage(id uint, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error)
	DeleteImage(id uint) error
	Reorder(req models.ReorderRequest) error
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
}

func NewGalleryService(galleryRepo repositories.GalleryRepository) GalleryService {
	return &galleryService{galleryRepo: galleryRepo}
}

func (s *galleryService) GetImages(params models.GalleryListParams, isPublic bool) (*models.Page[models.GalleryImage], error) {
	params.Normalize()
	images, total, err := s.galleryRepo.GetList(params, isPublic)
	if err != nil {
		return nil, err
	}
	return newPage(images, total, params.ListParams), nil
}

func (s *galleryService) CreateImage(req models.CreateGalleryImageRequest) (*models.GalleryImage, error) {
	// Images go live unless explicitly held back
	published := true
	if req.Published != nil {
		published = *req.Published
	}

	image := &models.GalleryImage{
		Image:     req.Image,
		Title:     req.Title,
		Caption:   req.Caption,
		Category:  req.Category,
		SortOrder: req.SortOrder,
		Published: published,
	}
	if err := s.galleryRepo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *galleryService) UpdateImage(id uint, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error) {
	if _, err := found(s.galleryRepo.GetByID(id)); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Caption != nil {
		fields["caption"] = *req.Caption
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if req.Published != nil {
		fields["published"] = *req.Published
	}

	if err := s.galleryRepo.Update(id, fields); err != nil {
		return nil, err
	}
	return s.galleryRepo.GetByID(id)
}

func (s *galleryService) DeleteImage(id uint) error {
	if _, err := found(s.galleryRepo.GetByID(id)); err != nil {
		return err
	}
	return s.galleryRepo.Delete(id)
}

func (s *galleryService) Reorder(req models.ReorderRequest) error {
	seen := make(map[uint]bool, len(req.IDs))
	for _, id := range req.IDs {
		if seen[id] {
			return fmt.Errorf("%w: image %d listed twice", models.ErrInvalidInput, id)
		}
		seen[id] = true
	}
	return s.galleryRepo.Reorder(req.IDs)
}
