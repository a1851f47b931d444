// services/tag_service.go
package services

import (
	"errors"
	"fmt"

	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags(family models.TagType) ([]models.Tag, error)
	GetAdminTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	GetBySlug(slug string) (*models.TagDetail, error)
	UpdateTag(id uint, req models.UpdateTagRequest) (*models.Tag, error)
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	// Check if tag already exists
	if err := s.ensureNameFree(req.Name, 0); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = helper.MakeSlug(req.Name)
	}
	if err := s.ensureSlugFree(slug, 0); err != nil {
		return nil, err
	}

	tagType := req.Type
	if tagType == "" {
		tagType = models.TagTypeBoth
	}

	tag := &models.Tag{
		Name: req.Name,
		Slug: slug,
		Type: tagType,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// GetTags lists the tags usable by a content family, or all tags when the
// family is empty.
func (s *tagService) GetTags(family models.TagType) ([]models.Tag, error) {
	switch family {
	case "":
		return s.tagRepo.GetAll()
	case models.TagTypeRecipe, models.TagTypeWine:
		return s.tagRepo.GetAll(family, models.TagTypeBoth)
	default:
		return s.tagRepo.GetAll(family)
	}
}

func (s *tagService) GetAdminTags() ([]models.Tag, error) {
	return s.tagRepo.GetAdminList()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	return found(s.tagRepo.GetByID(id))
}

func (s *tagService) GetBySlug(slug string) (*models.TagDetail, error) {
	tag, err := optional(s.tagRepo.GetBySlug(slug))
	if err != nil || tag == nil {
		return nil, err
	}

	recipes, err := s.tagRepo.PublishedRecipes(tag.ID)
	if err != nil {
		return nil, err
	}
	wines, err := s.tagRepo.PublishedWines(tag.ID)
	if err != nil {
		return nil, err
	}

	return &models.TagDetail{Tag: *tag, Recipes: recipes, Wines: wines}, nil
}

func (s *tagService) UpdateTag(id uint, req models.UpdateTagRequest) (*models.Tag, error) {
	if _, err := found(s.tagRepo.GetByID(id)); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if err := s.ensureNameFree(*req.Name, id); err != nil {
			return nil, err
		}
		fields["name"] = *req.Name
	}
	if req.Slug != nil && *req.Slug != "" {
		if err := s.ensureSlugFree(*req.Slug, id); err != nil {
			return nil, err
		}
		fields["slug"] = *req.Slug
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}

	if err := s.tagRepo.Update(id, fields); err != nil {
		return nil, err
	}
	return s.tagRepo.GetByID(id)
}

func (s *tagService) DeleteTag(id uint) error {
	if _, err := found(s.tagRepo.GetByID(id)); err != nil {
		return err
	}
	return s.tagRepo.Delete(id)
}

func (s *tagService) ensureNameFree(name string, selfID uint) error {
	existing, err := s.tagRepo.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("tag %q %w", name, models.ErrConflict)
	}
	return nil
}

func (s *tagService) ensureSlugFree(slug string, selfID uint) error {
	existing, err := s.tagRepo.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("tag slug %q %w", slug, models.ErrConflict)
	}
	return nil
}
