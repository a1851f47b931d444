package services

import (
	"errors"
	"fmt"

	"tastings-with-tay/models"
	"tastings-with-tay/repositories"
)

type CollectionService interface {
	GetCollections(params models.CollectionListParams, isPublic bool) (*models.Page[models.Collection], error)
	GetFeatured(limit int) ([]models.Collection, error)
	GetBySlug(slug string) (*models.CollectionDetail, error)
	GetCollection(id uint) (*models.CollectionDetail, error)
	CreateCollection(req models.CreateCollectionRequest) (*models.Collection, error)
	UpdateCollection(id uint, req models.UpdateCollectionRequest) (*models.Collection, error)
	DeleteCollection(id uint) error
	AddRecipe(id uint, req models.AddCollectionRecipeRequest) error
	MoveRecipe(id, recipeID uint, req models.UpdateMemberOrderRequest) error
	RemoveRecipe(id, recipeID uint) error
	AddWine(id uint, req models.AddCollectionWineRequest) error
	MoveWine(id, wineID uint, req models.UpdateMemberOrderRequest) error
	RemoveWine(id, wineID uint) error
}

type collectionService struct {
	collectionRepo repositories.CollectionRepository
	recipeRepo     repositories.RecipeRepository
	wineRepo       repositories.WineRepository
}

func NewCollectionService(collectionRepo repositories.CollectionRepository, recipeRepo repositories.RecipeRepository, wineRepo repositories.WineRepository) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		recipeRepo:     recipeRepo,
		wineRepo:       wineRepo,
	}
}

func (s *collectionService) GetCollections(params models.CollectionListParams, isPublic bool) (*models.Page[models.Collection], error) {
	params.Normalize()
	collections, total, err := s.collectionRepo.GetList(params, isPublic)
	if err != nil {
		return nil, err
	}
	return newPage(collections, total, params.ListParams), nil
}

func (s *collectionService) GetFeatured(limit int) ([]models.Collection, error) {
	return s.collectionRepo.GetFeatured(featuredLimit(limit))
}

func (s *collectionService) GetBySlug(slug string) (*models.CollectionDetail, error) {
	collection, err := optional(s.collectionRepo.GetBySlug(slug, true))
	if err != nil || collection == nil {
		return nil, err
	}
	return s.detail(collection, true)
}

func (s *collectionService) GetCollection(id uint) (*models.CollectionDetail, error) {
	collection, err := found(s.collectionRepo.GetByID(id))
	if err != nil {
		return nil, err
	}
	return s.detail(collection, false)
}

func (s *collectionService) detail(collection *models.Collection, isPublic bool) (*models.CollectionDetail, error) {
	recipes, err := s.collectionRepo.MemberRecipes(collection.ID, isPublic)
	if err != nil {
		return nil, err
	}
	wines, err := s.collectionRepo.MemberWines(collection.ID, isPublic)
	if err != nil {
		return nil, err
	}
	return &models.CollectionDetail{Collection: *collection, Recipes: recipes, Wines: wines}, nil
}

func (s *collectionService) CreateCollection(req models.CreateCollectionRequest) (*models.Collection, error) {
	slug, err := chooseSlug(req.Slug, req.Name, s.collectionRepo.SlugTaken, 0)
	if err != nil {
		return nil, err
	}

	collection := &models.Collection{
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Published:   req.Published,
		Featured:    req.Featured,
	}
	if err := s.collectionRepo.Create(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (s *collectionService) UpdateCollection(id uint, req models.UpdateCollectionRequest) (*models.Collection, error) {
	if _, err := found(s.collectionRepo.GetByID(id)); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Slug != nil && *req.Slug != "" {
		slug, err := chooseSlug(*req.Slug, "", s.collectionRepo.SlugTaken, id)
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Published != nil {
		fields["published"] = *req.Published
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}

	if err := s.collectionRepo.Update(id, fields); err != nil {
		return nil, err
	}
	return s.collectionRepo.GetByID(id)
}

func (s *collectionService) DeleteCollection(id uint) error {
	if _, err := found(s.collectionRepo.GetByID(id)); err != nil {
		return err
	}
	return s.collectionRepo.Delete(id)
}

func (s *collectionService) AddRecipe(id uint, req models.AddCollectionRecipeRequest) error {
	if _, err := found(s.collectionRepo.GetByID(id)); err != nil {
		return err
	}
	exists, err := s.recipeRepo.Exists(req.RecipeID, false)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("recipe %w", models.ErrNotFound)
	}

	err = s.collectionRepo.AddRecipe(&models.CollectionRecipe{
		CollectionID: id,
		RecipeID:     req.RecipeID,
		SortOrder:    req.SortOrder,
	})
	if errors.Is(err, models.ErrConflict) {
		return fmt.Errorf("recipe membership %w", models.ErrConflict)
	}
	return err
}

func (s *collectionService) MoveRecipe(id, recipeID uint, req models.UpdateMemberOrderRequest) error {
	moved, err := s.collectionRepo.MoveRecipe(id, recipeID, req.SortOrder)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("membership %w", models.ErrNotFound)
	}
	return nil
}

func (s *collectionService) RemoveRecipe(id, recipeID uint) error {
	removed, err := s.collectionRepo.RemoveRecipe(id, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("membership %w", models.ErrNotFound)
	}
	return nil
}

func (s *collectionService) AddWine(id uint, req models.AddCollectionWineRequest) error {
	if _, err := found(s.collectionRepo.GetByID(id)); err != nil {
		return err
	}
	exists, err := s.wineRepo.Exists(req.WineID, false)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("wine %w", models.ErrNotFound)
	}

	err = s.collectionRepo.AddWine(&models.CollectionWine{
		CollectionID: id,
		WineID:       req.WineID,
		SortOrder:    req.SortOrder,
	})
	if errors.Is(err, models.ErrConflict) {
		return fmt.Errorf("wine membership %w", models.ErrConflict)
	}
	return err
}

func (s *collectionService) MoveWine(id, wineID uint, req models.UpdateMemberOrderRequest) error {
	moved, err := s.collectionRepo.MoveWine(id, wineID, req.SortOrder)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("membership %w", models.ErrNotFound)
	}
	return nil
}

func (s *collectionService) RemoveWine(id, wineID uint) error {
	removed, err := s.collectionRepo.RemoveWine(id, wineID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("membership %w", models.ErrNotFound)
	}
	return nil
}
