package services

import (
	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"gorm.io/datatypes"
)

type RecipeService interface {
	GetRecipes(params models.RecipeListParams, isPublic bool) (*models.Page[models.Recipe], error)
	GetFeatured(limit int) ([]models.Recipe, error)
	GetBySlug(slug string) (*models.Recipe, error)
	GetRecipe(id uint) (*models.Recipe, error)
	CreateRecipe(req models.CreateRecipeRequest) (*models.Recipe, error)
	UpdateRecipe(id uint, req models.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(id uint) error
	RecordView(id uint) error
}

type recipeService struct {
	recipeRepo repositories.RecipeRepository
	tagRepo    repositories.TagRepository
}

func NewRecipeService(recipeRepo repositories.RecipeRepository, tagRepo repositories.TagRepository) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		tagRepo:    tagRepo,
	}
}

func (s *recipeService) GetRecipes(params models.RecipeListParams, isPublic bool) (*models.Page[models.Recipe], error) {
	params.Normalize()
	recipes, total, err := s.recipeRepo.GetList(params, isPublic)
	if err != nil {
		return nil, err
	}
	return newPage(recipes, total, params.ListParams), nil
}

func (s *recipeService) GetFeatured(limit int) ([]models.Recipe, error) {
	return s.recipeRepo.GetFeatured(featuredLimit(limit))
}

func (s *recipeService) GetBySlug(slug string) (*models.Recipe, error) {
	return optional(s.recipeRepo.GetBySlug(slug, true))
}

func (s *recipeService) GetRecipe(id uint) (*models.Recipe, error) {
	return found(s.recipeRepo.GetByID(id))
}

func (s *recipeService) CreateRecipe(req models.CreateRecipeRequest) (*models.Recipe, error) {
	tags, err := resolveTags(s.tagRepo, req.TagIDs, models.TagTypeRecipe)
	if err != nil {
		return nil, err
	}

	slug, err := chooseSlug(req.Slug, req.Title, s.recipeRepo.SlugTaken, 0)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Slug:         slug,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Ingredients:  datatypes.JSONSlice[models.IngredientGroup](nonNil(req.Ingredients)),
		Instructions: datatypes.JSONSlice[string](nonNil(req.Instructions)),
		Tips:         datatypes.JSONSlice[string](nonNil(req.Tips)),
		Image:        req.Image,
		Published:    req.Published,
		Featured:     req.Featured,
		Tags:         tags,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByID(recipe.ID)
}

func (s *recipeService) UpdateRecipe(id uint, req models.UpdateRecipeRequest) (*models.Recipe, error) {
	if _, err := found(s.recipeRepo.GetByID(id)); err != nil {
		return nil, err
	}

	tags, err := resolveTagUpdate(s.tagRepo, req.TagIDs, models.TagTypeRecipe)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Slug != nil && *req.Slug != "" {
		slug, err := chooseSlug(*req.Slug, "", s.recipeRepo.SlugTaken, id)
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.PrepTime != nil {
		fields["prep_time"] = *req.PrepTime
	}
	if req.CookTime != nil {
		fields["cook_time"] = *req.CookTime
	}
	if req.Servings != nil {
		fields["servings"] = *req.Servings
	}
	if req.Ingredients != nil {
		fields["ingredients"] = datatypes.JSONSlice[models.IngredientGroup](nonNil(*req.Ingredients))
	}
	if req.Instructions != nil {
		fields["instructions"] = datatypes.JSONSlice[string](nonNil(*req.Instructions))
	}
	if req.Tips != nil {
		fields["tips"] = datatypes.JSONSlice[string](nonNil(*req.Tips))
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

	if err := s.recipeRepo.Update(id, fields, tags); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByID(id)
}

func (s *recipeService) DeleteRecipe(id uint) error {
	if _, err := found(s.recipeRepo.GetByID(id)); err != nil {
		return err
	}
	return s.recipeRepo.Delete(id)
}

// RecordView counts a view of a published recipe. Views of unknown or
// unpublished recipes are ignored.
func (s *recipeService) RecordView(id uint) error {
	_, err := s.recipeRepo.IncrementViewCount(id)
	return err
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
