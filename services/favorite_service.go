package services

import (
	"fmt"

	"tastings-with-tay/models"
	"tastings-with-tay/repositories"
)

type FavoriteService interface {
	ToggleRecipe(userID, recipeID uint) (*models.FavoriteStatus, error)
	ToggleWine(userID, wineID uint) (*models.FavoriteStatus, error)
	RecipeStatus(userID, recipeID uint) (*models.FavoriteStatus, error)
	WineStatus(userID, wineID uint) (*models.FavoriteStatus, error)
	GetRecipes(userID uint) ([]models.Recipe, error)
	GetWines(userID uint) ([]models.Wine, error)
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	recipeRepo   repositories.RecipeRepository
	wineRepo     repositories.WineRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, recipeRepo repositories.RecipeRepository, wineRepo repositories.WineRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
		wineRepo:     wineRepo,
	}
}

func (s *favoriteService) ToggleRecipe(userID, recipeID uint) (*models.FavoriteStatus, error) {
	exists, err := s.recipeRepo.Exists(recipeID, true)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("recipe %w", models.ErrNotFound)
	}

	favorited, err := s.favoriteRepo.ToggleRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}
	return &models.FavoriteStatus{Favorited: favorited}, nil
}

func (s *favoriteService) ToggleWine(userID, wineID uint) (*models.FavoriteStatus, error) {
	exists, err := s.wineRepo.Exists(wineID, true)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("wine %w", models.ErrNotFound)
	}

	favorited, err := s.favoriteRepo.ToggleWine(userID, wineID)
	if err != nil {
		return nil, err
	}
	return &models.FavoriteStatus{Favorited: favorited}, nil
}

func (s *favoriteService) RecipeStatus(userID, recipeID uint) (*models.FavoriteStatus, error) {
	favorited, err := s.favoriteRepo.HasRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}
	return &models.FavoriteStatus{Favorited: favorited}, nil
}

func (s *favoriteService) WineStatus(userID, wineID uint) (*models.FavoriteStatus, error) {
	favorited, err := s.favoriteRepo.HasWine(userID, wineID)
	if err != nil {
		return nil, err
	}
	return &models.FavoriteStatus{Favorited: favorited}, nil
}

func (s *favoriteService) GetRecipes(userID uint) ([]models.Recipe, error) {
	return s.favoriteRepo.Recipes(userID)
}

func (s *favoriteService) GetWines(userID uint) ([]models.Wine, error) {
	return s.favoriteRepo.Wines(userID)
}
