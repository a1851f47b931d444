package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"gorm.io/gorm"
)

type RatingService interface {
	RateRecipe(recipeID, userID uint, req models.RateRecipeRequest) (*models.RecipeRating, error)
	GetAverage(recipeID uint) (models.RatingSummary, error)
	GetReviews(recipeID uint) ([]models.ReviewView, error)
	GetMine(recipeID, userID uint) (*models.RecipeRating, error)
	DeleteMine(recipeID, userID uint) error
	DeleteRating(id uint) error
}

type ratingService struct {
	ratingRepo repositories.RatingRepository
	recipeRepo repositories.RecipeRepository
}

func NewRatingService(ratingRepo repositories.RatingRepository, recipeRepo repositories.RecipeRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		recipeRepo: recipeRepo,
	}
}

// RateRecipe records the caller's rating, replacing an earlier one.
func (s *ratingService) RateRecipe(recipeID, userID uint, req models.RateRecipeRequest) (*models.RecipeRating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrInvalidInput)
	}
	review := strings.TrimSpace(req.Review)

	exists, err := s.recipeRepo.Exists(recipeID, true)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("recipe %w", models.ErrNotFound)
	}

	existing, err := s.ratingRepo.GetByUser(recipeID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rating := &models.RecipeRating{
			RecipeID: recipeID,
			UserID:   userID,
			Rating:   req.Rating,
			Review:   review,
		}
		if err := s.ratingRepo.Create(rating); err != nil {
			return nil, err
		}
		return rating, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.ratingRepo.Update(existing.ID, req.Rating, review); err != nil {
		return nil, err
	}
	return s.ratingRepo.GetByID(existing.ID)
}

func (s *ratingService) GetAverage(recipeID uint) (models.RatingSummary, error) {
	summary, err := s.ratingRepo.Summary(recipeID)
	if err != nil {
		return summary, err
	}
	summary.Average = math.Round(summary.Average*10) / 10
	return summary, nil
}

func (s *ratingService) GetReviews(recipeID uint) ([]models.ReviewView, error) {
	ratings, err := s.ratingRepo.Reviews(recipeID)
	if err != nil {
		return nil, err
	}
	reviews := make([]models.ReviewView, 0, len(ratings))
	for _, rating := range ratings {
		reviews = append(reviews, rating.View())
	}
	return reviews, nil
}

func (s *ratingService) GetMine(recipeID, userID uint) (*models.RecipeRating, error) {
	return optional(s.ratingRepo.GetByUser(recipeID, userID))
}

func (s *ratingService) DeleteMine(recipeID, userID uint) error {
	removed, err := s.ratingRepo.DeleteByUser(recipeID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("rating %w", models.ErrNotFound)
	}
	return nil
}

func (s *ratingService) DeleteRating(id uint) error {
	if _, err := found(s.ratingRepo.GetByID(id)); err != nil {
		return err
	}
	return s.ratingRepo.Delete(id)
}
