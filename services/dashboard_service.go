package services

import (
	"tastings-with-tay/models"
	"tastings-with-tay/repositories"
)

type DashboardService interface {
	GetStats() (*models.DashboardStats, error)
}

// DashboardRepositories groups the stores the studio dashboard counts.
type DashboardRepositories struct {
	Recipes        repositories.RecipeRepository
	Wines          repositories.WineRepository
	Experiments    repositories.ExperimentRepository
	Collections    repositories.CollectionRepository
	Gallery        repositories.GalleryRepository
	Subscribers    repositories.SubscriberRepository
	RecipeComments repositories.CommentRepository[models.RecipeComment]
	WineComments   repositories.CommentRepository[models.WineComment]
}

type dashboardService struct {
	repos DashboardRepositories
}

func NewDashboardService(repos DashboardRepositories) DashboardService {
	return &dashboardService{repos: repos}
}

func (s *dashboardService) GetStats() (*models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)

	if stats.Recipes, err = s.repos.Recipes.Count(); err != nil {
		return nil, err
	}
	if stats.Wines, err = s.repos.Wines.Count(); err != nil {
		return nil, err
	}
	if stats.Experiments, err = s.repos.Experiments.Count(); err != nil {
		return nil, err
	}
	if stats.Collections, err = s.repos.Collections.Count(); err != nil {
		return nil, err
	}
	if stats.Gallery, err = s.repos.Gallery.Count(); err != nil {
		return nil, err
	}
	if stats.Subscribers, err = s.repos.Subscribers.Stats(); err != nil {
		return nil, err
	}

	recipeComments, err := s.repos.RecipeComments.CountActive()
	if err != nil {
		return nil, err
	}
	wineComments, err := s.repos.WineComments.CountActive()
	if err != nil {
		return nil, err
	}
	stats.Comments = recipeComments + wineComments

	return &stats, nil
}
