package services

import (
	"fmt"
	"time"

	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"gorm.io/datatypes"
)

type ExperimentService interface {
	GetExperiments(params models.ExperimentListParams, isPublic bool) (*models.Page[models.Experiment], error)
	GetFeatured(limit int) ([]models.Experiment, error)
	GetBySlug(slug string) (*models.Experiment, error)
	GetExperiment(id uint) (*models.Experiment, error)
	CreateExperiment(req models.CreateExperimentRequest) (*models.Experiment, error)
	UpdateExperiment(id uint, req models.UpdateExperimentRequest) (*models.Experiment, error)
	DeleteExperiment(id uint) error
	AddEntry(experimentID uint, req models.CreateEntryRequest) (*models.ExperimentEntry, error)
	UpdateEntry(entryID uint, req models.UpdateEntryRequest) (*models.ExperimentEntry, error)
	DeleteEntry(entryID uint) error
	Graduate(id uint, req models.GraduateRequest) (*models.Experiment, error)
}

type experimentService struct {
	experimentRepo repositories.ExperimentRepository
	recipeRepo     repositories.RecipeRepository
	tagRepo        repositories.TagRepository
	now            func() time.Time
}

func NewExperimentService(experimentRepo repositories.ExperimentRepository, recipeRepo repositories.RecipeRepository, tagRepo repositories.TagRepository) ExperimentService {
	return &experimentService{
		experimentRepo: experimentRepo,
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		now:            time.Now,
	}
}

func (s *experimentService) GetExperiments(params models.ExperimentListParams, isPublic bool) (*models.Page[models.Experiment], error) {
	params.Normalize()
	experiments, total, err := s.experimentRepo.GetList(params, isPublic)
	if err != nil {
		return nil, err
	}
	return newPage(experiments, total, params.ListParams), nil
}

func (s *experimentService) GetFeatured(limit int) ([]models.Experiment, error) {
	return s.experimentRepo.GetFeatured(featuredLimit(limit))
}

func (s *experimentService) GetBySlug(slug string) (*models.Experiment, error) {
	return optional(s.experimentRepo.GetBySlug(slug, true))
}

func (s *experimentService) GetExperiment(id uint) (*models.Experiment, error) {
	return found(s.experimentRepo.GetByID(id))
}

func (s *experimentService) CreateExperiment(req models.CreateExperimentRequest) (*models.Experiment, error) {
	// Experiments share the recipe tag vocabulary
	tags, err := resolveTags(s.tagRepo, req.TagIDs, models.TagTypeRecipe)
	if err != nil {
		return nil, err
	}

	slug, err := chooseSlug(req.Slug, req.Title, s.experimentRepo.SlugTaken, 0)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusInProgress
	}

	experiment := &models.Experiment{
		Slug:        slug,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Hypothesis:  req.Hypothesis,
		Result:      req.Result,
		Image:       req.Image,
		Published:   req.Published,
		Featured:    req.Featured,
		Tags:        tags,
	}

	if err := s.experimentRepo.Create(experiment); err != nil {
		return nil, err
	}
	return s.experimentRepo.GetByID(experiment.ID)
}

func (s *experimentService) UpdateExperiment(id uint, req models.UpdateExperimentRequest) (*models.Experiment, error) {
	if _, err := found(s.experimentRepo.GetByID(id)); err != nil {
		return nil, err
	}

	tags, err := resolveTagUpdate(s.tagRepo, req.TagIDs, models.TagTypeRecipe)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Slug != nil && *req.Slug != "" {
		slug, err := chooseSlug(*req.Slug, "", s.experimentRepo.SlugTaken, id)
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
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Hypothesis != nil {
		fields["hypothesis"] = *req.Hypothesis
	}
	if req.Result != nil {
		fields["result"] = *req.Result
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

	if err := s.experimentRepo.Update(id, fields, tags); err != nil {
		return nil, err
	}
	return s.experimentRepo.GetByID(id)
}

func (s *experimentService) DeleteExperiment(id uint) error {
	if _, err := found(s.experimentRepo.GetByID(id)); err != nil {
		return err
	}
	return s.experimentRepo.Delete(id)
}

func (s *experimentService) AddEntry(experimentID uint, req models.CreateEntryRequest) (*models.ExperimentEntry, error) {
	if _, err := found(s.experimentRepo.GetByID(experimentID)); err != nil {
		return nil, err
	}

	entryDate := s.now()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	entry := &models.ExperimentEntry{
		ExperimentID: experimentID,
		EntryDate:    entryDate,
		Type:         req.Type,
		Title:        req.Title,
		Content:      req.Content,
		Images:       datatypes.JSONSlice[string](nonNil(req.Images)),
	}
	if err := s.experimentRepo.CreateEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *experimentService) UpdateEntry(entryID uint, req models.UpdateEntryRequest) (*models.ExperimentEntry, error) {
	entry, err := found(s.experimentRepo.GetEntry(entryID))
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.EntryDate != nil {
		fields["entry_date"] = *req.EntryDate
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Images != nil {
		fields["images"] = datatypes.JSONSlice[string](nonNil(*req.Images))
	}

	if err := s.experimentRepo.UpdateEntry(entry, fields); err != nil {
		return nil, err
	}
	return s.experimentRepo.GetEntry(entryID)
}

func (s *experimentService) DeleteEntry(entryID uint) error {
	entry, err := found(s.experimentRepo.GetEntry(entryID))
	if err != nil {
		return err
	}
	return s.experimentRepo.DeleteEntry(entry)
}

func (s *experimentService) Graduate(id uint, req models.GraduateRequest) (*models.Experiment, error) {
	if _, err := found(s.experimentRepo.GetByID(id)); err != nil {
		return nil, err
	}
	exists, err := s.recipeRepo.Exists(req.RecipeID, false)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("recipe %w", models.ErrNotFound)
	}

	if err := s.experimentRepo.Graduate(id, req.RecipeID); err != nil {
		return nil, err
	}
	return s.experimentRepo.GetByID(id)
}
