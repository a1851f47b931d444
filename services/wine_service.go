package services

import (
	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"gorm.io/datatypes"
)

type WineService interface {
	GetWines(params models.WineListParams, isPublic bool) (*models.Page[models.Wine], error)
	GetFeatured(limit int) ([]models.Wine, error)
	GetBySlug(slug string) (*models.Wine, error)
	GetWine(id uint) (*models.Wine, error)
	CreateWine(req models.CreateWineRequest) (*models.Wine, error)
	UpdateWine(id uint, req models.UpdateWineRequest) (*models.Wine, error)
	DeleteWine(id uint) error
}

type wineService struct {
	wineRepo repositories.WineRepository
	tagRepo  repositories.TagRepository
}

func NewWineService(wineRepo repositories.WineRepository, tagRepo repositories.TagRepository) WineService {
	return &wineService{
		wineRepo: wineRepo,
		tagRepo:  tagRepo,
	}
}

func (s *wineService) GetWines(params models.WineListParams, isPublic bool) (*models.Page[models.Wine], error) {
	params.Normalize()
	wines, total, err := s.wineRepo.GetList(params, isPublic)
	if err != nil {
		return nil, err
	}
	return newPage(wines, total, params.ListParams), nil
}

func (s *wineService) GetFeatured(limit int) ([]models.Wine, error) {
	return s.wineRepo.GetFeatured(featuredLimit(limit))
}

func (s *wineService) GetBySlug(slug string) (*models.Wine, error) {
	return optional(s.wineRepo.GetBySlug(slug, true))
}

func (s *wineService) GetWine(id uint) (*models.Wine, error) {
	return found(s.wineRepo.GetByID(id))
}

func (s *wineService) CreateWine(req models.CreateWineRequest) (*models.Wine, error) {
	tags, err := resolveTags(s.tagRepo, req.TagIDs, models.TagTypeWine)
	if err != nil {
		return nil, err
	}

	slug, err := chooseSlug(req.Slug, req.Name, s.wineRepo.SlugTaken, 0)
	if err != nil {
		return nil, err
	}

	wine := &models.Wine{
		Slug:       slug,
		Name:       req.Name,
		Winery:     req.Winery,
		Region:     req.Region,
		Country:    req.Country,
		Vintage:    req.Vintage,
		Type:       req.Type,
		Grapes:     datatypes.JSONSlice[string](nonNil(req.Grapes)),
		Rating:     req.Rating,
		Notes:      req.Notes,
		Aromas:     datatypes.JSONSlice[string](nonNil(req.Aromas)),
		Pairings:   datatypes.JSONSlice[string](nonNil(req.Pairings)),
		PriceRange: req.PriceRange,
		Occasion:   req.Occasion,
		Image:      req.Image,
		Published:  req.Published,
		Featured:   req.Featured,
		Tags:       tags,
	}

	if err := s.wineRepo.Create(wine); err != nil {
		return nil, err
	}
	return s.wineRepo.GetByID(wine.ID)
}

func (s *wineService) UpdateWine(id uint, req models.UpdateWineRequest) (*models.Wine, error) {
	if _, err := found(s.wineRepo.GetByID(id)); err != nil {
		return nil, err
	}

	tags, err := resolveTagUpdate(s.tagRepo, req.TagIDs, models.TagTypeWine)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Slug != nil && *req.Slug != "" {
		slug, err := chooseSlug(*req.Slug, "", s.wineRepo.SlugTaken, id)
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Winery != nil {
		fields["winery"] = *req.Winery
	}
	if req.Region != nil {
		fields["region"] = *req.Region
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.Vintage != nil {
		fields["vintage"] = *req.Vintage
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Grapes != nil {
		fields["grapes"] = datatypes.JSONSlice[string](nonNil(*req.Grapes))
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Aromas != nil {
		fields["aromas"] = datatypes.JSONSlice[string](nonNil(*req.Aromas))
	}
	if req.Pairings != nil {
		fields["pairings"] = datatypes.JSONSlice[string](nonNil(*req.Pairings))
	}
	if req.PriceRange != nil {
		fields["price_range"] = *req.PriceRange
	}
	if req.Occasion != nil {
		fields["occasion"] = *req.Occasion
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

	if err := s.wineRepo.Update(id, fields, tags); err != nil {
		return nil, err
	}
	return s.wineRepo.GetByID(id)
}

func (s *wineService) DeleteWine(id uint) error {
	if _, err := found(s.wineRepo.GetByID(id)); err != nil {
		return err
	}
	return s.wineRepo.Delete(id)
}
