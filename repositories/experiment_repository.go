package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type ExperimentRepository interface {
	Create(experiment *models.Experiment) error
	GetByID(id uint) (*models.Experiment, error)
	GetBySlug(slug string, isPublic bool) (*models.Experiment, error)
	GetList(params models.ExperimentListParams, isPublic bool) ([]models.Experiment, int64, error)
	GetFeatured(limit int) ([]models.Experiment, error)
	Update(id uint, fields map[string]interface{}, tags *[]models.Tag) error
	Delete(id uint) error
	SlugTaken(slug string, excludeID uint) (bool, error)
	Count() (models.FamilyCount, error)

	CreateEntry(entry *models.ExperimentEntry) error
	GetEntry(id uint) (*models.ExperimentEntry, error)
	UpdateEntry(entry *models.ExperimentEntry, fields map[string]interface{}) error
	DeleteEntry(entry *models.ExperimentEntry) error
	Graduate(id, recipeID uint) error
}

type experimentRepository struct {
	db *gorm.DB
}

func NewExperimentRepository(db *gorm.DB) ExperimentRepository {
	return &experimentRepository{db: db}
}

func entriesByDate(db *gorm.DB) *gorm.DB {
	return db.Order("entry_date ASC, id ASC")
}

func (r *experimentRepository) Create(experiment *models.Experiment) error {
	return r.db.Create(experiment).Error
}

func (r *experimentRepository) GetByID(id uint) (*models.Experiment, error) {
	var experiment models.Experiment
	err := r.db.
		Preload("Tags").
		Preload("Entries", entriesByDate).
		Preload("GraduatedRecipe").
		First(&experiment, id).Error
	return &experiment, err
}

// GetBySlug loads an experiment with its journal. The graduated recipe is
// only attached for public reads when it is itself published.
func (r *experimentRepository) GetBySlug(slug string, isPublic bool) (*models.Experiment, error) {
	var experiment models.Experiment
	query := r.db.
		Preload("Tags").
		Preload("Entries", entriesByDate).
		Where("slug = ?", slug)
	if isPublic {
		query = query.
			Preload("GraduatedRecipe", "published = ?", true).
			Where("published = ?", true)
	} else {
		query = query.Preload("GraduatedRecipe")
	}
	err := query.First(&experiment).Error
	return &experiment, err
}

func (r *experimentRepository) GetList(params models.ExperimentListParams, isPublic bool) ([]models.Experiment, int64, error) {
	query := r.db.Model(&models.Experiment{})

	if isPublic {
		query = query.Where("published = ?", true)
	} else if params.Published != nil {
		query = query.Where("published = ?", *params.Published)
	}

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		pattern := searchPattern(params.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	order := publicOrder
	if !isPublic {
		order = adminOrder
	}
	return findPage[models.Experiment](query, params.ListParams, order, "Tags")
}

func (r *experimentRepository) GetFeatured(limit int) ([]models.Experiment, error) {
	experiments := make([]models.Experiment, 0)
	err := r.db.Preload("Tags").
		Where("published = ? AND featured = ?", true, true).
		Order(publicOrder).
		Limit(limit).
		Find(&experiments).Error
	return experiments, err
}

func (r *experimentRepository) Update(id uint, fields map[string]interface{}, tags *[]models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.Experiment{ID: id}).Updates(fields).Error; err != nil {
				return err
			}
		}
		if tags != nil {
			if err := replaceTags(tx, &models.Experiment{ID: id}, *tags); err != nil {
				return err
			}
			if len(fields) == 0 {
				return touch(tx, &models.Experiment{ID: id})
			}
		}
		return nil
	})
}

func (r *experimentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := replaceTags(tx, &models.Experiment{ID: id}, nil); err != nil {
			return err
		}
		if err := tx.Where("experiment_id = ?", id).Delete(&models.ExperimentEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Experiment{}, id).Error
	})
}

func (r *experimentRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	return slugTaken(r.db, &models.Experiment{}, slug, excludeID)
}

func (r *experimentRepository) Count() (models.FamilyCount, error) {
	return countFamily(r.db, &models.Experiment{})
}

func (r *experimentRepository) CreateEntry(entry *models.ExperimentEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return touch(tx, &models.Experiment{ID: entry.ExperimentID})
	})
}

func (r *experimentRepository) GetEntry(id uint) (*models.ExperimentEntry, error) {
	var entry models.ExperimentEntry
	err := r.db.First(&entry, id).Error
	return &entry, err
}

func (r *experimentRepository) UpdateEntry(entry *models.ExperimentEntry, fields map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.ExperimentEntry{ID: entry.ID}).Updates(fields).Error; err != nil {
				return err
			}
		}
		return touch(tx, &models.Experiment{ID: entry.ExperimentID})
	})
}

func (r *experimentRepository) DeleteEntry(entry *models.ExperimentEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ExperimentEntry{}, entry.ID).Error; err != nil {
			return err
		}
		return touch(tx, &models.Experiment{ID: entry.ExperimentID})
	})
}

// Graduate links the experiment to the recipe it produced and marks it
// graduated.
func (r *experimentRepository) Graduate(id, recipeID uint) error {
	return r.db.Model(&models.Experiment{ID: id}).Updates(map[string]interface{}{
		"status":              models.StatusGraduated,
		"graduated_recipe_id": recipeID,
	}).Error
}
