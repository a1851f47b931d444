package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetBySlug(slug string) (*models.Tag, error)
	GetByIDs(ids []uint) ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetAll(types ...models.TagType) ([]models.Tag, error)
	GetAdminList() ([]models.Tag, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	PublishedRecipes(tagID uint) ([]models.Recipe, error)
	PublishedWines(tagID uint) ([]models.Wine, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("slug = ?", slug).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByIDs(ids []uint) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(ids))
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetAll(types ...models.TagType) ([]models.Tag, error) {
	tags := make([]models.Tag, 0)
	query := r.db.Order("name asc")
	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}
	err := query.Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetAdminList() ([]models.Tag, error) {
	tags := make([]models.Tag, 0)
	err := r.db.Order(adminOrder).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Tag{ID: id}).Updates(fields).Error
}

// Delete removes the tag and every association row that points at it.
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"recipe_tags", "wine_tags", "experiment_tags"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE tag_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

func (r *tagRepository) PublishedRecipes(tagID uint) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	err := r.db.
		Where("published = ?", true).
		Where("id IN (?)", r.db.Table("recipe_tags").Select("recipe_id").Where("tag_id = ?", tagID)).
		Order(publicOrder).
		Find(&recipes).Error
	return recipes, err
}

func (r *tagRepository) PublishedWines(tagID uint) ([]models.Wine, error) {
	wines := make([]models.Wine, 0)
	err := r.db.
		Where("published = ?", true).
		Where("id IN (?)", r.db.Table("wine_tags").Select("wine_id").Where("tag_id = ?", tagID)).
		Order(publicOrder).
		Find(&wines).Error
	return wines, err
}
