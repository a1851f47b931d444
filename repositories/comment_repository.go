package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

// CommentRepository stores the comments of one commentable family. The
// family is fixed by the row type and the column that points at the
// commented entity.
type CommentRepository[T models.Comment] interface {
	Create(entityID, userID uint, parentID *uint, content string) (*T, error)
	GetByID(id uint) (*T, error)
	GetForEntity(entityID, id uint) (*T, error)
	ListActive(entityID uint) ([]T, error)
	ListAll(params models.ListParams) ([]T, int64, error)
	Deactivate(id uint) error
	Delete(id uint) error
	CountActive() (int64, error)
}

type commentRepository[T models.Comment] struct {
	db     *gorm.DB
	column string
	build  func(entityID, userID uint, parentID *uint, content string) T
}

func NewRecipeCommentRepository(db *gorm.DB) CommentRepository[models.RecipeComment] {
	return &commentRepository[models.RecipeComment]{
		db:     db,
		column: "recipe_id",
		build: func(entityID, userID uint, parentID *uint, content string) models.RecipeComment {
			return models.RecipeComment{RecipeID: entityID, UserID: userID, ParentID: parentID, Content: content, IsActive: true}
		},
	}
}

func NewWineCommentRepository(db *gorm.DB) CommentRepository[models.WineComment] {
	return &commentRepository[models.WineComment]{
		db:     db,
		column: "wine_id",
		build: func(entityID, userID uint, parentID *uint, content string) models.WineComment {
			return models.WineComment{WineID: entityID, UserID: userID, ParentID: parentID, Content: content, IsActive: true}
		},
	}
}

func (r *commentRepository[T]) Create(entityID, userID uint, parentID *uint, content string) (*T, error) {
	comment := r.build(entityID, userID, parentID, content)
	if err := r.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository[T]) GetByID(id uint) (*T, error) {
	var comment T
	err := r.db.Preload("User").First(&comment, id).Error
	return &comment, err
}

func (r *commentRepository[T]) GetForEntity(entityID, id uint) (*T, error) {
	var comment T
	err := r.db.Where(r.column+" = ?", entityID).First(&comment, id).Error
	return &comment, err
}

// ListActive returns every active comment of an entity, oldest first.
func (r *commentRepository[T]) ListActive(entityID uint) ([]T, error) {
	comments := make([]T, 0)
	err := r.db.Preload("User").
		Where(r.column+" = ? AND is_active = ?", entityID, true).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository[T]) ListAll(params models.ListParams) ([]T, int64, error) {
	return findPage[T](r.db.Model(new(T)), params, publicOrder, "User")
}

func (r *commentRepository[T]) Deactivate(id uint) error {
	return r.db.Model(new(T)).Where("id = ?", id).Update("is_active", false).Error
}

// Delete removes the comment and its replies.
func (r *commentRepository[T]) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(new(T)).Error; err != nil {
			return err
		}
		return tx.Delete(new(T), id).Error
	})
}

func (r *commentRepository[T]) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(new(T)).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
