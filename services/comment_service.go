package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"gorm.io/gorm"
)

const maxCommentLength = 2000

type CommentService[T models.Comment] interface {
	GetThread(entityID uint) ([]models.CommentView, error)
	AddComment(entityID, userID uint, req models.CreateCommentRequest) (*models.CommentView, error)
	DeleteOwn(commentID, userID uint) error
	GetAll(params models.ListParams) (*models.Page[T], error)
	DeleteComment(commentID uint) error
}

type commentService[T models.Comment] struct {
	commentRepo repositories.CommentRepository[T]
	exists      func(id uint, isPublic bool) (bool, error)
	entity      string
}

func NewRecipeCommentService(commentRepo repositories.CommentRepository[models.RecipeComment], recipeRepo repositories.RecipeRepository) CommentService[models.RecipeComment] {
	return &commentService[models.RecipeComment]{
		commentRepo: commentRepo,
		exists:      recipeRepo.Exists,
		entity:      "recipe",
	}
}

func NewWineCommentService(commentRepo repositories.CommentRepository[models.WineComment], wineRepo repositories.WineRepository) CommentService[models.WineComment] {
	return &commentService[models.WineComment]{
		commentRepo: commentRepo,
		exists:      wineRepo.Exists,
		entity:      "wine",
	}
}

func (s *commentService[T]) ensureEntity(entityID uint) error {
	ok, err := s.exists(entityID, true)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %w", s.entity, models.ErrNotFound)
	}
	return nil
}

// GetThread returns active top-level comments newest first, each with its
// active replies oldest first.
func (s *commentService[T]) GetThread(entityID uint) ([]models.CommentView, error) {
	if err := s.ensureEntity(entityID); err != nil {
		return nil, err
	}

	rows, err := s.commentRepo.ListActive(entityID)
	if err != nil {
		return nil, err
	}

	replies := make(map[uint][]models.CommentView)
	roots := make([]models.CommentView, 0)
	for _, row := range rows {
		view := row.View()
		if view.ParentID == nil {
			roots = append(roots, view)
			continue
		}
		replies[*view.ParentID] = append(replies[*view.ParentID], view)
	}

	thread := make([]models.CommentView, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		root := roots[i]
		root.Replies = replies[root.ID]
		thread = append(thread, root)
	}
	return thread, nil
}

func (s *commentService[T]) AddComment(entityID, userID uint, req models.CreateCommentRequest) (*models.CommentView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment is empty", models.ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", models.ErrInvalidInput, maxCommentLength)
	}

	if err := s.ensureEntity(entityID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if err := s.checkParent(entityID, *req.ParentID); err != nil {
			return nil, err
		}
	}

	comment, err := s.commentRepo.Create(entityID, userID, req.ParentID, content)
	if err != nil {
		return nil, err
	}

	created, err := s.commentRepo.GetByID((*comment).View().ID)
	if err != nil {
		return nil, err
	}
	view := (*created).View()
	return &view, nil
}

// checkParent allows replies only to active top-level comments on the same
// entity.
func (s *commentService[T]) checkParent(entityID, parentID uint) error {
	parent, err := s.commentRepo.GetForEntity(entityID, parentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: parent comment does not belong to this %s", models.ErrInvalidInput, s.entity)
	}
	if err != nil {
		return err
	}

	view := (*parent).View()
	if view.ParentID != nil {
		return fmt.Errorf("%w: replies cannot be nested", models.ErrInvalidInput)
	}
	if !view.IsActive {
		return fmt.Errorf("%w: parent comment was removed", models.ErrInvalidInput)
	}
	return nil
}

// DeleteOwn hides a comment written by the caller.
func (s *commentService[T]) DeleteOwn(commentID, userID uint) error {
	comment, err := found(s.commentRepo.GetByID(commentID))
	if err != nil {
		return err
	}

	view := (*comment).View()
	if !view.IsActive {
		return fmt.Errorf("comment %w", models.ErrNotFound)
	}
	if view.Author.ID != userID {
		return fmt.Errorf("%w: comment belongs to another user", models.ErrForbidden)
	}
	return s.commentRepo.Deactivate(commentID)
}

func (s *commentService[T]) GetAll(params models.ListParams) (*models.Page[T], error) {
	params.Normalize()
	comments, total, err := s.commentRepo.ListAll(params)
	if err != nil {
		return nil, err
	}
	return newPage(comments, total, params), nil
}

// DeleteComment removes a comment and its replies for good.
func (s *commentService[T]) DeleteComment(commentID uint) error {
	if _, err := found(s.commentRepo.GetByID(commentID)); err != nil {
		return err
	}
	return s.commentRepo.Delete(commentID)
}
