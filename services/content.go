package services

import (
	"errors"
	"fmt"
	"strconv"

	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"gorm.io/gorm"
)

const (
	defaultFeaturedLimit = 6
	maxFeaturedLimit     = 24
)

func featuredLimit(limit int) int {
	if limit <= 0 {
		return defaultFeaturedLimit
	}
	if limit > maxFeaturedLimit {
		return maxFeaturedLimit
	}
	return limit
}

func newPage[T any](items []T, total int64, p models.ListParams) *models.Page[T] {
	return &models.Page[T]{Items: items, Total: total, Limit: p.Limit, Offset: p.Offset}
}

// found converts a missing row into models.ErrNotFound.
func found[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// optional converts a missing row into a nil result. Public lookups answer
// null rather than not found.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

type slugChecker func(slug string, excludeID uint) (bool, error)

// chooseSlug validates an explicit slug or derives one from the title. A
// derived slug that is taken gets a numeric suffix; an explicit one is a
// conflict.
func chooseSlug(explicit, title string, taken slugChecker, excludeID uint) (string, error) {
	if explicit != "" {
		inUse, err := taken(explicit, excludeID)
		if err != nil {
			return "", err
		}
		if inUse {
			return "", fmt.Errorf("slug %q %w", explicit, models.ErrConflict)
		}
		return explicit, nil
	}

	base := helper.MakeSlug(title)
	slug := base
	for n := 2; ; n++ {
		inUse, err := taken(slug, excludeID)
		if err != nil {
			return "", err
		}
		if !inUse {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(n)
	}
}

// resolveTags loads the requested tags and checks that each one may be
// attached to content of the given family.
func resolveTags(repo repositories.TagRepository, ids []uint, family models.TagType) ([]models.Tag, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	tags, err := repo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, fmt.Errorf("%w: unknown tag id", models.ErrInvalidInput)
	}
	for _, tag := range tags {
		if !tag.Type.Allows(family) {
			return nil, fmt.Errorf("%w: tag %q is for %s content", models.ErrInvalidInput, tag.Name, tag.Type)
		}
	}
	return tags, nil
}

// resolveTagUpdate is resolveTags for partial updates, where a nil list
// leaves the association untouched.
func resolveTagUpdate(repo repositories.TagRepository, ids *[]uint, family models.TagType) (*[]models.Tag, error) {
	if ids == nil {
		return nil, nil
	}
	tags, err := resolveTags(repo, *ids, family)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}
