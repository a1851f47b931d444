package repositories

import (
	"strings"
	"time"

	"tastings-with-tay/models"

	"gorm.io/gorm"
)

const (
	publicOrder = "created_at DESC, id DESC"
	adminOrder  = "updated_at DESC, id DESC"
)

func searchPattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// findPage counts the rows matched by query and loads one page of them.
func findPage[T any](query *gorm.DB, p models.ListParams, order string, preloads ...string) ([]T, int64, error) {
	var total int64
	query = query.Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0)
	q := query.Order(order).Offset(p.Offset).Limit(p.Limit)
	for _, preload := range preloads {
		q = q.Preload(preload)
	}
	err := q.Find(&items).Error
	return items, total, err
}

func countFamily(db *gorm.DB, model interface{}) (models.FamilyCount, error) {
	var out models.FamilyCount
	if err := db.Model(model).Count(&out.Total).Error; err != nil {
		return out, err
	}
	err := db.Model(model).Where("published = ?", true).Count(&out.Published).Error
	return out, err
}

func slugTaken(db *gorm.DB, model interface{}, slug string, excludeID uint) (bool, error) {
	var count int64
	query := db.Model(model).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func replaceTags(tx *gorm.DB, owner interface{}, tags []models.Tag) error {
	association := tx.Model(owner).Association("Tags")
	if len(tags) == 0 {
		return association.Clear()
	}
	return association.Replace(tags)
}

// touch bumps updated_at on a parent row after a change to its children.
func touch(tx *gorm.DB, model interface{}) error {
	return tx.Model(model).Update("updated_at", time.Now()).Error
}
