package models

import "time"

type Collection struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image"`
	Published   bool      `json:"published" gorm:"default:false;index"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CollectionRecipe is the ordered membership of a recipe in a collection.
type CollectionRecipe struct {
	CollectionID uint        `json:"collection_id" gorm:"primaryKey"`
	RecipeID     uint        `json:"recipe_id" gorm:"primaryKey"`
	Collection   *Collection `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Recipe       *Recipe     `json:"recipe,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	SortOrder    int         `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time   `json:"created_at"`
}

type CollectionWine struct {
	CollectionID uint        `json:"collection_id" gorm:"primaryKey"`
	WineID       uint        `json:"wine_id" gorm:"primaryKey"`
	Collection   *Collection `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Wine         *Wine       `json:"wine,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	SortOrder    int         `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time   `json:"created_at"`
}

// CollectionDetail is a collection with its memberships in sort order. Each
// membership carries its content item.
type CollectionDetail struct {
	Collection
	Recipes []CollectionRecipe `json:"recipes"`
	Wines   []CollectionWine   `json:"wines"`
}
