package models

import (
	"time"
)

type TagType string

const (
	TagTypeRecipe TagType = "recipe"
	TagTypeWine   TagType = "wine"
	TagTypeBoth   TagType = "both"
)

// Allows reports whether a tag of this type may be attached to content of
// the given family.
func (t TagType) Allows(family TagType) bool {
	return t == TagTypeBoth || t == family
}

type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Type      TagType   `json:"type" gorm:"default:'both'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagDetail is a tag together with the published content that carries it.
type TagDetail struct {
	Tag     Tag      `json:"tag"`
	Recipes []Recipe `json:"recipes"`
	Wines   []Wine   `json:"wines"`
}
