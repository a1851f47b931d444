package models

import "time"

type GalleryCategory string

const (
	GalleryGarden GalleryCategory = "garden"
	GalleryFlock  GalleryCategory = "flock"
)

type GalleryImage struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	Image     string          `json:"image" gorm:"not null"`
	Title     string          `json:"title"`
	Caption   string          `json:"caption"`
	Category  GalleryCategory `json:"category" gorm:"index"`
	SortOrder int             `json:"sort_order" gorm:"default:0"`
	Published bool            `json:"published" gorm:"index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
