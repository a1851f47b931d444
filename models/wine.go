package models

import (
	"time"

	"gorm.io/datatypes"
)

type WineType string

const (
	WineRed       WineType = "red"
	WineWhite     WineType = "white"
	WineRose      WineType = "rose"
	WineSparkling WineType = "sparkling"
	WineDessert   WineType = "dessert"
	WineFortified WineType = "fortified"
	WineOrange    WineType = "orange"
)

type Wine struct {
	ID         uint                        `json:"id" gorm:"primarykey"`
	Slug       string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Name       string                      `json:"name" gorm:"not null"`
	Winery     string                      `json:"winery"`
	Region     string                      `json:"region"`
	Country    string                      `json:"country" gorm:"index"`
	Vintage    *int                        `json:"vintage"`
	Type       WineType                    `json:"type" gorm:"index"`
	Grapes     datatypes.JSONSlice[string] `json:"grapes"`
	Rating     *int                        `json:"rating"`
	Notes      string                      `json:"notes" gorm:"type:text"`
	Aromas     datatypes.JSONSlice[string] `json:"aromas"`
	Pairings   datatypes.JSONSlice[string] `json:"pairings"`
	PriceRange string                      `json:"price_range"`
	Occasion   string                      `json:"occasion"`
	Image      string                      `json:"image"`
	Published  bool                        `json:"published" gorm:"default:false;index"`
	Featured   bool                        `json:"featured" gorm:"default:false"`
	Tags       []Tag                       `json:"tags" gorm:"many2many:wine_tags;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}
