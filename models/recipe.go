package models

import (
	"time"

	"gorm.io/datatypes"
)

type RecipeCategory string

const (
	CategoryBreakfast RecipeCategory = "breakfast"
	CategoryLunch     RecipeCategory = "lunch"
	CategoryDinner    RecipeCategory = "dinner"
	CategoryDessert   RecipeCategory = "dessert"
	CategorySnack     RecipeCategory = "snack"
	CategoryDrink     RecipeCategory = "drink"
	CategorySide      RecipeCategory = "side"
	CategoryAppetizer RecipeCategory = "appetizer"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IngredientGroup is a titled block of ingredient lines ("For the crust").
type IngredientGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type Recipe struct {
	ID           uint                                 `json:"id" gorm:"primarykey"`
	Slug         string                               `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string                               `json:"title" gorm:"not null"`
	Description  string                               `json:"description" gorm:"type:text"`
	Category     RecipeCategory                       `json:"category" gorm:"index"`
	Difficulty   Difficulty                           `json:"difficulty"`
	PrepTime     int                                  `json:"prep_time"`
	CookTime     int                                  `json:"cook_time"`
	Servings     int                                  `json:"servings"`
	Ingredients  datatypes.JSONSlice[IngredientGroup] `json:"ingredients"`
	Instructions datatypes.JSONSlice[string]          `json:"instructions"`
	Tips         datatypes.JSONSlice[string]          `json:"tips"`
	Image        string                               `json:"image"`
	Published    bool                                 `json:"published" gorm:"default:false;index"`
	Featured     bool                                 `json:"featured" gorm:"default:false"`
	ViewCount    int                                  `json:"view_count" gorm:"default:0"`
	Tags         []Tag                                `json:"tags" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                            `json:"created_at"`
	UpdatedAt    time.Time                            `json:"updated_at"`
}
