package models

import "time"

type RecipeFavorite struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	RecipeID  uint      `json:"recipe_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

type WineFavorite struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	WineID    uint      `json:"wine_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteStatus struct {
	Favorited bool `json:"favorited"`
}
