package models

import "time"

type RecipeRating struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Rating    int       `json:"rating" gorm:"not null"`
	Review    string    `json:"review" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ReviewView struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (r RecipeRating) View() ReviewView {
	return ReviewView{
		ID:        r.ID,
		Rating:    r.Rating,
		Review:    r.Review,
		Author:    authorOf(r.UserID, r.User),
		CreatedAt: r.CreatedAt,
	}
}
