package models

import "time"

type RecipeComment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ParentID  *uint     `json:"parent_id" gorm:"index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WineComment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	WineID    uint      `json:"wine_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ParentID  *uint     `json:"parent_id" gorm:"index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is satisfied by the comment rows of every commentable family.
type Comment interface {
	RecipeComment | WineComment
	View() CommentView
}

// CommentView is the read shape shared by recipe and wine comments.
type CommentView struct {
	ID        uint          `json:"id"`
	ParentID  *uint         `json:"parent_id"`
	Content   string        `json:"content"`
	IsActive  bool          `json:"is_active"`
	Author    Author        `json:"author"`
	CreatedAt time.Time     `json:"created_at"`
	Replies   []CommentView `json:"replies,omitempty"`
}

func (c RecipeComment) View() CommentView {
	return CommentView{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		IsActive:  c.IsActive,
		Author:    authorOf(c.UserID, c.User),
		CreatedAt: c.CreatedAt,
	}
}

func (c WineComment) View() CommentView {
	return CommentView{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		IsActive:  c.IsActive,
		Author:    authorOf(c.UserID, c.User),
		CreatedAt: c.CreatedAt,
	}
}

func authorOf(id uint, u *User) Author {
	if u == nil {
		return Author{ID: id}
	}
	return Author{ID: u.ID, Name: u.Name, Image: u.Image}
}
