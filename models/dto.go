package models

import "time"

// Auth

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type SessionResponse struct {
	User      User      `json:"user"`
	Role      UserRole  `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UpdateRoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=user admin"`
}

// Listing

type ListParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Normalize clamps limit and offset into their accepted ranges.
func (p *ListParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type RecipeListParams struct {
	ListParams
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
	Tag        string `form:"tag"`
	Search     string `form:"search"`
	Published  *bool  `form:"published"`
}

type WineListParams struct {
	ListParams
	Type      string `form:"type"`
	Country   string `form:"country"`
	Tag       string `form:"tag"`
	Search    string `form:"search"`
	Published *bool  `form:"published"`
}

type ExperimentListParams struct {
	ListParams
	Status    string `form:"status"`
	Search    string `form:"search"`
	Published *bool  `form:"published"`
}

type GalleryListParams struct {
	ListParams
	Category string `form:"category"`
}

type CollectionListParams struct {
	ListParams
	Search string `form:"search"`
}

type SubscriberListParams struct {
	ListParams
	Active *bool `form:"active"`
}

// Recipes

type CreateRecipeRequest struct {
	Slug         string            `json:"slug" validate:"omitempty,slug,max=200"`
	Title        string            `json:"title" validate:"required,min=1,max=200"`
	Description  string            `json:"description" validate:"max=5000"`
	Category     RecipeCategory    `json:"category" validate:"required,oneof=breakfast lunch dinner dessert snack drink side appetizer"`
	Difficulty   Difficulty        `json:"difficulty" validate:"required,oneof=easy medium hard"`
	PrepTime     int               `json:"prep_time" validate:"min=0"`
	CookTime     int               `json:"cook_time" validate:"min=0"`
	Servings     int               `json:"servings" validate:"min=0"`
	Ingredients  []IngredientGroup `json:"ingredients" validate:"dive"`
	Instructions []string          `json:"instructions" validate:"dive,required"`
	Tips         []string          `json:"tips"`
	Image        string            `json:"image" validate:"max=500"`
	Published    bool              `json:"published"`
	Featured     bool              `json:"featured"`
	TagIDs       []uint            `json:"tag_ids"`
}

// UpdateRecipeRequest carries a partial update; nil fields are left untouched.
type UpdateRecipeRequest struct {
	Slug         *string            `json:"slug" validate:"omitempty,slug,max=200"`
	Title        *string            `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string            `json:"description" validate:"omitempty,max=5000"`
	Category     *RecipeCategory    `json:"category" validate:"omitempty,oneof=breakfast lunch dinner dessert snack drink side appetizer"`
	Difficulty   *Difficulty        `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	PrepTime     *int               `json:"prep_time" validate:"omitempty,min=0"`
	CookTime     *int               `json:"cook_time" validate:"omitempty,min=0"`
	Servings     *int               `json:"servings" validate:"omitempty,min=0"`
	Ingredients  *[]IngredientGroup `json:"ingredients"`
	Instructions *[]string          `json:"instructions"`
	Tips         *[]string          `json:"tips"`
	Image        *string            `json:"image" validate:"omitempty,max=500"`
	Published    *bool              `json:"published"`
	Featured     *bool              `json:"featured"`
	TagIDs       *[]uint            `json:"tag_ids"`
}

// Wines

type CreateWineRequest struct {
	Slug       string   `json:"slug" validate:"omitempty,slug,max=200"`
	Name       string   `json:"name" validate:"required,min=1,max=200"`
	Winery     string   `json:"winery" validate:"max=200"`
	Region     string   `json:"region" validate:"max=200"`
	Country    string   `json:"country" validate:"max=100"`
	Vintage    *int     `json:"vintage" validate:"omitempty,min=1800,max=2100"`
	Type       WineType `json:"type" validate:"required,oneof=red white rose sparkling dessert fortified orange"`
	Grapes     []string `json:"grapes"`
	Rating     *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	Notes      string   `json:"notes" validate:"max=5000"`
	Aromas     []string `json:"aromas"`
	Pairings   []string `json:"pairings"`
	PriceRange string   `json:"price_range" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Occasion   string   `json:"occasion" validate:"max=200"`
	Image      string   `json:"image" validate:"max=500"`
	Published  bool     `json:"published"`
	Featured   bool     `json:"featured"`
	TagIDs     []uint   `json:"tag_ids"`
}

type UpdateWineRequest struct {
	Slug       *string   `json:"slug" validate:"omitempty,slug,max=200"`
	Name       *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Winery     *string   `json:"winery" validate:"omitempty,max=200"`
	Region     *string   `json:"region" validate:"omitempty,max=200"`
	Country    *string   `json:"country" validate:"omitempty,max=100"`
	Vintage    *int      `json:"vintage" validate:"omitempty,min=1800,max=2100"`
	Type       *WineType `json:"type" validate:"omitempty,oneof=red white rose sparkling dessert fortified orange"`
	Grapes     *[]string `json:"grapes"`
	Rating     *int      `json:"rating" validate:"omitempty,min=1,max=5"`
	Notes      *string   `json:"notes" validate:"omitempty,max=5000"`
	Aromas     *[]string `json:"aromas"`
	Pairings   *[]string `json:"pairings"`
	PriceRange *string   `json:"price_range" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Occasion   *string   `json:"occasion" validate:"omitempty,max=200"`
	Image      *string   `json:"image" validate:"omitempty,max=500"`
	Published  *bool     `json:"published"`
	Featured   *bool     `json:"featured"`
	TagIDs     *[]uint   `json:"tag_ids"`
}

// Experiments

type CreateExperimentRequest struct {
	Slug        string           `json:"slug" validate:"omitempty,slug,max=200"`
	Title       string           `json:"title" validate:"required,min=1,max=200"`
	Description string           `json:"description" validate:"max=5000"`
	Status      ExperimentStatus `json:"status" validate:"omitempty,oneof=in_progress paused completed graduated"`
	Hypothesis  string           `json:"hypothesis" validate:"max=5000"`
	Result      string           `json:"result" validate:"max=5000"`
	Image       string           `json:"image" validate:"max=500"`
	Published   bool             `json:"published"`
	Featured    bool             `json:"featured"`
	TagIDs      []uint           `json:"tag_ids"`
}

type UpdateExperimentRequest struct {
	Slug        *string           `json:"slug" validate:"omitempty,slug,max=200"`
	Title       *string           `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string           `json:"description" validate:"omitempty,max=5000"`
	Status      *ExperimentStatus `json:"status" validate:"omitempty,oneof=in_progress paused completed graduated"`
	Hypothesis  *string           `json:"hypothesis" validate:"omitempty,max=5000"`
	Result      *string           `json:"result" validate:"omitempty,max=5000"`
	Image       *string           `json:"image" validate:"omitempty,max=500"`
	Published   *bool             `json:"published"`
	Featured    *bool             `json:"featured"`
	TagIDs      *[]uint           `json:"tag_ids"`
}

type CreateEntryRequest struct {
	EntryDate *time.Time `json:"entry_date"`
	Type      EntryType  `json:"type" validate:"required,oneof=note attempt observation result"`
	Title     string     `json:"title" validate:"max=200"`
	Content   string     `json:"content" validate:"required,min=1,max=10000"`
	Images    []string   `json:"images" validate:"dive,max=500"`
}

type UpdateEntryRequest struct {
	EntryDate *time.Time `json:"entry_date"`
	Type      *EntryType `json:"type" validate:"omitempty,oneof=note attempt observation result"`
	Title     *string    `json:"title" validate:"omitempty,max=200"`
	Content   *string    `json:"content" validate:"omitempty,min=1,max=10000"`
	Images    *[]string  `json:"images"`
}

type GraduateRequest struct {
	RecipeID uint `json:"recipe_id" validate:"required"`
}

// Gallery

type CreateGalleryImageRequest struct {
	Image     string          `json:"image" validate:"required,max=500"`
	Title     string          `json:"title" validate:"max=200"`
	Caption   string          `json:"caption" validate:"max=1000"`
	Category  GalleryCategory `json:"category" validate:"required,oneof=garden flock"`
	SortOrder int             `json:"sort_order" validate:"min=0"`
	Published *bool           `json:"published"`
}

type UpdateGalleryImageRequest struct {
	Image     *string          `json:"image" validate:"omitempty,min=1,max=500"`
	Title     *string          `json:"title" validate:"omitempty,max=200"`
	Caption   *string          `json:"caption" validate:"omitempty,max=1000"`
	Category  *GalleryCategory `json:"category" validate:"omitempty,oneof=garden flock"`
	SortOrder *int             `json:"sort_order" validate:"omitempty,min=0"`
	Published *bool            `json:"published"`
}

type ReorderRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,required"`
}

// Collections

type CreateCollectionRequest struct {
	Slug        string `json:"slug" validate:"omitempty,slug,max=200"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Image       string `json:"image" validate:"max=500"`
	Published   bool   `json:"published"`
	Featured    bool   `json:"featured"`
}

type UpdateCollectionRequest struct {
	Slug        *string `json:"slug" validate:"omitempty,slug,max=200"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	Published   *bool   `json:"published"`
	Featured    *bool   `json:"featured"`
}

type AddCollectionRecipeRequest struct {
	RecipeID  uint `json:"recipe_id" validate:"required"`
	SortOrder int  `json:"sort_order" validate:"min=0"`
}

type AddCollectionWineRequest struct {
	WineID    uint `json:"wine_id" validate:"required"`
	SortOrder int  `json:"sort_order" validate:"min=0"`
}

type UpdateMemberOrderRequest struct {
	SortOrder int `json:"sort_order" validate:"min=0"`
}

// Tags

type CreateTagRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=100"`
	Slug string  `json:"slug" validate:"omitempty,slug,max=100"`
	Type TagType `json:"type" validate:"omitempty,oneof=recipe wine both"`
}

type UpdateTagRequest struct {
	Name *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Slug *string  `json:"slug" validate:"omitempty,slug,max=100"`
	Type *TagType `json:"type" validate:"omitempty,oneof=recipe wine both"`
}

// Subscribers

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type UnsubscribeRequest struct {
	Token string `json:"token" validate:"required,uuid4"`
}

// Comments and ratings

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	ParentID *uint  `json:"parent_id"`
}

type RateRecipeRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"max=2000"`
}

// Studio

type FamilyCount struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
}

type DashboardStats struct {
	Recipes     FamilyCount     `json:"recipes"`
	Wines       FamilyCount     `json:"wines"`
	Experiments FamilyCount     `json:"experiments"`
	Collections FamilyCount     `json:"collections"`
	Gallery     FamilyCount     `json:"gallery"`
	Subscribers SubscriberStats `json:"subscribers"`
	Comments    int64           `json:"comments"`
}

type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}
