package models

import (
	"time"

	"gorm.io/datatypes"
)

type ExperimentStatus string

const (
	StatusInProgress ExperimentStatus = "in_progress"
	StatusPaused     ExperimentStatus = "paused"
	StatusCompleted  ExperimentStatus = "completed"
	StatusGraduated  ExperimentStatus = "graduated"
)

type EntryType string

const (
	EntryNote        EntryType = "note"
	EntryAttempt     EntryType = "attempt"
	EntryObservation EntryType = "observation"
	EntryResult      EntryType = "result"
)

type Experiment struct {
	ID                uint              `json:"id" gorm:"primarykey"`
	Slug              string            `json:"slug" gorm:"uniqueIndex;not null"`
	Title             string            `json:"title" gorm:"not null"`
	Description       string            `json:"description" gorm:"type:text"`
	Status            ExperimentStatus  `json:"status" gorm:"default:'in_progress';index"`
	Hypothesis        string            `json:"hypothesis" gorm:"type:text"`
	Result            string            `json:"result" gorm:"type:text"`
	Image             string            `json:"image"`
	Published         bool              `json:"published" gorm:"default:false;index"`
	Featured          bool              `json:"featured" gorm:"default:false"`
	GraduatedRecipeID *uint             `json:"graduated_recipe_id"`
	GraduatedRecipe   *Recipe           `json:"graduated_recipe,omitempty" gorm:"foreignKey:GraduatedRecipeID;constraint:OnDelete:SET NULL"`
	Tags              []Tag             `json:"tags" gorm:"many2many:experiment_tags;constraint:OnDelete:CASCADE"`
	Entries           []ExperimentEntry `json:"entries,omitempty" gorm:"foreignKey:ExperimentID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// ExperimentEntry is one timestamped journal entry of an experiment.
type ExperimentEntry struct {
	ID           uint                        `json:"id" gorm:"primarykey"`
	ExperimentID uint                        `json:"experiment_id" gorm:"not null;index"`
	EntryDate    time.Time                   `json:"entry_date"`
	Type         EntryType                   `json:"type" gorm:"default:'note'"`
	Title        string                      `json:"title"`
	Content      string                      `json:"content" gorm:"type:text"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}
