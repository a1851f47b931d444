package config

import (
	"fmt"
	"log"

	"tastings-with-tay/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
	return db
}

// Migrate creates or updates every table the API reads and writes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// auth
		&models.User{},
		&models.Session{},

		// content
		&models.Tag{},
		&models.Recipe{},
		&models.Wine{},
		&models.Experiment{},
		&models.ExperimentEntry{},
		&models.GalleryImage{},
		&models.Collection{},
		&models.CollectionRecipe{},
		&models.CollectionWine{},

		// community
		&models.RecipeComment{},
		&models.WineComment{},
		&models.RecipeRating{},
		&models.RecipeFavorite{},
		&models.WineFavorite{},
		&models.Subscriber{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
