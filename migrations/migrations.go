package migrations

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/danielbonkowsky/sharayunet/models"
)

// A migration checks its own precondition and applies nothing when the
// schema already satisfies it, so the whole list can run on every start.
type migration struct {
	Name string
	Run  func(db *gorm.DB) error
}

var list = []migration{
	{Name: "create-base-tables", Run: createBaseTables},
	{Name: "add-media-type-columns", Run: addMediaTypeColumns},
	{Name: "backfill-primary-media", Run: backfillPrimaryMedia},
}

// Run applies all migrations in order. Ordering matters: the backfill
// writes the media_type column the previous step adds.
func Run(db *gorm.DB) error {
	for _, m := range list {
		if err := m.Run(db); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		log.Printf("migration %s applied", m.Name)
	}
	return nil
}

func createBaseTables(db *gorm.DB) error {
	return db.AutoMigrate(&models.Post{}, &models.PostMedia{}, &models.Comment{})
}

func addMediaTypeColumns(db *gorm.DB) error {
	targets := []interface{}{&models.Post{}, &models.PostMedia{}}
	for _, model := range targets {
		if db.Migrator().HasColumn(model, "media_type") {
			continue
		}
		if err := db.Migrator().AddColumn(model, "media_type"); err != nil {
			return err
		}
	}
	return nil
}

// backfillPrimaryMedia gives every legacy post exactly one media row
// built from its own primary fields, so readers can rely on post_images
// alone.
func backfillPrimaryMedia(db *gorm.DB) error {
	var orphans []models.Post
	err := db.
		Where("id NOT IN (?)", db.Model(&models.PostMedia{}).Select("post_id")).
		Find(&orphans).Error
	if err != nil {
		return err
	}

	for _, post := range orphans {
		item := models.PostMedia{
			PostID:    post.ID,
			MediaURL:  post.MediaURL,
			PublicID:  post.MediaPublicID,
			MediaType: post.MediaType,
			Position:  0,
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
