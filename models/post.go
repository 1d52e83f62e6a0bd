package models

import (
	"time"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Post is one gallery entry. The media fields mirror the first attached
// media item so feeds can render without joining post_images; rows
// predating multi-media support carry only these fields until the
// backfill migration runs.
type Post struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MediaURL      string    `gorm:"not null" json:"media_url"`
	MediaPublicID string    `gorm:"not null" json:"-"`
	MediaType     string    `gorm:"size:10;not null;default:image" json:"media_type"`
	Caption       *string   `json:"caption"`
	CreatedAt     time.Time `json:"created_at"`

	Media    []PostMedia `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "photos"
}
