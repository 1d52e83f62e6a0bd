package models

import (
	"time"
)

// PostMedia is one image or video attached to a post. Position is a
// dense zero-based sequence per post, fixed at upload time.
type PostMedia struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	MediaURL  string    `gorm:"not null" json:"media_url"`
	PublicID  string    `gorm:"not null" json:"-"`
	MediaType string    `gorm:"size:10;not null;default:image" json:"media_type"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostMedia) TableName() string {
	return "post_images"
}
