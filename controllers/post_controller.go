package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielbonkowsky/sharayunet/models"
	"github.com/danielbonkowsky/sharayunet/utils"
)

type PostController struct {
	DB *gorm.DB
}

type FeedPost struct {
	ID         uint      `json:"id"`
	MediaURL   string    `json:"media_url"`
	MediaType  string    `json:"media_type"`
	Caption    *string   `json:"caption"`
	CreatedAt  time.Time `json:"created_at"`
	MediaCount int64     `json:"media_count"`
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// ListPosts returns the whole feed, newest first, each post annotated
// with its media count. No pagination exists.
func (pc *PostController) ListPosts(c *gin.Context) {
	var posts []FeedPost
	err := pc.DB.Model(&models.Post{}).
		Select("photos.id, photos.media_url, photos.media_type, photos.caption, photos.created_at, COUNT(post_images.id) AS media_count").
		Joins("LEFT JOIN post_images ON post_images.post_id = photos.id").
		Group("photos.id").
		Order("photos.created_at DESC, photos.id DESC").
		Scan(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":  posts,
		"notice": utils.TakeFlash(c),
	})
}

// GetPost returns one post with its ordered media items and comments.
// Posts created before multi-media support may have no media rows yet;
// those fall back to the post's own primary fields as a single item.
func (pc *PostController) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var post models.Post
	if err := pc.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}

	media, err := pc.loadMedia(&post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load media"})
		return
	}

	var comments []models.Comment
	err = pc.DB.Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"media":    media,
		"comments": comments,
		"notice":   utils.TakeFlash(c),
	})
}

func (pc *PostController) loadMedia(post *models.Post) ([]models.PostMedia, error) {
	var media []models.PostMedia
	err := pc.DB.Where("post_id = ?", post.ID).
		Order("position ASC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}

	if len(media) == 0 {
		media = []models.PostMedia{{
			PostID:    post.ID,
			MediaURL:  post.MediaURL,
			PublicID:  post.MediaPublicID,
			MediaType: post.MediaType,
			Position:  0,
		}}
	}
	return media, nil
}
