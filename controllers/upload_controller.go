package controllers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielbonkowsky/sharayunet/config"
	"github.com/danielbonkowsky/sharayunet/models"
	"github.com/danielbonkowsky/sharayunet/storage"
	"github.com/danielbonkowsky/sharayunet/utils"
)

type UploadController struct {
	DB     *gorm.DB
	Media  storage.MediaStore
	Config *config.Config
}

type uploadedItem struct {
	URL       string
	PublicID  string
	MediaType string
}

func NewUploadController(db *gorm.DB, media storage.MediaStore, cfg *config.Config) *UploadController {
	return &UploadController{
		DB:     db,
		Media:  media,
		Config: cfg,
	}
}

func (uc *UploadController) UploadForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notice": utils.TakeFlash(c)})
}

// CreatePost uploads every file to the media host and then commits the
// post plus its media rows in one transaction. The database insert only
// happens after all uploads succeed, so a delegate failure leaves no
// partial post behind.
func (uc *UploadController) CreatePost(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := nonEmptyFiles(form.File["photo"])
	if len(files) == 0 {
		utils.SetFlash(c, "Please select a photo to upload.")
		c.Redirect(http.StatusFound, "/upload")
		return
	}

	caption := strings.TrimSpace(c.PostForm("caption"))

	var items []uploadedItem
	for _, header := range files {
		item, err := uc.uploadFile(c, header)
		if err != nil {
			log.Printf("media upload failed for %s: %v", header.Filename, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload media"})
			return
		}
		items = append(items, item)
	}

	if err := uc.insertPost(items, caption); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save post"})
		return
	}

	utils.SetFlash(c, "Photo uploaded successfully!")
	c.Redirect(http.StatusFound, "/")
}

// DeletePost destroys each media object at the host, then removes the
// post and its dependent rows. Destroys are best effort: a failed
// destroy is logged and the row delete proceeds, since a leaked remote
// object is preferable to a post pointing at destroyed media.
func (uc *UploadController) DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var post models.Post
	if err := uc.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}

	var media []models.PostMedia
	if err := uc.DB.Where("post_id = ?", post.ID).Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load media"})
		return
	}
	if len(media) == 0 {
		media = []models.PostMedia{{
			PostID:    post.ID,
			PublicID:  post.MediaPublicID,
			MediaType: post.MediaType,
		}}
	}

	for _, item := range media {
		if err := uc.Media.Destroy(c.Request.Context(), item.PublicID, item.MediaType); err != nil {
			log.Printf("media destroy failed for %s: %v", item.PublicID, err)
		}
	}

	tx := uc.DB.Begin()
	if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}
	if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostMedia{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}
	if err := tx.Delete(&post).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	utils.SetFlash(c, "Photo deleted.")
	c.Redirect(http.StatusFound, "/")
}

func (uc *UploadController) uploadFile(c *gin.Context, header *multipart.FileHeader) (uploadedItem, error) {
	file, err := header.Open()
	if err != nil {
		return uploadedItem{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return uploadedItem{}, err
	}

	contentType := header.Header.Get("Content-Type")
	mediaType := utils.DetectMediaType(contentType, header.Filename)

	url, publicID, err := uc.Media.Upload(c.Request.Context(), data, header.Filename, contentType, mediaType)
	if err != nil {
		return uploadedItem{}, err
	}

	return uploadedItem{
		URL:       url,
		PublicID:  publicID,
		MediaType: mediaType,
	}, nil
}

// insertPost writes one photos row, using the first item as the primary
// media, and one post_images row per item with positions 0..N-1.
func (uc *UploadController) insertPost(items []uploadedItem, caption string) error {
	var captionPtr *string
	if caption != "" {
		captionPtr = &caption
	}

	tx := uc.DB.Begin()

	post := models.Post{
		MediaURL:      items[0].URL,
		MediaPublicID: items[0].PublicID,
		MediaType:     items[0].MediaType,
		Caption:       captionPtr,
	}
	if err := tx.Create(&post).Error; err != nil {
		tx.Rollback()
		return err
	}

	for position, item := range items {
		row := models.PostMedia{
			PostID:    post.ID,
			MediaURL:  item.URL,
			PublicID:  item.PublicID,
			MediaType: item.MediaType,
			Position:  position,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

func nonEmptyFiles(headers []*multipart.FileHeader) []*multipart.FileHeader {
	var files []*multipart.FileHeader
	for _, header := range headers {
		if header.Filename == "" || header.Size == 0 {
			continue
		}
		files = append(files, header)
	}
	return files
}
