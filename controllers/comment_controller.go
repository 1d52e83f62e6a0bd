package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielbonkowsky/sharayunet/models"
	"github.com/danielbonkowsky/sharayunet/utils"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// AddComment appends a comment to an existing post. Blank fields are a
// UX redirect, not an error; a missing post is a 404.
func (cc *CommentController) AddComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	body := strings.TrimSpace(c.PostForm("body"))
	if name == "" || body == "" {
		utils.SetFlash(c, "Both name and comment are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/photo/%d", id))
		return
	}

	var post models.Post
	if err := cc.DB.Select("id").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		Name:   name,
		Body:   body,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save comment"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/photo/%d", id))
}
