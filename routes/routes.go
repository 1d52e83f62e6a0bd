package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielbonkowsky/sharayunet/config"
	"github.com/danielbonkowsky/sharayunet/controllers"
	"github.com/danielbonkowsky/sharayunet/middleware"
	"github.com/danielbonkowsky/sharayunet/storage"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, media storage.MediaStore, cfg *config.Config) {
	// Initialize controllers
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db)
	authController := controllers.NewAuthController(cfg)
	uploadController := controllers.NewUploadController(db, media, cfg)

	// Public routes
	r.GET("/", postController.ListPosts)
	r.GET("/photo/:id", postController.GetPost)
	r.POST("/photo/:id/comment", commentController.AddComment)
	r.GET("/login", authController.LoginForm)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	// Admin routes
	admin := r.Group("/")
	admin.Use(middleware.RequireAdmin(cfg))
	{
		admin.GET("/upload", uploadController.UploadForm)
		admin.POST("/upload", uploadController.CreatePost)
		admin.POST("/delete/:id", uploadController.DeletePost)
	}
}
