package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielbonkowsky/sharayunet/config"
	"github.com/danielbonkowsky/sharayunet/middleware"
	"github.com/danielbonkowsky/sharayunet/utils"
)

type AuthController struct {
	Config *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Config: cfg}
}

const sessionCookieMaxAge = 24 * 60 * 60

func (ac *AuthController) LoginForm(c *gin.Context) {
	if middleware.IsLoggedIn(c, ac.Config) {
		c.Redirect(http.StatusFound, "/upload")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notice": utils.TakeFlash(c)})
}

// Login verifies the admin credentials and grants a signed session.
// Both the username mismatch and the password mismatch produce the same
// message.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username != ac.Config.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(ac.Config.AdminPasswordHash), []byte(password)) != nil {
		utils.SetFlash(c, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := utils.GenerateSessionToken(ac.Config.SecretKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetCookie(utils.SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	utils.SetFlash(c, "Welcome back!")
	c.Redirect(http.StatusFound, "/upload")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	utils.SetFlash(c, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}
