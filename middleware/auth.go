package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielbonkowsky/sharayunet/config"
	"github.com/danielbonkowsky/sharayunet/utils"
)

// RequireAdmin guards admin-only routes. Anonymous or expired sessions
// are sent to the login page with a notice; no detail about the
// attempted resource leaks into the response.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || utils.ParseSessionToken(cfg.SecretKey, token) != nil {
			utils.SetFlash(c, "Please log in to access that page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsLoggedIn reports whether the request carries a valid admin session.
func IsLoggedIn(c *gin.Context, cfg *config.Config) bool {
	token, err := c.Cookie(utils.SessionCookieName)
	if err != nil {
		return false
	}
	return utils.ParseSessionToken(cfg.SecretKey, token) == nil
}
