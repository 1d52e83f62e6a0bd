package utils

import (
	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// SetFlash stores a one-shot notice shown after the next redirect.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 300, "/", "", false, true)
}

// TakeFlash returns the pending notice, if any, and clears it.
func TakeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}
