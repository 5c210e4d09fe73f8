package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secretsapp/auth"
	"secretsapp/models"
)

const contextUserKey = "currentUser"

// RequireAuth gates the protected routes: no session-bound user means a
// redirect to the login page, never an error body.
func (a *App) RequireAuth(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, a.path("/login"))
		c.Abort()
		return
	}
	c.Set(contextUserKey, user)
	c.Next()
}

// sessionUser returns the user placed in the context by RequireAuth. Only
// meaningful on routes behind the gate.
func sessionUser(c *gin.Context) *models.User {
	v, _ := c.Get(contextUserKey)
	user, _ := v.(*models.User)
	return user
}
