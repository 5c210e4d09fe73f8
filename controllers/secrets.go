package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlaceholderSecret renders whenever the user has never submitted a secret
// or submitted an empty one.
const PlaceholderSecret = "Jack Bauer is my hero."

func (a *App) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"basePath": a.BasePath})
}

func (a *App) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"basePath": a.BasePath})
}

func (a *App) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"basePath": a.BasePath})
}

func (a *App) SubmitPage(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", gin.H{"basePath": a.BasePath})
}

// Secrets renders the protected resource. The secret is re-fetched from the
// store on every request; the session copy is identity only.
func (a *App) Secrets(c *gin.Context) {
	user := sessionUser(c)

	fresh, err := a.Users.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		log.Printf("Fetching secret for %q: %v", user.Email, err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	secret := PlaceholderSecret
	if fresh.Secret != nil && *fresh.Secret != "" {
		secret = *fresh.Secret
	}

	c.HTML(http.StatusOK, "secrets.html", gin.H{"secret": secret, "basePath": a.BasePath})
}

// Submit persists the submitted secret, replacing any prior value.
func (a *App) Submit(c *gin.Context) {
	user := sessionUser(c)
	secret := c.PostForm("secret")

	if err := a.Users.UpdateSecret(c.Request.Context(), user.Email, secret); err != nil {
		log.Printf("Updating secret for %q: %v", user.Email, err)
	}

	c.Redirect(http.StatusFound, a.path("/secrets"))
}
