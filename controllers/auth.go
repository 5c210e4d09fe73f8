package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"secretsapp/auth"
	"secretsapp/store"
)

// Login runs the local strategy against the submitted form. Every failure
// mode lands back on the login page; only the log distinguishes a missing
// user, a wrong password, and a verifier that could not complete.
func (a *App) Login(c *gin.Context) {
	creds := auth.Credentials{
		Email:    c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	user, err := a.Local.Verify(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, auth.ErrVerification) {
			log.Printf("Error comparing passwords for %q: %v", creds.Email, err)
		} else {
			log.Printf("Login failed for %q: %v", creds.Email, err)
		}
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	if err := auth.Establish(c, user); err != nil {
		log.Printf("Establishing session for %q: %v", user.Email, err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	c.Redirect(http.StatusFound, a.path("/secrets"))
}

// Register creates a local account. An email that already exists, whether
// found up front or hit on the unique index by a concurrent registration,
// redirects to login instead of creating a second row.
func (a *App) Register(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	_, err := a.Users.FindByEmail(c.Request.Context(), email)
	if err == nil {
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Printf("Checking existing account for %q: %v", email, err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	hash, err := auth.HashPassword(password, a.BcryptCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.Redirect(http.StatusFound, a.path("/register"))
		return
	}

	user, err := a.Users.Create(c.Request.Context(), email, hash)
	if err != nil {
		log.Printf("Creating account for %q: %v", email, err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	if err := auth.Establish(c, user); err != nil {
		log.Printf("Establishing session for %q: %v", user.Email, err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	c.Redirect(http.StatusFound, a.path("/secrets"))
}

// Logout terminates the session. A session store failure means the browser
// may still be authenticated, so it is an error response, not a redirect.
func (a *App) Logout(c *gin.Context) {
	if err := auth.Terminate(c); err != nil {
		log.Printf("Terminating session: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, a.path("/"))
}

// GoogleLogin starts the federated flow.
func (a *App) GoogleLogin(c *gin.Context) {
	state, err := auth.RandomState()
	if err != nil {
		log.Printf("Generating oauth state: %v", err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}
	if err := auth.SetOAuthState(c, state); err != nil {
		log.Printf("Saving oauth state: %v", err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}
	c.Redirect(http.StatusFound, a.Google.AuthCodeURL(state))
}

// GoogleCallback finishes the federated flow: validate the state, exchange
// the code for an email claim, resolve it through the federated strategy.
func (a *App) GoogleCallback(c *gin.Context) {
	want, ok := auth.ConsumeOAuthState(c)
	if !ok || want == "" || c.Query("state") != want {
		log.Printf("OAuth state mismatch")
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	claim, err := a.Google.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		log.Printf("Federated login failed: %v", err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	user, err := a.Federated.Verify(c.Request.Context(), auth.Credentials{Email: claim.Email})
	if err != nil {
		log.Printf("Resolving federated identity %q: %v", claim.Email, err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	if err := auth.Establish(c, user); err != nil {
		log.Printf("Establishing session for %q: %v", user.Email, err)
		c.Redirect(http.StatusFound, a.path("/login"))
		return
	}

	c.Redirect(http.StatusFound, a.path("/secrets"))
}
