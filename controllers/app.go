package controllers

import (
	"github.com/gin-gonic/gin"

	"secretsapp/auth"
	"secretsapp/store"
)

// App carries the injected collaborators for every handler. Nothing here is
// package-global; main wires one App per process.
type App struct {
	Users      *store.UserStore
	Local      *auth.Local
	Federated  *auth.Federated
	Google     *auth.Google
	BasePath   string
	BcryptCost int
}

// Routes mounts the full HTTP surface under the base path.
func (a *App) Routes(r *gin.Engine) {
	g := r.Group(a.BasePath)

	g.GET("/", a.Home)
	g.GET("/login", a.LoginPage)
	g.GET("/register", a.RegisterPage)
	g.GET("/logout", a.Logout)
	g.POST("/login", a.Login)
	g.POST("/register", a.Register)
	g.GET("/auth/google", a.GoogleLogin)
	g.GET("/auth/google/secrets", a.GoogleCallback)

	protected := g.Group("")
	protected.Use(a.RequireAuth)
	protected.GET("/secrets", a.Secrets)
	protected.GET("/submit", a.SubmitPage)
	protected.POST("/submit", a.Submit)
}

func (a *App) path(p string) string {
	return a.BasePath + p
}
