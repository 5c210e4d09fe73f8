package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"secretsapp/auth"
	"secretsapp/config"
	"secretsapp/controllers"
	"secretsapp/database"
	"secretsapp/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database! ", err)
	}
	log.Println("Database connection established")

	users := store.NewUserStore(db)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Use(sessions.Sessions("secretsapp_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	app := &controllers.App{
		Users:      users,
		Local:      &auth.Local{Users: users},
		Federated:  &auth.Federated{Users: users},
		Google:     auth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL),
		BasePath:   cfg.BasePath,
		BcryptCost: cfg.BcryptCost,
	}
	app.Routes(r)

	log.Printf("Server running on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Server terminated: ", err)
	}
}
