package main

import (
	"log"

	"brews_backend/internal/controller"
	"brews_backend/pkg/config"
	"brews_backend/pkg/database"
	"brews_backend/pkg/email"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Printf("Migration warning: %v", err)
	}

	var notifier email.Notifier
	if cfg.Email.ResendAPIKey != "" {
		notifier = email.NewService(cfg.Email)
	} else {
		log.Println("RESEND_API_KEY not set, email notifications disabled")
		notifier = email.Noop{}
	}

	app := controller.NewApp(db, cfg, notifier)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
