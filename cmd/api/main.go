package main

import (
	"log"

	"github.com/geekysharma31/closet-api/internal/config"
	"github.com/geekysharma31/closet-api/internal/db"
	"github.com/geekysharma31/closet-api/internal/mail"
	"github.com/geekysharma31/closet-api/internal/model"
	"github.com/geekysharma31/closet-api/internal/repository"
	"github.com/geekysharma31/closet-api/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	var sender mail.Sender
	if cfg.SMTPConfigured() {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		log.Printf("smtp not configured; enquiries will fail until SMTP_HOST and SMTP_USER are set")
	}

	var repo repository.ItemRepository
	if cfg.DBConfigured() {
		repo = repository.NewItemRepository(nil)
	} else {
		log.Printf("database not configured; using in-memory item store")
		repo = repository.NewMemoryRepository()
	}

	srv := server.New(repo, cfg, sender)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	// Connect in the background so a slow or absent database never blocks
	// startup; item routes return 500 until the connection lands.
	if cfg.DBConfigured() {
		go func() {
			conn, err := db.Connect(cfg)
			if err != nil {
				log.Printf("db connect error: %v", err)
				return
			}
			if err := conn.AutoMigrate(&model.Item{}); err != nil {
				log.Printf("auto migrate error: %v", err)
			}
			srv.SetDB(conn)
		}()
	}

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
