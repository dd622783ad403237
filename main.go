package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/igcsenotes/site/internal/config"
	"github.com/igcsenotes/site/internal/content"
	"github.com/igcsenotes/site/internal/database"
	"github.com/igcsenotes/site/internal/notify"
	"github.com/igcsenotes/site/internal/seo"
	"github.com/igcsenotes/site/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var store database.Store
	switch cfg.Database.Driver {
	case "postgres":
		store, err = database.NewPostgres(cfg.Database.URL)
	default:
		store, err = database.New(cfg.Database.Path)
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()
	log.Infof("Using %s submission store", store.DatabaseType())

	cms := content.New(content.Config{
		Endpoint:   cfg.Content.Endpoint,
		Dataset:    cfg.Content.Dataset,
		APIVersion: cfg.Content.APIVersion,
		AuthToken:  cfg.Content.AuthToken,
		Timeout:    time.Duration(cfg.Content.Timeout) * time.Second,
	})
	defer cms.Close()

	mailer := notify.New(notify.Config{
		APIURL:      cfg.Mail.APIURL,
		APIKey:      cfg.Mail.APIKey,
		FromEmail:   cfg.Mail.FromEmail,
		NotifyEmail: cfg.Mail.NotifyEmail,
	})
	if !mailer.Enabled() {
		log.Warn("Email notifications disabled: no API key or notify address configured")
	}

	srv, err := server.New(cms, store, mailer, server.Options{
		BaseURL:        cfg.Site.BaseURL,
		DefaultOGImage: cfg.Site.DefaultOGImage,
		FollowPolicy:   seo.ParseFollowPolicy(cfg.Site.FollowPolicy),
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
