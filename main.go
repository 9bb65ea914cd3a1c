// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/fkuhne/full-stack-react-site/auth"
	"github.com/fkuhne/full-stack-react-site/cliparse"
	"github.com/fkuhne/full-stack-react-site/db"
	"github.com/fkuhne/full-stack-react-site/middleware"
	"github.com/fkuhne/full-stack-react-site/models"
	"github.com/fkuhne/full-stack-react-site/router"
	"github.com/fkuhne/full-stack-react-site/store"
)

func main() {
	// Best effort; config can come from real env vars or flags instead
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Acquire the store before accepting any request; a failure here is
	// fatal, the server never starts half-connected
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Article store ready", "type", cfg.DatabaseType)

	// Pick the token verifier
	var verifier auth.Verifier
	if cfg.VerifyURL != "" {
		verifier = auth.NewRemoteVerifier(cfg.VerifyURL)
		slog.Info("Using remote identity verifier", "endpoint", cfg.VerifyURL)
	} else {
		verifier = auth.NewHMACVerifier(cfg.TokenSalt)
		slog.Info("Using local HMAC identity verifier")
	}

	// Create router
	mux := router.NewRouter(st, verifier, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore connects, migrates and seeds the configured article store.
func openStore(cfg cliparse.Config) (store.ArticleStore, error) {
	if cfg.DatabaseType == "memory" {
		st := store.NewMemoryStore()
		for _, name := range db.SeedArticleNames {
			if err := st.CreateArticle(context.Background(), &models.Article{Name: name}); err != nil {
				return nil, err
			}
		}
		return st, nil
	}

	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, err
	}
	if err := db.SeedArticles(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return store.NewSQLStore(conn), nil
}
