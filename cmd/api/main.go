package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"shipcalc/internal/catalog"
	"shipcalc/internal/config"
	"shipcalc/internal/db"
	"shipcalc/internal/server"
	"shipcalc/internal/shipping"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var store shipping.Catalog
	switch cfg.Catalog.Source {
	case config.CatalogPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := db.NewPool(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect db: %v", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("database ping failed: %v", err)
		}
		store = catalog.NewPostgres(pool)
	case config.CatalogMemory:
		store = catalog.NewMemory(catalog.Seed())
	default:
		log.Fatalf("unknown catalog source %q", cfg.Catalog.Source)
	}

	calc := shipping.NewCalculator(store)
	handler := server.New(calc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.WithFields(log.Fields{"addr": addr, "catalog": cfg.Catalog.Source}).Info("api listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
