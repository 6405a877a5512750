// seed inserts sample catalog products for local development and testing.
// Safe to run repeatedly; existing products are left untouched.
package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/resolutionofarevolution/conversion-engine-api/internal/catalog/domain"
	catalogrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/catalog/repository"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/config"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products := []catalogdomain.Product{
		{Name: "Paracetamol 500mg", Price: decimal.NewFromInt(50), Stock: 500},
		{Name: "Cough Syrup 100ml", Price: decimal.NewFromFloat(120.50), Stock: 200},
		{Name: "Vitamin C Tablets", Price: decimal.NewFromInt(80), Stock: 350},
		{Name: "Hand Sanitizer 250ml", Price: decimal.NewFromInt(99), Stock: 150},
	}

	repo := catalogrepo.NewPostgresRepository(conn)
	for i := range products {
		p := &products[i]
		existing, err := repo.GetByName(ctx, p.Name)
		if err != nil {
			log.Fatalf("seed: lookup %q: %v", p.Name, err)
		}
		if existing != nil {
			log.Printf("seed: product %q already exists (id=%d), skipping", p.Name, existing.ID)
			continue
		}
		if err := repo.Create(ctx, p); err != nil {
			log.Fatalf("seed: create %q: %v", p.Name, err)
		}
		log.Printf("seed: created product %q (id=%d)", p.Name, p.ID)
	}

	log.Println("seed: done")
}
