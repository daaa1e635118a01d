// Command seed installs the shipping catalog schema and dataset into the
// Postgres instance named by database.url. The catalog is seeded once and
// rarely updated; the API only ever reads it.
package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"shipcalc/internal/catalog"
	"shipcalc/internal/config"
	"shipcalc/internal/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS service_categories (
    id INTEGER PRIMARY KEY,
    category_name TEXT NOT NULL,
    underlying_carrier TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE IF NOT EXISTS shipping_services (
    id INTEGER PRIMARY KEY,
    category_id INTEGER NOT NULL REFERENCES service_categories(id),
    service_name TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE IF NOT EXISTS shipping_options (
    id INTEGER PRIMARY KEY,
    service_id INTEGER NOT NULL REFERENCES shipping_services(id),
    option_name TEXT NOT NULL,
    total_price INTEGER NOT NULL,
    base_price INTEGER,
    packaging_price INTEGER,
    packaging_name TEXT,
    packaging_details TEXT,
    requires_special_packaging BOOLEAN NOT NULL DEFAULT FALSE,
    max_weight_kg NUMERIC,
    max_size_cm NUMERIC,
    max_length_cm NUMERIC,
    max_width_cm NUMERIC,
    max_height_cm NUMERIC,
    max_thickness_cm NUMERIC,
    min_length_cm NUMERIC,
    min_width_cm NUMERIC,
    sort_order INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE IF NOT EXISTS size_tiers (
    id INTEGER PRIMARY KEY,
    service_id INTEGER NOT NULL REFERENCES shipping_services(id),
    tier_name TEXT NOT NULL,
    price INTEGER NOT NULL,
    max_weight_kg NUMERIC,
    max_size_cm NUMERIC,
    effective_from TIMESTAMPTZ,
    effective_until TIMESTAMPTZ
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}
	log.Info("schema ready")

	ds := catalog.Seed()
	if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return insertDataset(ctx, tx, ds)
	}); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	log.WithFields(log.Fields{
		"categories": len(ds.Categories),
		"services":   len(ds.Services),
		"options":    len(ds.Options),
		"tiers":      len(ds.Tiers),
	}).Info("catalog seeded")
}

// insertDataset replaces any existing catalog rows with the dataset,
// child tables first to satisfy the foreign keys.
func insertDataset(ctx context.Context, tx pgx.Tx, ds catalog.Dataset) error {
	for _, stmt := range []string{
		`DELETE FROM size_tiers`,
		`DELETE FROM shipping_options`,
		`DELETE FROM shipping_services`,
		`DELETE FROM service_categories`,
	} {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	for _, c := range ds.Categories {
		if _, err := tx.Exec(ctx, `
			INSERT INTO service_categories (id, category_name, underlying_carrier, status)
			VALUES ($1, $2, $3, $4)`,
			c.ID, c.Name, c.UnderlyingCarrier, string(c.Status),
		); err != nil {
			return err
		}
	}

	for _, s := range ds.Services {
		if _, err := tx.Exec(ctx, `
			INSERT INTO shipping_services (id, category_id, service_name, status)
			VALUES ($1, $2, $3, $4)`,
			s.ID, s.CategoryID, s.Name, string(s.Status),
		); err != nil {
			return err
		}
	}

	for _, o := range ds.Options {
		if _, err := tx.Exec(ctx, `
			INSERT INTO shipping_options (
				id, service_id, option_name, total_price, base_price, packaging_price,
				packaging_name, packaging_details, requires_special_packaging,
				max_weight_kg, max_size_cm, max_length_cm, max_width_cm,
				max_height_cm, max_thickness_cm, min_length_cm, min_width_cm,
				sort_order, status
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9,
				$10, $11, $12, $13, $14, $15, $16, $17, $18, $19
			)`,
			o.ID, o.ServiceID, o.Name, o.TotalPrice, o.BasePrice, o.PackagingPrice,
			o.PackagingName, o.PackagingDetails, o.RequiresSpecialPackaging,
			o.MaxWeightKg, o.MaxSizeCm, o.MaxLengthCm, o.MaxWidthCm,
			o.MaxHeightCm, o.MaxThicknessCm, o.MinLengthCm, o.MinWidthCm,
			o.SortOrder, string(o.Status),
		); err != nil {
			return err
		}
	}

	for _, t := range ds.Tiers {
		if _, err := tx.Exec(ctx, `
			INSERT INTO size_tiers (
				id, service_id, tier_name, price, max_weight_kg, max_size_cm,
				effective_from, effective_until
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.ID, t.ServiceID, t.TierName, t.Price, t.MaxWeightKg, t.MaxSizeCm,
			t.EffectiveFrom, t.EffectiveUntil,
		); err != nil {
			return err
		}
	}
	return nil
}
