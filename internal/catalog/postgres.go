package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipcalc/internal/shipping"
)

// Postgres is a shipping.Catalog backed by the relational catalog schema.
// Both matcher queries push the nullable-bound predicates and the sort order
// into SQL, mirroring the in-memory store's semantics exactly.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

const fixedOptionsQuery = `
SELECT o.id, c.category_name, s.service_name, o.option_name,
       o.total_price, o.base_price, o.packaging_price,
       o.packaging_name, o.packaging_details, o.requires_special_packaging,
       o.max_weight_kg, o.max_size_cm, o.max_length_cm, o.max_width_cm,
       o.max_height_cm, o.max_thickness_cm, o.min_length_cm, o.min_width_cm
FROM shipping_options o
JOIN shipping_services s ON s.id = o.service_id
JOIN service_categories c ON c.id = s.category_id
WHERE o.status = 'active' AND s.status = 'active' AND c.status = 'active'
  AND (o.max_length_cm IS NULL OR o.max_length_cm >= $1)
  AND (o.max_width_cm IS NULL OR o.max_width_cm >= $2)
  AND (o.max_height_cm IS NULL OR o.max_height_cm >= $3)
  AND (o.max_thickness_cm IS NULL OR o.max_thickness_cm >= $3)
  AND (o.max_size_cm IS NULL OR o.max_size_cm >= $4)
  AND (o.min_length_cm IS NULL OR o.min_length_cm <= $1)
  AND (o.min_width_cm IS NULL OR o.min_width_cm <= $2)
ORDER BY c.category_name ASC, o.total_price ASC, o.sort_order ASC`

func (p *Postgres) FixedOptions(ctx context.Context, dims shipping.Dimensions) ([]shipping.Option, error) {
	rows, err := p.db.Query(ctx, fixedOptionsQuery, dims.Length, dims.Width, dims.Height, dims.SizeSum())
	if err != nil {
		return nil, fmt.Errorf("query fixed options: %w", err)
	}
	defer rows.Close()

	var out []shipping.Option
	for rows.Next() {
		opt := shipping.Option{PriceType: shipping.PriceTypeFixed}
		if err := rows.Scan(
			&opt.ID, &opt.CategoryName, &opt.ServiceName, &opt.OptionName,
			&opt.TotalPrice, &opt.BasePrice, &opt.PackagingPrice,
			&opt.PackagingName, &opt.PackagingDetails, &opt.RequiresSpecialPackaging,
			&opt.MaxWeightKg, &opt.MaxSizeCm, &opt.MaxLengthCm, &opt.MaxWidthCm,
			&opt.MaxHeightCm, &opt.MaxThicknessCm, &opt.MinLengthCm, &opt.MinWidthCm,
		); err != nil {
			return nil, fmt.Errorf("scan fixed option: %w", err)
		}
		out = append(out, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read fixed options: %w", err)
	}
	return out, nil
}

const tieredOptionsQuery = `
SELECT t.id, c.category_name, s.service_name, t.tier_name, t.price,
       t.max_weight_kg, t.max_size_cm
FROM size_tiers t
JOIN shipping_services s ON s.id = t.service_id
JOIN service_categories c ON c.id = s.category_id
WHERE s.status = 'active' AND c.status = 'active'
  AND (t.max_size_cm IS NULL OR t.max_size_cm >= $1)
  AND (t.effective_from IS NULL OR t.effective_from <= $2)
  AND (t.effective_until IS NULL OR t.effective_until >= $2)
ORDER BY c.category_name ASC, t.price ASC`

func (p *Postgres) TieredOptions(ctx context.Context, dims shipping.Dimensions, now time.Time) ([]shipping.Option, error) {
	rows, err := p.db.Query(ctx, tieredOptionsQuery, dims.SizeSum(), now)
	if err != nil {
		return nil, fmt.Errorf("query size tiers: %w", err)
	}
	defer rows.Close()

	var out []shipping.Option
	for rows.Next() {
		var (
			id       int
			tierName string
			price    int
			opt      = shipping.Option{PriceType: shipping.PriceTypeTiered}
		)
		if err := rows.Scan(
			&id, &opt.CategoryName, &opt.ServiceName, &tierName, &price,
			&opt.MaxWeightKg, &opt.MaxSizeCm,
		); err != nil {
			return nil, fmt.Errorf("scan size tier: %w", err)
		}
		zero := 0
		opt.ID = id + TieredIDOffset
		opt.OptionName = fmt.Sprintf("%s (%s)", opt.ServiceName, tierName)
		opt.TotalPrice = price
		opt.BasePrice = &price
		opt.PackagingPrice = &zero
		opt.SizeTierName = &tierName
		out = append(out, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read size tiers: %w", err)
	}
	return out, nil
}
