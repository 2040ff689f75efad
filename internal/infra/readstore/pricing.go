package readstore

import (
	"context"
	"time"

	"travel-booking/internal/domain/pricing"
	"travel-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PricingReadStore assembles the read-only pricing configuration snapshots
// the calculators consume. Configuration rows are owned by the admin
// surface; this core only reads them.
type PricingReadStore struct {
	pool *pgxpool.Pool
}

func NewPricingReadStore(pool *pgxpool.Pool) *PricingReadStore {
	return &PricingReadStore{pool: pool}
}

func (s *PricingReadStore) TourConfig(ctx context.Context, productID uuid.UUID, scopeID string) (*pricing.TourConfig, error) {
	const variantQuery = `
SELECT base_price_cents
FROM tour_variant_pricing
WHERE tour_id = $1 AND scope_id = $2 AND is_active`

	var baseCents int64
	if err := s.pool.QueryRow(ctx, variantQuery, productID, scopeID).Scan(&baseCents); err != nil {
		return nil, infra.WrapRepoErr("failed to get tour variant pricing", err)
	}

	const factorsQuery = `
SELECT age_group, factor
FROM tour_age_factors
WHERE tour_id = $1`

	rows, err := s.pool.Query(ctx, factorsQuery, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get tour age factors", err)
	}
	defer rows.Close()

	factors := make(map[pricing.AgeGroup]float64)
	for rows.Next() {
		var group string
		var factor float64
		if err := rows.Scan(&group, &factor); err != nil {
			return nil, infra.WrapRepoErr("failed to scan age factor", err)
		}
		factors[pricing.AgeGroup(group)] = factor
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate age factors", err)
	}

	options, err := s.options(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &pricing.TourConfig{
		BasePrice:  pricing.NewMoney(baseCents),
		AgeFactors: factors,
		Options:    options,
	}, nil
}

func (s *PricingReadStore) EventConfig(ctx context.Context, productID uuid.UUID, scopeID string) (*pricing.EventConfig, error) {
	const sectionQuery = `
SELECT base_price_cents, ticket_type_modifier, performance_at
FROM event_section_pricing
WHERE event_id = $1 AND scope_id = $2 AND is_active`

	var (
		baseCents     int64
		modifier      float64
		performanceAt time.Time
	)
	if err := s.pool.QueryRow(ctx, sectionQuery, productID, scopeID).Scan(&baseCents, &modifier, &performanceAt); err != nil {
		return nil, infra.WrapRepoErr("failed to get event section pricing", err)
	}

	rules, err := s.rules(ctx, productID)
	if err != nil {
		return nil, err
	}
	fees, err := s.fees(ctx, productID)
	if err != nil {
		return nil, err
	}
	options, err := s.options(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &pricing.EventConfig{
		SectionBasePrice:   pricing.NewMoney(baseCents),
		TicketTypeModifier: modifier,
		PerformanceAt:      performanceAt,
		Rules:              rules,
		Fees:               fees,
		Options:            options,
	}, nil
}

func (s *PricingReadStore) TransferConfig(ctx context.Context, productID uuid.UUID, scopeID string) (*pricing.TransferConfig, error) {
	const routeQuery = `
SELECT base_price_cents, peak_surcharge_pct, midnight_surcharge_pct, round_trip_enabled, round_trip_discount_pct
FROM transfer_route_pricing
WHERE route_id = $1 AND scope_id = $2 AND is_active`

	var (
		baseCents            int64
		peakPct, midnightPct float64
		roundTripEnabled     bool
		roundTripPct         float64
	)
	err := s.pool.QueryRow(ctx, routeQuery, productID, scopeID).
		Scan(&baseCents, &peakPct, &midnightPct, &roundTripEnabled, &roundTripPct)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get transfer route pricing", err)
	}

	options, err := s.options(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &pricing.TransferConfig{
		BasePrice:            pricing.NewMoney(baseCents),
		PeakSurchargePct:     peakPct,
		MidnightSurchargePct: midnightPct,
		RoundTripEnabled:     roundTripEnabled,
		RoundTripDiscountPct: roundTripPct,
		Options:              options,
	}, nil
}

func (s *PricingReadStore) options(ctx context.Context, productID uuid.UUID) (map[uuid.UUID]pricing.Option, error) {
	const query = `
SELECT id, name, kind, price_cents, percent
FROM product_options
WHERE product_id = $1 AND is_active`

	rows, err := s.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product options", err)
	}
	defer rows.Close()

	options := make(map[uuid.UUID]pricing.Option)
	for rows.Next() {
		var (
			id         uuid.UUID
			name, kind string
			priceCents int64
			percent    float64
		)
		if err := rows.Scan(&id, &name, &kind, &priceCents, &percent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product option", err)
		}
		options[id] = pricing.Option{
			ID:      id,
			Name:    name,
			Kind:    pricing.CalcKind(kind),
			Price:   pricing.NewMoney(priceCents),
			Percent: percent,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product options", err)
	}
	return options, nil
}

func (s *PricingReadStore) rules(ctx context.Context, productID uuid.UUID) ([]pricing.Rule, error) {
	const query = `
SELECT id, name, kind, percent, amount_cents, priority, valid_from, valid_until, min_amount_cents, max_amount_cents, is_active
FROM pricing_rules
WHERE product_id = $1`

	rows, err := s.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		var (
			r           pricing.Rule
			kind        string
			amountCents int64
			minCents    *int64
			maxCents    *int64
		)
		err := rows.Scan(&r.ID, &r.Name, &kind, &r.Percent, &amountCents, &r.Priority,
			&r.ValidFrom, &r.ValidUntil, &minCents, &maxCents, &r.Active)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		r.Kind = pricing.CalcKind(kind)
		r.Amount = pricing.NewMoney(amountCents)
		r.MinAmount = optMoney(minCents)
		r.MaxAmount = optMoney(maxCents)
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rules", err)
	}
	return rules, nil
}

func (s *PricingReadStore) fees(ctx context.Context, productID uuid.UUID) ([]pricing.Fee, error) {
	const query = `
SELECT id, name, kind, percent, amount_cents, min_amount_cents, max_fee_cents, is_active
FROM fee_rules
WHERE product_id = $1`

	rows, err := s.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get fee rules", err)
	}
	defer rows.Close()

	var fees []pricing.Fee
	for rows.Next() {
		var (
			f           pricing.Fee
			kind        string
			amountCents int64
			minCents    *int64
			maxCents    *int64
		)
		err := rows.Scan(&f.ID, &f.Name, &kind, &f.Percent, &amountCents, &minCents, &maxCents, &f.Active)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan fee rule", err)
		}
		f.Kind = pricing.CalcKind(kind)
		f.Amount = pricing.NewMoney(amountCents)
		f.MinAmount = optMoney(minCents)
		f.MaxFee = optMoney(maxCents)
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate fee rules", err)
	}
	return fees, nil
}

func optMoney(cents *int64) *pricing.Money {
	if cents == nil {
		return nil
	}
	m := pricing.NewMoney(*cents)
	return &m
}
