package usecase

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	priceActivityColumn = "Actividad"
	priceValueColumn    = "Valor"
)

// PriceResolver reads fees from the price collection of the record store.
//
// A category is first translated through the configured activity map (exact
// key, then key contained in the category), then matched against the
// "Actividad" column: exact match first, then containment.
type PriceResolver struct {
	records    interfaces.IRecordStore
	sourceID   string
	collection string
	activities map[string]string
	timeout    time.Duration
}

var _ interfaces.IPriceCatalog = (*PriceResolver)(nil)

func NewPriceResolver(records interfaces.IRecordStore, sourceID, collection string, activities map[string]string, timeout time.Duration) *PriceResolver {
	return &PriceResolver{
		records:    records,
		sourceID:   sourceID,
		collection: collection,
		activities: activities,
		timeout:    timeout,
	}
}

func (r *PriceResolver) PriceFor(ctx context.Context, category string) (decimal.Decimal, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return decimal.Zero, fmt.Errorf("%w: empty category", interfaces.ErrPriceNotFound)
	}
	activity := r.activityFor(category)

	callCtx, cancel := external(ctx, r.timeout)
	defer cancel()
	rows, err := r.records.ReadRows(callCtx, r.sourceID, r.collection)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrRecordStoreUnavailable, err)
	}

	row, ok := matchPriceRow(rows, activity)
	if !ok {
		log.Printf("[price][resolver] no price row category=%q activity=%q", category, activity)
		return decimal.Zero, fmt.Errorf("%w: %q", interfaces.ErrPriceNotFound, category)
	}
	raw, _ := row.Lookup(priceValueColumn)
	price, err := ParsePrice(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

// activityFor walks the map keys in sorted order so equal-length matches
// always resolve to the lexicographically smallest key.
func (r *PriceResolver) activityFor(category string) string {
	keys := slices.Sorted(maps.Keys(r.activities))
	for _, key := range keys {
		if strings.EqualFold(strings.TrimSpace(key), category) {
			return r.activities[key]
		}
	}
	lower := strings.ToLower(category)
	best, bestLen := "", 0
	for _, key := range keys {
		k := strings.ToLower(strings.TrimSpace(key))
		if k != "" && strings.Contains(lower, k) && len(k) > bestLen {
			best, bestLen = r.activities[key], len(k)
		}
	}
	if best != "" {
		return best
	}
	return category
}

func matchPriceRow(rows []entities.Record, activity string) (entities.Record, bool) {
	want := strings.ToLower(strings.TrimSpace(activity))
	for _, row := range rows {
		if v, _ := row.Lookup(priceActivityColumn); strings.ToLower(v) == want {
			return row, true
		}
	}
	for _, row := range rows {
		if v, _ := row.Lookup(priceActivityColumn); v != "" && strings.Contains(strings.ToLower(v), want) {
			return row, true
		}
	}
	return nil, false
}

// ParsePrice reads a price cell such as "$ 15,000.50". Commas are thousands
// separators; the result must be positive.
func ParsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", " ", "", ",", "", "\u00a0", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", interfaces.ErrInvalidPrice)
	}
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", interfaces.ErrInvalidPrice, raw)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", interfaces.ErrInvalidPrice, price)
	}
	return price, nil
}
