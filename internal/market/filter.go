package market

import (
	"math"
	"strings"
	"time"

	"agromarket/internal/models"
)

// CategoryAll selects every category.
const CategoryAll = "All"

// Filter is the set of active catalog search criteria. The zero value is the
// default configuration: every listing passes except expired ones.
type Filter struct {
	Category    string  // "" or "All" means no category restriction
	Query       string  // case-insensitive substring of name or location
	OrganicOnly bool    // keep only organic listings
	MinPrice    float64 // inclusive lower bound, 0 means unbounded
	MaxPrice    float64 // inclusive upper bound, 0 means unbounded
	ShowExpired bool    // include listings whose expiration date has passed
}

// DefaultFilter returns the configuration applied when every control is
// reset.
func DefaultFilter() Filter {
	return Filter{Category: CategoryAll}
}

// Apply returns the listings matching every active criterion, preserving the
// relative order of the input. The input slice is never mutated. An empty
// catalog yields an empty result.
func (f Filter) Apply(products []models.Product, today time.Time) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p, today) {
			result = append(result, p)
		}
	}
	return result
}

// Matches reports whether a single listing satisfies the conjunction of all
// five filter predicates.
func (f Filter) Matches(p models.Product, today time.Time) bool {
	return f.matchesCategory(p) &&
		f.matchesQuery(p) &&
		f.matchesOrganic(p) &&
		f.matchesPrice(p) &&
		f.matchesSpoilage(p, today)
}

func (f Filter) matchesCategory(p models.Product) bool {
	return f.Category == "" || f.Category == CategoryAll || p.Category == f.Category
}

func (f Filter) matchesQuery(p models.Product) bool {
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}

func (f Filter) matchesOrganic(p models.Product) bool {
	return !f.OrganicOnly || p.Organic
}

func (f Filter) matchesPrice(p models.Product) bool {
	max := f.MaxPrice
	if max == 0 {
		max = math.Inf(1)
	}
	return p.Price >= f.MinPrice && p.Price <= max
}

// matchesSpoilage hides expired listings unless ShowExpired is set. Listings
// without an expiration date always pass.
func (f Filter) matchesSpoilage(p models.Product, today time.Time) bool {
	if f.ShowExpired || p.ExpirationDate == "" {
		return true
	}
	return EvaluateSpoilage(p.ExpirationDate, today) != SpoilageExpired
}
