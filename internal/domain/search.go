package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortName      SortKey = "name"
)

// SearchFilters is a transient per-query object. The Categories field
// distinguishes nil from empty: nil means no category filter, an empty
// non-nil list means the shopper deselected everything and nothing matches.
type SearchFilters struct {
	Query       string
	Categories  []string
	PriceRanges []PriceRange
	Sort        SortKey
}

// FilterProducts applies the filter stages in their fixed order: category,
// price range, free text. Each stage narrows the previous one's output and
// none of them reorders.
func FilterProducts(list []Product, f SearchFilters) []Product {
	result := make([]Product, len(list))
	copy(result, list)

	if f.Categories != nil {
		if len(f.Categories) == 0 {
			return []Product{}
		}
		result = keep(result, func(p Product) bool {
			for _, c := range f.Categories {
				if p.Category == c {
					return true
				}
			}
			return false
		})
	}

	if len(f.PriceRanges) > 0 {
		result = keep(result, func(p Product) bool {
			for _, r := range f.PriceRanges {
				if r.Contains(p.Price) {
					return true
				}
			}
			return false
		})
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		q = strings.ToLower(q)
		result = keep(result, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q) ||
				strings.Contains(strings.ToLower(p.Category), q)
		})
	}

	return result
}

// SortProducts orders a product list in place by the given key. SortNone
// leaves the incoming (catalog) order alone. Name order is locale-aware.
func SortProducts(list []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case SortName:
		c := collate.New(language.Spanish)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) < 0
		})
	}
}

// SearchProducts runs filtering then sorting, the whole engine in one call.
func SearchProducts(list []Product, f SearchFilters) []Product {
	result := FilterProducts(list, f)
	SortProducts(result, f.Sort)
	return result
}

func keep(list []Product, pred func(Product) bool) []Product {
	out := list[:0]
	for _, p := range list {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
