package domain

import (
	"encoding/json"
	"math"
)

// Reference records: filter vocabulary and display metadata. None of these
// are ever mutated.

type Category struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Designer struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Quote       string `json:"quote"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Alt         string `json:"alt"`
}

// PriceRange is a half-open interval [Min, Max). Max may be math.Inf(1) for
// the open-ended "more than X" range.
type PriceRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Contains reports whether a price falls inside the range (inclusive lower
// bound, exclusive upper bound).
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price < r.Max
}

// MarshalJSON emits an open-ended upper bound as null, since IEEE infinity
// has no JSON representation.
func (r PriceRange) MarshalJSON() ([]byte, error) {
	type alias struct {
		Label string   `json:"label"`
		Min   float64  `json:"min"`
		Max   *float64 `json:"max"`
	}
	a := alias{Label: r.Label, Min: r.Min}
	if !math.IsInf(r.Max, 1) {
		max := r.Max
		a.Max = &max
	}
	return json.Marshal(a)
}

// UnmarshalJSON reads a null or absent upper bound back as infinity.
func (r *PriceRange) UnmarshalJSON(data []byte) error {
	type alias struct {
		Label string   `json:"label"`
		Min   float64  `json:"min"`
		Max   *float64 `json:"max"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	r.Label = a.Label
	r.Min = a.Min
	if a.Max == nil {
		r.Max = math.Inf(1)
	} else {
		r.Max = *a.Max
	}
	return nil
}
