package models

import (
	"fmt"
	"strings"
)

// Weight is a selectable size tier in grams. Base prices are quoted for the
// quarter-kilogram tier, so every unit price is a whole multiple of the base.
type Weight int

// Selectable tiers
const (
	WeightQuarterKilo Weight = 250
	WeightHalfKilo    Weight = 500
	WeightFullKilo    Weight = 1000
)

// ErrInvalidWeight is returned for weights outside the three fixed tiers.
var ErrInvalidWeight = fmt.Errorf("weight must be one of %d, %d or %d grams",
	WeightQuarterKilo, WeightHalfKilo, WeightFullKilo)

// Weights lists the tiers in display order.
func Weights() []Weight {
	return []Weight{WeightQuarterKilo, WeightHalfKilo, WeightFullKilo}
}

// ParseWeight validates a gram value against the fixed tiers.
func ParseWeight(grams int) (Weight, error) {
	switch Weight(grams) {
	case WeightQuarterKilo, WeightHalfKilo, WeightFullKilo:
		return Weight(grams), nil
	}
	return 0, ErrInvalidWeight
}

// IsValid reports whether w is one of the fixed tiers.
func (w Weight) IsValid() bool {
	_, err := ParseWeight(int(w))
	return err == nil
}

// quarterUnits is the price multiplier relative to the 250g base tier.
func (w Weight) quarterUnits() int64 {
	return int64(w) / int64(WeightQuarterKilo)
}

// Label returns the display label, e.g. "250Gms" or "1kg".
func (w Weight) Label() string {
	if w < WeightFullKilo {
		return fmt.Sprintf("%dGms", int(w))
	}
	return "1kg"
}

// Slug returns the id suffix for the tier, e.g. "250g" or "1kg".
func (w Weight) Slug() string {
	if w < WeightFullKilo {
		return fmt.Sprintf("%dg", int(w))
	}
	return "1kg"
}

// UnitPrice computes the price of one unit at the selected tier from the
// per-quarter-kilogram base price. Multipliers are always 1, 2 or 4.
func UnitPrice(basePrice int64, w Weight) int64 {
	return basePrice * w.quarterUnits()
}

// LineTotal computes the total for quantity units at the selected tier.
func LineTotal(basePrice int64, w Weight, quantity int) int64 {
	return UnitPrice(basePrice, w) * int64(quantity)
}

// ItemID derives the natural cart key for a product/tier combination:
// lowercased name with whitespace collapsed to hyphens, plus the tier slug.
// The same product added at the same tier merges onto one cart line.
func ItemID(name string, w Weight) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return slug + "-" + w.Slug()
}
