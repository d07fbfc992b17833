package catalogue

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"grocery.GO/config"
)

// Generate builds the full product catalogue for one store: one entry per
// ingredient, three brand-tier references each. Pure over its inputs and the
// reference tables; persisting the result is the caller's business. rng is
// injected so tests can replay a fixed sequence.
func Generate(storeName string, ingredients []Ingredient, rng *rand.Rand) (Catalogue, error) {
	ref := config.Reference
	if ref == nil {
		return nil, fmt.Errorf("reference data not loaded")
	}
	multiplier, ok := ref.StoreIndex[storeName]
	if !ok {
		return nil, &MissingReferenceError{Kind: "store", Key: storeName}
	}

	cat := make(Catalogue, 0, len(ingredients))
	for _, ing := range ingredients {
		category, ok := ref.Categories[ing.Category]
		if !ok {
			return nil, &MissingReferenceError{Kind: "category", Key: ing.Category}
		}
		sizes, ok := ref.PackageSizes[ing.Unit]
		if !ok {
			return nil, &MissingReferenceError{Kind: "unit", Key: ing.Unit}
		}

		entry := Entry{ProductName: ing.Name, Category: ing.Category}
		for tier := 0; tier < TierCount; tier++ {
			// Each tier draws its own noise: different brand, different price.
			storeNoise := multiplier * (0.95 + rng.Float64()*0.05)
			varianceTerm := category.BasePricePerUnit * category.Variance * rng.Float64()
			tierFraction := float64(tier+1) / 3
			perKg := storeNoise*category.BasePricePerUnit + varianceTerm*tierFraction

			qty := sizes[rng.Intn(len(sizes))]
			price, err := packagePrice(perKg, ing.Unit, qty)
			if err != nil {
				return nil, err
			}
			entry.ProductReferences[tier] = ProductReference{
				Label:           ing.Name + " " + tierLabels[tier],
				PackageQuantity: qty,
				Unit:            ing.Unit,
				UnitPrice:       price,
			}
		}
		cat = append(cat, entry)
	}
	return cat, nil
}

// packagePrice converts a per-kilogram-equivalent price into the price of one
// package of the given unit and size. The three rules are exhaustive over the
// closed unit set.
func packagePrice(perKg float64, unit string, qty float64) (float64, error) {
	var p float64
	switch unit {
	case config.UnitGram:
		p = perKg / 1000 * qty
	case config.UnitLitre:
		p = perKg * qty
	case config.UnitPiece:
		p = perKg / 3
	default:
		return 0, &UnsupportedUnitError{Unit: unit}
	}
	return roundPrice(p), nil
}

// roundPrice rounds to two decimals, half away from zero (currency rounding).
func roundPrice(p float64) float64 {
	f, _ := decimal.NewFromFloat(p).Round(2).Float64()
	return f
}
