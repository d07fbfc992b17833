package basket

import (
	"fmt"
	"math"
	"sync"

	"grocery.GO/service/catalogue"
)

// ShoppingListItem is one requirement: an ingredient name and the amount
// needed in the ingredient's native unit.
type ShoppingListItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// StoreCatalogue pairs a store name with its decoded catalogue.
type StoreCatalogue struct {
	StoreName string
	Catalogue catalogue.Catalogue
}

// PricedLine is the cheapest way to cover one requirement at one store.
// Packages come in fixed sizes, so UnitsPurchased may cover more than asked.
type PricedLine struct {
	RequiredAmount float64                    `json:"requiredAmount"`
	Reference      catalogue.ProductReference `json:"reference"`
	UnitsPurchased uint64                     `json:"unitsPurchased"`
	TotalCost      float64                    `json:"totalCost"`
}

// InvalidRequestError rejects malformed input before any store data is read.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// Resolve computes, per store and per shopping-list item, the cheapest tier
// covering the required amount. Matching is by product name, never by
// position: a store that does not carry an ingredient simply omits that line
// (callers diff requested vs returned keys to detect gaps). Stores are
// independent and read-only, so each is resolved in its own goroutine.
func Resolve(list []ShoppingListItem, stores []StoreCatalogue) (map[string]map[string]PricedLine, error) {
	if len(list) == 0 {
		return nil, &InvalidRequestError{Field: "shoppingList", Reason: "must not be empty"}
	}
	for i, item := range list {
		if item.Name == "" {
			return nil, &InvalidRequestError{Field: fmt.Sprintf("shoppingList[%d].name", i), Reason: "must not be empty"}
		}
		if item.Amount <= 0 {
			return nil, &InvalidRequestError{Field: fmt.Sprintf("shoppingList[%d].amount", i), Reason: "must be > 0"}
		}
	}

	result := make(map[string]map[string]PricedLine, len(stores))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, st := range stores {
		wg.Add(1)
		go func(st StoreCatalogue) {
			defer wg.Done()
			lines := resolveStore(list, st.Catalogue)
			mu.Lock()
			result[st.StoreName] = lines
			mu.Unlock()
		}(st)
	}
	wg.Wait()
	return result, nil
}

// resolveStore prices one shopping list against one catalogue. The name
// index is built once, so the whole store is O(catalogue + list).
func resolveStore(list []ShoppingListItem, cat catalogue.Catalogue) map[string]PricedLine {
	index := make(map[string]catalogue.Entry, len(cat))
	for _, entry := range cat {
		index[entry.ProductName] = entry
	}

	lines := make(map[string]PricedLine, len(list))
	for _, item := range list {
		entry, ok := index[item.Name]
		if !ok {
			continue // store does not carry it
		}
		var best PricedLine
		have := false
		for _, ref := range entry.ProductReferences {
			if ref.PackageQuantity <= 0 {
				continue // malformed persisted data
			}
			units := unitsFor(item.Amount, ref.PackageQuantity)
			cost := float64(units) * ref.UnitPrice
			// Strictly cheaper only: on a tie the earlier tier keeps the line.
			if !have || cost < best.TotalCost {
				best = PricedLine{
					RequiredAmount: item.Amount,
					Reference:      ref,
					UnitsPurchased: units,
					TotalCost:      cost,
				}
				have = true
			}
		}
		if have {
			lines[item.Name] = best
		}
	}
	return lines
}

// unitsFor returns how many packages cover the required amount, at least 1.
func unitsFor(required, packageQty float64) uint64 {
	units := uint64(math.Ceil(required / packageQty))
	if units < 1 {
		units = 1
	}
	return units
}
