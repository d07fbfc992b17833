package catalogue

// Brand tiers. Tier order is structural (economy → standard → premium);
// each tier draws its own variance noise, so economy is usually but not
// guaranteed to be the cheapest shelf price.
const (
	TierEconomy = iota
	TierStandard
	TierPremium
	TierCount
)

// tierLabels carries the brand suffix appended to the ingredient name.
var tierLabels = [TierCount]string{"Marque repère", "classique", "Louis Vuitton"}

// TierLabel returns the brand suffix for a tier index.
func TierLabel(tier int) string {
	return tierLabels[tier]
}

// Ingredient is the generator's input shape: supplied externally, read-only.
type Ingredient struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

// ProductReference is one purchasable package of a brand-tier product.
type ProductReference struct {
	Label           string  `json:"label"`
	PackageQuantity float64 `json:"packageQuantity"`
	Unit            string  `json:"unit"`
	UnitPrice       float64 `json:"unitPrice"`
}

// Entry is the catalogue row for one ingredient: exactly one reference per
// brand tier, in tier order.
type Entry struct {
	ProductName       string                      `json:"productName"`
	Category          string                      `json:"category"`
	ProductReferences [TierCount]ProductReference `json:"productReferences"`
}

// Catalogue is one store's generated product list, one entry per ingredient,
// in the generator's input order.
type Catalogue []Entry
