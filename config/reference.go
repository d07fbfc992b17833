package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// Measurement units — closed set, matches the ingredient enum.
const (
	UnitGram  = "g"   // mass, packaged in grams
	UnitLitre = "L"   // volume, packaged in litres
	UnitPiece = "pcs" // count
)

// CategoryReference holds per-category pricing inputs: the base price for one
// kilogram-equivalent and the fractional spread around it.
type CategoryReference struct {
	BasePricePerUnit float64 `mapstructure:"base_price_per_unit" json:"base_price_per_unit"`
	Variance         float64 `mapstructure:"variance" json:"variance"`
}

// ReferenceData is the three lookup tables consumed by catalogue generation.
// The shape is contract; the values are deployment data.
type ReferenceData struct {
	Categories   map[string]CategoryReference `mapstructure:"categories" json:"categories"`
	StoreIndex   map[string]float64           `mapstructure:"store_index" json:"store_index"`
	PackageSizes map[string][]float64         `mapstructure:"package_sizes" json:"package_sizes"`
}

var (
	// Reference is the process-wide reference data, set by LoadReferenceData.
	Reference     *ReferenceData
	referenceOnce sync.Once
)

// defaultReferenceData returns the compiled-in tables.
func defaultReferenceData() *ReferenceData {
	return &ReferenceData{
		Categories: map[string]CategoryReference{
			"Fruits & Légumes":          {BasePricePerUnit: 4.15, Variance: 0.5},
			"Boulangerie & Pâtisseries": {BasePricePerUnit: 1.74, Variance: 0.1},
			"Produits laitiers":         {BasePricePerUnit: 7.12, Variance: 0.3},
			"Viandes & Poissons":        {BasePricePerUnit: 13.97, Variance: 0.2},
			"Epices":                    {BasePricePerUnit: 17.53, Variance: 2},
			"Epicerie Salée":            {BasePricePerUnit: 5.45, Variance: 0.12},
			"Epicerie Sucrée":           {BasePricePerUnit: 5.45, Variance: 0.12},
			"Pâtes, Riz & Céréales":     {BasePricePerUnit: 1.09, Variance: 1},
			"Autre":                     {BasePricePerUnit: 4.5, Variance: 0.1},
		},
		StoreIndex: map[string]float64{
			"Lidl Saint-Omer":                    0.95,
			"E.Leclerc Carvin":                   0.975,
			"Cc Auchan Flandre Littoral":         1,
			"Carrefour Drive Lens Maës":          1.025,
			"MONOPRIX (MONOPRIX LILLE TANNEURS)": 1.05,
		},
		PackageSizes: map[string][]float64{
			UnitGram:  {150, 500, 1000},
			UnitLitre: {0.25, 0.5, 1, 2},
			UnitPiece: {1, 6, 12},
		},
	}
}

// LoadReferenceData initializes the global Reference tables: compiled-in
// defaults, optionally overridden by the JSON file named in REFERENCE_FILE.
func LoadReferenceData() error {
	var err error
	referenceOnce.Do(func() {
		data := defaultReferenceData()
		if file := os.Getenv("REFERENCE_FILE"); file != "" {
			err = applyReferenceFile(data, file)
			if err != nil {
				return
			}
			log.Printf("Reference data loaded from %s", file)
		}
		if err = data.Validate(); err != nil {
			return
		}
		Reference = data
	})
	return err
}

func applyReferenceFile(data *ReferenceData, file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reference file: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("reference file: %w", err)
	}
	// Decode onto the defaults so a partial file only overrides what it names.
	if err := mapstructure.Decode(m, data); err != nil {
		return fmt.Errorf("reference file: %w", err)
	}
	return nil
}

// Validate checks the table shapes: positive base prices and multipliers,
// non-negative variances, non-empty positive package-size brackets keyed by
// known units.
func (d *ReferenceData) Validate() error {
	if len(d.Categories) == 0 {
		return fmt.Errorf("reference data: no categories")
	}
	for name, c := range d.Categories {
		if c.BasePricePerUnit <= 0 {
			return fmt.Errorf("reference data: category %q: base_price_per_unit must be > 0", name)
		}
		if c.Variance < 0 {
			return fmt.Errorf("reference data: category %q: variance must be >= 0", name)
		}
	}
	if len(d.StoreIndex) == 0 {
		return fmt.Errorf("reference data: no store index")
	}
	for name, m := range d.StoreIndex {
		if m <= 0 {
			return fmt.Errorf("reference data: store %q: multiplier must be > 0", name)
		}
	}
	if len(d.PackageSizes) == 0 {
		return fmt.Errorf("reference data: no package sizes")
	}
	for unit, sizes := range d.PackageSizes {
		switch unit {
		case UnitGram, UnitLitre, UnitPiece:
		default:
			return fmt.Errorf("reference data: unknown unit %q in package_sizes", unit)
		}
		if len(sizes) == 0 {
			return fmt.Errorf("reference data: unit %q: empty package size list", unit)
		}
		for _, s := range sizes {
			if s <= 0 {
				return fmt.Errorf("reference data: unit %q: package size must be > 0", unit)
			}
		}
	}
	return nil
}

// SetReferenceForTesting replaces the global tables (for tests).
func SetReferenceForTesting(d *ReferenceData) {
	referenceOnce.Do(func() {})
	Reference = d
}
