package config

import "testing"

func TestDefaultReferenceData_Valid(t *testing.T) {
	d := defaultReferenceData()
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, ok := d.Categories["Fruits & Légumes"]; !ok {
		t.Error("missing default category Fruits & Légumes")
	}
	if got := d.StoreIndex["Cc Auchan Flandre Littoral"]; got != 1 {
		t.Errorf("Auchan multiplier = %v, want 1", got)
	}
	for _, unit := range []string{UnitGram, UnitLitre, UnitPiece} {
		if len(d.PackageSizes[unit]) == 0 {
			t.Errorf("unit %q: no package sizes", unit)
		}
	}
}

func TestValidate_BadBasePrice(t *testing.T) {
	d := defaultReferenceData()
	d.Categories["Broken"] = CategoryReference{BasePricePerUnit: 0, Variance: 0.1}
	if err := d.Validate(); err == nil {
		t.Error("Validate: want error for base_price_per_unit = 0")
	}
}

func TestValidate_NegativeVariance(t *testing.T) {
	d := defaultReferenceData()
	d.Categories["Broken"] = CategoryReference{BasePricePerUnit: 1, Variance: -0.1}
	if err := d.Validate(); err == nil {
		t.Error("Validate: want error for negative variance")
	}
}

func TestValidate_BadMultiplier(t *testing.T) {
	d := defaultReferenceData()
	d.StoreIndex["Broken"] = 0
	if err := d.Validate(); err == nil {
		t.Error("Validate: want error for multiplier = 0")
	}
}

func TestValidate_UnknownUnit(t *testing.T) {
	d := defaultReferenceData()
	d.PackageSizes["oz"] = []float64{1}
	if err := d.Validate(); err == nil {
		t.Error("Validate: want error for unknown unit")
	}
}

func TestValidate_EmptySizes(t *testing.T) {
	d := defaultReferenceData()
	d.PackageSizes[UnitGram] = nil
	if err := d.Validate(); err == nil {
		t.Error("Validate: want error for empty size list")
	}
}
