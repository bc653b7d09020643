package model

import (
	"errors"
	"testing"
)

func TestCatalogEntriesAreValid(t *testing.T) {
	list := Catalog()
	if len(list) != 4 {
		t.Fatalf("expected 4 catalog entries, got %d", len(list))
	}
	seen := make(map[string]bool)
	for _, p := range list {
		if err := p.Validate(); err != nil {
			t.Fatalf("catalog entry %q invalid: %v", p.ID, err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate catalog id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	list := Catalog()
	list[0].Name = "mutated"
	if Catalog()[0].Name == "mutated" {
		t.Fatal("expected catalog to be immutable")
	}
}

func TestLookupPlant(t *testing.T) {
	p, err := LookupPlant(" Rose ")
	if err != nil {
		t.Fatalf("lookup rose: %v", err)
	}
	if p.Name != "Garden Rose" || p.Difficulty != DifficultyHard {
		t.Fatalf("unexpected plant: %+v", p)
	}

	_, err = LookupPlant("cactus")
	if !errors.Is(err, ErrUnknownPlant) {
		t.Fatalf("expected ErrUnknownPlant, got %v", err)
	}
}

func TestNewPlantStartsWithoutGrowth(t *testing.T) {
	opt, err := LookupPlant("basil")
	if err != nil {
		t.Fatalf("lookup basil: %v", err)
	}
	p := NewPlant(opt)
	if p.ID != "basil" || p.Type != "Herb" || p.GrowthStage != 0 {
		t.Fatalf("unexpected plant: %+v", p)
	}
}

func TestDifficultyIsValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if !d.IsValid() {
			t.Fatalf("expected valid difficulty: %q", d)
		}
	}
	err := PlantOption{ID: "x", Name: "x", Difficulty: "Extreme"}.Validate()
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
}
