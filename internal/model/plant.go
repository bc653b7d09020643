package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownPlant      = errors.New("model: unknown plant")
	ErrInvalidDifficulty = errors.New("model: invalid plant difficulty")
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// PlantOption is an entry of the static plant catalog.
type PlantOption struct {
	ID          string
	Name        string
	Type        string
	Description string
	Image       string
	Difficulty  Difficulty
}

func (p PlantOption) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: plant id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("model: plant name is required")
	}
	if !p.Difficulty.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, p.Difficulty)
	}
	return nil
}

// Plant is the selected plant of a garden session. GrowthStage is derived from the
// task counts and is recomputed by the session on every mutation.
type Plant struct {
	ID          string
	Name        string
	Type        string
	Image       string
	GrowthStage float64
}

var catalog = []PlantOption{
	{
		ID:          "sunflower",
		Name:        "Sunny Sunflower",
		Type:        "Flower",
		Description: "Bright and cheerful, grows tall with your achievements!",
		Image:       "assets/sunflower.jpg",
		Difficulty:  DifficultyEasy,
	},
	{
		ID:          "tomato",
		Name:        "Cherry Tomato",
		Type:        "Vegetable",
		Description: "Produces sweet rewards as you complete tasks!",
		Image:       "assets/tomato.jpg",
		Difficulty:  DifficultyMedium,
	},
	{
		ID:          "basil",
		Name:        "Sweet Basil",
		Type:        "Herb",
		Description: "Aromatic and useful, perfect for steady productivity!",
		Image:       "assets/basil.jpg",
		Difficulty:  DifficultyEasy,
	},
	{
		ID:          "rose",
		Name:        "Garden Rose",
		Type:        "Flower",
		Description: "Elegant and beautiful, blooms magnificently when nurtured!",
		Image:       "assets/rose.jpg",
		Difficulty:  DifficultyHard,
	},
}

// Catalog returns a copy of the plant catalog in display order.
func Catalog() []PlantOption {
	out := make([]PlantOption, len(catalog))
	copy(out, catalog)
	return out
}

func LookupPlant(id string) (PlantOption, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, p := range catalog {
		if p.ID == key {
			return p, nil
		}
	}
	return PlantOption{}, fmt.Errorf("%w: %q", ErrUnknownPlant, id)
}

// NewPlant starts a fresh selection from a catalog entry with no growth.
func NewPlant(opt PlantOption) Plant {
	return Plant{
		ID:    opt.ID,
		Name:  opt.Name,
		Type:  opt.Type,
		Image: opt.Image,
	}
}

// Chores are the quick-add tasks offered by the /chore command.
var Chores = []string{
	"Make the bed",
	"Drink a glass of water",
	"Tidy up the desk",
	"Take a 10-minute walk",
	"Reply to one pending message",
	"Stretch for 5 minutes",
}
