package model

import "time"

// LogEntry is a single logged food or meal. Entries are immutable once
// written: the only mutation the system performs is deletion by ID.
type LogEntry struct {
	ID        string
	Name      string
	FoodID    string
	Calories  int
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	Quantity  float64
	Unit      string
	CreatedAt time.Time
	Notes     string
}

// CatalogueItem is immutable reference data describing a food's nutrition
// per its default quantity. The log only ever reads from the catalogue.
type CatalogueItem struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Calories        int      `yaml:"calories"`
	ProteinG        float64  `yaml:"protein_g"`
	CarbsG          float64  `yaml:"carbs_g"`
	FatG            float64  `yaml:"fat_g"`
	DefaultQuantity float64  `yaml:"default_quantity"`
	Unit            string   `yaml:"unit"`
	Tags            []string `yaml:"tags"`
	Locales         []string `yaml:"locales"`
}

type Totals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}
