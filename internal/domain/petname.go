package domain

import "time"

// DefaultRecentLimit is how many records the recent-names listing returns by default.
const DefaultRecentLimit = 10

// GeneratedName is a persisted generated pet name.
type GeneratedName struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	AnimalType *string   `json:"animal_type"`
	Count      int       `json:"count"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewGeneratedName builds an unsaved record. An empty animalType is stored as null.
func NewGeneratedName(name, animalType string, count int) GeneratedName {
	rec := GeneratedName{Name: name, Count: count}
	if animalType != "" {
		at := animalType
		rec.AnimalType = &at
	}
	return rec
}

// Location is a named point weather can be looked up for.
type Location struct {
	City      string
	Latitude  float64
	Longitude float64
}
