package catalog

import (
	"strings"

	"tripoptimizer/internal/domain/models"
)

// Entry is one candidate activity for a destination. Price is in minor
// currency units; Rating is 0 when unrated.
type Entry struct {
	Name            string
	Category        models.ActivityCategory
	Price           int64
	DurationMinutes int
	Rating          float64
}

var activityCatalog = map[string][]Entry{
	"paris": {
		{Name: "Louvre Museum", Category: models.CategoryCulture, Price: 2200, DurationMinutes: 180, Rating: 4.8},
		{Name: "Eiffel Tower Summit", Category: models.CategorySightseeing, Price: 2850, DurationMinutes: 120, Rating: 4.7},
		{Name: "Seine River Cruise", Category: models.CategorySightseeing, Price: 1800, DurationMinutes: 75, Rating: 4.5},
		{Name: "Montmartre Food Walk", Category: models.CategoryFood, Price: 9500, DurationMinutes: 210, Rating: 4.9},
		{Name: "Le Marais Pastry Tasting", Category: models.CategoryFood, Price: 4500, DurationMinutes: 120, Rating: 4.6},
		{Name: "Versailles Gardens Bike Tour", Category: models.CategoryOutdoor, Price: 7900, DurationMinutes: 300, Rating: 4.7},
		{Name: "Luxembourg Gardens Picnic", Category: models.CategoryOutdoor, Price: 1500, DurationMinutes: 90, Rating: 4.3},
		{Name: "Musee d'Orsay", Category: models.CategoryCulture, Price: 1600, DurationMinutes: 150, Rating: 4.7},
		{Name: "Latin Quarter Walking Tour", Category: models.CategorySightseeing, Price: 0, DurationMinutes: 120, Rating: 4.4},
	},
	"rome": {
		{Name: "Colosseum and Forum", Category: models.CategorySightseeing, Price: 2400, DurationMinutes: 180, Rating: 4.8},
		{Name: "Vatican Museums", Category: models.CategoryCulture, Price: 2600, DurationMinutes: 240, Rating: 4.8},
		{Name: "Trastevere Food Tour", Category: models.CategoryFood, Price: 8900, DurationMinutes: 210, Rating: 4.9},
		{Name: "Pasta Making Class", Category: models.CategoryFood, Price: 6500, DurationMinutes: 180, Rating: 4.7},
		{Name: "Appian Way Cycling", Category: models.CategoryOutdoor, Price: 5200, DurationMinutes: 240, Rating: 4.5},
		{Name: "Borghese Gallery", Category: models.CategoryCulture, Price: 1500, DurationMinutes: 120, Rating: 4.6},
		{Name: "Trevi Fountain Night Walk", Category: models.CategorySightseeing, Price: 0, DurationMinutes: 90, Rating: 4.3},
	},
	"tokyo": {
		{Name: "Senso-ji and Asakusa", Category: models.CategorySightseeing, Price: 0, DurationMinutes: 120, Rating: 4.6},
		{Name: "Tsukiji Outer Market Breakfast", Category: models.CategoryFood, Price: 5500, DurationMinutes: 150, Rating: 4.8},
		{Name: "Sushi Making Workshop", Category: models.CategoryFood, Price: 9800, DurationMinutes: 150, Rating: 4.7},
		{Name: "teamLab Planets", Category: models.CategoryCulture, Price: 3800, DurationMinutes: 120, Rating: 4.7},
		{Name: "Mount Takao Hike", Category: models.CategoryOutdoor, Price: 1200, DurationMinutes: 300, Rating: 4.5},
		{Name: "Shibuya Sky Deck", Category: models.CategorySightseeing, Price: 2500, DurationMinutes: 90, Rating: 4.6},
		{Name: "Edo-Tokyo Open Air Museum", Category: models.CategoryCulture, Price: 900, DurationMinutes: 150, Rating: 4.4},
	},
	"barcelona": {
		{Name: "Sagrada Familia", Category: models.CategorySightseeing, Price: 3300, DurationMinutes: 120, Rating: 4.9},
		{Name: "Park Guell", Category: models.CategoryOutdoor, Price: 1300, DurationMinutes: 120, Rating: 4.6},
		{Name: "Gothic Quarter Tapas Crawl", Category: models.CategoryFood, Price: 7800, DurationMinutes: 210, Rating: 4.8},
		{Name: "Picasso Museum", Category: models.CategoryCulture, Price: 1400, DurationMinutes: 120, Rating: 4.5},
		{Name: "Barceloneta Paddleboarding", Category: models.CategoryOutdoor, Price: 4200, DurationMinutes: 120, Rating: 4.4},
		{Name: "La Boqueria Market Tasting", Category: models.CategoryFood, Price: 3900, DurationMinutes: 120, Rating: 4.6},
	},
}

// ForDestination returns all candidate activities for a destination.
// Lookup is case-insensitive; an unknown destination yields an empty slice,
// never an error.
func ForDestination(destination string) []Entry {
	key := strings.ToLower(strings.TrimSpace(destination))
	entries, ok := activityCatalog[key]
	if !ok {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Destinations lists every destination the catalog knows about.
func Destinations() []string {
	out := make([]string, 0, len(activityCatalog))
	for k := range activityCatalog {
		out = append(out, k)
	}
	return out
}
