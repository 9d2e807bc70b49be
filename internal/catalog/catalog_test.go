package catalog

import (
	"testing"

	"tripoptimizer/internal/domain/models"
)

func TestForDestinationCaseInsensitive(t *testing.T) {
	lower := ForDestination("paris")
	mixed := ForDestination("  PaRiS ")
	if len(lower) == 0 {
		t.Fatalf("expected catalog entries for paris")
	}
	if len(lower) != len(mixed) {
		t.Fatalf("lookup should be case-insensitive: %d vs %d", len(lower), len(mixed))
	}
}

func TestForDestinationUnknownIsEmptyNotError(t *testing.T) {
	if got := ForDestination("atlantis"); len(got) != 0 {
		t.Fatalf("unknown destination should yield empty slice, got %d entries", len(got))
	}
}

func TestEveryDestinationSpansCategories(t *testing.T) {
	for _, dest := range Destinations() {
		entries := ForDestination(dest)
		if len(entries) == 0 {
			t.Fatalf("destination %s has no entries", dest)
		}
		cats := map[models.ActivityCategory]bool{}
		for _, e := range entries {
			if e.Price < 0 {
				t.Fatalf("%s: %s has negative price", dest, e.Name)
			}
			cats[e.Category] = true
		}
		if len(cats) < 3 {
			t.Fatalf("destination %s spans only %d categories", dest, len(cats))
		}
	}
}

func TestForDestinationReturnsCopy(t *testing.T) {
	first := ForDestination("rome")
	first[0].Name = "mutated"
	second := ForDestination("rome")
	if second[0].Name == "mutated" {
		t.Fatalf("ForDestination must not expose internal slice")
	}
}
