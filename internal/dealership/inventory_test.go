package dealership

import (
	"testing"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/catalog"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"
)

// newCatalogService builds a query engine over the default catalog without a
// ledger; inventory, business and financing operations never touch it.
func newCatalogService() *Service {
	return New(catalog.Default(), nil)
}

func TestSearchInventoryNoCriteria(t *testing.T) {
	svc := newCatalogService()

	result := svc.SearchInventory(SearchCriteria{})
	if !result.Success {
		t.Fatal("expected success")
	}
	if result.TotalFound != 6 || len(result.Cars) != 6 {
		t.Fatalf("expected all 6 vehicles, got %d", result.TotalFound)
	}
	for _, car := range result.Cars {
		if len(car.KeyFeatures) > 3 {
			t.Fatalf("list view must hold at most 3 features, got %d for %s", len(car.KeyFeatures), car.ID)
		}
	}
}

func TestSearchInventoryStructuredFilters(t *testing.T) {
	svc := newCatalogService()

	result := svc.SearchInventory(SearchCriteria{
		Brand:    "toy",
		PriceMax: 30000,
		Year:     2023,
	})
	if result.TotalFound != 1 {
		t.Fatalf("expected 1 match, got %d", result.TotalFound)
	}
	if result.Cars[0].ID != "toyota-camry-2023-001" {
		t.Fatalf("unexpected match: %s", result.Cars[0].ID)
	}
}

func TestSearchInventoryFiltersCombineAsAND(t *testing.T) {
	svc := newCatalogService()

	criteria := SearchCriteria{
		FuelType:     "gasoline",
		Transmission: "automatic",
		PriceMin:     30000,
	}
	result := svc.SearchInventory(criteria)
	if result.TotalFound == 0 {
		t.Fatal("expected matches")
	}
	for _, car := range result.Cars {
		if car.FuelType != domain.FuelGasoline {
			t.Errorf("%s violates fuelType filter", car.ID)
		}
		if car.Transmission != domain.TransmissionAutomatic {
			t.Errorf("%s violates transmission filter", car.ID)
		}
		if car.Price < 30000 {
			t.Errorf("%s violates priceMin filter", car.ID)
		}
	}
}

func TestSearchInventoryExcludesUnavailable(t *testing.T) {
	cat := catalog.Default()
	inventory := make([]domain.Vehicle, len(cat.Inventory))
	copy(inventory, cat.Inventory)
	inventory[0].IsAvailable = false
	cat.Inventory = inventory
	svc := New(cat, nil)

	result := svc.SearchInventory(SearchCriteria{})
	if result.TotalFound != 5 {
		t.Fatalf("expected 5 vehicles, got %d", result.TotalFound)
	}
	for _, car := range result.Cars {
		if car.ID == inventory[0].ID {
			t.Fatalf("unavailable vehicle %s returned", car.ID)
		}
	}
}

func TestSearchInventoryFamilyUsage(t *testing.T) {
	svc := newCatalogService()

	result := svc.SearchInventory(SearchCriteria{Usage: "need something for my family"})
	if result.TotalFound == 0 {
		t.Fatal("expected family matches")
	}
	for _, car := range result.Cars {
		switch car.BodyStyle {
		case domain.BodySUV, domain.BodyWagon, domain.BodyPickup:
		default:
			t.Fatalf("family search returned body style %q (%s)", car.BodyStyle, car.ID)
		}
	}
}

func TestSearchInventoryCommutingReRanksWithoutDropping(t *testing.T) {
	svc := newCatalogService()

	result := svc.SearchInventory(SearchCriteria{Usage: "daily commuting to work"})
	if result.TotalFound != 6 {
		t.Fatalf("commuting hint must not drop vehicles, got %d of 6", result.TotalFound)
	}
	// The only electrified vehicle sorts first, then by combined MPG.
	if result.Cars[0].ID != "tesla-model3-2024-001" {
		t.Fatalf("expected the electric vehicle first, got %s", result.Cars[0].ID)
	}
	if result.Cars[1].ID != "honda-civic-2024-001" {
		t.Fatalf("expected the most efficient gasoline vehicle second, got %s", result.Cars[1].ID)
	}
}

func TestSearchInventoryLuxuryUsage(t *testing.T) {
	svc := newCatalogService()

	result := svc.SearchInventory(SearchCriteria{Usage: "algo de lujo"})
	if result.TotalFound == 0 {
		t.Fatal("expected luxury matches")
	}
	for _, car := range result.Cars {
		if car.Brand != "BMW" && car.Brand != "Audi" && car.Price <= luxuryPriceFloor {
			t.Fatalf("non-luxury vehicle %s returned", car.ID)
		}
	}
}

func TestSearchInventoryEconomyBudget(t *testing.T) {
	svc := newCatalogService()

	for _, hint := range []string{"something economico", "cheap", "barato por favor"} {
		result := svc.SearchInventory(SearchCriteria{Budget: hint})
		if result.TotalFound == 0 {
			t.Fatalf("expected economy matches for %q", hint)
		}
		for _, car := range result.Cars {
			if car.Price >= economyPriceCeiling {
				t.Fatalf("economy search %q returned %s at %.0f", hint, car.ID, car.Price)
			}
		}
	}
}

func TestSearchInventoryMidRangeBudget(t *testing.T) {
	svc := newCatalogService()

	result := svc.SearchInventory(SearchCriteria{Budget: "mid-range"})
	for _, car := range result.Cars {
		if car.Price < midRangePriceMin || car.Price > midRangePriceMax {
			t.Fatalf("mid-range search returned %s at %.0f", car.ID, car.Price)
		}
	}
}

func TestSearchInventoryUnrecognizedHintsAreNoOps(t *testing.T) {
	svc := newCatalogService()

	result := svc.SearchInventory(SearchCriteria{Usage: "weekend racing", Budget: "whatever"})
	if result.TotalFound != 6 {
		t.Fatalf("unrecognized hints must not filter, got %d of 6", result.TotalFound)
	}
}

func TestCarDetails(t *testing.T) {
	svc := newCatalogService()

	result := svc.CarDetails("tesla-model3-2024-001")
	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Car == nil || result.Car.Brand != "Tesla" {
		t.Fatalf("unexpected car: %+v", result.Car)
	}
	if len(result.Car.Features) != 7 {
		t.Fatalf("detail view must keep the full feature list, got %d", len(result.Car.Features))
	}
}

func TestCarDetailsNotFound(t *testing.T) {
	svc := newCatalogService()

	result := svc.CarDetails("no-such-car")
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Car not found with the provided ID" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}

func TestCarDetailsUnavailable(t *testing.T) {
	cat := catalog.Default()
	inventory := make([]domain.Vehicle, len(cat.Inventory))
	copy(inventory, cat.Inventory)
	inventory[2].IsAvailable = false
	cat.Inventory = inventory
	svc := New(cat, nil)

	result := svc.CarDetails(inventory[2].ID)
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "This car is no longer available" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}
