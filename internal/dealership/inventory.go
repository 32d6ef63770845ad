package dealership

import (
	"sort"
	"strings"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"
)

// Price thresholds for the heuristic budget and usage buckets.
const (
	economyPriceCeiling = 30000
	luxuryPriceFloor    = 40000
	midRangePriceMin    = 25000
	midRangePriceMax    = 45000
)

var luxuryBrands = map[string]bool{
	"BMW":  true,
	"Audi": true,
}

// SearchCriteria are the optional, independently combinable inventory filters.
// Field names match the tool schema advertised to the model.
type SearchCriteria struct {
	Brand        string   `json:"brand,omitempty"`
	Model        string   `json:"model,omitempty"`
	PriceMin     float64  `json:"priceMin,omitempty"`
	PriceMax     float64  `json:"priceMax,omitempty"`
	Year         int      `json:"year,omitempty"`
	FuelType     string   `json:"fuelType,omitempty"`
	BodyStyle    string   `json:"bodyStyle,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	MaxMileage   int      `json:"maxMileage,omitempty"`
	Usage        string   `json:"usage,omitempty"`
	Budget       string   `json:"budget,omitempty"`
	// Priorities is accepted from the model but not used for filtering.
	Priorities []string `json:"priorities,omitempty"`
}

// SearchResult is the list-view answer to an inventory search.
type SearchResult struct {
	Success    bool                    `json:"success"`
	TotalFound int                     `json:"totalFound"`
	Cars       []domain.VehicleSummary `json:"cars"`
}

// CarDetailsResult is the answer to a detail lookup. A missing id and an
// unavailable vehicle are distinct, caller-visible outcomes.
type CarDetailsResult struct {
	Success bool            `json:"success"`
	Car     *domain.Vehicle `json:"car,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SearchInventory filters the available inventory by the supplied criteria,
// applies the usage and budget heuristics, and returns the reduced projection
// of every surviving vehicle. An empty result set is a valid outcome, not a
// failure.
func (s *Service) SearchInventory(criteria SearchCriteria) SearchResult {
	results := make([]domain.Vehicle, 0, len(s.inventory))
	for _, v := range s.inventory {
		if v.IsAvailable && matches(&v, &criteria) {
			results = append(results, v)
		}
	}

	results = applyUsageHint(results, criteria.Usage)
	results = applyBudgetHint(results, criteria.Budget)

	cars := make([]domain.VehicleSummary, 0, len(results))
	for i := range results {
		cars = append(cars, results[i].Summary())
	}
	return SearchResult{
		Success:    true,
		TotalFound: len(cars),
		Cars:       cars,
	}
}

// matches applies every structured filter as an AND predicate; an absent
// criterion is no constraint.
func matches(v *domain.Vehicle, c *SearchCriteria) bool {
	if c.Brand != "" && !strings.Contains(strings.ToLower(v.Brand), strings.ToLower(c.Brand)) {
		return false
	}
	if c.Model != "" && !strings.Contains(strings.ToLower(v.Model), strings.ToLower(c.Model)) {
		return false
	}
	if c.PriceMin > 0 && v.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && v.Price > c.PriceMax {
		return false
	}
	if c.Year > 0 && v.Year < c.Year {
		return false
	}
	if c.FuelType != "" && v.FuelType != domain.FuelType(c.FuelType) {
		return false
	}
	if c.BodyStyle != "" && v.BodyStyle != domain.BodyStyle(c.BodyStyle) {
		return false
	}
	if c.Transmission != "" && v.Transmission != domain.Transmission(c.Transmission) {
		return false
	}
	if c.MaxMileage > 0 && v.Mileage > c.MaxMileage {
		return false
	}
	return true
}

// applyUsageHint classifies the free-text usage hint. Commuting re-ranks
// (never drops) so efficient vehicles sort first; family and luxury narrow the
// set; anything unrecognized is a no-op.
func applyUsageHint(results []domain.Vehicle, usage string) []domain.Vehicle {
	hint := strings.ToLower(usage)
	switch {
	case hint == "":
		return results
	case containsAny(hint, "commut", "work", "trabajo"):
		sort.SliceStable(results, func(i, j int) bool {
			a, b := &results[i], &results[j]
			if a.Electrified() != b.Electrified() {
				return a.Electrified()
			}
			return a.CombinedMPG > b.CombinedMPG
		})
		return results
	case containsAny(hint, "family", "familia"):
		return keep(results, func(v *domain.Vehicle) bool {
			return v.BodyStyle == domain.BodySUV || v.BodyStyle == domain.BodyWagon || v.BodyStyle == domain.BodyPickup
		})
	case containsAny(hint, "luxury", "lujo"):
		return keep(results, func(v *domain.Vehicle) bool {
			return luxuryBrands[v.Brand] || v.Price > luxuryPriceFloor
		})
	}
	return results
}

// applyBudgetHint classifies the free-text budget hint into economy, luxury or
// mid-range price bands. Economy wins when a hint names both buckets.
func applyBudgetHint(results []domain.Vehicle, budget string) []domain.Vehicle {
	hint := strings.ToLower(budget)
	switch {
	case hint == "":
		return results
	case containsAny(hint, "econom", "cheap", "affordable", "barato"):
		return keep(results, func(v *domain.Vehicle) bool { return v.Price < economyPriceCeiling })
	case containsAny(hint, "luxury", "premium", "lujo"):
		return keep(results, func(v *domain.Vehicle) bool { return v.Price > luxuryPriceFloor })
	case containsAny(hint, "mid", "medio"):
		return keep(results, func(v *domain.Vehicle) bool {
			return v.Price >= midRangePriceMin && v.Price <= midRangePriceMax
		})
	}
	return results
}

// CarDetails looks up one vehicle by id, returning the full record including
// the complete feature list and images.
func (s *Service) CarDetails(carID string) CarDetailsResult {
	for i := range s.inventory {
		if s.inventory[i].ID != carID {
			continue
		}
		if !s.inventory[i].IsAvailable {
			return CarDetailsResult{
				Success: false,
				Error:   "This car is no longer available",
			}
		}
		car := s.inventory[i]
		return CarDetailsResult{Success: true, Car: &car}
	}
	return CarDetailsResult{
		Success: false,
		Error:   "Car not found with the provided ID",
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func keep(vehicles []domain.Vehicle, pred func(*domain.Vehicle) bool) []domain.Vehicle {
	kept := vehicles[:0]
	for i := range vehicles {
		if pred(&vehicles[i]) {
			kept = append(kept, vehicles[i])
		}
	}
	return kept
}
