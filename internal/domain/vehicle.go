package domain

// Vehicle represents one car in the dealership inventory.
// The inventory is loaded once at startup and never mutated.
type Vehicle struct {
	ID             string       `json:"id"`
	Brand          string       `json:"brand"`
	Model          string       `json:"model"`
	Year           int          `json:"year"`
	Price          float64      `json:"price"`
	Color          string       `json:"color"`
	Mileage        int          `json:"mileage"`
	FuelType       FuelType     `json:"fuelType"`
	BodyStyle      BodyStyle    `json:"bodyStyle"`
	Transmission   Transmission `json:"transmission"`
	EngineSize     string       `json:"engineSize"`
	FuelEfficiency string       `json:"fuelEfficiency"`
	// CombinedMPG is the numeric efficiency used for ranking. The display
	// string above is free text and must never be parsed.
	CombinedMPG float64  `json:"combinedMpg"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
	IsAvailable bool     `json:"isAvailable"`
	Location    string   `json:"location"`
}

// Electrified reports whether the vehicle runs fully or partly on electricity.
func (v *Vehicle) Electrified() bool {
	return v.FuelType == FuelElectric || v.FuelType == FuelHybrid
}

// VehicleSummary is the reduced projection returned by inventory searches.
// Full feature lists and images are withheld from the list view.
type VehicleSummary struct {
	ID             string       `json:"id"`
	Brand          string       `json:"brand"`
	Model          string       `json:"model"`
	Year           int          `json:"year"`
	Price          float64      `json:"price"`
	Color          string       `json:"color"`
	Mileage        int          `json:"mileage"`
	FuelType       FuelType     `json:"fuelType"`
	BodyStyle      BodyStyle    `json:"bodyStyle"`
	Transmission   Transmission `json:"transmission"`
	FuelEfficiency string       `json:"fuelEfficiency"`
	KeyFeatures    []string     `json:"keyFeatures"`
	Description    string       `json:"description"`
	Location       string       `json:"location"`
}

// Summary builds the list-view projection of the vehicle, keeping only the
// first three features.
func (v *Vehicle) Summary() VehicleSummary {
	key := v.Features
	if len(key) > 3 {
		key = key[:3]
	}
	return VehicleSummary{
		ID:             v.ID,
		Brand:          v.Brand,
		Model:          v.Model,
		Year:           v.Year,
		Price:          v.Price,
		Color:          v.Color,
		Mileage:        v.Mileage,
		FuelType:       v.FuelType,
		BodyStyle:      v.BodyStyle,
		Transmission:   v.Transmission,
		FuelEfficiency: v.FuelEfficiency,
		KeyFeatures:    key,
		Description:    v.Description,
		Location:       v.Location,
	}
}
