// Package catalog holds the dealership's sample data: vehicle inventory,
// business record, appointment time slots and financing plans. The data is
// immutable at runtime; a real deployment would load it from a database.
package catalog

import "github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"

// Catalog bundles all static dealership data.
type Catalog struct {
	Inventory      []domain.Vehicle
	Business       domain.BusinessInfo
	TimeSlots      []string
	FinancingPlans []domain.FinancingPlan
}

// Default returns the built-in AutoMax catalog.
func Default() *Catalog {
	return &Catalog{
		Inventory:      sampleInventory,
		Business:       businessInfo,
		TimeSlots:      availableTimeSlots,
		FinancingPlans: financingPlans,
	}
}

var availableTimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

var businessInfo = domain.BusinessInfo{
	Name:    "AutoMax Concesionario",
	Address: "123 Avenida Principal, Ciudad, Estado 12345",
	Phone:   "(555) 123-4567",
	Email:   "info@automax.com",
	Website: "www.automax.com",
	Hours: map[string]string{
		"Lunes":     "9:00 AM - 8:00 PM",
		"Martes":    "9:00 AM - 8:00 PM",
		"Miércoles": "9:00 AM - 8:00 PM",
		"Jueves":    "9:00 AM - 8:00 PM",
		"Viernes":   "9:00 AM - 8:00 PM",
		"Sábado":    "9:00 AM - 6:00 PM",
		"Domingo":   "12:00 PM - 5:00 PM",
	},
	Services: []string{
		"Venta de autos nuevos",
		"Venta de autos usados",
		"Financiamiento y arrendamiento",
		"Evaluación de vehículos usados",
		"Servicio y mantenimiento",
		"Departamento de refacciones",
		"Garantías extendidas",
		"Servicios de seguro",
	},
}

var financingPlans = []domain.FinancingPlan{
	{
		ID:          "standard-financing",
		Name:        "Préstamo Automotriz Estándar",
		APR:         4.9,
		TermMonths:  60,
		Description: "Financiamiento automotriz tradicional con tasas competitivas",
		Requirements: []string{
			"Buen puntaje crediticio (650+)",
			"Comprobante de ingresos",
			"Se recomienda enganche",
		},
	},
	{
		ID:          "lease-option",
		Name:        "Programa de Arrendamiento",
		APR:         2.9,
		TermMonths:  36,
		Description: "Pagos mensuales más bajos con opción de arrendamiento",
		Requirements: []string{
			"Excelente puntaje crediticio (700+)",
			"Aplican restricciones de kilometraje",
		},
	},
	{
		ID:          "first-time-buyer",
		Name:        "Programa de Primer Comprador",
		APR:         6.9,
		TermMonths:  72,
		Description: "Programa especial para compradores de primer auto",
		Requirements: []string{
			"Se acepta historial crediticio limitado",
			"Se requiere mayor enganche",
		},
	},
}

var sampleInventory = []domain.Vehicle{
	{
		ID:             "bmw-x5-2024-001",
		Brand:          "BMW",
		Model:          "X5",
		Year:           2024,
		Price:          65000,
		Color:          "Mineral White",
		Mileage:        1200,
		FuelType:       domain.FuelGasoline,
		BodyStyle:      domain.BodySUV,
		Transmission:   domain.TransmissionAutomatic,
		EngineSize:     "3.0L I6 Turbo",
		FuelEfficiency: "21 city / 26 highway mpg",
		CombinedMPG:    23,
		Features: []string{
			"All-wheel drive",
			"Premium package",
			"Navigation system",
			"Leather seats",
			"Panoramic sunroof",
			"Harman Kardon sound system",
			"Apple CarPlay",
			"Lane departure warning",
		},
		Description: "Luxury SUV with exceptional performance and comfort. Perfect for families who want style and capability.",
		Images:      []string{"bmw-x5-1.jpg", "bmw-x5-2.jpg"},
		IsAvailable: true,
		Location:    "Main Lot A-12",
	},
	{
		ID:             "toyota-camry-2023-001",
		Brand:          "Toyota",
		Model:          "Camry",
		Year:           2023,
		Price:          28500,
		Color:          "Celestial Silver",
		Mileage:        8500,
		FuelType:       domain.FuelGasoline,
		BodyStyle:      domain.BodySedan,
		Transmission:   domain.TransmissionAutomatic,
		EngineSize:     "2.5L 4-Cylinder",
		FuelEfficiency: "28 city / 39 highway mpg",
		CombinedMPG:    32,
		Features: []string{
			"Toyota Safety Sense 2.0",
			"Wireless charging",
			"Android Auto",
			"Apple CarPlay",
			"Dual-zone climate control",
			"Backup camera",
			"Blind spot monitoring",
		},
		Description: "Reliable and fuel-efficient sedan. Perfect for daily commuting with excellent safety ratings.",
		Images:      []string{"toyota-camry-1.jpg", "toyota-camry-2.jpg"},
		IsAvailable: true,
		Location:    "Main Lot B-5",
	},
	{
		ID:             "tesla-model3-2024-001",
		Brand:          "Tesla",
		Model:          "Model 3",
		Year:           2024,
		Price:          42000,
		Color:          "Pearl White",
		Mileage:        500,
		FuelType:       domain.FuelElectric,
		BodyStyle:      domain.BodySedan,
		Transmission:   domain.TransmissionAutomatic,
		EngineSize:     "Electric Motor",
		FuelEfficiency: "134 MPGe combined",
		CombinedMPG:    134,
		Features: []string{
			"Autopilot",
			"Full self-driving capability",
			"15-inch touchscreen",
			"Premium connectivity",
			"Supercharging network access",
			"Over-the-air updates",
			"Glass roof",
		},
		Description: "All-electric sedan with cutting-edge technology and impressive range. Zero emissions driving.",
		Images:      []string{"tesla-model3-1.jpg", "tesla-model3-2.jpg"},
		IsAvailable: true,
		Location:    "Electric Vehicle Section E-1",
	},
	{
		ID:             "ford-f150-2023-001",
		Brand:          "Ford",
		Model:          "F-150",
		Year:           2023,
		Price:          45000,
		Color:          "Antimatter Blue",
		Mileage:        3200,
		FuelType:       domain.FuelGasoline,
		BodyStyle:      domain.BodyPickup,
		Transmission:   domain.TransmissionAutomatic,
		EngineSize:     "3.5L V6 EcoBoost",
		FuelEfficiency: "20 city / 24 highway mpg",
		CombinedMPG:    22,
		Features: []string{
			"4WD",
			"Towing package",
			"Bed liner",
			"SYNC 4 infotainment",
			"FordPass Connect",
			"Pro Trailer Backup Assist",
			"Multi-contour front seats",
		},
		Description: "America's best-selling truck. Built tough for work and play with impressive towing capacity.",
		Images:      []string{"ford-f150-1.jpg", "ford-f150-2.jpg"},
		IsAvailable: true,
		Location:    "Truck Section T-3",
	},
	{
		ID:             "honda-civic-2024-001",
		Brand:          "Honda",
		Model:          "Civic",
		Year:           2024,
		Price:          24000,
		Color:          "Rallye Red",
		Mileage:        1800,
		FuelType:       domain.FuelGasoline,
		BodyStyle:      domain.BodyHatchback,
		Transmission:   domain.TransmissionManual,
		EngineSize:     "2.0L 4-Cylinder",
		FuelEfficiency: "31 city / 40 highway mpg",
		CombinedMPG:    35,
		Features: []string{
			"Honda Sensing suite",
			"Apple CarPlay",
			"Android Auto",
			"7-inch touchscreen",
			"Adaptive cruise control",
			"Collision mitigation",
			"Sport mode",
		},
		Description: "Sporty and efficient compact car. Great for young drivers and city commuting.",
		Images:      []string{"honda-civic-1.jpg", "honda-civic-2.jpg"},
		IsAvailable: true,
		Location:    "Compact Section C-7",
	},
	{
		ID:             "audi-a4-2023-001",
		Brand:          "Audi",
		Model:          "A4",
		Year:           2023,
		Price:          38000,
		Color:          "Glacier White",
		Mileage:        5500,
		FuelType:       domain.FuelGasoline,
		BodyStyle:      domain.BodySedan,
		Transmission:   domain.TransmissionAutomatic,
		EngineSize:     "2.0L Turbo",
		FuelEfficiency: "24 city / 31 highway mpg",
		CombinedMPG:    27,
		Features: []string{
			"Quattro AWD",
			"Virtual cockpit",
			"MMI infotainment",
			"Premium Plus package",
			"Sunroof",
			"Bang & Olufsen sound",
			"Audi pre sense",
		},
		Description: "German luxury sedan with sophisticated technology and premium materials.",
		Images:      []string{"audi-a4-1.jpg", "audi-a4-2.jpg"},
		IsAvailable: true,
		Location:    "Luxury Section L-2",
	},
}
