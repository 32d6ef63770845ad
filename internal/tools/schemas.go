package tools

import "github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"

// Argument shapes for tools whose criteria do not already live in the
// dealership package.
type carDetailsArgs struct {
	CarID string `json:"carId"`
}

type slotArgs struct {
	Date            string `json:"date"`
	AppointmentType string `json:"appointmentType"`
}

type businessInfoArgs struct {
	InfoType string `json:"infoType"`
}

var searchInventorySchema = llm.Tool{
	Type: "function",
	Function: llm.ToolFunction{
		Name:        "searchInventory",
		Description: "Search for cars in the dealership inventory based on various criteria. The LLM can flexibly interpret user needs and apply appropriate filters.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"brand": map[string]any{
					"type":        "string",
					"description": "Car brand (e.g., BMW, Toyota, Tesla, Ford, Honda, Audi)",
				},
				"model": map[string]any{
					"type":        "string",
					"description": "Specific car model",
				},
				"priceMin": map[string]any{
					"type":        "number",
					"description": "Minimum price range",
				},
				"priceMax": map[string]any{
					"type":        "number",
					"description": "Maximum price range",
				},
				"year": map[string]any{
					"type":        "number",
					"description": "Specific year or minimum year",
				},
				"fuelType": map[string]any{
					"type":        "string",
					"enum":        []string{"gasoline", "diesel", "hybrid", "electric"},
					"description": "Type of fuel/power source",
				},
				"bodyStyle": map[string]any{
					"type":        "string",
					"enum":        []string{"sedan", "suv", "hatchback", "coupe", "wagon", "pickup"},
					"description": "Vehicle body style",
				},
				"transmission": map[string]any{
					"type":        "string",
					"enum":        []string{"manual", "automatic"},
					"description": "Transmission type",
				},
				"maxMileage": map[string]any{
					"type":        "number",
					"description": "Maximum acceptable mileage",
				},
				"usage": map[string]any{
					"type":        "string",
					"description": `Intended use (e.g., "commuting", "family", "work", "luxury", "sport")`,
				},
				"budget": map[string]any{
					"type":        "string",
					"description": `Budget category (e.g., "economico", "mid-range", "luxury")`,
				},
				"priorities": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": `Customer priorities (e.g., "fuel efficiency", "reliability", "luxury", "performance")`,
				},
			},
		},
	},
}

var getCarDetailsSchema = llm.Tool{
	Type: "function",
	Function: llm.ToolFunction{
		Name:        "getCarDetails",
		Description: "Get detailed information about a specific car by ID",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"carId": map[string]any{
					"type":        "string",
					"description": "The unique ID of the car",
				},
			},
			"required": []string{"carId"},
		},
	},
}

var getAvailableAppointmentSlotsSchema = llm.Tool{
	Type: "function",
	Function: llm.ToolFunction{
		Name:        "getAvailableAppointmentSlots",
		Description: "Get available appointment slots for a specific date and type",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date": map[string]any{
					"type":        "string",
					"description": "Preferred date in YYYY-MM-DD format",
				},
				"appointmentType": map[string]any{
					"type":        "string",
					"enum":        []string{"test_drive", "consultation", "inspection", "delivery"},
					"description": "Type of appointment needed",
				},
			},
		},
	},
}

var scheduleAppointmentSchema = llm.Tool{
	Type: "function",
	Function: llm.ToolFunction{
		Name:        "scheduleAppointment",
		Description: "Schedule an appointment for the customer. Requires customer contact information.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date": map[string]any{
					"type":        "string",
					"description": "Appointment date in YYYY-MM-DD format",
				},
				"time": map[string]any{
					"type":        "string",
					"description": `Appointment time (e.g., "10:00 AM")`,
				},
				"appointmentType": map[string]any{
					"type":        "string",
					"enum":        []string{"test_drive", "consultation", "inspection", "delivery"},
					"description": "Type of appointment",
				},
				"customerName": map[string]any{
					"type":        "string",
					"description": "Customer full name",
				},
				"customerPhone": map[string]any{
					"type":        "string",
					"description": "Customer phone number",
				},
				"customerEmail": map[string]any{
					"type":        "string",
					"description": "Customer email address",
				},
				"carId": map[string]any{
					"type":        "string",
					"description": "ID of the car if appointment is related to a specific vehicle",
				},
				"notes": map[string]any{
					"type":        "string",
					"description": "Additional notes or special requests",
				},
			},
			"required": []string{"date", "time", "appointmentType", "customerName", "customerPhone"},
		},
	},
}

var getBusinessInfoSchema = llm.Tool{
	Type: "function",
	Function: llm.ToolFunction{
		Name:        "getBusinessInfo",
		Description: "Get general business information like hours, location, contact details, and services",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"infoType": map[string]any{
					"type":        "string",
					"enum":        []string{"hours", "location", "contact", "services", "all"},
					"description": "Type of information requested",
				},
			},
		},
	},
}

var getFinancingOptionsSchema = llm.Tool{
	Type: "function",
	Function: llm.ToolFunction{
		Name:        "getFinancingOptions",
		Description: "Get available financing and leasing options",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"carPrice": map[string]any{
					"type":        "number",
					"description": "Price of the car to calculate monthly payments",
				},
				"downPayment": map[string]any{
					"type":        "number",
					"description": "Down payment amount",
				},
				"creditProfile": map[string]any{
					"type":        "string",
					"enum":        []string{"excellent", "good", "fair", "limited"},
					"description": "Customer credit profile",
				},
			},
		},
	},
}
