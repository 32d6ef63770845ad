package domain

// BusinessInfo holds the dealership's public business record.
type BusinessInfo struct {
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Phone    string            `json:"phone"`
	Email    string            `json:"email"`
	Website  string            `json:"website"`
	Hours    map[string]string `json:"hours"`
	Services []string          `json:"services"`
}
