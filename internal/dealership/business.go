package dealership

// BusinessInfoResult is the projection of the business record for one
// infoType. Unset fields are omitted from the serialized payload.
type BusinessInfoResult struct {
	Success  bool              `json:"success"`
	Name     string            `json:"name,omitempty"`
	Address  string            `json:"address,omitempty"`
	Phone    string            `json:"phone,omitempty"`
	Email    string            `json:"email,omitempty"`
	Website  string            `json:"website,omitempty"`
	Hours    map[string]string `json:"hours,omitempty"`
	Services []string          `json:"services,omitempty"`
}

// BusinessInfo projects the business record by infoType. Unknown or omitted
// values fall through to the full record. No failure path.
func (s *Service) BusinessInfo(infoType string) BusinessInfoResult {
	switch infoType {
	case "hours":
		return BusinessInfoResult{Success: true, Hours: s.business.Hours}
	case "location":
		return BusinessInfoResult{Success: true, Name: s.business.Name, Address: s.business.Address}
	case "contact":
		return BusinessInfoResult{Success: true, Phone: s.business.Phone, Email: s.business.Email, Website: s.business.Website}
	case "services":
		return BusinessInfoResult{Success: true, Services: s.business.Services}
	default:
		return BusinessInfoResult{
			Success:  true,
			Name:     s.business.Name,
			Address:  s.business.Address,
			Phone:    s.business.Phone,
			Email:    s.business.Email,
			Website:  s.business.Website,
			Hours:    s.business.Hours,
			Services: s.business.Services,
		}
	}
}
