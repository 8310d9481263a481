package models

// AppSettings is the singleton company profile. Reads fall back to
// DefaultSettings when absent; saves replace the whole record.
type AppSettings struct {
	CompanyName       string            `json:"companyName"`
	OwnerName         string            `json:"ownerName"`
	Phone             string            `json:"phone"`
	Email             string            `json:"email"`
	Address           string            `json:"address"`
	Logo              string            `json:"logo"`
	DefaultLaborRates map[Trade]float64 `json:"defaultLaborRates"`
	Theme             string            `json:"theme"` // light | dark | system
}

// DefaultSettings returns the hard-coded starting profile.
func DefaultSettings() AppSettings {
	rates := make(map[Trade]float64, len(DefaultLaborRates))
	for t, r := range DefaultLaborRates {
		rates[t] = r
	}
	return AppSettings{
		CompanyName:       "Zacher Construction LLC",
		OwnerName:         "Ryan Zacher",
		Phone:             "(555) 123-4567",
		Email:             "ryan@zacherconstruction.com",
		Address:           "123 Builder Lane, Construction City, ST 12345",
		DefaultLaborRates: rates,
		Theme:             "system",
	}
}
