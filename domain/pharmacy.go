package domain

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pharmacy is read-only reference data. Hours maps lowercase weekday names
// ("monday".."sunday") to a display string such as "8:00 AM - 8:00 PM".
type Pharmacy struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     Address           `json:"address"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Hours       map[string]string `json:"hours"`
	Services    []string          `json:"services"`
	Coordinates Coordinates       `json:"coordinates"`
	Rating      float64           `json:"rating"`
	IsPartner   bool              `json:"is_partner"`
}
