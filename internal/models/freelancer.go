package models

// Freelancer is the aggregated read-time view: either a static catalog
// entry or a registered freelancer synthesized from their user record.
type Freelancer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Avatar      Avatar    `json:"avatar"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Bio         string    `json:"bio"`
	Projects    []Project `json:"projects"`
}
