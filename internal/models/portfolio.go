package models

// PortfolioItem is one showcased project in a freelancer's portfolio
// slot. Items are never edited in place, only added and deleted.
type PortfolioItem struct {
	ID          string   `json:"id"`
	Image       string   `json:"image"`
	MoreImages  []string `json:"moreImages,omitempty"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Description string   `json:"description,omitempty"`
	ProjectLink string   `json:"projectLink,omitempty"`
	ToolsUsed   []string `json:"toolsUsed,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Project is the lightweight summary embedded in a Freelancer view.
type Project struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Img         string `json:"img"`
	Description string `json:"description,omitempty"`
}
