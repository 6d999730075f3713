package model

// Article is the news article the backend associates with a city.
type Article struct {
	ID          int    `json:"id"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`

	// City is the subject of the article
	City City `json:"city"`

	// IsLocal reports whether the backend considers the article local to City
	IsLocal bool `json:"isLocal"`
}
