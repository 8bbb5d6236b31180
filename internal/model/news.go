package model

// NewsPost is static reference content shown on the home page
type NewsPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl"`
}
