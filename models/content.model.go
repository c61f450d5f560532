package models

// Testimonial is a short endorsement authored by a user
type Testimonial struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Avatar string `json:"avatar"`
}

// News is a landing-page news item
type News struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Image string `json:"image"`
	Date  string `json:"date"`
}

// HeroContent is the landing-page hero section
type HeroContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}
