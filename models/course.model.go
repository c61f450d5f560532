package models

// Content block kinds
const (
	BlockText  = "text"
	BlockImage = "image"
	BlockVideo = "video"
)

// ContentBlock is one unit of course content. Its position in the course's
// Content slice is its rank; there is no separate order field.
type ContentBlock struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"` // text, image, video
	Value string `json:"value"`
}

// Course represents a learning course
type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Teacher     string         `json:"teacher"`
	Duration    string         `json:"duration"`
	Rating      float64        `json:"rating"` // 0-5
	Price       float64        `json:"price"`  // 0 = free
	Content     []ContentBlock `json:"content"`
}
