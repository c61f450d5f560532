package models

// Role values assignable to a user
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a registered account
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Role         string `json:"role"` // USER, ADMIN
	ProfileImage string `json:"profile_image"`
	Bio          string `json:"bio"`
}

// Sanitized returns a copy safe to hand to the UI
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
