package model

import "time"

// User is a stored credential: who may log in and mutate site content.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

// Summary is the public shape of a user. The password hash never
// crosses this boundary.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.FullName,
	}
}

// UserSummary is the minimal identity attached to sessions and responses.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
