package models

// User is an author identity. Users are immutable reference data identified
// by username.
type User struct {
	Username string `json:"username" db:"username"`
}
