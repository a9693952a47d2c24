package models

// Topic is a named category that articles belong to. Topics are immutable
// reference data identified by slug.
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
