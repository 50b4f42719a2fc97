package models

// WebsiteConfig holds the site-wide configuration. A single row exists
// in the database.
type WebsiteConfig struct {
	Name string `json:"name" db:"name"`
}
