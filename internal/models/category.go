package models

// Category groups posts for navigation. PostCount is denormalized: it is
// recomputed by the store whenever a post is created, and always counts
// published posts only.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description,omitempty"`
	PostCount   int    `gorm:"not null;default:0" json:"postCount"`
}
