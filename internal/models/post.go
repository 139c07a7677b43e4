package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a blog article. Slug is the public identifier used in URLs and
// is immutable once created. Views only ever increases, by exactly one per
// detail-page fetch.
type Post struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Slug            string    `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt         string    `gorm:"not null" json:"excerpt"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	Keywords        string    `json:"keywords,omitempty"`
	CategoryID      *uint     `gorm:"index" json:"categoryId,omitempty"`
	Category        *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	ImageAlt        string    `json:"imageAlt,omitempty"`
	ReadTime        int       `json:"readTime"`
	Views           int       `gorm:"not null;default:0" json:"views"`
	Featured        bool      `json:"featured"`
	Published       bool      `json:"published"`
	PublishedAt     time.Time `json:"publishedAt"`
	Region          Region    `gorm:"not null" json:"region"`
}

// BeforeCreate applies the schema defaults. Published and Featured are
// deliberately left alone: zero values must be insertable, so their
// defaults are applied in the request-validation layer instead of here.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now().UTC()
	}
	if p.ReadTime == 0 {
		p.ReadTime = 5
	}
	if p.Region == "" {
		p.Region = RegionUS
	}
	return nil
}
