package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Subscriber is a reader who traded an email address for the region guide.
// Email is stored normalized (lowercase, trimmed) and is unique across all
// subscribers; a second signup with the same email is rejected, never
// upserted. PDFSent transitions false to true exactly once, after a
// confirmed delivery.
type Subscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"not null" json:"name"`
	Region       Region    `gorm:"not null" json:"region"`
	SubscribedAt time.Time `json:"subscribedAt"`
	PDFSent      bool      `gorm:"column:pdf_sent;not null" json:"pdfSent"`
}

func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now().UTC()
	}
	return nil
}

// NormalizeEmail lowers and trims an email address. Every store lookup and
// insert uses this form, so case or whitespace variants of the same
// address collapse to one subscriber.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
