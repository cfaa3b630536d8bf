package domain

import (
	"time"

	"github.com/google/uuid"
)

type CarouselSlide struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	AltText   string    `json:"altText,omitempty"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (CarouselSlide) TableName() string { return "carousel_slides" }

// SiteContent holds editable homepage texts keyed by slot name, e.g.
// "index_intro_title".
type SiteContent struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (SiteContent) TableName() string { return "site_contents" }
