package domain

import "time"

// Item is a budget line entry. Likes and Dislikes are derived columns: they
// always equal the vote counts in the votes table and are rewritten from a
// full recount on every vote, never incremented.
type Item struct {
	ID          ItemID    `gorm:"type:uuid;primaryKey" json:"id"`
	Concept     string    `gorm:"not null" json:"concept"`
	Summary     string    `json:"summary,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null;index" json:"category"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	Dislikes    int       `gorm:"not null;default:0" json:"dislikes"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (Item) TableName() string { return "items" }

type Comment struct {
	ID        CommentID `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID    ItemID    `gorm:"type:uuid;not null;index" json:"itemId"`
	Author    string    `gorm:"not null;default:'Anonymous'" json:"author"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Comment) TableName() string { return "comments" }
