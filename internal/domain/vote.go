package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is the single-vote-of-record row per (account, item). The composite
// unique index is the invariant; application logic only decides between
// insert and in-place type flip.
type Vote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID AccountID `gorm:"type:uuid;not null;uniqueIndex:ux_votes_account_item" json:"accountId"`
	ItemID    ItemID    `gorm:"type:uuid;not null;uniqueIndex:ux_votes_account_item" json:"itemId"`
	Type      VoteType  `gorm:"type:varchar(8);not null" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Vote) TableName() string { return "votes" }
