package events

import "time"

type VoteCast struct {
	AccountID string    `json:"accountId"`
	ItemID    string    `json:"itemId"`
	Type      string    `json:"type"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	At        time.Time `json:"at"`
}
