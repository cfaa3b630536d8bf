package domain

import "github.com/google/uuid"

type AccountID = uuid.UUID

type ItemID = uuid.UUID

type CommentID = uuid.UUID

// VoteType is either VoteLike or VoteDislike.
type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

func (v VoteType) Valid() bool { return v == VoteLike || v == VoteDislike }

// Categories is the fixed set of budget item categories shown in the portal.
var Categories = []string{
	"Infraestructura",
	"Equipamiento",
	"Servicios",
	"Material didáctico",
	"Mantenimiento",
	"Capacitación",
	"Otros",
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
