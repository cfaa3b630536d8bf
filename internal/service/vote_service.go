package service

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

// VoteService maintains the one-vote-per-account-per-item invariant and keeps
// the item counters equal to the ledger counts.
type VoteService interface {
	// Cast inserts or flips the account's vote on the item and returns the
	// recounted totals. Re-casting the same type is a no-op.
	Cast(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID, t domain.VoteType) (dto.VoteCounts, error)

	// Current returns the account's vote type for the item, or "" if none.
	Current(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID) (domain.VoteType, error)
}
