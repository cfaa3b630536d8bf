package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
	"github.com/proyectocucea9-hash/proyectocucea/internal/events"
	"github.com/proyectocucea9-hash/proyectocucea/internal/observability/metrics"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"
)

type VoteServiceImpl struct {
	Store dataStore
	now   func() time.Time
}

var _ service.VoteService = (*VoteServiceImpl)(nil)

func NewVoteServiceImpl(st *store.Store) *VoteServiceImpl {
	return &VoteServiceImpl{
		Store: newGormStoreAdapter(st),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Cast upserts the (account, item) ledger row and rewrites the item counters
// from a full recount, all in one transaction. Concurrent casts by different
// accounts may interleave, but because counters are recounted rather than
// incremented the last commit always leaves them equal to the ledger.
func (v *VoteServiceImpl) Cast(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID, t domain.VoteType) (dto.VoteCounts, error) {
	result := "success"
	defer func() {
		metrics.VotesCastTotal.WithLabelValues(string(t), result).Inc()
	}()

	if !t.Valid() {
		result = "invalid_type"
		return dto.VoteCounts{}, ErrInvalidVoteType
	}

	var counts dto.VoteCounts
	err := v.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Items().GetByID(ctx, itemID); err != nil {
			if notFound(err) {
				return domain.ErrItemNotFound
			}
			return err
		}
		if _, err := tx.Accounts().GetByID(ctx, accountID); err != nil {
			if notFound(err) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		existing, err := tx.Votes().Get(ctx, accountID, itemID)
		switch {
		case err == nil:
			// Same type is idempotent: no write, counters unchanged.
			if existing.Type != t {
				if err := tx.Votes().SetType(ctx, existing.ID, t); err != nil {
					return err
				}
			}
		case notFound(err):
			now := v.now()
			if err := tx.Votes().Create(ctx, &domain.Vote{
				AccountID: accountID,
				ItemID:    itemID,
				Type:      t,
				CreatedAt: now,
				UpdatedAt: now,
			}); err != nil {
				return err
			}
		default:
			return err
		}

		likes, err := tx.Votes().CountByType(ctx, itemID, domain.VoteLike)
		if err != nil {
			return err
		}
		dislikes, err := tx.Votes().CountByType(ctx, itemID, domain.VoteDislike)
		if err != nil {
			return err
		}
		if err := tx.Items().SetCounters(ctx, itemID, int(likes), int(dislikes)); err != nil {
			return err
		}
		counts = dto.VoteCounts{Likes: int(likes), Dislikes: int(dislikes)}
		return nil
	})
	if err != nil {
		switch err {
		case domain.ErrItemNotFound:
			result = "item_not_found"
		case domain.ErrAccountNotFound:
			result = "account_not_found"
		default:
			result = "failure"
		}
		return dto.VoteCounts{}, err
	}

	slog.Info("vote cast", "event", events.VoteCast{
		AccountID: accountID.String(),
		ItemID:    itemID.String(),
		Type:      string(t),
		Likes:     counts.Likes,
		Dislikes:  counts.Dislikes,
		At:        v.now(),
	})

	return counts, nil
}

func (v *VoteServiceImpl) Current(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID) (domain.VoteType, error) {
	var t domain.VoteType
	err := v.Store.WithTx(ctx, func(tx storeTx) error {
		vote, err := tx.Votes().Get(ctx, accountID, itemID)
		if err != nil {
			if notFound(err) {
				return nil // no vote yet
			}
			return err
		}
		t = vote.Type
		return nil
	})
	if err != nil {
		return "", err
	}
	return t, nil
}
