package store

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteStore struct{ db *gorm.DB }

func (s *Store) Votes() *VoteStore { return &VoteStore{db: s.DB} }

func (v *VoteStore) Get(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID) (*domain.Vote, error) {
	var vote domain.Vote
	err := v.db.WithContext(ctx).
		First(&vote, "account_id = ? AND item_id = ?", accountID, itemID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &vote, nil
}

func (v *VoteStore) Create(ctx context.Context, vote *domain.Vote) error {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	return v.db.WithContext(ctx).Create(vote).Error
}

func (v *VoteStore) SetType(ctx context.Context, id uuid.UUID, t domain.VoteType) error {
	return v.db.WithContext(ctx).Model(&domain.Vote{}).
		Where("id = ?", id).
		Update("type", t).Error
}

// CountByType recounts the ledger for one item. Counters on the item are
// always rewritten from this result, never incremented.
func (v *VoteStore) CountByType(ctx context.Context, itemID domain.ItemID, t domain.VoteType) (int64, error) {
	var total int64
	err := v.db.WithContext(ctx).Model(&domain.Vote{}).
		Where("item_id = ? AND type = ?", itemID, t).
		Count(&total).Error
	return total, err
}
