package store

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountStore struct{ db *gorm.DB }

func (s *Store) Accounts() *AccountStore { return &AccountStore{db: s.DB} }

func (a *AccountStore) Create(ctx context.Context, acc *domain.Account) error {
	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}
	return a.db.WithContext(ctx).Create(acc).Error
}

func (a *AccountStore) GetByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var acc domain.Account
	if err := a.db.WithContext(ctx).First(&acc, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (a *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var acc domain.Account
	if err := a.db.WithContext(ctx).First(&acc, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &acc, nil
}
