package store

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PendingStore struct{ db *gorm.DB }

func (s *Store) Pending() *PendingStore { return &PendingStore{db: s.DB} }

func (p *PendingStore) Create(ctx context.Context, reg *domain.PendingRegistration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	return p.db.WithContext(ctx).Create(reg).Error
}

// LatestByEmail returns the most recently created pending registration for
// the email; that row is the authoritative one when duplicates exist.
func (p *PendingStore) LatestByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	var reg domain.PendingRegistration
	err := p.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&reg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// DeleteByEmail consumes every pending registration for the email, including
// superseded duplicates.
func (p *PendingStore) DeleteByEmail(ctx context.Context, email string) error {
	return p.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&domain.PendingRegistration{}).Error
}
