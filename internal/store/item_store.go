package store

import (
	"context"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemStore struct{ db *gorm.DB }

func (s *Store) Items() *ItemStore { return &ItemStore{db: s.DB} }

// ItemQuery holds the optional catalog filters. Zero-value fields are
// ignored.
type ItemQuery struct {
	Category string
	DateFrom time.Time
	DateTo   time.Time
}

func (i *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return i.db.WithContext(ctx).Create(item).Error
}

func (i *ItemStore) GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	var item domain.Item
	if err := i.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List orders by likes, then by effective date, both descending.
func (i *ItemStore) List(ctx context.Context, q ItemQuery) ([]domain.Item, error) {
	db := i.db.WithContext(ctx).Model(&domain.Item{})
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if !q.DateFrom.IsZero() {
		db = db.Where("date >= ?", q.DateFrom)
	}
	if !q.DateTo.IsZero() {
		db = db.Where("date <= ?", q.DateTo)
	}
	var items []domain.Item
	if err := db.Order("likes DESC, date DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (i *ItemStore) Update(ctx context.Context, item *domain.Item) error {
	return i.db.WithContext(ctx).Save(item).Error
}

func (i *ItemStore) SetCounters(ctx context.Context, id domain.ItemID, likes, dislikes int) error {
	return i.db.WithContext(ctx).Model(&domain.Item{}).
		Where("id = ?", id).
		Updates(map[string]any{"likes": likes, "dislikes": dislikes}).Error
}

// Delete removes the item together with its comments and votes. Callers are
// expected to run it inside Store.WithTx.
func (i *ItemStore) Delete(ctx context.Context, id domain.ItemID) error {
	db := i.db.WithContext(ctx)
	if err := db.Where("item_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	if err := db.Where("item_id = ?", id).Delete(&domain.Vote{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&domain.Item{}).Error
}
