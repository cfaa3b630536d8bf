package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"
)

const itemDateLayout = "2006-01-02"

type CatalogServiceImpl struct {
	Store dataStore
	now   func() time.Time
}

var _ service.CatalogService = (*CatalogServiceImpl)(nil)

func NewCatalogServiceImpl(st *store.Store) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		Store: newGormStoreAdapter(st),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (c *CatalogServiceImpl) List(ctx context.Context, filter dto.ItemFilter) ([]domain.Item, error) {
	q := store.ItemQuery{}
	if filter.Category != nil {
		q.Category = *filter.Category
	}
	if from, to, ok := filter.DateRange(); ok {
		q.DateFrom, q.DateTo = from, to
	}
	var items []domain.Item
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		got, err := tx.Items().List(ctx, q)
		if err != nil {
			return err
		}
		items = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *CatalogServiceImpl) Get(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	var item *domain.Item
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		got, err := tx.Items().GetByID(ctx, id)
		if err != nil {
			if notFound(err) {
				return domain.ErrItemNotFound
			}
			return err
		}
		item = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func validateItemInput(in dto.ItemInput) (time.Time, error) {
	if strings.TrimSpace(in.Concept) == "" || in.Category == "" || in.Date == "" {
		return time.Time{}, ErrMissingFields
	}
	if !domain.ValidCategory(in.Category) {
		return time.Time{}, ErrInvalidCategory
	}
	if in.Amount <= 0 {
		return time.Time{}, ErrInvalidAmount
	}
	date, err := time.Parse(itemDateLayout, in.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func requirePrivileged(actor *domain.Account) error {
	if actor == nil || !actor.Privileged {
		return domain.ErrUnauthorized
	}
	return nil
}

func (c *CatalogServiceImpl) Create(ctx context.Context, actor *domain.Account, in dto.ItemInput) (*domain.Item, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	date, err := validateItemInput(in)
	if err != nil {
		return nil, err
	}

	now := c.now()
	item := &domain.Item{
		Concept:     strings.TrimSpace(in.Concept),
		Summary:     strings.TrimSpace(in.Summary),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = c.Store.WithTx(ctx, func(tx storeTx) error {
		return tx.Items().Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item created", "item_id", item.ID, "actor_id", actor.ID, "category", item.Category)
	return item, nil
}

func (c *CatalogServiceImpl) Update(ctx context.Context, actor *domain.Account, id domain.ItemID, in dto.ItemInput) (*domain.Item, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	date, err := validateItemInput(in)
	if err != nil {
		return nil, err
	}

	var item *domain.Item
	err = c.Store.WithTx(ctx, func(tx storeTx) error {
		got, err := tx.Items().GetByID(ctx, id)
		if err != nil {
			if notFound(err) {
				return domain.ErrItemNotFound
			}
			return err
		}
		got.Concept = strings.TrimSpace(in.Concept)
		got.Summary = strings.TrimSpace(in.Summary)
		got.Description = strings.TrimSpace(in.Description)
		got.ImageURL = strings.TrimSpace(in.ImageURL)
		got.Amount = in.Amount
		got.Category = in.Category
		got.Date = date
		got.UpdatedAt = c.now()
		if err := tx.Items().Update(ctx, got); err != nil {
			return err
		}
		item = got
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item updated", "item_id", id, "actor_id", actor.ID)
	return item, nil
}

// Delete cascades to the item's comments and votes in the same transaction.
func (c *CatalogServiceImpl) Delete(ctx context.Context, actor *domain.Account, id domain.ItemID) error {
	if err := requirePrivileged(actor); err != nil {
		return err
	}
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Items().GetByID(ctx, id); err != nil {
			if notFound(err) {
				return domain.ErrItemNotFound
			}
			return err
		}
		return tx.Items().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("item deleted", "item_id", id, "actor_id", actor.ID)
	return nil
}
