package impl

import (
	"context"
	"strings"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"

	"github.com/google/uuid"
)

type ContentServiceImpl struct {
	Store dataStore
	now   func() time.Time
}

var _ service.ContentService = (*ContentServiceImpl)(nil)

func NewContentServiceImpl(st *store.Store) *ContentServiceImpl {
	return &ContentServiceImpl{
		Store: newGormStoreAdapter(st),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (c *ContentServiceImpl) ListSlides(ctx context.Context) ([]domain.CarouselSlide, error) {
	var slides []domain.CarouselSlide
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		got, err := tx.Content().ListSlides(ctx)
		if err != nil {
			return err
		}
		slides = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (c *ContentServiceImpl) CreateSlide(ctx context.Context, actor *domain.Account, in dto.SlideInput) (*domain.CarouselSlide, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, ErrEmptyImageURL
	}
	slide := &domain.CarouselSlide{
		Position:  in.Position,
		ImageURL:  strings.TrimSpace(in.ImageURL),
		AltText:   strings.TrimSpace(in.AltText),
		UpdatedAt: c.now(),
	}
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		return tx.Content().SaveSlide(ctx, slide)
	})
	if err != nil {
		return nil, err
	}
	return slide, nil
}

func (c *ContentServiceImpl) UpdateSlide(ctx context.Context, actor *domain.Account, id uuid.UUID, in dto.SlideInput) (*domain.CarouselSlide, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, ErrEmptyImageURL
	}
	var slide *domain.CarouselSlide
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		got, err := tx.Content().GetSlide(ctx, id)
		if err != nil {
			if notFound(err) {
				return domain.ErrSlideNotFound
			}
			return err
		}
		got.Position = in.Position
		got.ImageURL = strings.TrimSpace(in.ImageURL)
		got.AltText = strings.TrimSpace(in.AltText)
		got.UpdatedAt = c.now()
		if err := tx.Content().SaveSlide(ctx, got); err != nil {
			return err
		}
		slide = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slide, nil
}

func (c *ContentServiceImpl) DeleteSlide(ctx context.Context, actor *domain.Account, id uuid.UUID) error {
	if err := requirePrivileged(actor); err != nil {
		return err
	}
	return c.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Content().GetSlide(ctx, id); err != nil {
			if notFound(err) {
				return domain.ErrSlideNotFound
			}
			return err
		}
		return tx.Content().DeleteSlide(ctx, id)
	})
}

func (c *ContentServiceImpl) GetContent(ctx context.Context, key string) (*domain.SiteContent, error) {
	var content *domain.SiteContent
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		got, err := tx.Content().GetContent(ctx, key)
		if err != nil {
			if notFound(err) {
				return domain.ErrContentNotFound
			}
			return err
		}
		content = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}

func (c *ContentServiceImpl) SetContent(ctx context.Context, actor *domain.Account, key, value string) (*domain.SiteContent, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyContentKey
	}
	content := &domain.SiteContent{
		Key:       key,
		Value:     value,
		UpdatedAt: c.now(),
	}
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		return tx.Content().UpsertContent(ctx, content)
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}
