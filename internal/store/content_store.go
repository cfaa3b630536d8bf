package store

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentStore struct{ db *gorm.DB }

func (s *Store) Content() *ContentStore { return &ContentStore{db: s.DB} }

func (c *ContentStore) ListSlides(ctx context.Context) ([]domain.CarouselSlide, error) {
	var slides []domain.CarouselSlide
	err := c.db.WithContext(ctx).Order("position ASC").Find(&slides).Error
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (c *ContentStore) GetSlide(ctx context.Context, id uuid.UUID) (*domain.CarouselSlide, error) {
	var slide domain.CarouselSlide
	if err := c.db.WithContext(ctx).First(&slide, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &slide, nil
}

func (c *ContentStore) SaveSlide(ctx context.Context, slide *domain.CarouselSlide) error {
	if slide.ID == uuid.Nil {
		slide.ID = uuid.New()
	}
	return c.db.WithContext(ctx).Save(slide).Error
}

func (c *ContentStore) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CarouselSlide{}).Error
}

func (c *ContentStore) GetContent(ctx context.Context, key string) (*domain.SiteContent, error) {
	var content domain.SiteContent
	if err := c.db.WithContext(ctx).First(&content, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &content, nil
}

func (c *ContentStore) UpsertContent(ctx context.Context, content *domain.SiteContent) error {
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(content).Error
}
