package store

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentStore struct{ db *gorm.DB }

func (s *Store) Comments() *CommentStore { return &CommentStore{db: s.DB} }

func (c *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return c.db.WithContext(ctx).Create(comment).Error
}

func (c *CommentStore) GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := c.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (c *CommentStore) ListByItem(ctx context.Context, itemID domain.ItemID) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *CommentStore) Delete(ctx context.Context, id domain.CommentID) error {
	return c.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{}).Error
}
