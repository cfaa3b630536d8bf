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

const anonymousAuthor = "Anonymous"

type CommentServiceImpl struct {
	Store dataStore
	now   func() time.Time
}

var _ service.CommentService = (*CommentServiceImpl)(nil)

func NewCommentServiceImpl(st *store.Store) *CommentServiceImpl {
	return &CommentServiceImpl{
		Store: newGormStoreAdapter(st),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (c *CommentServiceImpl) ListByItem(ctx context.Context, itemID domain.ItemID) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Items().GetByID(ctx, itemID); err != nil {
			if notFound(err) {
				return domain.ErrItemNotFound
			}
			return err
		}
		got, err := tx.Comments().ListByItem(ctx, itemID)
		if err != nil {
			return err
		}
		comments = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Create requires no authentication; visitors comment freely.
func (c *CommentServiceImpl) Create(ctx context.Context, itemID domain.ItemID, in dto.CommentInput) (*domain.Comment, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = anonymousAuthor
	}

	comment := &domain.Comment{
		ItemID:    itemID,
		Author:    author,
		Body:      body,
		CreatedAt: c.now(),
	}
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Items().GetByID(ctx, itemID); err != nil {
			if notFound(err) {
				return domain.ErrItemNotFound
			}
			return err
		}
		return tx.Comments().Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *CommentServiceImpl) Delete(ctx context.Context, actor *domain.Account, id domain.CommentID) error {
	if err := requirePrivileged(actor); err != nil {
		return err
	}
	err := c.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Comments().GetByID(ctx, id); err != nil {
			if notFound(err) {
				return domain.ErrCommentNotFound
			}
			return err
		}
		return tx.Comments().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("comment deleted", "comment_id", id, "actor_id", actor.ID)
	return nil
}
