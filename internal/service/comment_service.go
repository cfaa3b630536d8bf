package service

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

type CommentService interface {
	ListByItem(ctx context.Context, itemID domain.ItemID) ([]domain.Comment, error)
	// Create needs no authentication; an empty author becomes "Anonymous".
	Create(ctx context.Context, itemID domain.ItemID, in dto.CommentInput) (*domain.Comment, error)
	// Delete is restricted to privileged accounts.
	Delete(ctx context.Context, actor *domain.Account, id domain.CommentID) error
}
