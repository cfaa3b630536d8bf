package service

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

type CatalogService interface {
	List(ctx context.Context, filter dto.ItemFilter) ([]domain.Item, error)
	Get(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	Create(ctx context.Context, actor *domain.Account, in dto.ItemInput) (*domain.Item, error)
	Update(ctx context.Context, actor *domain.Account, id domain.ItemID, in dto.ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, actor *domain.Account, id domain.ItemID) error
}
