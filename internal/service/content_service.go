package service

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"

	"github.com/google/uuid"
)

// ContentService manages the editable homepage presentation: carousel slides
// and keyed text blocks. All writes require a privileged actor.
type ContentService interface {
	ListSlides(ctx context.Context) ([]domain.CarouselSlide, error)
	CreateSlide(ctx context.Context, actor *domain.Account, in dto.SlideInput) (*domain.CarouselSlide, error)
	UpdateSlide(ctx context.Context, actor *domain.Account, id uuid.UUID, in dto.SlideInput) (*domain.CarouselSlide, error)
	DeleteSlide(ctx context.Context, actor *domain.Account, id uuid.UUID) error

	GetContent(ctx context.Context, key string) (*domain.SiteContent, error)
	SetContent(ctx context.Context, actor *domain.Account, key, value string) (*domain.SiteContent, error)
}
