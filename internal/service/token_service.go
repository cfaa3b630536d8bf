package service

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

type TokenService interface {
	Issue(ctx context.Context, acc *domain.Account) (*dto.TokenResponse, error)
	// Parse validates the signed token and returns the subject account ID.
	Parse(ctx context.Context, token string) (domain.AccountID, error)
}
