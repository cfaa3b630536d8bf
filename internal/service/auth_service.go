package service

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

type AuthService interface {
	// Login verifies the credentials and mints an access token. The same
	// institutional-domain gate applied at registration applies here.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)

	// AccountFromToken resolves a bearer token back to its account.
	AccountFromToken(ctx context.Context, token string) (*domain.Account, error)
}
