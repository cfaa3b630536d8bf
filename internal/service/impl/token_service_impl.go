package impl

import (
	"context"
	"errors"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenConfig struct {
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	SigningKey []byte // HS256 secret
}

type AccessClaims struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Privileged bool   `json:"prv"`
	jwt.RegisteredClaims
}

// TokenServiceImpl mints and validates stateless HS256 access tokens. There
// is no refresh flow: the portal re-authenticates after AccessTTL.
type TokenServiceImpl struct {
	cfg TokenConfig
	now func() time.Time
}

var _ service.TokenService = (*TokenServiceImpl)(nil)

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{cfg: cfg, now: func() time.Time { return time.Now().UTC() }}
}

func (t *TokenServiceImpl) Issue(ctx context.Context, acc *domain.Account) (*dto.TokenResponse, error) {
	now := t.now()
	claims := AccessClaims{
		Email:      acc.Email,
		Name:       acc.Name,
		Privileged: acc.Privileged,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   acc.ID.String(),
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.SigningKey)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int64(t.cfg.AccessTTL.Seconds()),
	}, nil
}

func (t *TokenServiceImpl) Parse(ctx context.Context, token string) (domain.AccountID, error) {
	var claims AccessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.cfg.SigningKey, nil
	},
		jwt.WithIssuer(t.cfg.Issuer),
		jwt.WithAudience(t.cfg.Audience),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, domain.ErrInvalidCredentials
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidCredentials
	}
	return id, nil
}
