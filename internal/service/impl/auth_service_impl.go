package impl

import (
	"context"
	"strings"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
	"github.com/proyectocucea9-hash/proyectocucea/internal/observability/metrics"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"
)

type AuthServiceImpl struct {
	Store           dataStore
	PasswordService service.PasswordService
	TokenService    service.TokenService

	allowedDomains []string
}

var _ service.AuthService = (*AuthServiceImpl)(nil)

func NewAuthServiceImpl(st *store.Store, pw service.PasswordService, ts service.TokenService, allowedDomains []string) *AuthServiceImpl {
	return &AuthServiceImpl{
		Store:           newGormStoreAdapter(st),
		PasswordService: pw,
		TokenService:    ts,
		allowedDomains:  allowedDomains,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	result := "success"
	defer func() {
		metrics.LoginsTotal.WithLabelValues(result).Inc()
	}()

	email := normalizeEmail(req.Email)
	if !domainAllowed(email, a.allowedDomains) {
		result = "invalid_domain"
		return nil, domain.ErrInvalidDomain
	}
	if req.Password == "" {
		result = "invalid_credentials"
		return nil, domain.ErrInvalidCredentials
	}

	var tokens *dto.TokenResponse
	err := a.Store.WithTx(ctx, func(tx storeTx) error {
		acc, err := tx.Accounts().GetByEmail(ctx, email)
		if err != nil {
			// Don't leak whether the account exists.
			return domain.ErrInvalidCredentials
		}
		if !a.PasswordService.Verify(req.Password, acc) {
			return domain.ErrInvalidCredentials
		}
		tr, err := a.TokenService.Issue(ctx, acc)
		if err != nil {
			return err
		}
		tokens = tr
		return nil
	})
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			result = "invalid_credentials"
		} else {
			result = "failure"
		}
		return nil, err
	}
	return tokens, nil
}

func (a *AuthServiceImpl) AccountFromToken(ctx context.Context, token string) (*domain.Account, error) {
	id, err := a.TokenService.Parse(ctx, strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	var acc *domain.Account
	err = a.Store.WithTx(ctx, func(tx storeTx) error {
		got, err := tx.Accounts().GetByID(ctx, id)
		if err != nil {
			if notFound(err) {
				return domain.ErrAccountNotFound
			}
			return err
		}
		acc = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func domainAllowed(email string, allowed []string) bool {
	at := strings.LastIndexByte(email, '@')
	if at < 1 || at == len(email)-1 {
		return false
	}
	dom := email[at+1:]
	for _, d := range allowed {
		if strings.EqualFold(dom, d) {
			return true
		}
	}
	return false
}
