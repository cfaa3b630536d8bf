package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
	"github.com/proyectocucea9-hash/proyectocucea/internal/events"
	"github.com/proyectocucea9-hash/proyectocucea/internal/observability/metrics"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"
)

const codeLength = 6

type RegistrationServiceImpl struct {
	Store           dataStore
	PasswordService service.PasswordService
	Mailer          service.Mailer

	allowedDomains []string
	codeTTL        time.Duration
	now            func() time.Time
	genCode        func() (string, error)
}

var _ service.RegistrationService = (*RegistrationServiceImpl)(nil)

type RegistrationConfig struct {
	AllowedDomains []string
	CodeTTL        time.Duration // zero disables expiry
}

func NewRegistrationServiceImpl(st *store.Store, pw service.PasswordService, mailer service.Mailer, cfg RegistrationConfig) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		Store:           newGormStoreAdapter(st),
		PasswordService: pw,
		Mailer:          mailer,
		allowedDomains:  cfg.AllowedDomains,
		codeTTL:         cfg.CodeTTL,
		now:             func() time.Time { return time.Now().UTC() },
		genCode:         generateCode,
	}
}

// generateCode draws a uniformly random 6-digit code; leading zeros are kept.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *RegistrationServiceImpl) Submit(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	result := "success"
	defer func() {
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
	}()

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	// All validation happens before any write. The part after '@' must equal
	// a permitted domain exactly; sub-domains do not match.
	if !domainAllowed(email, r.allowedDomains) {
		result = "invalid_domain"
		return nil, domain.ErrInvalidDomain
	}
	if len(req.Password) < 8 {
		result = "weak_password"
		return nil, domain.ErrWeakPassword
	}

	// Precompute the verifier now so verification never rehashes.
	hash, salt, params, ver, err := r.PasswordService.Hash(req.Password)
	if err != nil {
		result = "failure"
		return nil, err
	}
	code, err := r.genCode()
	if err != nil {
		result = "failure"
		return nil, err
	}

	err = r.Store.WithTx(ctx, func(tx storeTx) error {
		_, err := tx.Accounts().GetByEmail(ctx, email)
		if err == nil {
			return domain.ErrEmailTaken
		}
		if !notFound(err) {
			return err
		}
		return tx.Pending().Create(ctx, &domain.PendingRegistration{
			Email:          email,
			Name:           name,
			PasswordHash:   hash,
			PasswordSalt:   salt,
			PasswordParams: params,
			PasswordVer:    ver,
			Code:           code,
			CreatedAt:      r.now(),
		})
	})
	if err != nil {
		if err == domain.ErrEmailTaken {
			result = "email_taken"
		} else {
			result = "failure"
		}
		return nil, err
	}

	// Fire-and-forget: delivery failure is logged inside the mailer and never
	// fails the registration.
	r.Mailer.SendVerificationCode(ctx, email, code)

	slog.Info("registration submitted", "event", events.RegistrationSubmitted{Email: email, At: r.now()})

	return &dto.RegisterResponse{Email: email, RequiresVerification: true}, nil
}

func validCodeFormat(code string) bool {
	if len(code) != codeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func (r *RegistrationServiceImpl) Verify(ctx context.Context, email, code string) (*domain.Account, error) {
	result := "success"
	defer func() {
		metrics.VerificationsTotal.WithLabelValues(result).Inc()
	}()

	email = normalizeEmail(email)
	if !validCodeFormat(code) {
		result = "malformed_code"
		return nil, domain.ErrMalformedCode
	}

	var account *domain.Account
	err := r.Store.WithTx(ctx, func(tx storeTx) error {
		// The newest pending row is the single authoritative code source;
		// older duplicates for the email are superseded.
		reg, err := tx.Pending().LatestByEmail(ctx, email)
		if err != nil {
			if notFound(err) {
				return domain.ErrNoPendingRegistration
			}
			return err
		}
		if subtle.ConstantTimeCompare([]byte(reg.Code), []byte(code)) != 1 {
			return domain.ErrCodeMismatch
		}
		if r.codeTTL > 0 && r.now().Sub(reg.CreatedAt) > r.codeTTL {
			return domain.ErrCodeExpired
		}

		acc := &domain.Account{
			Email:          reg.Email,
			Name:           reg.Name,
			PasswordHash:   reg.PasswordHash,
			PasswordSalt:   reg.PasswordSalt,
			PasswordParams: reg.PasswordParams,
			PasswordVer:    reg.PasswordVer,
			Privileged:     true,
			CreatedAt:      r.now(),
		}
		if err := tx.Accounts().Create(ctx, acc); err != nil {
			return err
		}
		if err := tx.Pending().DeleteByEmail(ctx, email); err != nil {
			return err
		}
		account = acc
		return nil
	})
	if err != nil {
		switch err {
		case domain.ErrNoPendingRegistration:
			result = "no_pending"
		case domain.ErrCodeMismatch:
			result = "code_mismatch"
		case domain.ErrCodeExpired:
			result = "code_expired"
		default:
			result = "failure"
		}
		return nil, err
	}

	slog.Info("account verified", "event", events.AccountVerified{
		AccountID: account.ID.String(),
		Email:     account.Email,
		At:        r.now(),
	})

	return account, nil
}
