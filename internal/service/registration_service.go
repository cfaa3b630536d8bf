package service

import (
	"context"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

// RegistrationService gates account creation behind proof of control over an
// institutional email address.
type RegistrationService interface {
	// Submit validates the request, stores a pending registration with a
	// one-time 6-digit code and hands the code to the mailer. The account
	// itself is not created yet.
	Submit(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)

	// Verify promotes the newest pending registration for the email into an
	// account when the code matches, consuming the pending rows atomically.
	Verify(ctx context.Context, email, code string) (*domain.Account, error)
}
