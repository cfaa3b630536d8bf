package domain

import "errors"

var (
	ErrInvalidDomain         = errors.New("email domain not allowed")
	ErrWeakPassword          = errors.New("password too short")
	ErrEmailTaken            = errors.New("email already registered")
	ErrNoPendingRegistration = errors.New("no pending registration")
	ErrMalformedCode         = errors.New("verification code must be 6 digits")
	ErrCodeMismatch          = errors.New("verification code mismatch")
	ErrCodeExpired           = errors.New("verification code expired")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrItemNotFound          = errors.New("item not found")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrSlideNotFound         = errors.New("carousel slide not found")
	ErrContentNotFound       = errors.New("site content not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrUnauthorized          = errors.New("privileged account required")
)
