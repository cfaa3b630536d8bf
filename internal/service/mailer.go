package service

import "context"

// Mailer delivers best-effort, fire-and-forget mail. Implementations must
// never block the caller on network I/O and never surface delivery errors.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string)
}
