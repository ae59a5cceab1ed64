package commands

import (
	"context"

	"salon-booking/internal/domain/user"
)

// TokenIssuer signs access tokens for authenticated accounts.
type TokenIssuer interface {
	GenerateToken(userID int64, role user.Role) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type EmailSender interface {
	Enabled() bool
	SendEmail(ctx context.Context, toName, toEmail, subject, body string) error
}

type SMSSender interface {
	Enabled() bool
	SendSMS(ctx context.Context, to, body string) error
}

// TableExporter writes a full copy of the application tables under the given backup name.
type TableExporter interface {
	Export(ctx context.Context, backupName string) (int64, error)
}
