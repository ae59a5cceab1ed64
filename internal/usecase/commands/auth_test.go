//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"
	commandsmock "salon-booking/tests/mock/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthCommands(t *testing.T) (*txMocks, *commandsmock.MockTokenIssuer, *commandsmock.MockPasswordHasher, commands.AuthCommands) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	tokens := commandsmock.NewMockTokenIssuer(ctrl)
	hasher := commandsmock.NewMockPasswordHasher(ctrl)
	return m, tokens, hasher, commands.NewAuthCommands(m.uow, tokens, hasher)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	account := builder.NewUserBuilder().BuildPersisted()
	req := commands.LoginRequest{
		Email:     "test@example.com",
		Password:  "password123",
		Role:      "user",
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8.0",
	}

	t.Run("issues a token and records the login", func(t *testing.T) {
		m, tokens, hasher, uc := newAuthCommands(t)
		m.reads.EXPECT().AccountByEmail(ctx, "test@example.com").Return(account, nil)
		hasher.EXPECT().Compare("hashed_password", "password123").Return(nil)
		tokens.EXPECT().GenerateToken(account.ID(), user.RoleCustomer).Return("signed-token", nil)
		m.accounts.EXPECT().UpdateLastLogin(ctx, nil, account.ID()).Return(nil)
		m.loginLogs.EXPECT().Create(ctx, nil, account.ID(), "10.0.0.1", "curl/8.0").Return(nil)

		got, err := uc.Login(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, &commands.LoginResult{UserID: account.ID(), Role: user.RoleCustomer, AccessToken: "signed-token"}, got)
	})

	t.Run("login log failure does not fail the login", func(t *testing.T) {
		m, tokens, hasher, uc := newAuthCommands(t)
		m.reads.EXPECT().AccountByEmail(ctx, gomock.Any()).Return(account, nil)
		hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
		tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)
		m.accounts.EXPECT().UpdateLastLogin(ctx, nil, account.ID()).Return(errors.New("connection reset"))

		got, err := uc.Login(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", got.AccessToken)
	})

	t.Run("every credential mismatch looks the same", func(t *testing.T) {
		cases := []struct {
			name  string
			setup func(m *txMocks, hasher *commandsmock.MockPasswordHasher)
			req   commands.LoginRequest
		}{
			{
				name: "unknown email",
				setup: func(m *txMocks, _ *commandsmock.MockPasswordHasher) {
					m.reads.EXPECT().AccountByEmail(ctx, gomock.Any()).
						Return(nil, infra.WrapRepoErr("account not found", pgx.ErrNoRows, infra.KindNotFound))
				},
				req: req,
			},
			{
				name: "wrong password",
				setup: func(m *txMocks, hasher *commandsmock.MockPasswordHasher) {
					m.reads.EXPECT().AccountByEmail(ctx, gomock.Any()).Return(account, nil)
					hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(errors.New("mismatch"))
				},
				req: req,
			},
			{
				name: "role mismatch",
				setup: func(m *txMocks, _ *commandsmock.MockPasswordHasher) {
					m.reads.EXPECT().AccountByEmail(ctx, gomock.Any()).Return(account, nil)
				},
				req: func() commands.LoginRequest { r := req; r.Role = "admin"; return r }(),
			},
			{
				name:  "malformed email",
				setup: func(*txMocks, *commandsmock.MockPasswordHasher) {},
				req:   func() commands.LoginRequest { r := req; r.Email = "not-an-email"; return r }(),
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				m, _, hasher, uc := newAuthCommands(t)
				tc.setup(m, hasher)

				_, err := uc.Login(ctx, tc.req)
				assert.True(t, errs.Is(err, commands.ErrInvalidCredentials), "got %v", err)
			})
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		m, _, _, uc := newAuthCommands(t)
		m.reads.EXPECT().AccountByEmail(ctx, gomock.Any()).Return(builder.NewUserBuilder().AsInactive().BuildPersisted(), nil)

		_, err := uc.Login(ctx, req)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	req := commands.RegisterRequest{
		Name:     "Mei Lin",
		Email:    "mei@example.com",
		Password: "password123",
		Role:     "user",
	}

	t.Run("creates the account with a hashed password", func(t *testing.T) {
		m, _, hasher, uc := newAuthCommands(t)
		m.reads.EXPECT().Settings(ctx).Return(settings.Defaults(), nil)
		hasher.EXPECT().Hash("password123").Return("bcrypt-hash", nil)
		m.accounts.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, u *user.User) (int64, error) {
				assert.Equal(t, "bcrypt-hash", u.PasswordHash())
				assert.Equal(t, user.RoleCustomer, u.Role())
				return 7, nil
			})

		id, err := uc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("duplicate email", func(t *testing.T) {
		m, _, hasher, uc := newAuthCommands(t)
		m.reads.EXPECT().Settings(ctx).Return(settings.Defaults(), nil)
		hasher.EXPECT().Hash(gomock.Any()).Return("bcrypt-hash", nil)
		m.accounts.EXPECT().Create(ctx, nil, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to create account", &pgconn.PgError{Code: "23505"}))

		_, err := uc.Register(ctx, req)
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("registration closed", func(t *testing.T) {
		m, _, _, uc := newAuthCommands(t)
		closed := settings.Defaults()
		closed.AllowRegistration = false
		m.reads.EXPECT().Settings(ctx).Return(closed, nil)

		_, err := uc.Register(ctx, req)
		assert.ErrorIs(t, err, commands.ErrRegistrationClosed)
	})

	t.Run("short password is a validation error", func(t *testing.T) {
		m, _, _, uc := newAuthCommands(t)
		m.reads.EXPECT().Settings(ctx).Return(settings.Defaults(), nil)
		short := req
		short.Password = "short"

		_, err := uc.Register(ctx, short)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
