package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const accountColumns = `id, name, email, password_hash, role, phone, is_active, last_login, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (Account, error) {
	var i Account
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.Phone,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createAccount = `
INSERT INTO accounts (name, email, password_hash, role, phone, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + accountColumns

type CreateAccountParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        pgtype.Text
	IsActive     bool
}

func (q *Queries) CreateAccount(ctx context.Context, db DBTX, arg CreateAccountParams) (Account, error) {
	row := db.QueryRow(ctx, createAccount,
		arg.Name,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.Phone,
		arg.IsActive,
	)
	return scanAccount(row)
}

const getAccountByID = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

func (q *Queries) GetAccountByID(ctx context.Context, db DBTX, id int64) (Account, error) {
	return scanAccount(db.QueryRow(ctx, getAccountByID, id))
}

const getAccountByEmail = `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1)`

func (q *Queries) GetAccountByEmail(ctx context.Context, db DBTX, email string) (Account, error) {
	return scanAccount(db.QueryRow(ctx, getAccountByEmail, email))
}

const updateAccountProfile = `
UPDATE accounts
SET name = $2, email = $3, phone = $4, password_hash = $5, updated_at = NOW()
WHERE id = $1
RETURNING ` + accountColumns

type UpdateAccountProfileParams struct {
	ID           int64
	Name         string
	Email        string
	Phone        pgtype.Text
	PasswordHash string
}

func (q *Queries) UpdateAccountProfile(ctx context.Context, db DBTX, arg UpdateAccountProfileParams) (Account, error) {
	row := db.QueryRow(ctx, updateAccountProfile,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.PasswordHash,
	)
	return scanAccount(row)
}

const updateAccountLastLogin = `UPDATE accounts SET last_login = NOW() WHERE id = $1`

func (q *Queries) UpdateAccountLastLogin(ctx context.Context, db DBTX, id int64) error {
	_, err := db.Exec(ctx, updateAccountLastLogin, id)
	return err
}

const createLoginLog = `
INSERT INTO login_logs (user_id, ip_address, user_agent)
VALUES ($1, $2, $3)`

type CreateLoginLogParams struct {
	UserID    int64
	IpAddress string
	UserAgent string
}

func (q *Queries) CreateLoginLog(ctx context.Context, db DBTX, arg CreateLoginLogParams) error {
	_, err := db.Exec(ctx, createLoginLog, arg.UserID, arg.IpAddress, arg.UserAgent)
	return err
}

const listLoginLogsByUser = `
SELECT id, user_id, ip_address, user_agent, login_time
FROM login_logs
WHERE user_id = $1
ORDER BY login_time DESC, id DESC
LIMIT $2`

type ListLoginLogsByUserParams struct {
	UserID int64
	Limit  int32
}

func (q *Queries) ListLoginLogsByUser(ctx context.Context, db DBTX, arg ListLoginLogsByUserParams) ([]LoginLog, error) {
	rows, err := db.Query(ctx, listLoginLogsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []LoginLog{}
	for rows.Next() {
		var i LoginLog
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.IpAddress,
			&i.UserAgent,
			&i.LoginTime,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
