package peepsgo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var (
	pgListAccountsSQL = `
		SELECT account_id, peeps
		FROM accounts;
	`

	pgGetAccountSQL = `
		SELECT peeps
		FROM accounts
		WHERE account_id = $1;
	`

	pgInsertAccountSQL = `
		INSERT INTO accounts (account_id, peeps)
		VALUES ($1, '[]'::jsonb);
	`

	pgDeleteAllAccountsSQL = `
		DELETE FROM accounts;
	`

	pgDeleteAccountSQL = `
		DELETE FROM accounts
		WHERE account_id = $1;
	`

	pgReplacePeepsSQL = `
		UPDATE accounts
		SET peeps = $1
		WHERE account_id = $2;
	`
)

// PostgresEndpoint is the alternate backend. It keeps the document layout:
// one row per account with the whole peep sequence in a jsonb column, so
// ReplacePeeps still swaps the sequence in one statement.
type PostgresEndpoint struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

var (
	_ Repository = (*PostgresEndpoint)(nil)
)

func NewPostgresEndpoint(connStr string, log *zerolog.Logger) (*PostgresEndpoint, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err = pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	endpt := &PostgresEndpoint{
		pool: pool,
		log:  log,
	}
	return endpt, nil
}

func (pg *PostgresEndpoint) Close() {
	pg.pool.Close()
}

func (pg *PostgresEndpoint) ListAccounts(ctx context.Context) ([]Account, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, pgListAccountsSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	accts := []Account{}
	for rows.Next() {
		var acct Account
		if err = rows.Scan(&acct.AccountID, &acct.Peeps); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if acct.Peeps == nil {
			acct.Peeps = []Peep{}
		}
		accts = append(accts, acct)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return accts, nil
}

func (pg *PostgresEndpoint) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer conn.Release()

	acct := &Account{AccountID: accountID}
	row := conn.QueryRow(ctx, pgGetAccountSQL, accountID)
	if err = row.Scan(&acct.Peeps); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound{Resource: "account", ID: accountID}
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if acct.Peeps == nil {
		acct.Peeps = []Peep{}
	}
	return acct, nil
}

func (pg *PostgresEndpoint) CreateAccount(ctx context.Context, accountID string) (*Account, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, pgInsertAccountSQL, accountID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &Account{AccountID: accountID, Peeps: []Peep{}}, nil
}

func (pg *PostgresEndpoint) DeleteAllAccounts(ctx context.Context) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, pgDeleteAllAccountsSQL); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (pg *PostgresEndpoint) DeleteAccount(ctx context.Context, accountID string) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer conn.Release()

	// absent rows delete zero rows, which is fine
	if _, err = conn.Exec(ctx, pgDeleteAccountSQL, accountID); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (pg *PostgresEndpoint) ReplacePeeps(ctx context.Context, accountID string, peeps []Peep) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer conn.Release()

	if peeps == nil {
		peeps = []Peep{}
	}
	tag, err := conn.Exec(ctx, pgReplacePeepsSQL, peeps, accountID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound{Resource: "account", ID: accountID}
	}
	return nil
}
