package peepsgo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Repository owns the read-modify-write protocol against the persistent
// store for an account document and its embedded peep sequence.
//
// ReplacePeeps is the only write path for peep-level changes: callers read
// the current account, compute the new sequence in memory, and write the
// whole sequence back.
type Repository interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	CreateAccount(ctx context.Context, accountID string) (*Account, error)
	DeleteAllAccounts(ctx context.Context) error
	DeleteAccount(ctx context.Context, accountID string) error
	ReplacePeeps(ctx context.Context, accountID string, peeps []Peep) error
}

// NewEndpoint builds the storage backend named by the configuration.
func NewEndpoint(ctx context.Context, cfg *Config, log *zerolog.Logger) (Repository, error) {
	switch cfg.Database.Driver {
	case "mongo":
		return NewMongoEndpoint(ctx, cfg.Database.ConnStr, cfg.Database.Name, log)
	case "postgres":
		return NewPostgresEndpoint(cfg.Database.ConnStr, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
