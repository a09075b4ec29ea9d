package peepsgo

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// Service exposes the account and peep operations behind the HTTP layer.
// Peep mutations are composite: read the owning account, compute the new
// peep sequence in memory, write it back whole through ReplacePeeps.
type Service interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	CreateAccount(ctx context.Context) (*Account, error)
	DeleteAllAccounts(ctx context.Context) error
	DeleteAccount(ctx context.Context, accountID string) error

	ListPeeps(ctx context.Context, accountID string) ([]Peep, error)
	GetPeep(ctx context.Context, accountID, peepID string) (Peep, error)
	CreatePeep(ctx context.Context, accountID string, attrs map[string]interface{}) (Peep, error)
	UpdatePeep(ctx context.Context, accountID, peepID string, attrs map[string]interface{}) (Peep, error)
	DeletePeep(ctx context.Context, accountID, peepID string) error
	DeleteAllPeeps(ctx context.Context, accountID string) error
	ExportPeeps(ctx context.Context, w io.Writer, accountID string) error
}

func NewService(repo Repository, node *snowflake.Node, log *zerolog.Logger) (*serviceImpl, error) {
	if repo == nil || node == nil {
		return nil, errors.New("peepsgo: repository and snowflake node are required")
	}
	return &serviceImpl{
		repo:  repo,
		node:  node,
		log:   log,
		locks: make(map[string]*semaphore.Weighted),
	}, nil
}

type serviceImpl struct {
	repo Repository
	node *snowflake.Node
	log  *zerolog.Logger

	// per-account exclusive scopes held across each read-modify-write so
	// that two concurrent peep mutations on the same account cannot
	// lose each other's update
	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

var (
	_ Service = (*serviceImpl)(nil)
)

// idGenAttempts bounds the regenerate-on-collision loops. Snowflake ids
// virtually never collide; the bound keeps the loops finite anyway.
const idGenAttempts = 3

func (s *serviceImpl) acctLock(accountID string) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()
	sem, ok := s.locks[accountID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		s.locks[accountID] = sem
	}
	return sem
}

func (s *serviceImpl) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *serviceImpl) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	return s.repo.GetAccount(ctx, accountID)
}

func (s *serviceImpl) CreateAccount(ctx context.Context) (*Account, error) {
	for i := 0; i < idGenAttempts; i++ {
		id := s.node.Generate().String()
		_, err := s.repo.GetAccount(ctx, id)
		if err == nil {
			// live id, regenerate
			continue
		}
		if !errors.As(err, &ErrNotFound{}) {
			return nil, err
		}
		acct, err := s.repo.CreateAccount(ctx, id)
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("accountId", id).Msg("account created")
		return acct, nil
	}
	return nil, ErrInternalServer
}

func (s *serviceImpl) DeleteAllAccounts(ctx context.Context) error {
	return s.repo.DeleteAllAccounts(ctx)
}

func (s *serviceImpl) DeleteAccount(ctx context.Context, accountID string) error {
	return s.repo.DeleteAccount(ctx, accountID)
}

func (s *serviceImpl) ListPeeps(ctx context.Context, accountID string) ([]Peep, error) {
	acct, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return acct.Peeps, nil
}

func (s *serviceImpl) GetPeep(ctx context.Context, accountID, peepID string) (Peep, error) {
	acct, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for _, p := range acct.Peeps {
		if p.ID() == peepID {
			return p, nil
		}
	}
	return nil, ErrNotFound{Resource: "peep", ID: peepID}
}

func (s *serviceImpl) CreatePeep(ctx context.Context, accountID string, attrs map[string]interface{}) (Peep, error) {
	sem := s.acctLock(accountID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer sem.Release(1)

	acct, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	peep := Peep(attrs).clone()
	id, err := s.freshPeepID(acct.Peeps)
	if err != nil {
		return nil, err
	}
	peep[PeepIDKey] = id

	if err = s.repo.ReplacePeeps(ctx, accountID, append(acct.Peeps, peep)); err != nil {
		return nil, err
	}
	s.log.Info().Str("accountId", accountID).Str("peepId", id).Msg("peep created")
	return peep, nil
}

// freshPeepID generates an id distinct from all ids in peeps. Uniqueness is
// scoped to the owning account; the same id may exist in another account.
func (s *serviceImpl) freshPeepID(peeps []Peep) (string, error) {
	for i := 0; i < idGenAttempts; i++ {
		id := s.node.Generate().String()
		taken := false
		for _, p := range peeps {
			if p.ID() == id {
				taken = true
				break
			}
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrInternalServer
}

func (s *serviceImpl) UpdatePeep(ctx context.Context, accountID, peepID string, attrs map[string]interface{}) (Peep, error) {
	sem := s.acctLock(accountID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer sem.Release(1)

	acct, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for i, p := range acct.Peeps {
		if p.ID() != peepID {
			continue
		}
		merged := p.merge(attrs)
		acct.Peeps[i] = merged
		if err = s.repo.ReplacePeeps(ctx, accountID, acct.Peeps); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, ErrNotFound{Resource: "peep", ID: peepID}
}

func (s *serviceImpl) DeletePeep(ctx context.Context, accountID, peepID string) error {
	sem := s.acctLock(accountID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer sem.Release(1)

	acct, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	kept := make([]Peep, 0, len(acct.Peeps))
	for _, p := range acct.Peeps {
		if p.ID() != peepID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(acct.Peeps) {
		// absent peep, idempotent no-op
		return nil
	}
	return s.repo.ReplacePeeps(ctx, accountID, kept)
}

func (s *serviceImpl) DeleteAllPeeps(ctx context.Context, accountID string) error {
	sem := s.acctLock(accountID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer sem.Release(1)

	return s.repo.ReplacePeeps(ctx, accountID, []Peep{})
}
