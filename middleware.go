package peepsgo

import (
	"context"
	"errors"
	"io"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

//
// Validation middleware
//

// validationMiddleware guards the storage layers from malformed input.
// Rejections stay local to the service; nothing reaches the repository.
type validationMiddleware struct {
	next Service
}

var (
	_ Service = (*validationMiddleware)(nil)
)

func NewValidationMiddleware() Middleware {
	return func(next Service) Service {
		return &validationMiddleware{next: next}
	}
}

func validateAttrs(attrs map[string]interface{}) error {
	if _, ok := attrs[PeepIDKey]; ok {
		return ErrBadRequest{Fields: map[string]string{PeepIDKey: "reserved field"}}
	}
	return nil
}

func (v *validationMiddleware) ListAccounts(ctx context.Context) ([]Account, error) {
	return v.next.ListAccounts(ctx)
}

func (v *validationMiddleware) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	return v.next.GetAccount(ctx, accountID)
}

func (v *validationMiddleware) CreateAccount(ctx context.Context) (*Account, error) {
	return v.next.CreateAccount(ctx)
}

func (v *validationMiddleware) DeleteAllAccounts(ctx context.Context) error {
	return v.next.DeleteAllAccounts(ctx)
}

func (v *validationMiddleware) DeleteAccount(ctx context.Context, accountID string) error {
	return v.next.DeleteAccount(ctx, accountID)
}

func (v *validationMiddleware) ListPeeps(ctx context.Context, accountID string) ([]Peep, error) {
	return v.next.ListPeeps(ctx, accountID)
}

func (v *validationMiddleware) GetPeep(ctx context.Context, accountID, peepID string) (Peep, error) {
	return v.next.GetPeep(ctx, accountID, peepID)
}

func (v *validationMiddleware) CreatePeep(ctx context.Context, accountID string, attrs map[string]interface{}) (Peep, error) {
	if err := validateAttrs(attrs); err != nil {
		return nil, err
	}
	return v.next.CreatePeep(ctx, accountID, attrs)
}

func (v *validationMiddleware) UpdatePeep(ctx context.Context, accountID, peepID string, attrs map[string]interface{}) (Peep, error) {
	if err := validateAttrs(attrs); err != nil {
		return nil, err
	}
	return v.next.UpdatePeep(ctx, accountID, peepID, attrs)
}

func (v *validationMiddleware) DeletePeep(ctx context.Context, accountID, peepID string) error {
	return v.next.DeletePeep(ctx, accountID, peepID)
}

func (v *validationMiddleware) DeleteAllPeeps(ctx context.Context, accountID string) error {
	return v.next.DeleteAllPeeps(ctx, accountID)
}

func (v *validationMiddleware) ExportPeeps(ctx context.Context, w io.Writer, accountID string) error {
	return v.next.ExportPeeps(ctx, w, accountID)
}

//
// Rate limiting middleware
//

// limitMiddleware bounds in-flight requests with weighted semaphores, one
// for reads and one for mutations; acquisition is bounded by the request
// context so shed requests fail instead of queueing forever.
type limitMiddleware struct {
	next   Service
	limits *ServiceLimits
}

var (
	_ Service = (*limitMiddleware)(nil)
)

type ServiceLimits struct {
	Reads  *semaphore.Weighted
	Writes *semaphore.Weighted
}

func NewServiceLimits(reads, writes int64) *ServiceLimits {
	return &ServiceLimits{
		Reads:  semaphore.NewWeighted(reads),
		Writes: semaphore.NewWeighted(writes),
	}
}

func NewLimitMiddleware(limits *ServiceLimits) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:   next,
			limits: limits,
		}
	}
}

func (l *limitMiddleware) ListAccounts(ctx context.Context) ([]Account, error) {
	if err := l.limits.Reads.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	defer l.limits.Reads.Release(1)
	return l.next.ListAccounts(ctx)
}

func (l *limitMiddleware) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	if err := l.limits.Reads.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	defer l.limits.Reads.Release(1)
	return l.next.GetAccount(ctx, accountID)
}

func (l *limitMiddleware) CreateAccount(ctx context.Context) (*Account, error) {
	if err := l.limits.Writes.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	defer l.limits.Writes.Release(1)
	return l.next.CreateAccount(ctx)
}

func (l *limitMiddleware) DeleteAllAccounts(ctx context.Context) error {
	if err := l.limits.Writes.Acquire(ctx, 1); err != nil {
		return ErrInternalServer
	}
	defer l.limits.Writes.Release(1)
	return l.next.DeleteAllAccounts(ctx)
}

func (l *limitMiddleware) DeleteAccount(ctx context.Context, accountID string) error {
	if err := l.limits.Writes.Acquire(ctx, 1); err != nil {
		return ErrInternalServer
	}
	defer l.limits.Writes.Release(1)
	return l.next.DeleteAccount(ctx, accountID)
}

func (l *limitMiddleware) ListPeeps(ctx context.Context, accountID string) ([]Peep, error) {
	if err := l.limits.Reads.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	defer l.limits.Reads.Release(1)
	return l.next.ListPeeps(ctx, accountID)
}

func (l *limitMiddleware) GetPeep(ctx context.Context, accountID, peepID string) (Peep, error) {
	if err := l.limits.Reads.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	defer l.limits.Reads.Release(1)
	return l.next.GetPeep(ctx, accountID, peepID)
}

func (l *limitMiddleware) CreatePeep(ctx context.Context, accountID string, attrs map[string]interface{}) (Peep, error) {
	if err := l.limits.Writes.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	defer l.limits.Writes.Release(1)
	return l.next.CreatePeep(ctx, accountID, attrs)
}

func (l *limitMiddleware) UpdatePeep(ctx context.Context, accountID, peepID string, attrs map[string]interface{}) (Peep, error) {
	if err := l.limits.Writes.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	defer l.limits.Writes.Release(1)
	return l.next.UpdatePeep(ctx, accountID, peepID, attrs)
}

func (l *limitMiddleware) DeletePeep(ctx context.Context, accountID, peepID string) error {
	if err := l.limits.Writes.Acquire(ctx, 1); err != nil {
		return ErrInternalServer
	}
	defer l.limits.Writes.Release(1)
	return l.next.DeletePeep(ctx, accountID, peepID)
}

func (l *limitMiddleware) DeleteAllPeeps(ctx context.Context, accountID string) error {
	if err := l.limits.Writes.Acquire(ctx, 1); err != nil {
		return ErrInternalServer
	}
	defer l.limits.Writes.Release(1)
	return l.next.DeleteAllPeeps(ctx, accountID)
}

func (l *limitMiddleware) ExportPeeps(ctx context.Context, w io.Writer, accountID string) error {
	if err := l.limits.Reads.Acquire(ctx, 1); err != nil {
		return ErrInternalServer
	}
	defer l.limits.Reads.Release(1)
	return l.next.ExportPeeps(ctx, w, accountID)
}

//
// Circuit breaker middleware
//

type ServiceBreaker struct {
	Storage *gobreaker.TwoStepCircuitBreaker[any]
}

func NewServiceBreaker(st gobreaker.Settings) *ServiceBreaker {
	return &ServiceBreaker{
		Storage: gobreaker.NewTwoStepCircuitBreaker[any](st),
	}
}

// circuitBreakMiddleware trips on storage failures only; NotFound and
// BadRequest outcomes count as successes so client mistakes cannot open
// the breaker.
type circuitBreakMiddleware struct {
	next  Service
	brkrs *ServiceBreaker
}

var (
	_ Service = (*circuitBreakMiddleware)(nil)
)

func NewCircuitBreakMiddleware(brkrs *ServiceBreaker) Middleware {
	return func(next Service) Service {
		return &circuitBreakMiddleware{
			next:  next,
			brkrs: brkrs,
		}
	}
}

func storageOK(err error) bool {
	return !errors.Is(err, ErrStorageUnavailable)
}

func (c *circuitBreakMiddleware) ListAccounts(ctx context.Context) ([]Account, error) {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	accts, err := c.next.ListAccounts(ctx)
	done(storageOK(err))
	return accts, err
}

func (c *circuitBreakMiddleware) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	acct, err := c.next.GetAccount(ctx, accountID)
	done(storageOK(err))
	return acct, err
}

func (c *circuitBreakMiddleware) CreateAccount(ctx context.Context) (*Account, error) {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	acct, err := c.next.CreateAccount(ctx)
	done(storageOK(err))
	return acct, err
}

func (c *circuitBreakMiddleware) DeleteAllAccounts(ctx context.Context) error {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return ErrInternalServer
	}
	err = c.next.DeleteAllAccounts(ctx)
	done(storageOK(err))
	return err
}

func (c *circuitBreakMiddleware) DeleteAccount(ctx context.Context, accountID string) error {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return ErrInternalServer
	}
	err = c.next.DeleteAccount(ctx, accountID)
	done(storageOK(err))
	return err
}

func (c *circuitBreakMiddleware) ListPeeps(ctx context.Context, accountID string) ([]Peep, error) {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	peeps, err := c.next.ListPeeps(ctx, accountID)
	done(storageOK(err))
	return peeps, err
}

func (c *circuitBreakMiddleware) GetPeep(ctx context.Context, accountID, peepID string) (Peep, error) {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	peep, err := c.next.GetPeep(ctx, accountID, peepID)
	done(storageOK(err))
	return peep, err
}

func (c *circuitBreakMiddleware) CreatePeep(ctx context.Context, accountID string, attrs map[string]interface{}) (Peep, error) {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	peep, err := c.next.CreatePeep(ctx, accountID, attrs)
	done(storageOK(err))
	return peep, err
}

func (c *circuitBreakMiddleware) UpdatePeep(ctx context.Context, accountID, peepID string, attrs map[string]interface{}) (Peep, error) {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	peep, err := c.next.UpdatePeep(ctx, accountID, peepID, attrs)
	done(storageOK(err))
	return peep, err
}

func (c *circuitBreakMiddleware) DeletePeep(ctx context.Context, accountID, peepID string) error {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return ErrInternalServer
	}
	err = c.next.DeletePeep(ctx, accountID, peepID)
	done(storageOK(err))
	return err
}

func (c *circuitBreakMiddleware) DeleteAllPeeps(ctx context.Context, accountID string) error {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return ErrInternalServer
	}
	err = c.next.DeleteAllPeeps(ctx, accountID)
	done(storageOK(err))
	return err
}

func (c *circuitBreakMiddleware) ExportPeeps(ctx context.Context, w io.Writer, accountID string) error {
	done, err := c.brkrs.Storage.Allow()
	if err != nil {
		return ErrInternalServer
	}
	err = c.next.ExportPeeps(ctx, w, accountID)
	done(storageOK(err))
	return err
}
