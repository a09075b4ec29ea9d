package peepsgo

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServer     = errors.New("internal server error")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e ErrNotFound) Error() string {
	return "record not found"
}
