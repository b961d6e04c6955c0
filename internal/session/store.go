package session

import (
	"context"
	"errors"

	"github.com/spec-kit/agent-console/internal/domain"
)

// ErrNotFound is returned when no session exists for the given id.
var ErrNotFound = errors.New("session not found")

// Store keeps console sessions between requests. Sessions used to live
// in browser local storage; they are now server-side typed state keyed
// by session id.
type Store interface {
	Put(ctx context.Context, session *domain.ConsoleSession) error
	Get(ctx context.Context, id string) (*domain.ConsoleSession, error)
	Delete(ctx context.Context, id string) error
}
