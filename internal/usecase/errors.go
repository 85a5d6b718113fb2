package usecase

import (
	"errors"

	crerrors "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrEventLocked  = errors.New("event is locked")
	ErrStoreFailure = errors.New("store failure")
)

// storeError wraps a repository error with op and marks it as a store
// failure, unless the repository reported a domain rule violation.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, team.ErrRosterConflict) || errors.Is(err, event.ErrShareCodeTaken) {
		return crerrors.Wrap(err, op)
	}
	return crerrors.Mark(crerrors.Wrap(err, op), ErrStoreFailure)
}

// IsStoreFailure reports whether err came from a failing store.
func IsStoreFailure(err error) bool {
	return crerrors.Is(err, ErrStoreFailure)
}
