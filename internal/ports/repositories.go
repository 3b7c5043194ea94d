package ports

import (
	"context"

	"github.com/ecotrack/core/internal/domain/entities"
)

// ActionRepository defines the interface for action data operations.
// Implementations own the backing collection exclusively: every mutating
// operation must be serialized against every other mutation, and readers
// must never observe a partially written collection.
type ActionRepository interface {
	// List returns all actions in insertion order. An absent or empty
	// backing store yields an empty slice, not an error.
	List(ctx context.Context) ([]entities.Action, error)

	// GetByID returns the action with the given id, or
	// entities.ErrActionNotFound.
	GetByID(ctx context.Context, id int) (*entities.Action, error)

	// Create assigns the next id, appends the action and persists the
	// whole collection. The returned record carries the assigned id.
	Create(ctx context.Context, action *entities.Action) (*entities.Action, error)

	// Update applies a mutation to the stored record with the given id and
	// persists the collection, preserving order, or returns
	// entities.ErrActionNotFound. The mutation runs inside the same
	// exclusive critical section as the read and the write, so concurrent
	// updates never lose each other's fields. The record's id is immutable;
	// changes to it are discarded.
	Update(ctx context.Context, id int, apply func(*entities.Action)) (*entities.Action, error)

	// Delete removes the record with the given id and persists the
	// remaining collection, or returns entities.ErrActionNotFound.
	Delete(ctx context.Context, id int) error
}
