package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ecotrack/core/internal/domain/entities"
	"github.com/ecotrack/core/internal/infrastructure/storage"
)

// ActionRepository implements ports.ActionRepository on top of the JSON
// backing file. Every mutation runs a full read-modify-write cycle under an
// exclusive lock; reads share a lock and rely on the store's atomic rename
// to never observe partial writes.
type ActionRepository struct {
	store *storage.Store

	mu sync.RWMutex
	// nextID is a high-water mark so ids are never reused within a process
	// lifetime, even after the highest record is deleted.
	nextID int
}

// NewActionRepository creates a new action repository
func NewActionRepository(store *storage.Store) *ActionRepository {
	return &ActionRepository{store: store}
}

// load reads and decodes the whole collection. A missing or empty file
// decodes as an empty collection.
func (r *ActionRepository) load() ([]entities.Action, error) {
	data, err := r.store.Read()
	if err != nil {
		return nil, &entities.StorageError{Op: "read", Err: err}
	}
	if len(data) == 0 {
		return []entities.Action{}, nil
	}

	var actions []entities.Action
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, &entities.StorageError{Op: "decode", Err: err}
	}
	if actions == nil {
		actions = []entities.Action{}
	}
	return actions, nil
}

// save encodes and atomically persists the whole collection
func (r *ActionRepository) save(actions []entities.Action) error {
	data, err := json.MarshalIndent(actions, "", "  ")
	if err != nil {
		return &entities.StorageError{Op: "encode", Err: err}
	}
	data = append(data, '\n')

	if err := r.store.WriteAtomic(data); err != nil {
		return &entities.StorageError{Op: "write", Err: err}
	}
	return nil
}

// List returns all actions in insertion order
func (r *ActionRepository) List(ctx context.Context) ([]entities.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load()
}

// GetByID returns the action with the given id
func (r *ActionRepository) GetByID(ctx context.Context, id int) (*entities.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range actions {
		if actions[i].ID == id {
			action := actions[i]
			return &action, nil
		}
	}

	return nil, entities.ErrActionNotFound
}

// Create assigns the next id, appends the action and persists the collection
func (r *ActionRepository) Create(ctx context.Context, action *entities.Action) (*entities.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions, err := r.load()
	if err != nil {
		return nil, err
	}

	id := 1
	for i := range actions {
		if actions[i].ID >= id {
			id = actions[i].ID + 1
		}
	}
	if id < r.nextID {
		id = r.nextID
	}
	r.nextID = id + 1

	created := *action
	created.ID = id
	actions = append(actions, created)

	if err := r.save(actions); err != nil {
		return nil, err
	}

	return &created, nil
}

// Update applies the mutation to the record with the given id, keeping its
// position. The read, the mutation and the write all happen under the
// exclusive lock, so interleaved updates cannot lose fields.
func (r *ActionRepository) Update(ctx context.Context, id int, apply func(*entities.Action)) (*entities.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range actions {
		if actions[i].ID == id {
			updated := actions[i]
			apply(&updated)
			updated.ID = id
			actions[i] = updated

			if err := r.save(actions); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}

	return nil, entities.ErrActionNotFound
}

// Delete removes the record with the given id and persists the rest
func (r *ActionRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions, err := r.load()
	if err != nil {
		return err
	}

	for i := range actions {
		if actions[i].ID == id {
			actions = append(actions[:i], actions[i+1:]...)
			return r.save(actions)
		}
	}

	return entities.ErrActionNotFound
}
