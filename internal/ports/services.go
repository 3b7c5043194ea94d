package ports

import (
	"context"

	"github.com/ecotrack/core/internal/domain/entities"
)

// ActionService defines the interface for action business operations
type ActionService interface {
	ListActions(ctx context.Context) ([]entities.Action, error)
	GetAction(ctx context.Context, id int) (*entities.Action, error)
	CreateAction(ctx context.Context, req CreateActionRequest) (*entities.Action, error)
	UpdateAction(ctx context.Context, id int, req UpdateActionRequest, partial bool) (*entities.Action, error)
	DeleteAction(ctx context.Context, id int) error
}

// CreateActionRequest is the payload for creating an action
type CreateActionRequest struct {
	Action string `json:"action" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Points *int   `json:"points" validate:"required"`
}

// UpdateActionRequest is the payload for updating an action. Nil fields
// are "not supplied": a full update requires all of them, a partial update
// merges only the ones present.
type UpdateActionRequest struct {
	Action *string `json:"action"`
	Date   *string `json:"date"`
	Points *int    `json:"points"`
}
