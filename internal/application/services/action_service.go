package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/ecotrack/core/internal/domain/entities"
	"github.com/ecotrack/core/internal/infrastructure/logger"
	"github.com/ecotrack/core/internal/ports"
)

// Validation messages, matching the wording the API has always used.
const (
	msgFieldRequired = "This field is required."
	msgActionBlank   = "Action cannot be empty."
	msgActionTooLong = "Ensure this field has no more than 255 characters."
	msgDateFormat    = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgDateFuture    = "Date cannot be in the future."
	msgPointsInvalid = "Points must be a positive integer."
)

// ActionService handles action-related operations
type ActionService struct {
	repo     ports.ActionRepository
	validate *validator.Validate
	logger   *logger.Logger
}

// NewActionService creates a new action service
func NewActionService(repo ports.ActionRepository, appLogger *logger.Logger) *ActionService {
	return &ActionService{
		repo:     repo,
		validate: validator.New(),
		logger:   appLogger,
	}
}

// ListActions returns all actions in insertion order
func (s *ActionService) ListActions(ctx context.Context) ([]entities.Action, error) {
	actions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	return actions, nil
}

// GetAction retrieves an action by ID
func (s *ActionService) GetAction(ctx context.Context, id int) (*entities.Action, error) {
	action, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return action, nil
}

// CreateAction validates the request, assigns an id and persists the record
func (s *ActionService) CreateAction(ctx context.Context, req ports.CreateActionRequest) (*entities.Action, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	action := &entities.Action{
		Action: strings.TrimSpace(req.Action),
		Date:   req.Date,
		Points: *req.Points,
	}

	created, err := s.repo.Create(ctx, action)
	if err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}

	s.logger.Info("Action created", "action_id", created.ID, "points", created.Points)

	return created, nil
}

// UpdateAction validates the supplied fields and replaces or merges the
// stored record. A full update requires every field; a partial update only
// touches the fields present in the request. The id never changes.
func (s *ActionService) UpdateAction(ctx context.Context, id int, req ports.UpdateActionRequest, partial bool) (*entities.Action, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.validateUpdate(req, partial); err != nil {
		return nil, err
	}

	// The merge runs inside the repository's critical section so a
	// concurrent update to a different field is never overwritten with a
	// stale value.
	updated, err := s.repo.Update(ctx, id, func(action *entities.Action) {
		if req.Action != nil {
			action.Action = strings.TrimSpace(*req.Action)
		}
		if req.Date != nil {
			action.Date = *req.Date
		}
		if req.Points != nil {
			action.Points = *req.Points
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update action: %w", err)
	}

	s.logger.Info("Action updated", "action_id", updated.ID, "partial", partial)

	return updated, nil
}

// DeleteAction removes an action
func (s *ActionService) DeleteAction(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Action deleted", "action_id", id)

	return nil
}

// validateCreate applies the full field constraints to a create request
func (s *ActionService) validateCreate(req ports.CreateActionRequest) error {
	ve := entities.NewValidationError()

	s.collectStructErrors(ve, req)

	if req.Action != "" {
		s.checkActionValue(ve, req.Action)
	}
	if req.Date != "" {
		s.checkDateValue(ve, req.Date)
	}
	if req.Points != nil {
		s.checkPointsValue(ve, *req.Points)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// validateUpdate applies constraints to the supplied fields; with
// partial=false every field must be present
func (s *ActionService) validateUpdate(req ports.UpdateActionRequest, partial bool) error {
	ve := entities.NewValidationError()

	if !partial {
		if req.Action == nil {
			ve.Add("action", msgFieldRequired)
		}
		if req.Date == nil {
			ve.Add("date", msgFieldRequired)
		}
		if req.Points == nil {
			ve.Add("points", msgFieldRequired)
		}
	}

	if req.Action != nil {
		if *req.Action == "" {
			ve.Add("action", msgActionBlank)
		} else {
			s.checkActionValue(ve, *req.Action)
		}
	}
	if req.Date != nil {
		if *req.Date == "" {
			ve.Add("date", msgFieldRequired)
		} else {
			s.checkDateValue(ve, *req.Date)
		}
	}
	if req.Points != nil {
		s.checkPointsValue(ve, *req.Points)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// collectStructErrors translates validator tag failures into field messages
func (s *ActionService) collectStructErrors(ve *entities.ValidationError, req interface{}) {
	err := s.validate.Struct(req)
	if err == nil {
		return
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failure outside tag validation; surface it on a
		// catch-all key so it is never silently dropped.
		ve.Add("non_field_errors", err.Error())
		return
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			ve.Add(field, msgFieldRequired)
		default:
			ve.Add(field, fmt.Sprintf("Invalid value for constraint %q.", fe.Tag()))
		}
	}
}

func (s *ActionService) checkActionValue(ve *entities.ValidationError, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		ve.Add("action", msgActionBlank)
		return
	}
	// Length counts characters, not bytes, so multibyte text is not
	// penalized.
	if utf8.RuneCountInString(trimmed) > entities.ActionMaxLength {
		ve.Add("action", msgActionTooLong)
	}
}

func (s *ActionService) checkDateValue(ve *entities.ValidationError, value string) {
	parsed, err := time.Parse(entities.DateLayout, value)
	if err != nil {
		ve.Add("date", msgDateFormat)
		return
	}

	// Dates parse as UTC midnight, so "today" is computed in UTC as well.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.After(today) {
		ve.Add("date", msgDateFuture)
	}
}

func (s *ActionService) checkPointsValue(ve *entities.ValidationError, value int) {
	if value <= 0 {
		ve.Add("points", msgPointsInvalid)
	}
}
