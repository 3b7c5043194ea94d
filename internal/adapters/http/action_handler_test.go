package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpHandlers "github.com/ecotrack/core/internal/adapters/http"
	"github.com/ecotrack/core/internal/adapters/repository"
	"github.com/ecotrack/core/internal/application/services"
	"github.com/ecotrack/core/internal/domain/entities"
	"github.com/ecotrack/core/internal/infrastructure/config"
	"github.com/ecotrack/core/internal/infrastructure/logger"
	"github.com/ecotrack/core/internal/infrastructure/storage"
	"github.com/ecotrack/core/internal/ports"
)

func newTestHandler(t *testing.T) *httpHandlers.ActionHandler {
	t.Helper()
	store, err := storage.New(config.StorageConfig{
		FilePath: filepath.Join(t.TempDir(), "actions_data.json"),
	})
	require.NoError(t, err)

	repo := repository.NewActionRepository(store)
	service := services.NewActionService(repo, logger.NewNop())
	return httpHandlers.NewActionHandler(service, logger.NewNop())
}

func doRequest(method, target, body string, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetPath("/api/actions/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func createOne(t *testing.T, h *httpHandlers.ActionHandler, body string) entities.Action {
	t.Helper()
	c, rec := doRequest(http.MethodPost, "/api/actions", body, "")
	require.NoError(t, h.CreateAction(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var action entities.Action
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &action))
	return action
}

func TestListActionsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	t.Run("empty store returns empty array", func(t *testing.T) {
		c, rec := doRequest(http.MethodGet, "/api/actions", "", "")
		require.NoError(t, h.ListActions(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("returns created records", func(t *testing.T) {
		createOne(t, h, `{"action":"Recycling","date":"2025-01-08","points":25}`)

		c, rec := doRequest(http.MethodGet, "/api/actions", "", "")
		require.NoError(t, h.ListActions(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var actions []entities.Action
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actions))
		require.Len(t, actions, 1)
		assert.Equal(t, "Recycling", actions[0].Action)
	})
}

func TestCreateActionEndpoint(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		h := newTestHandler(t)
		action := createOne(t, h, `{"action":"Recycling","date":"2025-01-08","points":25}`)
		assert.Equal(t, entities.Action{ID: 1, Action: "Recycling", Date: "2025-01-08", Points: 25}, action)
	})

	t.Run("validation failure returns field messages", func(t *testing.T) {
		h := newTestHandler(t)
		c, rec := doRequest(http.MethodPost, "/api/actions", `{"action":"","date":"2099-01-01","points":0}`, "")
		require.NoError(t, h.CreateAction(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string][]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
		assert.Contains(t, fields, "action")
		assert.Equal(t, []string{"Date cannot be in the future."}, fields["date"])
		assert.Equal(t, []string{"Points must be a positive integer."}, fields["points"])
	})

	t.Run("malformed json", func(t *testing.T) {
		h := newTestHandler(t)
		c, _ := doRequest(http.MethodPost, "/api/actions", `{"action":`, "")
		err := h.CreateAction(c)
		require.Error(t, err)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestGetActionEndpoint(t *testing.T) {
	h := newTestHandler(t)
	created := createOne(t, h, `{"action":"Recycling","date":"2025-01-08","points":25}`)

	t.Run("existing id", func(t *testing.T) {
		c, rec := doRequest(http.MethodGet, "/api/actions/1", "", "1")
		require.NoError(t, h.GetAction(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var action entities.Action
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &action))
		assert.Equal(t, created, action)
	})

	t.Run("missing id", func(t *testing.T) {
		c, rec := doRequest(http.MethodGet, "/api/actions/999", "", "999")
		require.NoError(t, h.GetAction(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Action not found"}`, rec.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		c, rec := doRequest(http.MethodGet, "/api/actions/abc", "", "abc")
		require.NoError(t, h.GetAction(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateActionEndpoint(t *testing.T) {
	t.Run("full update", func(t *testing.T) {
		h := newTestHandler(t)
		createOne(t, h, `{"action":"Recycling","date":"2025-01-08","points":25}`)

		c, rec := doRequest(http.MethodPut, "/api/actions/1", `{"action":"Composting","date":"2025-01-09","points":40}`, "1")
		require.NoError(t, h.UpdateAction(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var action entities.Action
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &action))
		assert.Equal(t, entities.Action{ID: 1, Action: "Composting", Date: "2025-01-09", Points: 40}, action)
	})

	t.Run("full update with missing fields", func(t *testing.T) {
		h := newTestHandler(t)
		createOne(t, h, `{"action":"Recycling","date":"2025-01-08","points":25}`)

		c, rec := doRequest(http.MethodPut, "/api/actions/1", `{"action":"Composting"}`, "1")
		require.NoError(t, h.UpdateAction(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string][]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
		assert.Contains(t, fields, "date")
		assert.Contains(t, fields, "points")
	})

	t.Run("partial update", func(t *testing.T) {
		h := newTestHandler(t)
		createOne(t, h, `{"action":"Recycling","date":"2025-01-08","points":25}`)

		c, rec := doRequest(http.MethodPatch, "/api/actions/1", `{"points":99}`, "1")
		require.NoError(t, h.PatchAction(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var action entities.Action
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &action))
		assert.Equal(t, entities.Action{ID: 1, Action: "Recycling", Date: "2025-01-08", Points: 99}, action)
	})

	t.Run("missing id", func(t *testing.T) {
		h := newTestHandler(t)
		c, rec := doRequest(http.MethodPut, "/api/actions/42", `{"action":"X","date":"2025-01-08","points":1}`, "42")
		require.NoError(t, h.UpdateAction(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteActionEndpoint(t *testing.T) {
	h := newTestHandler(t)
	createOne(t, h, `{"action":"Recycling","date":"2025-01-08","points":25}`)

	t.Run("existing id", func(t *testing.T) {
		c, rec := doRequest(http.MethodDelete, "/api/actions/1", "", "1")
		require.NoError(t, h.DeleteAction(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("already deleted", func(t *testing.T) {
		c, rec := doRequest(http.MethodDelete, "/api/actions/1", "", "1")
		require.NoError(t, h.DeleteAction(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// failingService simulates a storage-layer outage behind the handler.
type failingService struct{}

var errDisk = &entities.StorageError{Op: "write", Err: errors.New("disk full")}

func (f *failingService) ListActions(ctx context.Context) ([]entities.Action, error) {
	return nil, errDisk
}

func (f *failingService) GetAction(ctx context.Context, id int) (*entities.Action, error) {
	return nil, errDisk
}

func (f *failingService) CreateAction(ctx context.Context, req ports.CreateActionRequest) (*entities.Action, error) {
	return nil, errDisk
}

func (f *failingService) UpdateAction(ctx context.Context, id int, req ports.UpdateActionRequest, partial bool) (*entities.Action, error) {
	return nil, errDisk
}

func (f *failingService) DeleteAction(ctx context.Context, id int) error {
	return errDisk
}

func TestStorageErrorsMapToServerError(t *testing.T) {
	h := httpHandlers.NewActionHandler(&failingService{}, logger.NewNop())

	c, rec := doRequest(http.MethodGet, "/api/actions", "", "")
	require.NoError(t, h.ListActions(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
}
