package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/mocks"
	"github.com/seopulse/seopulse-api/internal/service"
)

func newClientHandlers(t *testing.T) (*ClientHandlers, *mocks.MockClientRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	svc := service.NewClientService(service.ClientServiceOptions{Clients: repo})
	return &ClientHandlers{Svc: svc}, repo
}

func storedClient() *model.Client {
	return &model.Client{
		ID:        "client-1",
		Name:      "Acme Bakery",
		Domain:    "acmebakery.example",
		OwnerID:   "user-1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestClientHandlers_Create(t *testing.T) {
	handlers, repo := newClientHandlers(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *model.CreateClientRequest) (*model.Client, error) {
			assert.Equal(t, "user-1", req.OwnerID)
			return storedClient(), nil
		})

	body, err := json.Marshal(map[string]string{
		"name":   "Acme Bakery",
		"domain": "acmebakery.example",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	handlers.Create(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "client-1", response.ID)
	assert.Equal(t, "Acme Bakery", response.Name)
}

func TestClientHandlers_Create_InvalidJSON(t *testing.T) {
	handlers, _ := newClientHandlers(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader([]byte("{not json")))
	handlers.Create(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "invalid_json", response["error"])
}

func TestClientHandlers_Get_Forbidden(t *testing.T) {
	handlers, repo := newClientHandlers(t)

	other := storedClient()
	other.OwnerID = "someone-else"
	repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(other, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/clients/client-1", nil)
	r.SetPathValue("id", "client-1")
	handlers.Get(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "forbidden", response["error"])
}

func TestClientHandlers_Get_NotFound(t *testing.T) {
	handlers, repo := newClientHandlers(t)

	repo.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, apperrors.NotFound("client not found"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/clients/nope", nil)
	r.SetPathValue("id", "nope")
	handlers.Get(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandlers_List_ScopedToOwner(t *testing.T) {
	handlers, repo := newClientHandlers(t)

	repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, opts model.ClientsListOptions) ([]*model.Client, error) {
			assert.Equal(t, "user-1", opts.OwnerID)
			assert.Equal(t, 50, opts.Limit)
			return []*model.Client{storedClient()}, nil
		})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	handlers.List(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)

	var response []*model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "client-1", response[0].ID)
}

func TestClientHandlers_Delete(t *testing.T) {
	handlers, repo := newClientHandlers(t)

	repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(storedClient(), nil)
	repo.EXPECT().Delete(gomock.Any(), "client-1").Return(true, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/clients/client-1", nil)
	r.SetPathValue("id", "client-1")
	handlers.Delete(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
