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
	"github.com/seopulse/seopulse-api/internal/mocks"
	"github.com/seopulse/seopulse-api/internal/service"
)

func newKeywordHandlers(t *testing.T) (*KeywordHandlers, *mocks.MockKeywordRepository, *mocks.MockClientRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	keywords := mocks.NewMockKeywordRepository(ctrl)
	clients := mocks.NewMockClientRepository(ctrl)
	svc := service.NewKeywordService(service.KeywordServiceOptions{Keywords: keywords, Clients: clients})
	return &KeywordHandlers{Svc: svc}, keywords, clients
}

func storedKeyword(pos, prev *int) *model.Keyword {
	return &model.Keyword{
		ID:               "kw-1",
		ClientID:         "client-1",
		Term:             "artisan sourdough",
		Position:         pos,
		PreviousPosition: prev,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func TestKeywordHandlers_RecordPosition(t *testing.T) {
	handlers, keywords, clients := newKeywordHandlers(t)

	keywords.EXPECT().GetByID(gomock.Any(), "kw-1").Return(storedKeyword(nil, nil), nil)
	clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(storedClient(), nil)

	three, seven := 3, 7
	keywords.EXPECT().
		RecordPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *model.RecordPositionRequest) (*model.Keyword, error) {
			assert.Equal(t, "kw-1", req.KeywordID)
			assert.Equal(t, 3, req.Position)
			return storedKeyword(&three, &seven), nil
		})

	body, err := json.Marshal(map[string]int{"position": 3})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/keywords/kw-1/positions", bytes.NewReader(body))
	r.SetPathValue("id", "kw-1")
	handlers.RecordPosition(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.Keyword
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Position)
	assert.Equal(t, 3, *response.Position)
	require.NotNil(t, response.PreviousPosition)
	assert.Equal(t, 7, *response.PreviousPosition)
}

func TestKeywordHandlers_RecordPosition_Invalid(t *testing.T) {
	handlers, keywords, clients := newKeywordHandlers(t)

	keywords.EXPECT().GetByID(gomock.Any(), "kw-1").Return(storedKeyword(nil, nil), nil)
	clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(storedClient(), nil)
	keywords.EXPECT().
		RecordPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *model.RecordPositionRequest) (*model.Keyword, error) {
			return nil, req.Validate()
		})

	body, err := json.Marshal(map[string]int{"position": 0})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/keywords/kw-1/positions", bytes.NewReader(body))
	r.SetPathValue("id", "kw-1")
	handlers.RecordPosition(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation", response["error"])
	assert.Equal(t, "position", response["field"])
}

func TestKeywordHandlers_History_Limit(t *testing.T) {
	handlers, keywords, clients := newKeywordHandlers(t)

	keywords.EXPECT().GetByID(gomock.Any(), "kw-1").Return(storedKeyword(nil, nil), nil)
	clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(storedClient(), nil)
	keywords.EXPECT().
		History(gomock.Any(), "kw-1", 14).
		Return([]*model.PositionRecord{
			{ID: "rec-1", KeywordID: "kw-1", Position: 3, RecordedAt: time.Now()},
		}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/keywords/kw-1/positions?limit=14", nil)
	r.SetPathValue("id", "kw-1")
	handlers.History(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)

	var response []*model.PositionRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, 3, response[0].Position)
}

func TestKeywordHandlers_ListByClient_NonOwnerEmpty(t *testing.T) {
	handlers, _, clients := newKeywordHandlers(t)

	other := storedClient()
	other.OwnerID = "someone-else"
	clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(other, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/clients/client-1/keywords", nil)
	r.SetPathValue("id", "client-1")
	handlers.ListByClient(w, withSession(r, testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
