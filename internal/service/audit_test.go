package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/mocks"
)

func TestAuditService_Get_NeverSavedYieldsEmptyAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	audits := mocks.NewMockAuditRepository(ctrl)
	audits.EXPECT().Get(gomock.Any(), testGoogleClientID).
		Return(nil, apperrors.NotFound("audit not found"))

	svc := NewAuditService(AuditServiceOptions{Audits: audits, Clients: clients})

	audit, err := svc.Get(context.Background(), ownerSession(), testGoogleClientID)

	require.NoError(t, err)
	assert.Equal(t, testGoogleClientID, audit.ClientID)
	assert.NotNil(t, audit.Items)
	assert.Empty(t, audit.Items)
}

func TestAuditService_Get_NormalizesStoredBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	audits := mocks.NewMockAuditRepository(ctrl)
	audits.EXPECT().Get(gomock.Any(), testGoogleClientID).Return(&model.Audit{
		ClientID: testGoogleClientID,
		Items: model.AuditItems{
			"https":           {Status: model.AuditItemPassed},
			"retired-check":   {Status: model.AuditItemFailed},
			"xml-sitemap":     {Status: "bogus"},
			"core-web-vitals": {Status: model.AuditItemNotApplicable, Notes: "SPA"},
		},
	}, nil)

	svc := NewAuditService(AuditServiceOptions{Audits: audits, Clients: clients})

	audit, err := svc.Get(context.Background(), ownerSession(), testGoogleClientID)

	require.NoError(t, err)
	assert.NotContains(t, audit.Items, "retired-check")
	assert.Equal(t, model.AuditItemPending, audit.Items["xml-sitemap"].Status)
	assert.Equal(t, model.AuditItemPassed, audit.Items["https"].Status)
	assert.Equal(t, "SPA", audit.Items["core-web-vitals"].Notes)
}

func TestAuditService_Save_NormalizesBeforeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	audits := mocks.NewMockAuditRepository(ctrl)
	audits.EXPECT().
		Upsert(gomock.Any(), testGoogleClientID, gomock.Any()).
		DoAndReturn(func(_ context.Context, clientID string, items model.AuditItems) (*model.Audit, error) {
			assert.NotContains(t, items, "made-up-item")
			assert.Equal(t, model.AuditItemPassed, items["https"].Status)
			return &model.Audit{ClientID: clientID, Items: items}, nil
		})

	svc := NewAuditService(AuditServiceOptions{Audits: audits, Clients: clients})

	audit, err := svc.Save(context.Background(), ownerSession(), testGoogleClientID, model.AuditItems{
		"https":        {Status: model.AuditItemPassed},
		"made-up-item": {Status: model.AuditItemPassed},
	})

	require.NoError(t, err)
	assert.Contains(t, audit.Items, "https")
}

func TestAuditService_Save_NonOwnerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := NewAuditService(AuditServiceOptions{Audits: mocks.NewMockAuditRepository(ctrl), Clients: clients})

	_, err := svc.Save(context.Background(), strangerSession(), testGoogleClientID, model.AuditItems{})

	assert.True(t, apperrors.IsForbidden(err))
}

func TestAuditService_Checklist(t *testing.T) {
	t.Parallel()
	svc := NewAuditService(AuditServiceOptions{})

	items := svc.Checklist()

	assert.NotEmpty(t, items)
	ids := make(map[string]bool, len(items))
	for _, item := range items {
		assert.False(t, ids[item.ID], "duplicate checklist id %s", item.ID)
		ids[item.ID] = true
		assert.NotEmpty(t, item.Category)
		assert.NotEmpty(t, item.Title)
	}
}
