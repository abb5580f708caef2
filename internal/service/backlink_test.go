package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/mocks"
)

var backlinkTestNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestBacklinkService(backlinks *mocks.MockBacklinkRepository, clients *mocks.MockClientRepository) *BacklinkService {
	return NewBacklinkService(BacklinkServiceOptions{
		Backlinks: backlinks,
		Clients:   clients,
		Now:       func() time.Time { return backlinkTestNow },
	})
}

func TestBacklinkService_ListByClient_ClassifiesFollowUps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	overdue := backlinkTestNow.Add(-24 * time.Hour)
	dueSoon := backlinkTestNow.Add(48 * time.Hour)
	scheduled := backlinkTestNow.Add(10 * 24 * time.Hour)
	placed := backlinkTestNow.Add(-24 * time.Hour)

	backlinks := mocks.NewMockBacklinkRepository(ctrl)
	backlinks.EXPECT().ListByClient(gomock.Any(), testGoogleClientID).Return([]*model.Backlink{
		{ID: "b-1", ClientID: testGoogleClientID, Status: model.BacklinkStatusContacted, FollowUpAt: &overdue},
		{ID: "b-2", ClientID: testGoogleClientID, Status: model.BacklinkStatusContacted, FollowUpAt: &dueSoon},
		{ID: "b-3", ClientID: testGoogleClientID, Status: model.BacklinkStatusNegotiating, FollowUpAt: &scheduled},
		{ID: "b-4", ClientID: testGoogleClientID, Status: model.BacklinkStatusPlaced, FollowUpAt: &placed},
		{ID: "b-5", ClientID: testGoogleClientID, Status: model.BacklinkStatusProspect},
	}, nil)

	svc := newTestBacklinkService(backlinks, clients)

	views, err := svc.ListByClient(context.Background(), ownerSession(), testGoogleClientID)

	require.NoError(t, err)
	require.Len(t, views, 5)
	assert.Equal(t, model.FollowUpOverdue, views[0].FollowUpState)
	assert.Equal(t, model.FollowUpDueSoon, views[1].FollowUpState)
	assert.Equal(t, model.FollowUpScheduled, views[2].FollowUpState)
	// A placed prospect needs no follow-up even with a past date.
	assert.Equal(t, model.FollowUpNone, views[3].FollowUpState)
	assert.Equal(t, model.FollowUpNone, views[4].FollowUpState)
}

func TestBacklinkService_ListByClient_NonOwnerGetsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := newTestBacklinkService(mocks.NewMockBacklinkRepository(ctrl), clients)

	views, err := svc.ListByClient(context.Background(), strangerSession(), testGoogleClientID)

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestBacklinkService_Create_BindsClientFromPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	backlinks := mocks.NewMockBacklinkRepository(ctrl)
	backlinks.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateBacklinkRequest) (*model.Backlink, error) {
			assert.Equal(t, testGoogleClientID, req.ClientID)
			return &model.Backlink{ID: "b-1", ClientID: req.ClientID, SourceDomain: req.SourceDomain, Status: model.BacklinkStatusProspect}, nil
		})

	svc := newTestBacklinkService(backlinks, clients)

	view, err := svc.Create(context.Background(), ownerSession(), testGoogleClientID, &model.CreateBacklinkRequest{
		SourceDomain: "blog.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, model.FollowUpNone, view.FollowUpState)
}
