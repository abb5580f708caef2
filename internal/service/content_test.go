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

func testContentItem() *model.ContentItem {
	return &model.ContentItem{
		ID:       "content-1",
		ClientID: testGoogleClientID,
		Title:    "Ultimate widget guide",
		Status:   model.ContentStatusIdea,
	}
}

func TestContentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	content := mocks.NewMockContentRepository(ctrl)
	content.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateContentRequest) (*model.ContentItem, error) {
			assert.Equal(t, testGoogleClientID, req.ClientID)
			item := testContentItem()
			item.Title = req.Title
			return item, nil
		})

	svc := NewContentService(ContentServiceOptions{Content: content, Clients: clients})

	item, err := svc.Create(context.Background(), ownerSession(), testGoogleClientID, &model.CreateContentRequest{
		Title: "Ultimate widget guide",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ultimate widget guide", item.Title)
}

func TestContentService_Create_NonOwnerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := NewContentService(ContentServiceOptions{
		Content: mocks.NewMockContentRepository(ctrl),
		Clients: clients,
	})

	_, err := svc.Create(context.Background(), strangerSession(), testGoogleClientID, &model.CreateContentRequest{
		Title: "Stolen brief",
	})

	assert.True(t, apperrors.IsForbidden(err))
}

func TestContentService_Update_StatusTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	content := mocks.NewMockContentRepository(ctrl)
	content.EXPECT().GetByID(gomock.Any(), "content-1").Return(testContentItem(), nil)
	content.EXPECT().Update(gomock.Any(), "content-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req model.UpdateContentRequest) (*model.ContentItem, error) {
			item := testContentItem()
			item.Status = *req.Status
			return item, nil
		})

	svc := NewContentService(ContentServiceOptions{Content: content, Clients: clients})

	status := model.ContentStatusPublished
	item, err := svc.Update(context.Background(), ownerSession(), "content-1", model.UpdateContentRequest{
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, model.ContentStatusPublished, item.Status)
}

func TestContentService_ListByClient_NonOwnerGetsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := NewContentService(ContentServiceOptions{
		Content: mocks.NewMockContentRepository(ctrl),
		Clients: clients,
	})

	list, err := svc.ListByClient(context.Background(), strangerSession(), testGoogleClientID)

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContentService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	content := mocks.NewMockContentRepository(ctrl)
	content.EXPECT().GetByID(gomock.Any(), "content-404").
		Return(nil, apperrors.NotFound("content item not found"))

	svc := NewContentService(ContentServiceOptions{
		Content: content,
		Clients: mocks.NewMockClientRepository(ctrl),
	})

	_, err := svc.Delete(context.Background(), ownerSession(), "content-404")

	assert.True(t, apperrors.IsNotFound(err))
}
