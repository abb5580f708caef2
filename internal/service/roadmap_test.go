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

func testRoadmapTask() *model.RoadmapTask {
	return &model.RoadmapTask{
		ID:       "task-1",
		ClientID: testGoogleClientID,
		Title:    "Fix redirect chains",
		Status:   model.RoadmapStatusPending,
	}
}

func TestRoadmapService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	tasks := mocks.NewMockRoadmapRepository(ctrl)
	tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(testRoadmapTask(), nil)
	tasks.EXPECT().SetStatus(gomock.Any(), "task-1", model.RoadmapStatusCompleted).
		DoAndReturn(func(_ context.Context, id string, status model.RoadmapStatus) (*model.RoadmapTask, error) {
			task := testRoadmapTask()
			task.Status = status
			return task, nil
		})

	svc := NewRoadmapService(RoadmapServiceOptions{Tasks: tasks, Clients: clients})

	task, err := svc.SetStatus(context.Background(), ownerSession(), "task-1", model.RoadmapStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, model.RoadmapStatusCompleted, task.Status)
}

func TestRoadmapService_SetStatus_NonOwnerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	tasks := mocks.NewMockRoadmapRepository(ctrl)
	tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(testRoadmapTask(), nil)

	svc := NewRoadmapService(RoadmapServiceOptions{Tasks: tasks, Clients: clients})

	_, err := svc.SetStatus(context.Background(), strangerSession(), "task-1", model.RoadmapStatusCompleted)

	assert.True(t, apperrors.IsForbidden(err))
}

func TestRoadmapService_ListByClient_NonOwnerGetsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := NewRoadmapService(RoadmapServiceOptions{Tasks: mocks.NewMockRoadmapRepository(ctrl), Clients: clients})

	list, err := svc.ListByClient(context.Background(), strangerSession(), testGoogleClientID)

	require.NoError(t, err)
	assert.Empty(t, list)
}
