package service_test

import (
	"context"
	"errors"
	otelMocks "staytrack/infras/otel/mocks"
	roomMocks "staytrack/internal/domains/room/mocks"
	"staytrack/internal/domains/room/model"
	"staytrack/internal/domains/room/model/dto"
	"staytrack/internal/domains/room/service"
	"staytrack/shared/failure"
	"staytrack/shared/resource"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func rooms() []model.Room {
	return []model.Room{
		{ID: "r1", RoomNumber: "101", Type: model.TypeSingle, Price: 80, Status: model.StatusAvailable},
		{ID: "r2", RoomNumber: "102", Type: model.TypeDouble, Price: 120, Status: model.StatusOccupied},
		{ID: "r3", RoomNumber: "201", Type: model.TypeSuite, Price: 300, Status: model.StatusMaintenance},
	}
}

func TestRoomService_EditKeepsPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, nil, otelMocks.NewOtel())
	ctx := context.Background()

	want := dto.Draft{RoomNumber: "102", Type: model.TypeDouble, Price: 95, Status: model.StatusAvailable}
	updated := model.Room{ID: "r2", RoomNumber: "102", Type: model.TypeDouble, Price: 95, Status: model.StatusAvailable}

	mockRepo.EXPECT().List(gomock.Any(), "").Return(rooms(), nil)
	mockRepo.EXPECT().Update(gomock.Any(), "r2", want).Return(updated, nil)

	require.NoError(t, svc.Search(ctx, ""))
	require.NoError(t, svc.BeginEdit("r2"))
	require.NoError(t, svc.PatchDraft([]byte(`{"price":95,"status":"available"}`)))

	_, err := svc.Submit(ctx)
	require.NoError(t, err)

	items := svc.View().Collection.Items
	require.Len(t, items, 3)
	assert.Equal(t, updated, items[1])
}

func TestRoomService_DeleteNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, nil, otelMocks.NewOtel())
	ctx := context.Background()

	mockRepo.EXPECT().List(gomock.Any(), "").Return(rooms(), nil)
	require.NoError(t, svc.Search(ctx, ""))

	require.NoError(t, svc.RequestDelete("r3"))
	assert.Len(t, svc.View().Collection.Items, 3)

	mockRepo.EXPECT().Delete(gomock.Any(), "r3").Return(failure.ServerError(500, errors.New("db down")))
	assert.Error(t, svc.ConfirmDelete(ctx))
	assert.Equal(t, resource.GateArmed, svc.View().Delete.Status)
	assert.Len(t, svc.View().Collection.Items, 3)

	mockRepo.EXPECT().Delete(gomock.Any(), "r3").Return(nil)
	require.NoError(t, svc.ConfirmDelete(ctx))
	assert.Equal(t, rooms()[:2], svc.View().Collection.Items)
}
