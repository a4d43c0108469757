package service_test

import (
	"context"
	"errors"
	"net/http"
	otelMocks "staytrack/infras/otel/mocks"
	dashboardMocks "staytrack/internal/domains/dashboard/mocks"
	"staytrack/internal/domains/dashboard/model"
	"staytrack/internal/domains/dashboard/model/dto"
	"staytrack/internal/domains/dashboard/service"
	"staytrack/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dashboardMocks.NewMockDashboard(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	stats := model.Stats{TotalGuests: 4, TotalBookings: 9, OccupancyRate: 0.5}

	tests := []struct {
		name      string
		req       dto.StatsRequest
		setupMock func()
		wantRange string
		wantCode  int
	}{
		{
			name: "defaults to week",
			req:  dto.StatsRequest{},
			setupMock: func() {
				mockRepo.EXPECT().Stats(gomock.Any(), model.RangeWeek).Return(stats, nil)
			},
			wantRange: model.RangeWeek,
		},
		{
			name: "explicit year",
			req:  dto.StatsRequest{Range: model.RangeYear},
			setupMock: func() {
				mockRepo.EXPECT().Stats(gomock.Any(), model.RangeYear).Return(stats, nil)
			},
			wantRange: model.RangeYear,
		},
		{
			name:      "unknown range never reaches the server",
			req:       dto.StatsRequest{Range: "decade"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "server failure",
			req:  dto.StatsRequest{Range: model.RangeMonth},
			setupMock: func() {
				mockRepo.EXPECT().Stats(gomock.Any(), model.RangeMonth).
					Return(model.Stats{}, failure.ServerError(http.StatusInternalServerError, errors.New("aggregate failed")))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Stats(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRange, res.Range)
			assert.Equal(t, stats, res.Stats)
			assert.NotEmpty(t, res.FetchedAt)
		})
	}
}
