package service_test

import (
	"context"
	"errors"
	"net/http"
	otelMocks "staytrack/infras/otel/mocks"
	authMocks "staytrack/internal/domains/auth/mocks"
	"staytrack/internal/domains/auth/model/dto"
	"staytrack/internal/domains/auth/service"
	serviceMocks "staytrack/internal/domains/auth/service/mocks"
	cacheMocks "staytrack/shared/cache/mocks"
	"staytrack/shared/failure"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMocks.NewMockAuth(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockSessions := serviceMocks.NewMockSessions(ctrl)
	svc := service.New(mockRepo, mockCache, mockSessions, otelMocks.NewOtel())

	req := dto.LoginRequest{Username: "frontdesk", Password: "secret"}

	tests := []struct {
		name      string
		setupMock func()
		wantToken string
		wantCode  int
	}{
		{
			name: "successful login clears mirror and resets sessions",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().Login(gomock.Any(), req).Return(dto.LoginResponse{Token: "tok"}, nil),
					mockCache.EXPECT().Clear(gomock.Any()).Return(nil),
					mockSessions.EXPECT().Reset(gomock.Any()).Return(nil),
				)
			},
			wantToken: "tok",
		},
		{
			name: "mirror failure does not fail login",
			setupMock: func() {
				mockRepo.EXPECT().Login(gomock.Any(), req).Return(dto.LoginResponse{Token: "tok"}, nil)
				mockCache.EXPECT().Clear(gomock.Any()).Return(errors.New("redis down"))
				mockSessions.EXPECT().Reset(gomock.Any()).Return(nil)
			},
			wantToken: "tok",
		},
		{
			name: "session with a write in flight does not fail login",
			setupMock: func() {
				mockRepo.EXPECT().Login(gomock.Any(), req).Return(dto.LoginResponse{Token: "tok"}, nil)
				mockCache.EXPECT().Clear(gomock.Any()).Return(nil)
				mockSessions.EXPECT().Reset(gomock.Any()).Return(failure.SubmissionInFlightError)
			},
			wantToken: "tok",
		},
		{
			name: "invalid credentials",
			setupMock: func() {
				mockRepo.EXPECT().Login(gomock.Any(), req).Return(dto.LoginResponse{}, failure.Validation(http.StatusBadRequest, "Invalid credentials"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "empty token",
			setupMock: func() {
				mockRepo.EXPECT().Login(gomock.Any(), req).Return(dto.LoginResponse{}, nil)
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, res.Token)
		})
	}
}

func TestAuthService_LoginWithoutMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMocks.NewMockAuth(ctrl)
	svc := service.New(mockRepo, nil, nil, otelMocks.NewOtel())

	mockRepo.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{Token: "tok"}, nil)

	res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "a", Password: "b"})

	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMocks.NewMockAuth(ctrl)
	svc := service.New(mockRepo, nil, nil, otelMocks.NewOtel())

	req := dto.RegisterRequest{Username: "night", Password: "secret1", Role: dto.RoleStaff}
	taken := failure.Validation(http.StatusBadRequest, "Username already exists")

	mockRepo.EXPECT().Register(gomock.Any(), req).Return(nil)
	assert.NoError(t, svc.Register(context.Background(), req))

	mockRepo.EXPECT().Register(gomock.Any(), req).Return(taken)
	err := svc.Register(context.Background(), req)
	assert.EqualError(t, err, "Username already exists")
}

func TestAuthService_Session(t *testing.T) {
	svc := service.New(nil, nil, nil, otelMocks.NewOtel())

	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
		require.NoError(t, err)

		return token
	}

	issued := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  dto.SessionResponse
	}{
		{
			name:  "live token",
			token: sign(jwt.MapClaims{"id": "u1", "username": "frontdesk", "role": "staff", "iat": issued.Unix(), "exp": time.Now().Add(time.Hour).Unix()}),
			want:  dto.SessionResponse{Subject: "u1", Username: "frontdesk", Role: "staff", IssuedAt: "2025-03-01T08:00:00Z"},
		},
		{
			name:  "expired token",
			token: sign(jwt.MapClaims{"id": "u1", "exp": issued.Add(time.Hour).Unix()}),
			want:  dto.SessionResponse{Subject: "u1", ExpiresAt: "2025-03-01T09:00:00Z", Expired: true},
		},
		{
			name:  "opaque token",
			token: "not-a-jwt",
			want:  dto.SessionResponse{Opaque: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Session(context.Background(), tt.token)

			require.NoError(t, err)

			if tt.name == "live token" {
				assert.NotEmpty(t, res.ExpiresAt)
				res.ExpiresAt = ""
			}

			assert.Equal(t, tt.want, res)
		})
	}
}
