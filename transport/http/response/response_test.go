package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"staytrack/shared/constant"
	"staytrack/shared/failure"
	"staytrack/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]int{"count": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"data":{"count":2}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation message is passed through",
			err:      failure.Validation(http.StatusBadRequest, "Room number already exists"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Room number already exists",
		},
		{
			name:     "unauthorized keeps its status",
			err:      failure.SessionExpiredError,
			wantCode: http.StatusUnauthorized,
			wantMsg:  failure.SessionExpiredError.Message,
		},
		{
			name:     "plain error is a 500",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMsg, *body.Error)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"`+constant.ResponseErrorPrepareShutdown+`"}`, rec.Body.String())
}
