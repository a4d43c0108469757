package model_test

import (
	"encoding/json"
	"staytrack/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_Unmarshal(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		wantID        string
		wantPopulated bool
		wantErr       bool
	}{
		{name: "bare id", payload: `"65f0a1"`, wantID: "65f0a1"},
		{name: "populated document", payload: `{"_id":"65f0a2","firstName":"Ann"}`, wantID: "65f0a2", wantPopulated: true},
		{name: "null", payload: `null`},
		{name: "number", payload: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref model.Ref
			err := json.Unmarshal([]byte(tt.payload), &ref)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, ref.ID)
			assert.Equal(t, tt.wantPopulated, ref.Populated())
		})
	}
}

func TestBooking_KeepsPopulatedReferences(t *testing.T) {
	payload := `{
		"_id":"b1",
		"guest":{"_id":"g1","firstName":"Ann","lastName":"Lee"},
		"room":"r1",
		"checkIn":"2025-03-01T14:00:00Z",
		"checkOut":"2025-03-03T12:00:00Z",
		"status":"booked",
		"totalAmount":240
	}`

	var booking model.Booking
	require.NoError(t, json.Unmarshal([]byte(payload), &booking))

	assert.Equal(t, "g1", booking.Guest.ID)
	assert.Equal(t, "r1", booking.Room.ID)
	assert.InDelta(t, 240.0, booking.TotalAmount, 0.001)

	out, err := json.Marshal(booking)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, map[string]any{"_id": "g1", "firstName": "Ann", "lastName": "Lee"}, decoded["guest"])
	assert.Equal(t, "r1", decoded["room"])
	assert.NotContains(t, decoded, "createdAt")
}
