package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_GeneratePlaceQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://sportera.app/places/")

	qrBytes, err := service.GeneratePlaceQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePlaceQR_DifferentSizes(t *testing.T) {
	placeID := uuid.New()

	small, err := NewQRCodeService(128, "M", "").GeneratePlaceQR(placeID)
	require.NoError(t, err)
	large, err := NewQRCodeService(512, "M", "").GeneratePlaceQR(placeID)
	require.NoError(t, err)

	assert.NotEqual(t, small, large)
}

func TestQRCodeService_DefaultSize(t *testing.T) {
	service, ok := NewQRCodeService(0, "", "").(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, service.size)
}

func TestQRCodeService_ParsePlaceQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	placeID := uuid.New()

	payload, err := json.Marshal(QRCodeData{PlaceID: placeID.String(), Type: "place"})
	require.NoError(t, err)

	parsed, err := service.ParsePlaceQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, placeID, parsed)
}

func TestQRCodeService_ParsePlaceQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"not json", "not-json", "failed to unmarshal"},
		{"wrong type", `{"place_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad id", `{"place_id":"nope","type":"place"}`, "failed to parse place ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := service.ParsePlaceQR(tt.data)
			assert.Equal(t, uuid.Nil, id)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
