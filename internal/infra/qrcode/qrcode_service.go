package qrcode

import (
	"encoding/json"
	"strings"

	"sportera/internal/domain/constants"
	"sportera/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PlaceID string `json:"place_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL, when set, is prefixed to the place id to build a share link.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              baseURL,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePlaceQR generates a PNG QR code pointing at a place
func (s *qrcodeService) GeneratePlaceQR(placeID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		PlaceID: placeID.String(),
		Type:    constants.QRCodeTypePlace,
	}
	if s.baseURL != "" {
		data.URL = strings.TrimRight(s.baseURL, "/") + "/" + data.PlaceID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePlaceQR parses QR code data and returns the place ID
func (s *qrcodeService) ParsePlaceQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != constants.QRCodeTypePlace {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	placeID, err := uuid.Parse(data.PlaceID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse place ID")
	}

	return placeID, nil
}
