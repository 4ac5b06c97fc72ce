package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/config"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func newTestService(size int, level string) *pickupQRService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}}

	return NewPickupQRService(cfg).(*pickupQRService)
}

func TestNewPickupQRService_Defaults(t *testing.T) {
	s := newTestService(0, "")

	assert.Equal(t, defaultQRSize, s.size)
	assert.Equal(t, recoveryLevel("M"), s.level)
}

func TestGeneratePickupQR(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H"} {
		t.Run(level, func(t *testing.T) {
			png, err := newTestService(128, level).GeneratePickupQR(uuid.New())

			require.NoError(t, err)
			require.Greater(t, len(png), len(pngMagic))
			assert.Equal(t, pngMagic, png[:4])
		})
	}
}

func TestGeneratePickupQR_NilID(t *testing.T) {
	_, err := newTestService(128, "M").GeneratePickupQR(uuid.Nil)
	assert.Error(t, err)
}

func TestParsePickupQR(t *testing.T) {
	s := newTestService(128, "M")
	id := uuid.New()
	text, err := json.Marshal(PickupPayload{Kind: pickupKind, Version: payloadVersion, DonationID: id.String()})
	require.NoError(t, err)

	parsed, err := s.ParsePickupQR(string(text))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParsePickupQR_Errors(t *testing.T) {
	s := newTestService(128, "M")

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"not json", "nope", "failed to unmarshal pickup payload"},
		{"wrong kind", `{"kind":"subscription","donation_id":"` + uuid.NewString() + `"}`, "invalid QR code kind"},
		{"bad id", `{"kind":"donation_pickup","donation_id":"x"}`, "failed to parse donation ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ParsePickupQR(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
