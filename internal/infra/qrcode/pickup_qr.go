// Package qrcode renders the pickup codes drivers scan when collecting a donation.
package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

const (
	pickupKind     = "donation_pickup"
	defaultQRSize  = 256
	payloadVersion = 1
)

type pickupQRService struct {
	size  int
	level qrcode.RecoveryLevel
}

// PickupPayload is the JSON text encoded in a pickup QR code.
type PickupPayload struct {
	Kind       string `json:"kind"`
	Version    int    `json:"v"`
	DonationID string `json:"donation_id"`
}

// NewPickupQRService creates a QR code service from config.
func NewPickupQRService(cfg *config.Config) service.QRCodeService {
	qr := config.QRCodeConfig{}
	if cfg.QRCode != nil {
		qr = *cfg.QRCode
	}
	if qr.Size <= 0 {
		qr.Size = defaultQRSize
	}

	return &pickupQRService{
		size:  qr.Size,
		level: recoveryLevel(qr.ErrorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePickupQR renders a PNG QR code for the donation.
func (s *pickupQRService) GeneratePickupQR(donationID uuid.UUID) ([]byte, error) {
	if donationID == uuid.Nil {
		return nil, fmt.Errorf("donation id is required")
	}

	text, err := json.Marshal(PickupPayload{
		Kind:       pickupKind,
		Version:    payloadVersion,
		DonationID: donationID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pickup payload: %w", err)
	}

	code, err := qrcode.New(string(text), s.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return png, nil
}

// ParsePickupQR extracts the donation id from scanned QR text.
func (s *pickupQRService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	var payload PickupPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal pickup payload: %w", err)
	}

	if payload.Kind != pickupKind {
		return uuid.Nil, fmt.Errorf("invalid QR code kind: %s", payload.Kind)
	}

	id, err := uuid.Parse(payload.DonationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse donation ID: %w", err)
	}

	return id, nil
}
