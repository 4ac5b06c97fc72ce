package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// DonationUsecase defines the restaurant-side donation ledger.
type DonationUsecase interface {
	CreateDonation(ctx context.Context, snap session.Snapshot, input *CreateDonationInput) (*entity.Donation, error)

	// SubscribeMine delivers the restaurant's donations, newest first, on every change.
	// The initial snapshot is delivered before SubscribeMine returns.
	SubscribeMine(ctx context.Context, restaurantID string, onChange func([]*entity.Donation)) (Subscription, error)
	ListMine(ctx context.Context, restaurantID string) ([]*entity.Donation, error)

	// PickupQR renders a PNG QR code for a donation owned by the caller.
	PickupQR(ctx context.Context, snap session.Snapshot, donationID uuid.UUID) ([]byte, error)

	// ListClaimed returns donations waiting for pickup.
	ListClaimed(ctx context.Context) ([]*entity.Donation, error)
}

// CreateDonationInput carries the raw form values.
type CreateDonationInput struct {
	FoodName string
	Servings string
}
