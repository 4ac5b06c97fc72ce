package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// RequestUsecase defines orphanage requests for items.
type RequestUsecase interface {
	CreateRequest(ctx context.Context, snap session.Snapshot, input *CreateRequestInput) (*entity.Request, error)
	ListMine(ctx context.Context, orphanageID string) ([]*entity.Request, error)
	FulfillRequest(ctx context.Context, snap session.Snapshot, requestID uuid.UUID) error
}

// CreateRequestInput carries the raw form values. A nil Location falls back to
// the profile location.
type CreateRequestInput struct {
	ItemNeeded string
	Quantity   string
	Location   *entity.Location
}
