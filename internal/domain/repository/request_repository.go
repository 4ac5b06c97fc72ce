package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// ErrRequestNotFound is returned when a request is not found.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines the operations for request persistence.
type RequestRepository interface {
	// Create persists a new request.
	Create(ctx context.Context, request *entity.Request) error

	// FindByID retrieves a request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// FindByOrphanage returns the orphanage's requests, newest first.
	FindByOrphanage(ctx context.Context, orphanageID string) ([]*entity.Request, error)

	// FindByStatus returns requests in the given status, newest first.
	FindByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.Request, error)

	// MarkFulfilled moves a Pending request to Fulfilled. It returns ErrStatusConflict
	// when the request is no longer Pending.
	MarkFulfilled(ctx context.Context, id uuid.UUID, at time.Time) error
}
