package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// Domain-specific errors for donation persistence.
var (
	// ErrDonationNotFound is returned when a donation is not found.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrStatusConflict is returned when a compare-and-set status update finds a different status.
	ErrStatusConflict = errors.New("status changed concurrently")
)

// DonationRepository defines the operations for donation persistence.
type DonationRepository interface {
	// Create persists a new donation.
	Create(ctx context.Context, donation *entity.Donation) error

	// FindByID retrieves a donation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// FindByRestaurant returns the restaurant's donations, newest first.
	FindByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Donation, error)

	// FindByStatus returns donations in the given status, newest first.
	FindByStatus(ctx context.Context, status entity.DonationStatus) ([]*entity.Donation, error)

	// TransitionStatus moves a donation from transition.From to transition.To only if it is
	// still in transition.From. It returns ErrStatusConflict otherwise.
	TransitionStatus(ctx context.Context, id uuid.UUID, transition entity.DonationTransition) (*entity.Donation, error)
}
