package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// LifecycleUsecase moves donations through Available, Claimed and Confirmed and
// informs the parties involved.
type LifecycleUsecase interface {
	// Claim reserves an available donation for the calling orphanage, optionally
	// linking one of its pending requests.
	Claim(ctx context.Context, snap session.Snapshot, donationID uuid.UUID, requestID *uuid.UUID) (*TransitionResult, error)

	// Confirm records receipt by the claimant and fulfils the linked request.
	Confirm(ctx context.Context, snap session.Snapshot, donationID uuid.UUID) (*TransitionResult, error)

	// SendClaimNotice and SendConfirmationNotice email both parties directly from
	// caller-supplied details. They are not idempotent.
	SendClaimNotice(ctx context.Context, input *NoticeInput) error
	SendConfirmationNotice(ctx context.Context, input *NoticeInput) error
}

// TransitionResult is the donation after a transition. Warnings list
// notification problems that did not undo the transition.
type TransitionResult struct {
	Donation *entity.Donation `json:"donation"`
	Warnings []string         `json:"warnings,omitempty"`
}

// NoticeParty is one side of a handover as described by the caller.
type NoticeParty struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Address  string
	Location *entity.Location
}

// NoticeFood describes what is handed over.
type NoticeFood struct {
	Name     string
	Quantity string
}

// NoticeInput is the side-channel notice payload.
type NoticeInput struct {
	Restaurant *NoticeParty
	Orphanage  *NoticeParty
	Food       *NoticeFood
}
