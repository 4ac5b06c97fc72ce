package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/infra/persistence/model"
)

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// Create persists a new donation.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("donation violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	// Update the entity with generated values
	donation.ID = donationM.ID
	donation.CreatedAt = donationM.CreatedAt
	donation.UpdatedAt = donationM.UpdatedAt

	return nil
}

// FindByID retrieves a donation by its unique ID.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// FindByRestaurant returns the restaurant's donations, newest first.
func (repo *donationRepository) FindByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Donation, error) {
	return repo.findWhere(ctx, "restaurant_id = ?", restaurantID)
}

// FindByStatus returns donations in the given status, newest first.
func (repo *donationRepository) FindByStatus(ctx context.Context, status entity.DonationStatus) ([]*entity.Donation, error) {
	return repo.findWhere(ctx, "status = ?", string(status))
}

func (repo *donationRepository) findWhere(ctx context.Context, query string, args ...any) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Order("id DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donations")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// TransitionStatus applies a compare-and-set status update and returns the updated donation.
func (repo *donationRepository) TransitionStatus(ctx context.Context, id uuid.UUID, transition entity.DonationTransition) (*entity.Donation, error) {
	updates := map[string]any{
		"status":     string(transition.To),
		"updated_at": transition.At,
	}
	switch transition.To {
	case entity.DonationClaimed:
		updates["claimed_by"] = transition.ClaimedBy
		updates["request_id"] = transition.RequestID
		updates["claimed_at"] = transition.At
	case entity.DonationConfirmed:
		updates["confirmed_at"] = transition.At
	}

	var donationM model.DonationModel
	result := repo.db.WithContext(ctx).
		Model(&donationM).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(transition.From)).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to transition donation status")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrStatusConflict
	}

	return toDonationDomain(&donationM), nil
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		RestaurantName: data.RestaurantName,
		RestaurantContact: entity.ContactInfo{
			Email:   data.ContactEmail,
			Phone:   data.ContactPhone,
			Address: data.ContactAddress,
		},
		FoodName:    data.FoodName,
		Servings:    data.Servings,
		Status:      entity.DonationStatus(data.Status),
		Location:    entity.NewLocation(data.Latitude, data.Longitude),
		ClaimedBy:   data.ClaimedBy,
		RequestID:   data.RequestID,
		ClaimedAt:   data.ClaimedAt,
		ConfirmedAt: data.ConfirmedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromDonationDomain converts a domain Donation entity to a GORM DonationModel.
func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	return &model.DonationModel{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		RestaurantName: data.RestaurantName,
		ContactEmail:   data.RestaurantContact.Email,
		ContactPhone:   data.RestaurantContact.Phone,
		ContactAddress: data.RestaurantContact.Address,
		FoodName:       data.FoodName,
		Servings:       data.Servings,
		Status:         string(data.Status),
		Latitude:       data.Location.LatPtr(),
		Longitude:      data.Location.LngPtr(),
		ClaimedBy:      data.ClaimedBy,
		RequestID:      data.RequestID,
		ClaimedAt:      data.ClaimedAt,
		ConfirmedAt:    data.ConfirmedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
