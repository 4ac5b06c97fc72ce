// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/infra/persistence/model"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by the identity provider's user id.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateContact merges the non-nil fields of update into the profile.
func (repo *profileRepository) UpdateContact(ctx context.Context, id string, update entity.ProfileUpdate) (*entity.Profile, error) {
	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}
	if update.Location != nil {
		updates["latitude"] = update.Location.Lat
		updates["longitude"] = update.Location.Lng
	}
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update profile contact")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return repo.FindByID(ctx, id)
}

// UpdateNotificationToken stores the push registration token of a profile.
func (repo *profileRepository) UpdateNotificationToken(ctx context.Context, id, token string) error {
	var value *string
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		value = &trimmed
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("notification_token", value)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ClearNotificationTokens removes the given tokens from every profile holding them.
func (repo *profileRepository) ClearNotificationTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("notification_token IN ?", tokens).
		Update("notification_token", nil)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear notification tokens")
	}

	return result.RowsAffected, nil
}

// AssignRole sets the role only while the profile has none.
func (repo *profileRepository) AssignRole(ctx context.Context, id string, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ? AND role = ''", id).
		Update("role", role.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to assign role")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrRoleAlreadyAssigned
}

// SetDisabled enables or disables a profile.
func (repo *profileRepository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("is_disabled", disabled)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update disabled flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindByRole returns every profile with the role.
func (repo *profileRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	return repo.findWhere(ctx, repo.db.WithContext(ctx).Where("role = ?", role.String()))
}

// FindAll returns every profile.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	return repo.findWhere(ctx, repo.db.WithContext(ctx))
}

func (repo *profileRepository) findWhere(_ context.Context, query *gorm.DB) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := query.Order("created_at ASC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:            data.ID,
		Role:          entity.Role(data.Role),
		RequestedRole: entity.Role(data.RequestedRole),
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Address:       data.Address,
		Location:      entity.NewLocation(data.Latitude, data.Longitude),
		IsDisabled:    data.IsDisabled,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.NotificationToken != nil {
		profile.NotificationToken = *data.NotificationToken
	}

	return profile
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.ProfileModel{
		ID:            data.ID,
		Role:          data.Role.String(),
		RequestedRole: data.RequestedRole.String(),
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Address:       data.Address,
		Latitude:      data.Location.LatPtr(),
		Longitude:     data.Location.LngPtr(),
		IsDisabled:    data.IsDisabled,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.NotificationToken != "" {
		token := data.NotificationToken
		profileM.NotificationToken = &token
	}

	return profileM
}
