package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/infra/persistence/model"
)

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(db *gorm.DB) repository.BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// Create persists a new broadcast.
func (repo *broadcastRepository) Create(ctx context.Context, broadcast *entity.Broadcast) error {
	broadcastM := fromBroadcastDomain(broadcast)

	if err := repo.db.WithContext(ctx).Create(broadcastM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create broadcast")
	}

	broadcast.ID = broadcastM.ID
	broadcast.CreatedAt = broadcastM.CreatedAt

	return nil
}

// FindCreatedSince returns broadcasts created at or after since, oldest first.
func (repo *broadcastRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Broadcast, error) {
	var broadcastModels []*model.BroadcastModel

	if err := repo.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Order("id ASC").
		Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find broadcasts since mark")
	}

	return toBroadcastDomains(broadcastModels), nil
}

// List returns broadcasts newest first.
func (repo *broadcastRepository) List(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error) {
	var broadcastModels []*model.BroadcastModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list broadcasts")
	}

	return toBroadcastDomains(broadcastModels), nil
}

// UpdateAttempted records how many tokens a broadcast was sent to.
func (repo *broadcastRepository) UpdateAttempted(ctx context.Context, id uuid.UUID, attempted int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BroadcastModel{}).
		Where("id = ?", id).
		Update("attempted", attempted)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update broadcast statistics")
	}

	return nil
}

// --- Mapper Functions ---

func toBroadcastDomains(models []*model.BroadcastModel) []*entity.Broadcast {
	broadcasts := make([]*entity.Broadcast, 0, len(models))
	for _, broadcastM := range models {
		broadcasts = append(broadcasts, toBroadcastDomain(broadcastM))
	}

	return broadcasts
}

func toBroadcastDomain(data *model.BroadcastModel) *entity.Broadcast {
	if data == nil {
		return nil
	}

	return &entity.Broadcast{
		ID:      data.ID,
		Title:   data.Title,
		Message: data.Message,
		Audience: entity.Audience{
			Kind:   entity.AudienceKind(data.TargetAudience),
			Role:   entity.Role(data.TargetRole),
			UserID: data.TargetUserID,
		},
		CreatedBy: data.CreatedBy,
		Attempted: data.Attempted,
		CreatedAt: data.CreatedAt,
	}
}

func fromBroadcastDomain(data *entity.Broadcast) *model.BroadcastModel {
	if data == nil {
		return nil
	}

	return &model.BroadcastModel{
		ID:             data.ID,
		Title:          data.Title,
		Message:        data.Message,
		TargetAudience: string(data.Audience.Kind),
		TargetRole:     data.Audience.Role.String(),
		TargetUserID:   data.Audience.UserID,
		CreatedBy:      data.CreatedBy,
		Attempted:      data.Attempted,
		CreatedAt:      data.CreatedAt,
	}
}
