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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("request violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindByID retrieves a request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindByOrphanage returns the orphanage's requests, newest first.
func (repo *requestRepository) FindByOrphanage(ctx context.Context, orphanageID string) ([]*entity.Request, error) {
	return repo.findWhere(ctx, "orphanage_id = ?", orphanageID)
}

// FindByStatus returns requests in the given status, newest first.
func (repo *requestRepository) FindByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.Request, error) {
	return repo.findWhere(ctx, "status = ?", string(status))
}

func (repo *requestRepository) findWhere(ctx context.Context, query string, args ...any) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Order("id DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests")
	}

	requests := make([]*entity.Request, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// MarkFulfilled moves a Pending request to Fulfilled.
func (repo *requestRepository) MarkFulfilled(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.RequestPending)).
		Updates(map[string]any{
			"status":       string(entity.RequestFulfilled),
			"fulfilled_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to fulfill request")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:             data.ID,
		OrphanageID:    data.OrphanageID,
		OrphanageName:  data.OrphanageName,
		OrphanagePhone: data.OrphanagePhone,
		ItemNeeded:     data.ItemNeeded,
		Quantity:       data.Quantity,
		Location:       entity.NewLocation(data.Latitude, data.Longitude),
		Status:         entity.RequestStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		FulfilledAt:    data.FulfilledAt,
	}
}

func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:             data.ID,
		OrphanageID:    data.OrphanageID,
		OrphanageName:  data.OrphanageName,
		OrphanagePhone: data.OrphanagePhone,
		ItemNeeded:     data.ItemNeeded,
		Quantity:       data.Quantity,
		Latitude:       data.Location.LatPtr(),
		Longitude:      data.Location.LngPtr(),
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		FulfilledAt:    data.FulfilledAt,
	}
}
