// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cuida/internal/domain/entity"
	domainerrors "cuida/internal/domain/errors"
	"cuida/internal/domain/repository"
	"cuida/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mutableServiceColumns are the only columns Update may touch. 'created' and
// 'author_id' are deliberately absent: both are immutable after creation.
var mutableServiceColumns = []string{
	"name", "description", "price", "available", "category", "solicitante_id", "updated_at",
}

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// Create persists a new service listing.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServiceCreationFailed.WrapMessage("invalid author or solicitante reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrServiceCreationFailed.WrapMessage("missing required service information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must be non-negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.Created = serviceM.Created
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// FindByID retrieves a single service with author, offerers and feedback.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Offerers").
		Preload("Feedback").
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// List retrieves services matching the filter, newest first.
func (repo *serviceRepository) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	query := repo.db.WithContext(ctx).Model(&model.ServiceModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	if filter.OffererID != nil {
		query = query.
			Joins("JOIN service_offerers ON service_offerers.service_id = services.id").
			Where("service_offerers.user_id = ?", *filter.OffererID)
	}

	var serviceModels []*model.ServiceModel
	if err := query.Order("created DESC").Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// Update rewrites the mutable columns of an existing service. The creation
// timestamp and the author reference stay untouched regardless of the values
// on the entity.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Select(mutableServiceColumns).
		Updates(serviceM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferentialViolation.WrapMessage("invalid solicitante reference")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must be non-negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a service. Join rows and order references follow the FK
// policies (CASCADE and SET NULL respectively).
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// AddOfferer records that a user offers to perform the service. Concurrent
// joins rely on the join table's composite primary key.
func (repo *serviceRepository) AddOfferer(ctx context.Context, serviceID, userID uuid.UUID) error {
	serviceM := model.ServiceModel{ID: serviceID}

	err := repo.db.WithContext(ctx).
		Model(&serviceM).
		Association("Offerers").
		Append(&model.UserModel{ID: userID})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferentialViolation.WrapMessage("unknown service or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add offerer")
	}

	return nil
}

// RemoveOfferer withdraws a user's offer on the service.
func (repo *serviceRepository) RemoveOfferer(ctx context.Context, serviceID, userID uuid.UUID) error {
	serviceM := model.ServiceModel{ID: serviceID}

	err := repo.db.WithContext(ctx).
		Model(&serviceM).
		Association("Offerers").
		Delete(&model.UserModel{ID: userID})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove offerer")
	}

	return nil
}

// AttachFeedback links an existing feedback entry to the service.
func (repo *serviceRepository) AttachFeedback(ctx context.Context, serviceID, feedbackID uuid.UUID) error {
	serviceM := model.ServiceModel{ID: serviceID}

	err := repo.db.WithContext(ctx).
		Model(&serviceM).
		Association("Feedback").
		Append(&model.FeedbackModel{ID: feedbackID})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferentialViolation.WrapMessage("unknown service or feedback")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach feedback")
	}

	return nil
}

// --- Mapper Functions ---

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	offerers := make([]*entity.User, 0, len(data.Offerers))
	for _, userM := range data.Offerers {
		offerers = append(offerers, toUserDomain(userM))
	}

	feedback := make([]*entity.Feedback, 0, len(data.Feedback))
	for _, feedbackM := range data.Feedback {
		feedback = append(feedback, toFeedbackDomain(feedbackM))
	}

	return &entity.Service{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Created:       data.Created,
		Price:         data.Price,
		Available:     data.Available,
		Category:      entity.Category(data.Category),
		AuthorID:      data.AuthorID,
		SolicitanteID: data.SolicitanteID,
		UpdatedAt:     data.UpdatedAt,
		Author:        toUserDomain(data.Author),
		Offerers:      offerers,
		Feedback:      feedback,
	}
}

// fromServiceDomain converts a domain Service entity to a GORM ServiceModel.
// Associations are managed through the dedicated repository methods, never
// written implicitly.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Available:     data.Available,
		Category:      data.Category.String(),
		AuthorID:      data.AuthorID,
		SolicitanteID: data.SolicitanteID,
	}
}
