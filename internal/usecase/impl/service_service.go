// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"

	"cuida/internal/domain/entity"
	domainerrors "cuida/internal/domain/errors"
	"cuida/internal/domain/repository"
	"cuida/internal/usecase"
	"cuida/internal/validate"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// serviceService implements the ServiceUsecase interface.
type serviceService struct {
	fx.In

	txManager repository.TransactionManager
	validator *validate.Validator
	logger    *slog.Logger
}

// NewServiceService is the constructor for serviceService.
func NewServiceService(
	txManager repository.TransactionManager,
	validator *validate.Validator,
	logger *slog.Logger,
) usecase.ServiceUsecase {
	return &serviceService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// Create validates and publishes a new service listing.
func (srv *serviceService) Create(ctx context.Context, input *usecase.CreateServiceInput) (*entity.Service, error) {
	srv.logger.Info("Creating service listing", "name", input.Name, "authorID", input.AuthorID)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	category := entity.Category(input.Category)
	if input.Category == "" {
		category = entity.CategoryUnspecified
	}

	service := &entity.Service{
		Name:          input.Name,
		Description:   input.Description,
		Price:         roundPrice(input.Price),
		Available:     input.Available,
		Category:      category,
		AuthorID:      input.AuthorID,
		SolicitanteID: input.SolicitanteID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		if err := serviceRepo.Create(ctx, service); err != nil {
			return errors.Wrap(err, "failed to create service")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrServiceCreationFailed, err.Error())
	}

	return service, nil
}

// Get retrieves a single service listing by its identifier.
func (srv *serviceService) Get(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	srv.logger.Debug("Getting service listing", "serviceID", id)

	var service *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		found, err := serviceRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}
		service = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return service, nil
}

// List retrieves service listings matching the given filter.
func (srv *serviceService) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	srv.logger.Debug("Listing services", "filter", filter)

	var services []*entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		found, err := serviceRepo.List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list services")
		}
		services = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return services, nil
}

// Update applies the changed fields to an existing listing. The creation
// timestamp and the author never change.
func (srv *serviceService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	srv.logger.Info("Updating service listing", "serviceID", id)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	var service *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		found, err := serviceRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Price != nil {
			found.Price = roundPrice(*input.Price)
		}
		if input.Available != nil {
			found.Available = *input.Available
		}
		if input.Category != nil {
			found.Category = entity.Category(*input.Category)
		}
		if input.SolicitanteID != nil {
			found.SolicitanteID = input.SolicitanteID
		}

		if err := serviceRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update service")
		}
		service = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return service, nil
}

// Delete removes a service listing together with its offer memberships and
// attached feedback links.
func (srv *serviceService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting service listing", "serviceID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		if err := serviceRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to delete service")
		}

		return nil
	})

	return err
}

// AddOfferer registers a user as an offerer of the listing.
func (srv *serviceService) AddOfferer(ctx context.Context, serviceID, userID uuid.UUID) error {
	srv.logger.Info("Adding offerer", "serviceID", serviceID, "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		if _, err := serviceRepo.FindByID(ctx, serviceID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if err := serviceRepo.AddOfferer(ctx, serviceID, userID); err != nil {
			return errors.Wrap(err, "failed to add offerer")
		}

		return nil
	})

	return err
}

// RemoveOfferer removes a user from the listing's offerers.
func (srv *serviceService) RemoveOfferer(ctx context.Context, serviceID, userID uuid.UUID) error {
	srv.logger.Info("Removing offerer", "serviceID", serviceID, "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		if err := serviceRepo.RemoveOfferer(ctx, serviceID, userID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to remove offerer")
		}

		return nil
	})

	return err
}

// AttachFeedback links an existing rating to the listing. Ratings created
// through FeedbackUsecase.Create are attached already; this covers moving or
// re-linking one.
func (srv *serviceService) AttachFeedback(ctx context.Context, serviceID, feedbackID uuid.UUID) error {
	srv.logger.Info("Attaching feedback", "serviceID", serviceID, "feedbackID", feedbackID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()
		feedbackRepo := repoFactory.FeedbackRepo()

		if _, err := serviceRepo.FindByID(ctx, serviceID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if _, err := feedbackRepo.FindByID(ctx, feedbackID); err != nil {
			if errors.Is(err, repository.ErrFeedbackNotFound) {
				return errors.Wrap(domainerrors.ErrFeedbackNotFound, "feedback not found")
			}

			return errors.Wrap(err, "failed to find feedback")
		}

		if err := serviceRepo.AttachFeedback(ctx, serviceID, feedbackID); err != nil {
			return errors.Wrap(err, "failed to attach feedback")
		}

		return nil
	})

	return err
}

// roundPrice normalizes a price to two decimal places before persisting it.
func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
