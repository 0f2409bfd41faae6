package impl

import (
	"context"
	"log/slog"

	"cuida/internal/domain/entity"
	domainerrors "cuida/internal/domain/errors"
	"cuida/internal/domain/repository"
	"cuida/internal/usecase"
	"cuida/internal/validate"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	fx.In

	txManager repository.TransactionManager
	validator *validate.Validator
	logger    *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(
	txManager repository.TransactionManager,
	validator *validate.Validator,
	logger *slog.Logger,
) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// Create stores a rating and attaches it to the target service listing. Both
// writes happen in the same transaction so a rating never dangles.
func (srv *feedbackService) Create(ctx context.Context, input *usecase.CreateFeedbackInput) (*entity.Feedback, error) {
	srv.logger.Info("Creating feedback", "serviceID", input.ServiceID, "rate", input.Rate)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		Rate:        input.Rate,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()
		feedbackRepo := repoFactory.FeedbackRepo()

		if _, err := serviceRepo.FindByID(ctx, input.ServiceID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if err := feedbackRepo.Create(ctx, feedback); err != nil {
			return errors.Wrap(err, "failed to create feedback")
		}

		if err := serviceRepo.AttachFeedback(ctx, input.ServiceID, feedback.ID); err != nil {
			return errors.Wrap(err, "failed to attach feedback to service")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return feedback, nil
}

// Get retrieves a single rating by its identifier.
func (srv *feedbackService) Get(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	srv.logger.Debug("Getting feedback", "feedbackID", id)

	var feedback *entity.Feedback

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.FeedbackRepo()

		found, err := feedbackRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrFeedbackNotFound) {
				return errors.Wrap(domainerrors.ErrFeedbackNotFound, "feedback not found")
			}

			return errors.Wrap(err, "failed to find feedback")
		}
		feedback = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListByService retrieves all ratings attached to a service listing.
func (srv *feedbackService) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Feedback, error) {
	srv.logger.Debug("Listing feedback by service", "serviceID", serviceID)

	var feedbacks []*entity.Feedback

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.FeedbackRepo()

		found, err := feedbackRepo.FindByService(ctx, serviceID)
		if err != nil {
			return errors.Wrap(err, "failed to list feedback")
		}
		feedbacks = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// Delete removes a rating. The link rows to services go with it.
func (srv *feedbackService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting feedback", "feedbackID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.FeedbackRepo()

		if err := feedbackRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrFeedbackNotFound) {
				return errors.Wrap(domainerrors.ErrFeedbackNotFound, "feedback not found")
			}

			return errors.Wrap(err, "failed to delete feedback")
		}

		return nil
	})

	return err
}
