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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	fx.In

	txManager repository.TransactionManager
	validator *validate.Validator
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	validator *validate.Validator,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// GetDetails retrieves the contact-details sheet of a user.
func (srv *profileService) GetDetails(ctx context.Context, userID uuid.UUID) (*entity.UserDetails, error) {
	srv.logger.Debug("Getting user details", "userID", userID)

	var details *entity.UserDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := profileRepo.FindDetailsByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserDetailsNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "user details not found")
			}

			return errors.Wrap(err, "failed to find user details")
		}
		details = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return details, nil
}

// UpsertDetails saves the contact-details sheet, replacing any previous one.
func (srv *profileService) UpsertDetails(ctx context.Context, userID uuid.UUID, input *usecase.UpsertDetailsInput) (*entity.UserDetails, error) {
	srv.logger.Info("Saving user details", "userID", userID)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	gender := entity.Gender(input.Gender)
	if input.Gender == "" {
		gender = entity.GenderOther
	}

	details := &entity.UserDetails{
		UserID:           userID,
		Birthday:         input.Birthday,
		Phone:            input.Phone,
		Address:          input.Address,
		Gender:           gender,
		Occupation:       input.Occupation,
		PhotoURL:         input.PhotoURL,
		SocialReferences: input.SocialReferences,
		IdentityNumber:   input.IdentityNumber,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := profileRepo.SaveDetails(ctx, details); err != nil {
			return errors.Wrap(err, "failed to save user details")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return details, nil
}

// DeleteDetails removes the contact-details sheet of a user.
func (srv *profileService) DeleteDetails(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Deleting user details", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if err := profileRepo.DeleteDetails(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserDetailsNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "user details not found")
			}

			return errors.Wrap(err, "failed to delete user details")
		}

		return nil
	})

	return err
}

// GetCurriculum retrieves the curriculum sheet of a user.
func (srv *profileService) GetCurriculum(ctx context.Context, userID uuid.UUID) (*entity.Curriculum, error) {
	srv.logger.Debug("Getting curriculum", "userID", userID)

	var curriculum *entity.Curriculum

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := profileRepo.FindCurriculumByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCurriculumNotFound) {
				return errors.Wrap(domainerrors.ErrCurriculumNotFound, "curriculum not found")
			}

			return errors.Wrap(err, "failed to find curriculum")
		}
		curriculum = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return curriculum, nil
}

// UpsertCurriculum saves the curriculum sheet, replacing any previous one.
func (srv *profileService) UpsertCurriculum(ctx context.Context, userID uuid.UUID, input *usecase.UpsertCurriculumInput) (*entity.Curriculum, error) {
	srv.logger.Info("Saving curriculum", "userID", userID)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	curriculum := &entity.Curriculum{
		UserID:       userID,
		PersonalData: input.PersonalData,
		Experience:   input.Experience,
		Education:    input.Education,
		Notes:        input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := profileRepo.SaveCurriculum(ctx, curriculum); err != nil {
			return errors.Wrap(err, "failed to save curriculum")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return curriculum, nil
}

// DeleteCurriculum removes the curriculum sheet of a user.
func (srv *profileService) DeleteCurriculum(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Deleting curriculum", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if err := profileRepo.DeleteCurriculum(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrCurriculumNotFound) {
				return errors.Wrap(domainerrors.ErrCurriculumNotFound, "curriculum not found")
			}

			return errors.Wrap(err, "failed to delete curriculum")
		}

		return nil
	})

	return err
}
