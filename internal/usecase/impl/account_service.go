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

// accountService implements the AccountUsecase interface.
type accountService struct {
	fx.In

	txManager repository.TransactionManager
	validator *validate.Validator
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	validator *validate.Validator,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// Register creates a new user account.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.logger.Info("Registering user", "username", input.Username)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username already taken")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user together with the profile sheets.
func (srv *accountService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user", "userID", id)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByUsername retrieves a user by the unique username.
func (srv *accountService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	srv.logger.Debug("Getting user by username", "username", username)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user account. The database cascades take the profile
// sheets, authored listings and offer memberships down with it; orders the
// user placed survive with the reference cleared.
func (srv *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting user", "userID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	return err
}
