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

// orderService implements the OrderUsecase interface.
type orderService struct {
	fx.In

	txManager repository.TransactionManager
	validator *validate.Validator
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	validator *validate.Validator,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// Place validates the billing data and creates a pending order against the
// referenced service listing.
func (srv *orderService) Place(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.logger.Info("Placing order", "serviceID", input.ServiceID, "email", input.Email)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	serviceID := input.ServiceID
	order := &entity.Order{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Address:    input.Address,
		PostalCode: input.PostalCode,
		City:       input.City,
		Status:     entity.OrderStatusPending,
		ServiceID:  &serviceID,
		UserID:     input.UserID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()
		orderRepo := repoFactory.OrderRepo()

		if _, err := serviceRepo.FindByID(ctx, input.ServiceID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// Get retrieves a single order by its identifier.
func (srv *orderService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	srv.logger.Debug("Getting order", "orderID", id)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListByUser retrieves all orders placed by a user, newest first.
func (srv *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	srv.logger.Debug("Listing orders by user", "userID", userID)

	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus moves an order to a new state.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	srv.logger.Info("Updating order status", "orderID", id, "status", status)

	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.UpdateStatus(ctx, id, status); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to update order status")
		}

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// Delete removes an order.
func (srv *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting order", "orderID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})

	return err
}
