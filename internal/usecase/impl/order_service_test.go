package impl

import (
	"context"
	"testing"

	"cuida/internal/domain/entity"
	domainerrors "cuida/internal/domain/errors"
	"cuida/internal/domain/repository"
	"cuida/internal/usecase"
	"cuida/internal/validate"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest() (usecase.OrderUsecase, *fakeRepoFactory) {
	factory := newFakeRepoFactory()
	service := NewOrderService(&fakeTxManager{factory: factory}, newTestValidator(), newTestLogger())

	return service, factory
}

func validOrderInput(serviceID uuid.UUID) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		FirstName:  "María",
		LastName:   "López",
		Email:      "maria.lopez@example.com",
		Address:    "Avenida de América 10",
		PostalCode: "28002",
		City:       "Madrid",
		ServiceID:  serviceID,
	}
}

func TestOrderService_Place_StartsPending(t *testing.T) {
	service, factory := newOrderServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()

	factory.services.On("FindByID", ctx, serviceID).Return(&entity.Service{ID: serviceID}, nil)
	factory.orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := service.Place(ctx, validOrderInput(serviceID))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.NotNil(t, order.ServiceID)
	assert.Equal(t, serviceID, *order.ServiceID)
	factory.orders.AssertExpectations(t)
}

func TestOrderService_Place_InvalidEmail(t *testing.T) {
	service, factory := newOrderServiceForTest()

	input := validOrderInput(uuid.New())
	input.Email = "not-an-email"

	_, err := service.Place(context.Background(), input)
	require.Error(t, err)

	var validationErr *validate.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
	factory.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Place_ServiceNotFound(t *testing.T) {
	service, factory := newOrderServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()

	factory.services.On("FindByID", ctx, serviceID).Return(nil, repository.ErrServiceNotFound)

	_, err := service.Place(ctx, validOrderInput(serviceID))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
	factory.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	service, factory := newOrderServiceForTest()

	ctx := context.Background()
	orderID := uuid.New()

	factory.orders.On("FindByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.Get(ctx, orderID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListByUser_Success(t *testing.T) {
	service, factory := newOrderServiceForTest()

	ctx := context.Background()
	userID := uuid.New()

	factory.orders.On("FindByUser", ctx, userID).Return([]*entity.Order{
		{ID: uuid.New(), Status: entity.OrderStatusPending},
	}, nil)

	orders, err := service.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	service, factory := newOrderServiceForTest()

	ctx := context.Background()
	orderID := uuid.New()

	factory.orders.On("UpdateStatus", ctx, orderID, entity.OrderStatusConfirmed).Return(nil)
	factory.orders.On("FindByID", ctx, orderID).Return(&entity.Order{
		ID:     orderID,
		Status: entity.OrderStatusConfirmed,
	}, nil)

	order, err := service.UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	service, factory := newOrderServiceForTest()

	_, err := service.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatus("shipped"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	factory.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	service, factory := newOrderServiceForTest()

	ctx := context.Background()
	orderID := uuid.New()

	factory.orders.On("Delete", ctx, orderID).Return(repository.ErrOrderNotFound)

	err := service.Delete(ctx, orderID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
