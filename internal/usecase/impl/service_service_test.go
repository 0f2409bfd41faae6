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

func newServiceServiceForTest() (usecase.ServiceUsecase, *fakeRepoFactory) {
	factory := newFakeRepoFactory()
	service := NewServiceService(&fakeTxManager{factory: factory}, newTestValidator(), newTestLogger())

	return service, factory
}

func TestServiceService_Create_Success(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	authorID := uuid.New()

	factory.services.On("Create", ctx, mock.AnythingOfType("*entity.Service")).Return(nil)

	created, err := service.Create(ctx, &usecase.CreateServiceInput{
		Name:        "Cuidado de ancianos a domicilio",
		Description: "Atención diaria con experiencia sanitaria",
		Price:       15.678,
		Available:   true,
		Category:    "Cuidado completo",
		AuthorID:    authorID,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.CategoryFullCare, created.Category)
	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, 15.68, created.Price)
	factory.services.AssertExpectations(t)
}

func TestServiceService_Create_DefaultsCategory(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()

	factory.services.On("Create", ctx, mock.AnythingOfType("*entity.Service")).Return(nil)

	created, err := service.Create(ctx, &usecase.CreateServiceInput{
		Name:        "Recogida de medicamentos",
		Description: "Recados semanales",
		Price:       5,
		AuthorID:    uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryUnspecified, created.Category)
}

func TestServiceService_Create_ValidationFailure(t *testing.T) {
	service, factory := newServiceServiceForTest()

	_, err := service.Create(context.Background(), &usecase.CreateServiceInput{
		Name:        "",
		Description: "sin nombre",
		Price:       10,
		AuthorID:    uuid.New(),
	})
	require.Error(t, err)

	var validationErr *validate.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "name")
	factory.services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServiceService_Create_RejectsUnknownCategory(t *testing.T) {
	service, _ := newServiceServiceForTest()

	_, err := service.Create(context.Background(), &usecase.CreateServiceInput{
		Name:        "Paseos",
		Description: "Paseos por la tarde",
		Price:       8,
		Category:    "Jardinería",
		AuthorID:    uuid.New(),
	})
	require.Error(t, err)

	var validationErr *validate.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "category")
}

func TestServiceService_Create_RejectsNegativePrice(t *testing.T) {
	service, _ := newServiceServiceForTest()

	_, err := service.Create(context.Background(), &usecase.CreateServiceInput{
		Name:        "Cuidado nocturno",
		Description: "Turnos de noche",
		Price:       -1,
		AuthorID:    uuid.New(),
	})
	require.Error(t, err)

	var validationErr *validate.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "price")
}

func TestServiceService_Get_NotFound(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()

	factory.services.On("FindByID", ctx, serviceID).Return(nil, repository.ErrServiceNotFound)

	_, err := service.Get(ctx, serviceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestServiceService_Update_AppliesChangedFieldsOnly(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()
	authorID := uuid.New()

	existing := &entity.Service{
		ID:          serviceID,
		Name:        "Cuidado parcial de mañana",
		Description: "Media jornada",
		Price:       20,
		Available:   true,
		Category:    entity.CategoryPartialCare,
		AuthorID:    authorID,
	}

	factory.services.On("FindByID", ctx, serviceID).Return(existing, nil)
	factory.services.On("Update", ctx, mock.AnythingOfType("*entity.Service")).Return(nil)

	newPrice := 25.0
	updated, err := service.Update(ctx, serviceID, &usecase.UpdateServiceInput{
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, "Cuidado parcial de mañana", updated.Name)
	assert.Equal(t, authorID, updated.AuthorID)
}

func TestServiceService_Update_RejectsSuppliedEmptyValues(t *testing.T) {
	service, factory := newServiceServiceForTest()

	emptyName := ""
	emptyDescription := ""
	emptyCategory := ""

	_, err := service.Update(context.Background(), uuid.New(), &usecase.UpdateServiceInput{
		Name:        &emptyName,
		Description: &emptyDescription,
		Category:    &emptyCategory,
	})
	require.Error(t, err)

	var validationErr *validate.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "name")
	assert.Contains(t, validationErr.Fields, "description")
	assert.Contains(t, validationErr.Fields, "category")
	factory.services.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestServiceService_Update_RejectsNegativePrice(t *testing.T) {
	service, factory := newServiceServiceForTest()

	negative := -3.0

	_, err := service.Update(context.Background(), uuid.New(), &usecase.UpdateServiceInput{
		Price: &negative,
	})
	require.Error(t, err)

	var validationErr *validate.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "price")
	factory.services.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestServiceService_Delete_NotFound(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()

	factory.services.On("Delete", ctx, serviceID).Return(repository.ErrServiceNotFound)

	err := service.Delete(ctx, serviceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestServiceService_AddOfferer_Success(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()
	userID := uuid.New()

	factory.services.On("FindByID", ctx, serviceID).Return(&entity.Service{ID: serviceID}, nil)
	factory.services.On("AddOfferer", ctx, serviceID, userID).Return(nil)

	err := service.AddOfferer(ctx, serviceID, userID)
	require.NoError(t, err)
	factory.services.AssertExpectations(t)
}

func TestServiceService_AddOfferer_ServiceNotFound(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()

	factory.services.On("FindByID", ctx, serviceID).Return(nil, repository.ErrServiceNotFound)

	err := service.AddOfferer(ctx, serviceID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
	factory.services.AssertNotCalled(t, "AddOfferer", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceService_AttachFeedback_Success(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()
	feedbackID := uuid.New()

	factory.services.On("FindByID", ctx, serviceID).Return(&entity.Service{ID: serviceID}, nil)
	factory.feedback.On("FindByID", ctx, feedbackID).Return(&entity.Feedback{ID: feedbackID, Rate: 3}, nil)
	factory.services.On("AttachFeedback", ctx, serviceID, feedbackID).Return(nil)

	err := service.AttachFeedback(ctx, serviceID, feedbackID)
	require.NoError(t, err)
	factory.services.AssertExpectations(t)
}

func TestServiceService_AttachFeedback_FeedbackNotFound(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	serviceID := uuid.New()
	feedbackID := uuid.New()

	factory.services.On("FindByID", ctx, serviceID).Return(&entity.Service{ID: serviceID}, nil)
	factory.feedback.On("FindByID", ctx, feedbackID).Return(nil, repository.ErrFeedbackNotFound)

	err := service.AttachFeedback(ctx, serviceID, feedbackID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFeedbackNotFound))
	factory.services.AssertNotCalled(t, "AttachFeedback", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceService_List_PassesFilter(t *testing.T) {
	service, factory := newServiceServiceForTest()

	ctx := context.Background()
	category := entity.CategoryErrands
	filter := repository.ServiceFilter{Category: &category}

	factory.services.On("List", ctx, filter).Return([]*entity.Service{
		{ID: uuid.New(), Name: "Recados", Category: entity.CategoryErrands},
	}, nil)

	services, err := service.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, entity.CategoryErrands, services[0].Category)
}
