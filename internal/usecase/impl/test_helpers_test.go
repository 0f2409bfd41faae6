package impl

import (
	"context"
	"io"
	"log/slog"

	"cuida/internal/domain/entity"
	"cuida/internal/domain/repository"
	"cuida/internal/validate"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestValidator() *validate.Validator {
	return validate.New()
}

// fakeTxManager runs the transactional function directly against the given
// factory. Tests assert on the repository mocks behind it.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeRepoFactory hands out the mock repositories.
type fakeRepoFactory struct {
	users    *mockUserRepo
	services *mockServiceRepo
	profiles *mockProfileRepo
	feedback *mockFeedbackRepo
	orders   *mockOrderRepo
}

func newFakeRepoFactory() *fakeRepoFactory {
	return &fakeRepoFactory{
		users:    &mockUserRepo{},
		services: &mockServiceRepo{},
		profiles: &mockProfileRepo{},
		feedback: &mockFeedbackRepo{},
		orders:   &mockOrderRepo{},
	}
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository         { return f.users }
func (f *fakeRepoFactory) ServiceRepo() repository.ServiceRepository   { return f.services }
func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository   { return f.profiles }
func (f *fakeRepoFactory) FeedbackRepo() repository.FeedbackRepository { return f.feedback }
func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository       { return f.orders }

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	args := m.Called(ctx, service)

	return args.Error(0)
}

func (m *mockServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Service), args.Error(1)
}

func (m *mockServiceRepo) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Service), args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	args := m.Called(ctx, service)

	return args.Error(0)
}

func (m *mockServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockServiceRepo) AddOfferer(ctx context.Context, serviceID, userID uuid.UUID) error {
	args := m.Called(ctx, serviceID, userID)

	return args.Error(0)
}

func (m *mockServiceRepo) RemoveOfferer(ctx context.Context, serviceID, userID uuid.UUID) error {
	args := m.Called(ctx, serviceID, userID)

	return args.Error(0)
}

func (m *mockServiceRepo) AttachFeedback(ctx context.Context, serviceID, feedbackID uuid.UUID) error {
	args := m.Called(ctx, serviceID, feedbackID)

	return args.Error(0)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) SaveDetails(ctx context.Context, details *entity.UserDetails) error {
	args := m.Called(ctx, details)

	return args.Error(0)
}

func (m *mockProfileRepo) FindDetailsByUser(ctx context.Context, userID uuid.UUID) (*entity.UserDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserDetails), args.Error(1)
}

func (m *mockProfileRepo) DeleteDetails(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *mockProfileRepo) SaveCurriculum(ctx context.Context, curriculum *entity.Curriculum) error {
	args := m.Called(ctx, curriculum)

	return args.Error(0)
}

func (m *mockProfileRepo) FindCurriculumByUser(ctx context.Context, userID uuid.UUID) (*entity.Curriculum, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Curriculum), args.Error(1)
}

func (m *mockProfileRepo) DeleteCurriculum(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

type mockFeedbackRepo struct {
	mock.Mock
}

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	args := m.Called(ctx, feedback)

	return args.Error(0)
}

func (m *mockFeedbackRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *mockFeedbackRepo) FindByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Feedback, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *mockFeedbackRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
