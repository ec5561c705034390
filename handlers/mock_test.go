package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"taskhub/app"
	"taskhub/config/setup"
	"taskhub/models"
	"taskhub/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

var _ app.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(user models.User) store.Result[models.User] {
	args := m.Called(user)
	return args.Get(0).(store.Result[models.User])
}

func (m *MockUserRepository) Get(email string) store.Result[models.User] {
	args := m.Called(email)
	return args.Get(0).(store.Result[models.User])
}

func (m *MockUserRepository) List() []models.User {
	args := m.Called()
	return args.Get(0).([]models.User)
}

func (m *MockUserRepository) Update(email string, user models.User) store.Result[models.User] {
	args := m.Called(email, user)
	return args.Get(0).(store.Result[models.User])
}

func (m *MockUserRepository) Delete(email string) bool {
	args := m.Called(email)
	return args.Bool(0)
}

func (m *MockUserRepository) Reset() {
	m.Called()
}

func setupMockApp(users *MockUserRepository) *app.App {
	return &app.App{
		Users:  users,
		Tasks:  store.NewTaskStore(nil),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestUserHandlers_PassDecodedEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Get", "ana+teste@example.com").
		Return(store.Result[models.User]{Kind: store.KindFound, Value: models.User{Email: "ana+teste@example.com"}})
	users.On("Delete", "ana+teste@example.com").Return(true)

	fiberApp := setup.NewServer(testConfig(), setupMockApp(users))

	status, _ := do(t, fiberApp, http.MethodGet, "/usuarios/ana%2Bteste%40example.com", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, fiberApp, http.MethodDelete, "/usuarios/ana+teste@example.com", "")
	assert.Equal(t, http.StatusNoContent, status)

	users.AssertExpectations(t)
}

func TestUserHandlers_UnexpectedResultKind(t *testing.T) {
	user := models.User{Name: "Maria", Email: "maria@example.com", Age: 30}

	users := new(MockUserRepository)
	users.On("Create", user).Return(store.Result[models.User]{Kind: store.KindFound, Value: user})
	users.On("Update", "maria@example.com", user).Return(store.Result[models.User]{Kind: store.KindConflict})

	fiberApp := setup.NewServer(testConfig(), setupMockApp(users))

	status, body := do(t, fiberApp, http.MethodPost, "/usuarios", maria)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Unexpected store result", body)

	status, _ = do(t, fiberApp, http.MethodPut, "/usuarios/maria@example.com", maria)
	assert.Equal(t, http.StatusInternalServerError, status)

	users.AssertExpectations(t)
}

func TestAdminReset_CallsRepository(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Reset").Return()

	fiberApp := setup.NewServer(testConfig(), setupMockApp(users))

	status, _ := do(t, fiberApp, http.MethodPost, "/admin/reset", "")
	assert.Equal(t, http.StatusNoContent, status)

	users.AssertNumberOfCalls(t, "Reset", 1)
}
