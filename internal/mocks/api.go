package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/models"
)

// MockAuthAPI is a mock implementation of the AuthAPI interface
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (apiclient.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(apiclient.AuthResponse), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, req apiclient.RegisterRequest) (apiclient.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(apiclient.AuthResponse), args.Error(1)
}

func (m *MockAuthAPI) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.UserProfile), args.Error(1)
}

func (m *MockAuthAPI) UpdateProfile(ctx context.Context, update apiclient.ProfileUpdate) (models.UserProfile, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(models.UserProfile), args.Error(1)
}

// MockPlanAPI is a mock implementation of the PlanAPI interface
type MockPlanAPI struct {
	mock.Mock
}

func (m *MockPlanAPI) PlanForUser(ctx context.Context, userID string) (models.MealPlan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.MealPlan), args.Error(1)
}

func (m *MockPlanAPI) GeneratePlan(ctx context.Context) (models.MealPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.MealPlan), args.Error(1)
}

func (m *MockPlanAPI) DeletePlan(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockChatAPI is a mock implementation of the ChatAPI interface
type MockChatAPI struct {
	mock.Mock
}

func (m *MockChatAPI) Ask(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}
