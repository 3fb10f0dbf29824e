package service

import (
	"context"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/models"
)

// AuthAPI is the slice of the remote API the session manager consumes
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (apiclient.AuthResponse, error)
	Register(ctx context.Context, req apiclient.RegisterRequest) (apiclient.AuthResponse, error)
	CurrentUser(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, update apiclient.ProfileUpdate) (models.UserProfile, error)
}

// PlanAPI is the slice of the remote API the plan workflow consumes
type PlanAPI interface {
	PlanForUser(ctx context.Context, userID string) (models.MealPlan, error)
	GeneratePlan(ctx context.Context) (models.MealPlan, error)
	DeletePlan(ctx context.Context, userID string) error
}

// ChatAPI asks the nutrition assistant a question
type ChatAPI interface {
	Ask(ctx context.Context, message string) (string, error)
}

// CredentialStore owns the persisted bearer credential
type CredentialStore interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
}

// PlanCache keeps a local copy of the last fetched plan
type PlanCache interface {
	SavePlan(plan models.MealPlan) error
	ClearPlans() error
}

// Notifier is the user-facing notification surface
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NavTarget is a view the session manager can command navigation to
type NavTarget string

const (
	NavDashboard NavTarget = "dashboard"
	NavLogin     NavTarget = "login"
)

// Navigator receives navigation commands
type Navigator interface {
	NavigateTo(target NavTarget)
}

// IdentitySource exposes the resolved identity and its change events
type IdentitySource interface {
	User() *models.UserProfile
	Resolving() bool
	OnIdentityChanged(fn func(ctx context.Context, user *models.UserProfile))
}
