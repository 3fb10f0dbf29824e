package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/mocks"
	"github.com/nutriplan/nutriplan-cli/internal/models"
	"github.com/nutriplan/nutriplan-cli/internal/service"
)

// fakeSession gives tests direct control over the resolved identity
type fakeSession struct {
	user      *models.UserProfile
	resolving bool
	listeners []func(ctx context.Context, user *models.UserProfile)
}

func (f *fakeSession) User() *models.UserProfile { return f.user }
func (f *fakeSession) Resolving() bool           { return f.resolving }

func (f *fakeSession) OnIdentityChanged(fn func(ctx context.Context, user *models.UserProfile)) {
	f.listeners = append(f.listeners, fn)
}

func (f *fakeSession) setUser(ctx context.Context, user *models.UserProfile) {
	f.user = user
	for _, fn := range f.listeners {
		fn(ctx, user)
	}
}

type planFixture struct {
	api      *mocks.MockPlanAPI
	session  *fakeSession
	notifier *mocks.RecordingNotifier
	cache    *mocks.FakePlanCache
	workflow *service.PlanWorkflow
}

func newPlanFixture(user *models.UserProfile) *planFixture {
	f := &planFixture{
		api:      &mocks.MockPlanAPI{},
		session:  &fakeSession{user: user},
		notifier: &mocks.RecordingNotifier{},
		cache:    &mocks.FakePlanCache{},
	}
	f.workflow = service.NewPlanWorkflow(f.api, f.session, f.notifier, f.cache)
	return f
}

func testUser() *models.UserProfile {
	return &models.UserProfile{ID: "u1", Name: "Asha", Email: "asha@example.com"}
}

func testPlan(id string) models.MealPlan {
	return models.MealPlan{
		ID:     id,
		UserID: "u1",
		Week: []models.DailyMeals{
			{
				Day: "Monday",
				Meals: map[models.MealSlot][]models.MealEntry{
					models.SlotBreakfast: {{Name: "Oats", Calories: 350}},
					models.SlotLunch:     {{Name: "Dal and rice", Calories: 650}},
				},
				TotalCalories: 2100,
				Macros:        models.Macros{Protein: 120, Carbs: 240, Fat: 60},
			},
		},
	}
}

func TestFetchPlanSuccess(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("PlanForUser", mock.Anything, "u1").Return(testPlan("p1"), nil)

	f.workflow.FetchPlan(context.Background())

	if f.workflow.Plan() == nil {
		t.Fatal("expected a plan to be held")
	}
	assert.Equal(t, "p1", f.workflow.Plan().ID)
	assert.Empty(t, f.workflow.Err())
	assert.False(t, f.workflow.Loading())
	assert.Len(t, f.cache.Saved, 1)
}

func TestFetchPlanBenignAbsence(t *testing.T) {
	for _, msg := range []string{"Meal plan not found", "MEAL PLAN NOT FOUND", "meal plan not found for user"} {
		f := newPlanFixture(testUser())
		f.api.On("PlanForUser", mock.Anything, "u1").Return(models.MealPlan{},
			&apiclient.APIError{StatusCode: http.StatusNotFound, Message: msg})

		f.workflow.FetchPlan(context.Background())

		assert.Nil(t, f.workflow.Plan())
		assert.Empty(t, f.workflow.Err())
		if len(f.notifier.Errors) != 0 {
			t.Errorf("message %q: benign absence must not surface an error, got %v", msg, f.notifier.Errors)
		}
	}
}

func TestFetchPlanOtherError(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("PlanForUser", mock.Anything, "u1").Return(models.MealPlan{},
		&apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "database unavailable"})

	f.workflow.FetchPlan(context.Background())

	assert.Nil(t, f.workflow.Plan())
	assert.Equal(t, "database unavailable", f.workflow.Err())
	assert.Equal(t, []string{"database unavailable"}, f.notifier.Errors)
}

func TestFetchPlanIdempotent(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("PlanForUser", mock.Anything, "u1").Return(testPlan("p1"), nil)

	f.workflow.FetchPlan(context.Background())
	first := *f.workflow.Plan()
	f.workflow.FetchPlan(context.Background())
	second := *f.workflow.Plan()

	assert.Equal(t, first, second)
	f.api.AssertNumberOfCalls(t, "PlanForUser", 2)
}

func TestFetchPlanNoIdentityAfterResolution(t *testing.T) {
	f := newPlanFixture(nil)

	f.workflow.FetchPlan(context.Background())

	assert.Nil(t, f.workflow.Plan())
	assert.False(t, f.workflow.Loading())
	f.api.AssertNotCalled(t, "PlanForUser", mock.Anything, mock.Anything)
}

func TestFetchPlanNoIdentityStillResolving(t *testing.T) {
	f := newPlanFixture(nil)
	f.session.resolving = true

	f.workflow.FetchPlan(context.Background())

	// Resolution not finished: stay loading, make no call
	assert.True(t, f.workflow.Loading())
	f.api.AssertNotCalled(t, "PlanForUser", mock.Anything, mock.Anything)
}

func TestGeneratePlanSuccess(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("GeneratePlan", mock.Anything).Return(testPlan("p2"), nil)

	f.workflow.GeneratePlan(context.Background())

	assert.Equal(t, "p2", f.workflow.Plan().ID)
	assert.Equal(t, []string{"Diet plan saved successfully!"}, f.notifier.Successes)
	assert.Empty(t, f.workflow.Err())
}

func TestGeneratePlanWithoutIdentity(t *testing.T) {
	f := newPlanFixture(nil)

	f.workflow.GeneratePlan(context.Background())

	assert.Equal(t, []string{"Please log in to generate a meal plan."}, f.notifier.Errors)
	assert.False(t, f.workflow.Loading())
	f.api.AssertNotCalled(t, "GeneratePlan", mock.Anything)
}

func TestGeneratePlanFailure(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("GeneratePlan", mock.Anything).Return(models.MealPlan{},
		&apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "no foods available"})

	f.workflow.GeneratePlan(context.Background())

	assert.Nil(t, f.workflow.Plan())
	assert.Equal(t, "no foods available", f.workflow.Err())
	assert.Equal(t, []string{"no foods available"}, f.notifier.Errors)
}

func TestRegeneratePlanDeleteBeforeCreate(t *testing.T) {
	f := newPlanFixture(testUser())

	var calls []string
	f.api.On("DeletePlan", mock.Anything, "u1").Run(func(mock.Arguments) {
		calls = append(calls, "delete")
	}).Return(nil)
	f.api.On("GeneratePlan", mock.Anything).Run(func(mock.Arguments) {
		calls = append(calls, "create")
	}).Return(testPlan("p3"), nil)

	f.workflow.RegeneratePlan(context.Background())

	assert.Equal(t, []string{"delete", "create"}, calls)
	assert.Equal(t, "p3", f.workflow.Plan().ID)
	assert.Equal(t, []string{"Your diet plan has been regenerated and saved!"}, f.notifier.Successes)
}

func TestRegeneratePlanCreateFails(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("PlanForUser", mock.Anything, "u1").Return(testPlan("p1"), nil)
	f.workflow.FetchPlan(context.Background())

	f.api.On("DeletePlan", mock.Anything, "u1").Return(nil)
	f.api.On("GeneratePlan", mock.Anything).Return(models.MealPlan{},
		&apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "generation failed"})

	f.workflow.RegeneratePlan(context.Background())

	// Delete succeeded, create failed: no plan remains, no rollback
	assert.Nil(t, f.workflow.Plan())
	assert.Equal(t, "generation failed", f.workflow.Err())
	assert.Equal(t, []string{"generation failed"}, f.notifier.Errors)
}

func TestRegeneratePlanDeleteFails(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("PlanForUser", mock.Anything, "u1").Return(testPlan("p1"), nil)
	f.workflow.FetchPlan(context.Background())

	f.api.On("DeletePlan", mock.Anything, "u1").Return(
		&apiclient.APIError{StatusCode: http.StatusForbidden, Message: "Access denied"})

	f.workflow.RegeneratePlan(context.Background())

	// Nothing changed server-side; the held plan stays
	assert.NotNil(t, f.workflow.Plan())
	assert.Equal(t, "Access denied", f.workflow.Err())
	f.api.AssertNotCalled(t, "GeneratePlan", mock.Anything)
}

func TestRegeneratePlanWithoutIdentity(t *testing.T) {
	f := newPlanFixture(nil)

	f.workflow.RegeneratePlan(context.Background())

	assert.Equal(t, []string{"Please log in to regenerate your plan."}, f.notifier.Errors)
	f.api.AssertNotCalled(t, "DeletePlan", mock.Anything, mock.Anything)
}

func TestIdentityChangeTriggersFetch(t *testing.T) {
	f := newPlanFixture(nil)
	f.session.resolving = true
	f.api.On("PlanForUser", mock.Anything, "u1").Return(testPlan("p1"), nil)

	f.session.resolving = false
	f.session.setUser(context.Background(), testUser())

	assert.NotNil(t, f.workflow.Plan())
	f.api.AssertNumberOfCalls(t, "PlanForUser", 1)
}

func TestIdentityClearedDiscardsPlan(t *testing.T) {
	f := newPlanFixture(testUser())
	f.api.On("PlanForUser", mock.Anything, "u1").Return(testPlan("p1"), nil)
	f.workflow.FetchPlan(context.Background())
	assert.NotNil(t, f.workflow.Plan())

	f.session.setUser(context.Background(), nil)

	assert.Nil(t, f.workflow.Plan())
	assert.Equal(t, 1, f.cache.Cleared)
}

// End to end through a real session manager: login resolves an identity and
// the workflow fetches without being asked.
func TestSessionLoginDrivesPlanFetch(t *testing.T) {
	authAPI := &mocks.MockAuthAPI{}
	planAPI := &mocks.MockPlanAPI{}
	creds := &mocks.FakeCredentialStore{}
	notifier := &mocks.RecordingNotifier{}
	nav := &mocks.RecordingNavigator{}

	session := service.NewSessionManager(authAPI, creds, notifier, nav)
	workflow := service.NewPlanWorkflow(planAPI, session, notifier, nil)

	authAPI.On("Login", mock.Anything, "asha@example.com", "secret").Return(apiclient.AuthResponse{
		AccessToken: "tok",
		User:        models.UserProfile{ID: "u1", Name: "Asha"},
	}, nil)
	planAPI.On("PlanForUser", mock.Anything, "u1").Return(testPlan("p1"), nil)

	err := session.Login(context.Background(), "asha@example.com", "secret")
	assert.NoError(t, err)

	assert.NotNil(t, workflow.Plan())
	assert.Equal(t, "p1", workflow.Plan().ID)
	planAPI.AssertNumberOfCalls(t, "PlanForUser", 1)
}
