package mocks

import (
	"github.com/nutriplan/nutriplan-cli/internal/models"
	"github.com/nutriplan/nutriplan-cli/internal/service"
)

// FakeCredentialStore is an in-memory credential store
type FakeCredentialStore struct {
	Tok     string
	SetErr  error
	Cleared int
}

func (f *FakeCredentialStore) Token() string { return f.Tok }

func (f *FakeCredentialStore) SetToken(token string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.Tok = token
	return nil
}

func (f *FakeCredentialStore) ClearToken() error {
	f.Tok = ""
	f.Cleared++
	return nil
}

// RecordingNotifier captures surfaced notifications in order
type RecordingNotifier struct {
	Successes []string
	Errors    []string
}

func (n *RecordingNotifier) Success(msg string) { n.Successes = append(n.Successes, msg) }
func (n *RecordingNotifier) Error(msg string)   { n.Errors = append(n.Errors, msg) }

// RecordingNavigator captures navigation commands in order
type RecordingNavigator struct {
	Targets []service.NavTarget
}

func (n *RecordingNavigator) NavigateTo(target service.NavTarget) {
	n.Targets = append(n.Targets, target)
}

// FakePlanCache records cached plans and clear calls
type FakePlanCache struct {
	Saved   []models.MealPlan
	Cleared int
}

func (c *FakePlanCache) SavePlan(plan models.MealPlan) error {
	c.Saved = append(c.Saved, plan)
	return nil
}

func (c *FakePlanCache) ClearPlans() error {
	c.Cleared++
	return nil
}
