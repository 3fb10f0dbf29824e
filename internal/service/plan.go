package service

import (
	"context"
	"log"
	"strings"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/models"
)

// planNotFoundSentinel marks the benign "no plan yet" condition in server
// error text. Substring match on the extracted message; replace with a
// structured error code once the API exposes one.
const planNotFoundSentinel = "meal plan not found"

func isPlanNotFound(msg string) bool {
	return strings.Contains(strings.ToLower(msg), planNotFoundSentinel)
}

// PlanWorkflow fetches and regenerates the meal plan for the resolved
// identity. The held plan is replaced wholesale on every operation and
// discarded the moment the identity changes or clears.
type PlanWorkflow struct {
	api      PlanAPI
	session  IdentitySource
	notifier Notifier
	cache    PlanCache

	plan    *models.MealPlan
	loading bool
	errMsg  string
}

// NewPlanWorkflow creates the workflow and subscribes it to identity
// changes, so a fetch re-runs whenever the session's identity transitions
func NewPlanWorkflow(api PlanAPI, session IdentitySource, notifier Notifier, cache PlanCache) *PlanWorkflow {
	w := &PlanWorkflow{
		api:      api,
		session:  session,
		notifier: notifier,
		cache:    cache,
		loading:  true,
	}
	session.OnIdentityChanged(w.handleIdentityChange)
	return w
}

// Plan returns the held plan, or nil
func (w *PlanWorkflow) Plan() *models.MealPlan {
	return w.plan
}

// Loading reports whether an operation is in flight
func (w *PlanWorkflow) Loading() bool {
	return w.loading
}

// Err returns the last stored error message, or ""
func (w *PlanWorkflow) Err() string {
	return w.errMsg
}

func (w *PlanWorkflow) handleIdentityChange(ctx context.Context, user *models.UserProfile) {
	w.plan = nil
	if user == nil && w.cache != nil {
		if err := w.cache.ClearPlans(); err != nil {
			log.Printf("failed to clear plan cache: %v", err)
		}
	}
	w.FetchPlan(ctx)
}

// FetchPlan retrieves the saved plan for the resolved identity. A "plan not
// found" failure is the benign empty state: plan and error both end absent
// with nothing surfaced.
func (w *PlanWorkflow) FetchPlan(ctx context.Context) {
	user := w.session.User()
	if user == nil {
		if !w.session.Resolving() {
			w.plan = nil
			w.loading = false
		}
		return
	}

	w.loading = true
	w.errMsg = ""
	plan, err := w.api.PlanForUser(ctx, user.ID)
	w.loading = false
	if err != nil {
		msg := apiclient.ExtractMessage(err)
		if isPlanNotFound(msg) {
			w.plan = nil
			w.errMsg = ""
			return
		}
		w.plan = nil
		w.errMsg = msg
		w.notifier.Error(msg)
		return
	}

	w.plan = &plan
	w.errMsg = ""
	w.savePlanToCache(plan)
}

// GeneratePlan asks the server to create and save a new plan. Requires a
// resolved identity; without one an error is surfaced and no request is made.
func (w *PlanWorkflow) GeneratePlan(ctx context.Context) {
	w.loading = true
	w.errMsg = ""
	user := w.session.User()
	if user == nil {
		w.notifier.Error("Please log in to generate a meal plan.")
		w.loading = false
		return
	}

	plan, err := w.api.GeneratePlan(ctx)
	w.loading = false
	if err != nil {
		msg := apiclient.ExtractMessage(err)
		w.errMsg = msg
		w.notifier.Error(msg)
		return
	}

	w.plan = &plan
	w.savePlanToCache(plan)
	w.notifier.Success("Diet plan saved successfully!")
}

// RegeneratePlan deletes the existing plan, then creates a new one. The
// delete is always issued strictly before the create. A failure after a
// successful delete leaves no plan; no rollback is attempted.
func (w *PlanWorkflow) RegeneratePlan(ctx context.Context) {
	user := w.session.User()
	if user == nil {
		w.notifier.Error("Please log in to regenerate your plan.")
		return
	}

	w.loading = true
	w.errMsg = ""
	if err := w.api.DeletePlan(ctx, user.ID); err != nil {
		w.loading = false
		msg := apiclient.ExtractMessage(err)
		w.errMsg = msg
		w.notifier.Error(msg)
		return
	}

	// The saved plan is gone server-side from here on
	w.plan = nil
	if w.cache != nil {
		if err := w.cache.ClearPlans(); err != nil {
			log.Printf("failed to clear plan cache: %v", err)
		}
	}

	plan, err := w.api.GeneratePlan(ctx)
	w.loading = false
	if err != nil {
		msg := apiclient.ExtractMessage(err)
		w.errMsg = msg
		w.notifier.Error(msg)
		return
	}

	w.plan = &plan
	w.savePlanToCache(plan)
	w.notifier.Success("Your diet plan has been regenerated and saved!")
}

func (w *PlanWorkflow) savePlanToCache(plan models.MealPlan) {
	if w.cache == nil {
		return
	}
	if err := w.cache.SavePlan(plan); err != nil {
		log.Printf("failed to cache plan: %v", err)
	}
}
