package apiclient

import (
	"context"
	"net/http"

	"github.com/nutriplan/nutriplan-cli/internal/models"
)

type planResponse struct {
	Success bool            `json:"success"`
	Plan    models.MealPlan `json:"plan"`
}

// PlanForUser fetches the saved meal plan for a user
func (c *Client) PlanForUser(ctx context.Context, userID string) (models.MealPlan, error) {
	var resp planResponse
	if err := c.do(ctx, http.MethodGet, "/diet/user/"+userID, nil, &resp); err != nil {
		return models.MealPlan{}, err
	}
	return resp.Plan, nil
}

// GeneratePlan asks the server to create and save a new plan for the
// authenticated user
func (c *Client) GeneratePlan(ctx context.Context) (models.MealPlan, error) {
	var resp planResponse
	if err := c.do(ctx, http.MethodPost, "/diet/generate", nil, &resp); err != nil {
		return models.MealPlan{}, err
	}
	return resp.Plan, nil
}

// DeletePlan removes the saved plan for a user
func (c *Client) DeletePlan(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/diet/user/"+userID, nil, nil)
}
