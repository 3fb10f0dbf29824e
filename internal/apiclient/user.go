package apiclient

import (
	"context"
	"net/http"

	"github.com/nutriplan/nutriplan-cli/internal/models"
)

// ProfileUpdate carries the profile fields to change; nil fields are omitted
type ProfileUpdate struct {
	Name          *string               `json:"name,omitempty"`
	Email         *string               `json:"email,omitempty"`
	Age           *int                  `json:"age,omitempty"`
	Height        *float64              `json:"height,omitempty"`
	Weight        *float64              `json:"weight,omitempty"`
	Goal          *models.Goal          `json:"goal,omitempty"`
	ActivityLevel *models.ActivityLevel `json:"activityLevel,omitempty"`
	DietType      *models.DietType      `json:"dietType,omitempty"`
	Gender        *models.Gender        `json:"gender,omitempty"`
}

// CurrentUser resolves the identity behind the stored credential
func (c *Client) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	var user models.UserProfile
	err := c.do(ctx, http.MethodGet, "/user/me", nil, &user)
	return user, err
}

// UpdateProfile changes profile fields and returns the updated user
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.UserProfile, error) {
	var user models.UserProfile
	err := c.do(ctx, http.MethodPut, "/user/me", update, &user)
	return user, err
}
