package apiclient

import (
	"context"
	"net/http"

	"github.com/nutriplan/nutriplan-cli/internal/models"
)

// AuthResponse is the credential-exchange payload from login and register
type AuthResponse struct {
	AccessToken string             `json:"access_token"`
	User        models.UserProfile `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account-creation payload
type RegisterRequest struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Password      string               `json:"password"`
	Age           int                  `json:"age"`
	Height        float64              `json:"height"`
	Weight        float64              `json:"weight"`
	Goal          models.Goal          `json:"goal"`
	ActivityLevel models.ActivityLevel `json:"activityLevel"`
	DietType      models.DietType      `json:"dietType"`
	Gender        models.Gender        `json:"gender"`
}

// Login exchanges email and password for a bearer credential
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

// Register creates an account and returns a credential for it
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp)
	return resp, err
}
