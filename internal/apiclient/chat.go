package apiclient

import (
	"context"
	"net/http"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Ask sends a question to the nutrition assistant
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", chatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}
