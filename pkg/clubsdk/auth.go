package clubsdk

import (
	"context"
	"net/http"
)

// Bootstrap creates the first administrator. It only ever succeeds once per
// deployment, gated on the configured bootstrap token.
func (c *Client) Bootstrap(ctx context.Context, bootstrapToken, email, name, password string) (*BootstrapResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/bootstrap", BootstrapRequest{
		BootstrapToken: bootstrapToken,
		Email:          email,
		Name:           name,
		Password:       password,
	})
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez reports process liveness.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.get(ctx, "/livez")
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz reports whether the service can reach its database.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.get(ctx, "/readyz")
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
