package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"leaguehub/pkg/messages"
	"net/http"
	"time"
)

// Maximum body kept on a non success answer.
const maxErrorBody = 64 << 10

// Client is the single GET abstraction over the Riot API and the static data CDN.
type Client struct {
	apiKey     string
	urlFormat  string
	timeout    time.Duration
	limiter    Limiter
	httpClient *http.Client
}

// ClientDeps is the dependency list for the client.
type ClientDeps struct {
	ApiKey string
	// URLFormat receives the host label, like "https://%s.api.riotgames.com".
	URLFormat string
	// Timeout is applied to every single call.
	Timeout time.Duration
	// Limiter is applied only to authenticated calls. Optional.
	Limiter    Limiter
	HttpClient *http.Client
}

// NewClient creates a upstream client.
func NewClient(deps *ClientDeps) *Client {
	httpClient := deps.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:     deps.ApiKey,
		urlFormat:  deps.URLFormat,
		timeout:    deps.Timeout,
		limiter:    deps.Limiter,
		httpClient: httpClient,
	}
}

// AuthGet does a authenticated GET on the given routing host and decodes the JSON answer into out.
func (c *Client) AuthGet(ctx context.Context, host string, path string, out any) error {
	// Fail before touching the network.
	if c.apiKey == "" {
		return &ConfigurationError{Msg: messages.MissingApiKeyMsg}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	url := fmt.Sprintf(c.urlFormat, host) + path
	return c.do(ctx, url, map[string]string{"X-Riot-Token": c.apiKey}, out)
}

// Get does a simple GET and decodes the JSON answer into out.
func (c *Client) Get(ctx context.Context, url string, out any) error {
	return c.do(ctx, url, nil, out)
}

// do runs the request with the per call timeout and normalizes every failure.
func (c *Client) do(ctx context.Context, url string, headers map[string]string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The caller gave up, it's not a upstream failure.
		if errors.Is(err, context.Canceled) && ctx.Err() == context.Canceled {
			return context.Canceled
		}
		return &TransportError{URL: url, Err: err}
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamError{URL: url, StatusCode: resp.StatusCode, Body: body}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{URL: url, Err: fmt.Errorf(messages.FailedToParseMsg+": %w", url, err)}
	}

	return nil
}
