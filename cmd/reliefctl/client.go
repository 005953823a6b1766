package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// apiClient is a thin wrapper over the engine's HTTP API. It unwraps the
// standard success and error envelopes.
type apiClient struct {
	base  string
	token string
	http  *http.Client
}

func newClient() *apiClient {
	token := authToken
	if token == "" {
		token = os.Getenv("RELIEFCTL_TOKEN")
	}
	return &apiClient{
		base:  strings.TrimRight(serverURL, "/"),
		token: token,
		http:  &http.Client{Timeout: timeout},
	}
}

type successEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// do performs a request against the API and decodes the data envelope into
// out (when out is non-nil).
func (c *apiClient) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr errorEnvelope
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.ErrorCode != "" {
			return fmt.Errorf("%s: %s", apiErr.ErrorCode, apiErr.Message)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	var envelope successEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// printJSON renders a result for the terminal.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
