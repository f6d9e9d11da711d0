package quest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/layer-3/questrun/core"
)

// VerifyResult carries the server's answer to a signature verification.
// A populated Error means the server rejected the sign-in; it is a normal
// business outcome, not a transport failure.
type VerifyResult struct {
	Status int
	Error  string
	Raw    json.RawMessage
}

// Rejected reports whether the server refused the signature.
func (r *VerifyResult) Rejected() bool {
	return r.Error != ""
}

// FetchNonce requests a sign-in nonce for the address and checkpoints the
// session afterwards. Transport errors propagate; a response the nonce
// cannot be extracted from degrades to the sentinel value.
func (c *Client) FetchNonce(ctx context.Context, address string) (string, error) {
	query := url.Values{}
	if address != "" {
		query.Set("address", address)
	}

	status, body, err := c.do(ctx, http.MethodGet, "/auth/eth/nonce", query, nil)
	if err != nil {
		return "", err
	}
	c.CheckpointSession(ctx)

	if status != http.StatusOK {
		return "", fmt.Errorf("nonce endpoint returned status %d", status)
	}

	nonce, ok := ExtractNonce(body)
	if !ok {
		// Signing a sentinel nonce almost certainly gets rejected at
		// verify, but the extraction fallback is deliberate: schema
		// drift should degrade, not crash.
		c.logger.Warn("nonce missing from response, using sentinel",
			"address", core.Mask(address))
	}
	return nonce, nil
}

// Verify posts the signed message. The message and signature must reach
// the server exactly as produced by the signer. Server-side rejections
// (error body, any status) come back as a VerifyResult; only transport
// failures return an error.
func (c *Client) Verify(ctx context.Context, message, signature string) (*VerifyResult, error) {
	payload := map[string]string{
		"message":   message,
		"signature": signature,
	}

	status, body, err := c.do(ctx, http.MethodPost, "/auth/eth/verify", nil, payload)
	if err != nil {
		return nil, err
	}
	c.CheckpointSession(ctx)

	result := &VerifyResult{Status: status, Raw: body}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &envelope); err != nil && status >= http.StatusInternalServerError {
			// A 500 with an undecodable body still must not crash the
			// pipeline; surface it as a rejection with the status.
			result.Error = fmt.Sprintf("server error (status %d)", status)
			return result, nil
		}
	}

	switch {
	case envelope.Error != "":
		result.Error = envelope.Error
	case status >= http.StatusBadRequest && envelope.Message != "":
		result.Error = envelope.Message
	case status >= http.StatusBadRequest:
		result.Error = fmt.Sprintf("verification failed (status %d)", status)
	}

	if !result.Rejected() {
		if expiry, ok := c.sessionExpiry(); ok {
			c.logger.Debug("session established", "expires_at", expiry)
		}
	}
	return result, nil
}

// Profile fetches the authenticated account's profile.
func (c *Client) Profile(ctx context.Context) (*core.Profile, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users/me", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned status %d", status)
	}

	var profile core.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	profile.Raw = body
	return &profile, nil
}

// UpdateStreak posts the daily streak update and returns the server's
// streak payload, valid or not; the caller owns the validity check.
func (c *Client) UpdateStreak(ctx context.Context) (*core.Streak, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/users/streak", nil, struct{}{})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("streak endpoint returned status %d", status)
	}

	var streak core.Streak
	if err := json.Unmarshal(body, &streak); err != nil {
		return nil, fmt.Errorf("failed to decode streak: %w", err)
	}
	return &streak, nil
}

// Experience fetches the account's experience points.
func (c *Client) Experience(ctx context.Context) (*core.Experience, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users/exp", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("experience endpoint returned status %d", status)
	}

	var exp core.Experience
	if err := json.Unmarshal(body, &exp); err != nil {
		return nil, fmt.Errorf("failed to decode experience: %w", err)
	}
	return &exp, nil
}

// SocialTasks lists the account's social tasks.
func (c *Client) SocialTasks(ctx context.Context) ([]core.Task, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users/social/tasks", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("task list endpoint returned status %d", status)
	}

	var tasks []core.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		// Some deployments wrap the list.
		var envelope struct {
			Tasks []core.Task `json:"tasks"`
			Data  []core.Task `json:"data"`
		}
		if err2 := json.Unmarshal(body, &envelope); err2 != nil {
			return nil, fmt.Errorf("failed to decode task list: %w", err)
		}
		if envelope.Tasks != nil {
			return envelope.Tasks, nil
		}
		return envelope.Data, nil
	}
	return tasks, nil
}

// VerifyTask asks the server to verify completion of one social task.
// Only a success:true body counts as completed.
func (c *Client) VerifyTask(ctx context.Context, taskID string) (bool, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users/social/tasks/"+url.PathEscape(taskID)+"/verify", nil, nil)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("task verify endpoint returned status %d", status)
	}

	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false, fmt.Errorf("failed to decode task verify response: %w", err)
	}
	return envelope.Success, nil
}
