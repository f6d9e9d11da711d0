package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/internal/metrics"
	"github.com/layer-3/questrun/ports"
)

// AuthService runs the sign-in challenge for one wallet
type AuthService struct {
	api     QuestAPI
	message MessageSpec
	logger  *slog.Logger

	now func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(api QuestAPI, message MessageSpec, logger *slog.Logger) *AuthService {
	return &AuthService{
		api:     api,
		message: message,
		logger:  logger,
		now:     time.Now,
	}
}

// AuthOutcome is the terminal result of one wallet's sign-in attempt.
type AuthOutcome struct {
	State   core.AuthState
	Address string
	Reason  string // populated for rejections
	Status  int    // HTTP status of the verify response
}

// Authenticate walks one wallet through nonce → message → sign → verify.
// A non-nil error means transport or signing failed (state FAILED); a
// server-side rejection is a normal outcome, not an error.
func (s *AuthService) Authenticate(ctx context.Context, signer ports.Signer) (AuthOutcome, error) {
	address := signer.Address()
	outcome := AuthOutcome{State: core.AuthFailed, Address: address}

	nonce, err := s.api.FetchNonce(ctx, address)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues(core.AuthFailed.String()).Inc()
		return outcome, fmt.Errorf("failed to fetch nonce: %w", err)
	}

	message := s.message.Build(address, nonce, s.now())
	signature, err := signer.SignText(message)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues(core.AuthFailed.String()).Inc()
		return outcome, fmt.Errorf("failed to sign message: %w", err)
	}

	result, err := s.api.Verify(ctx, message, signature)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues(core.AuthFailed.String()).Inc()
		return outcome, fmt.Errorf("failed to verify signature: %w", err)
	}

	outcome.Status = result.Status
	if result.Rejected() {
		outcome.State = core.AuthRejected
		outcome.Reason = result.Error
		s.logger.Warn("sign-in rejected",
			"address", core.Mask(address),
			"status", result.Status,
			"reason", result.Error)
	} else {
		outcome.State = core.AuthAuthenticated
		s.logger.Info("sign-in accepted", "address", core.Mask(address))
	}

	metrics.AuthAttempts.WithLabelValues(outcome.State.String()).Inc()
	return outcome, nil
}
