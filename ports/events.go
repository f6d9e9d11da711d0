package ports

import (
	"context"

	"github.com/layer-3/questrun/core"
)

// EventPublisher notifies downstream consumers about processing outcomes.
type EventPublisher interface {
	PublishAccountResult(ctx context.Context, result core.AccountResult) error
	PublishCycleSummary(ctx context.Context, summary core.CycleSummary) error
}
