package ports

import (
	"context"

	"github.com/layer-3/questrun/core"
)

// CookieStore persists session cookies across runs. A missing store is an
// empty-state signal, not an error.
type CookieStore interface {
	Load(ctx context.Context) ([]core.Cookie, error)
	Save(ctx context.Context, cookies []core.Cookie) error
}
