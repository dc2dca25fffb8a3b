package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/csvdash/internal/core"
	mw "github.com/JonMunkholm/csvdash/internal/web/middleware"
)

// WithRequestMetadata records the client IP and User-Agent for service logs.
// The IP has already been resolved by TrustedRealIP.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	return core.ContextWithClient(ctx, mw.ClientIP(r), r.UserAgent())
}
