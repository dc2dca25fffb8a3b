package core

import "context"

type contextKey string

const ctxKeyClient contextKey = "client"

// ClientInfo identifies the caller that submitted an analysis.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// ContextWithClient attaches caller details so service logs can include them.
func ContextWithClient(ctx context.Context, ip, userAgent string) context.Context {
	return context.WithValue(ctx, ctxKeyClient, ClientInfo{IP: ip, UserAgent: userAgent})
}

// ClientFromContext returns the caller details, or the zero value for
// callers such as the CLI that never set them.
func ClientFromContext(ctx context.Context) ClientInfo {
	if v, ok := ctx.Value(ctxKeyClient).(ClientInfo); ok {
		return v
	}
	return ClientInfo{}
}
