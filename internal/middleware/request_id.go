package middleware

import (
	"net/http"

	reqcontext "github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/context"
)

// RequestIDMiddleware adds request IDs to incoming requests
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Middleware returns the HTTP middleware function for request IDs
func (m *RequestIDMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Reuse an upstream ID when the request already carries one.
		if existing := r.Header.Get("X-Request-ID"); existing != "" {
			ctx = reqcontext.WithRequestID(ctx, existing)
			ctx = reqcontext.WithRemoteAddr(ctx, r.RemoteAddr)
		} else {
			ctx = reqcontext.NewRequestContext(ctx, r.RemoteAddr)
		}

		// Echo the ID back so clients can correlate responses.
		w.Header().Set("X-Request-ID", reqcontext.GetRequestID(ctx))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
