package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/httpx"
)

type ctxKey int

const clientKey ctxKey = 1

// ClientID returns the authenticated client id stored by RequireClient.
func ClientID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientKey).(string)
	return id, ok && id != ""
}

// WithClientID stores a client id in ctx.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientKey, id)
}

// RequireClient rejects requests without a valid bearer token.
func RequireClient(j JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerToken(r.Header.Get("Authorization"))
			if tok == "" {
				httpx.WriteError(w, http.StatusUnauthorized, apperr.CodeUnauthorized, "", "missing bearer token")
				return
			}
			claims, err := j.Verify(tok)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, apperr.CodeUnauthorized, "", "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), claims.ClientID())))
		})
	}
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
