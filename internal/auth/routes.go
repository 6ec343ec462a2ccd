package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/httpx"
)

// TokenResponse is returned by POST /api/auth/anonymous.
type TokenResponse struct {
	ClientID  string    `json:"client_id"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterRoutes mounts the auth endpoints.
func RegisterRoutes(r chi.Router, j JWT) {
	r.Post("/api/auth/anonymous", handleAnonymous(j))
}

func handleAnonymous(j JWT) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, tok, exp, err := j.Issue()
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		zap.L().Debug("issued anonymous token", zap.String("client_id", id))
		httpx.WriteJSON(w, http.StatusCreated, TokenResponse{
			ClientID:  id,
			Token:     tok,
			TokenType: "Bearer",
			ExpiresAt: exp,
		})
	}
}
