package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ziadkadry99/zodiac/internal/apperr"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code apperr.Code
		want int
	}{
		{apperr.CodeInvalidSign, http.StatusBadRequest},
		{apperr.CodeUnauthorized, http.StatusUnauthorized},
		{apperr.CodeNotFound, http.StatusNotFound},
		{apperr.CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{apperr.CodeConflict, http.StatusConflict},
		{apperr.CodeRateLimited, http.StatusTooManyRequests},
		{apperr.CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.code); got != tt.want {
			t.Errorf("StatusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestFailKeepsCode(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/signs/ophiuchus", nil)
	Fail(w, r, apperr.Invalid(apperr.CodeInvalidSign, "sign", "unknown sign %q", "ophiuchus"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error.Code != apperr.CodeInvalidSign || body.Error.Field != "sign" {
		t.Errorf("unexpected error body %+v", body.Error)
	}
}
