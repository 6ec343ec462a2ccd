// Package httpx holds the JSON helpers every handler shares.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/apperr"
)

// ErrorBody is the payload inside the "error" envelope.
type ErrorBody struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
}

// ErrorResponse is the envelope for every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// WriteRaw writes an already encoded JSON payload.
func WriteRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// WriteError writes a coded error envelope.
func WriteError(w http.ResponseWriter, status int, code apperr.Code, field, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: msg, Field: field}})
}

// Fail maps err to a status. Domain errors keep their code and message;
// anything else is logged and reported as a generic 500.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	if e, ok := apperr.As(err); ok {
		WriteError(w, StatusFor(e.Code), e.Code, e.Field, e.Message)
		return
	}
	zap.L().Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	WriteError(w, http.StatusInternalServerError, apperr.CodeInternal, "", "internal server error")
}

// StatusFor returns the HTTP status for an error code.
func StatusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperr.CodeConflict:
		return http.StatusConflict
	case apperr.CodeRateLimited:
		return http.StatusTooManyRequests
	case apperr.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// ReadJSON decodes a single JSON object from the body into dst. Decode
// failures are returned as INVALID_BODY errors.
func ReadJSON(r *http.Request, dst any, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid(apperr.CodeInvalidBody, "", "empty body")
		}
		return apperr.Invalid(apperr.CodeInvalidBody, "", "invalid JSON: %v", err)
	}
	if dec.More() {
		return apperr.Invalid(apperr.CodeInvalidBody, "", "unexpected trailing JSON")
	}
	return nil
}
