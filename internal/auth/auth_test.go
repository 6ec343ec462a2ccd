package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = JWT{Secret: []byte("0123456789abcdef0123456789abcdef"), TokenTTL: time.Hour}

func TestIssueAndVerify(t *testing.T) {
	id, tok, exp, err := testJWT.Issue()
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := testJWT.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.ClientID())
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestVerifyRejects(t *testing.T) {
	_, tok, _, err := testJWT.Issue()
	require.NoError(t, err)

	other := JWT{Secret: []byte("another-secret-another-secret!!"), TokenTTL: time.Hour}
	_, err = other.Verify(tok)
	assert.Error(t, err, "wrong secret")

	past := jwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired, _, err := testJWT.Sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "c", ExpiresAt: past}})
	require.NoError(t, err)
	_, err = testJWT.Verify(expired)
	assert.Error(t, err, "expired")

	noSubject, _, err := testJWT.Sign(Claims{})
	require.NoError(t, err)
	_, err = testJWT.Verify(noSubject)
	assert.Error(t, err, "no subject")

	_, err = testJWT.Verify("not.a.token")
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken(""))
}

func TestAnonymousAndRequireClient(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, testJWT)
	r.With(RequireClient(testJWT)).Get("/me", func(w http.ResponseWriter, r *http.Request) {
		id, _ := ClientID(r.Context())
		_, _ = w.Write([]byte(id))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/anonymous", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.ClientID, w.Body.String())

	for _, header := range []string{"", "Bearer nope"} {
		req = httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
	}
}
