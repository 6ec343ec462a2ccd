package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestLimiter(limit int, period time.Duration) (*Limiter, *clock) {
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := New(limit, period)
	l.now = c.now
	return l, c
}

func TestBlocksAfterLimit(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		res := l.Allow("a")
		require.True(t, res.Allowed, "hit %d", i)
		assert.Equal(t, 2-i, res.Remaining)
	}
	res := l.Allow("a")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	// Other keys are independent.
	assert.True(t, l.Allow("b").Allowed)
}

func TestResetsAfterWindow(t *testing.T) {
	l, c := newTestLimiter(1, time.Minute)
	require.True(t, l.Allow("a").Allowed)
	require.False(t, l.Allow("a").Allowed)

	c.t = c.t.Add(59 * time.Second)
	assert.False(t, l.Allow("a").Allowed)

	c.t = c.t.Add(time.Second)
	res := l.Allow("a")
	assert.True(t, res.Allowed)
	assert.Equal(t, c.t.Add(time.Minute), res.Reset)
}

func TestSweepsExpiredWindows(t *testing.T) {
	l, c := newTestLimiter(5, time.Minute)
	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	c.t = c.t.Add(2 * time.Minute)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}

func TestMiddleware(t *testing.T) {
	l, _ := newTestLimiter(2, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/signs", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	w := do("10.0.0.1:1111")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	// Same IP, different port.
	assert.Equal(t, http.StatusOK, do("10.0.0.1:2222").Code)

	w = do("10.0.0.1:3333")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"code":"RATE_LIMITED"`)

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1111").Code)
}
