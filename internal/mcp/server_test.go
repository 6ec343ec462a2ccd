package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/zodiac/internal/api"
	"github.com/ziadkadry99/zodiac/internal/cache"
	"github.com/ziadkadry99/zodiac/internal/content"
	"github.com/ziadkadry99/zodiac/internal/i18n"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	lib, err := content.Default()
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	srv := NewServer(api.NewService(cache.NewMemoryStore(), time.Hour, lib, i18n.English))
	srv.now = func() time.Time { return time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC) }
	return srv
}

func call(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{dailyHoroscopeTool, "daily_horoscope"},
		{compatibilityTool, "compatibility"},
		{birthChartTool, "birth_chart"},
		{biorhythmTool, "biorhythm"},
		{signInfoTool, "sign_info"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.svc == nil {
		t.Fatal("service not set")
	}
}

func TestHandleDailyHoroscope(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("defaults to today", func(t *testing.T) {
		result, err := srv.handleDailyHoroscope(ctx, call(map[string]any{"sign": "leo"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", extractText(result))
		}
		var got map[string]any
		if err := json.Unmarshal([]byte(extractText(result)), &got); err != nil {
			t.Fatalf("result is not JSON: %v", err)
		}
		if got["key"] != "2026-10-14" {
			t.Errorf("key = %v, want 2026-10-14", got["key"])
		}
	})

	t.Run("monthly in spanish", func(t *testing.T) {
		result, _ := srv.handleDailyHoroscope(ctx, call(map[string]any{
			"sign": "Géminis", "period": "monthly", "date": "2026-02-10", "locale": "es",
		}))
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", extractText(result))
		}
		text := extractText(result)
		if !strings.Contains(text, `"key":"2026-02"`) || !strings.Contains(text, `"locale":"es"`) {
			t.Errorf("unexpected reading: %s", text)
		}
	})

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing sign", map[string]any{}, "INVALID_SIGN"},
		{"bad sign", map[string]any{"sign": "ophiuchus"}, "INVALID_SIGN"},
		{"bad date", map[string]any{"sign": "leo", "date": "14/10/2026"}, "INVALID_DATE"},
		{"bad locale", map[string]any{"sign": "leo", "locale": "it"}, "INVALID_LOCALE"},
		{"bad period", map[string]any{"sign": "leo", "period": "yearly"}, "unknown period"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := srv.handleDailyHoroscope(ctx, call(tt.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Fatal("expected tool error")
			}
			if !strings.Contains(extractText(result), tt.want) {
				t.Errorf("error %q does not mention %q", extractText(result), tt.want)
			}
		})
	}
}

func TestHandleCompatibility(t *testing.T) {
	srv := newTestServer(t)
	result, err := srv.handleCompatibility(context.Background(), call(map[string]any{
		"sign_a": "leo", "sign_b": "sagittarius",
	}))
	if err != nil || result.IsError {
		t.Fatalf("unexpected failure: %v %s", err, extractText(result))
	}
	var got compatibilityResult
	if err := json.Unmarshal([]byte(extractText(result)), &got); err != nil {
		t.Fatal(err)
	}
	if got.Aspect != "trine" || got.Overall != 90 {
		t.Errorf("got %+v", got)
	}

	result, _ = srv.handleCompatibility(context.Background(), call(map[string]any{"sign_a": "leo"}))
	if !result.IsError || !strings.Contains(extractText(result), "sign_b") {
		t.Errorf("expected sign_b error, got %s", extractText(result))
	}
}

type compatibilityResult struct {
	Aspect  string `json:"aspect"`
	Overall int    `json:"overall"`
}

func TestHandleBirthChart(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	result, err := srv.handleBirthChart(ctx, call(map[string]any{
		"date": "2026-10-14", "time": "06:00", "latitude": 51.5, "longitude": 0.0, "timezone": "+00:00",
	}))
	if err != nil || result.IsError {
		t.Fatalf("unexpected failure: %v %s", err, extractText(result))
	}
	if !strings.Contains(extractText(result), `"rising"`) {
		t.Errorf("missing rising placement: %s", extractText(result))
	}

	result, _ = srv.handleBirthChart(ctx, call(map[string]any{"date": "2026-10-14", "time": "06:00", "latitude": 10.0}))
	if !result.IsError {
		t.Error("expected error for missing longitude")
	}

	result, _ = srv.handleBirthChart(ctx, call(map[string]any{
		"date": "2026-10-14", "time": "06:00", "latitude": 95.0, "longitude": 0.0,
	}))
	if !result.IsError || !strings.Contains(extractText(result), "INVALID_LATITUDE") {
		t.Errorf("expected latitude error, got %s", extractText(result))
	}
}

func TestHandleBiorhythm(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	result, _ := srv.handleBiorhythm(ctx, call(map[string]any{"birth": "2026-10-14"}))
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", extractText(result))
	}
	if !strings.Contains(extractText(result), `"days_since_birth": 0`) {
		t.Errorf("expected a birth-day reading: %s", extractText(result))
	}

	result, _ = srv.handleBiorhythm(ctx, call(map[string]any{"birth": "1990-05-01", "days": 5.0}))
	var series []map[string]any
	if err := json.Unmarshal([]byte(extractText(result)), &series); err != nil {
		t.Fatalf("expected a JSON series: %v", err)
	}
	if len(series) != 5 {
		t.Errorf("series length = %d, want 5", len(series))
	}

	result, _ = srv.handleBiorhythm(ctx, call(map[string]any{"birth": "1990-05-01", "days": 500.0}))
	if !result.IsError {
		t.Error("expected error for too many days")
	}
}

func TestHandleSignInfo(t *testing.T) {
	srv := newTestServer(t)
	result, _ := srv.handleSignInfo(context.Background(), call(map[string]any{"sign": "♌", "locale": "es"}))
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", extractText(result))
	}
	text := extractText(result)
	if !strings.Contains(text, "(leo)") || !strings.Contains(text, "Fuego") {
		t.Errorf("unexpected sign info: %s", text)
	}
}
