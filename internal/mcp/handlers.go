package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/biorhythm"
	"github.com/ziadkadry99/zodiac/internal/birthchart"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/compatibility"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// handleDailyHoroscope returns the reading for a sign and period as JSON.
func (s *Server) handleDailyHoroscope(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sign, err := requireSign(request, "sign")
	if err != nil {
		return toolError(err), nil
	}
	loc, err := s.locale(request)
	if err != nil {
		return toolError(err), nil
	}
	date, err := s.date(request, "date")
	if err != nil {
		return toolError(err), nil
	}

	var payload []byte
	switch period := request.GetString("period", "daily"); period {
	case "daily":
		payload, err = s.svc.Daily(ctx, sign, date, loc)
	case "weekly":
		payload, err = s.svc.Weekly(ctx, sign, date, loc)
	case "monthly":
		payload, err = s.svc.Monthly(ctx, sign, date.Year(), date.Month(), loc)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown period %q, want daily, weekly or monthly", period)), nil
	}
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(strings.TrimSpace(string(payload))), nil
}

// handleCompatibility compares two signs.
func (s *Server) handleCompatibility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := requireSign(request, "sign_a")
	if err != nil {
		return toolError(err), nil
	}
	b, err := requireSign(request, "sign_b")
	if err != nil {
		return toolError(err), nil
	}
	loc, err := s.locale(request)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(compatibility.Compare(a, b, loc))
}

// handleBirthChart computes the Big Three.
func (s *Server) handleBirthChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := request.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: date"), nil
	}
	clock, err := request.RequireString("time")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: time"), nil
	}
	lat, err := request.RequireFloat("latitude")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: latitude"), nil
	}
	lon, err := request.RequireFloat("longitude")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: longitude"), nil
	}
	loc, err := s.locale(request)
	if err != nil {
		return toolError(err), nil
	}

	res, err := birthchart.Calculate(birthchart.Input{
		Date:      date,
		Time:      clock,
		Latitude:  &lat,
		Longitude: &lon,
		Timezone:  request.GetString("timezone", ""),
	}, loc)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(res)
}

// handleBiorhythm returns one reading, or a series when days > 1.
func (s *Server) handleBiorhythm(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("birth")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: birth"), nil
	}
	birth, err := calendar.ParseDate("birth", raw)
	if err != nil {
		return toolError(err), nil
	}
	date, err := s.date(request, "date")
	if err != nil {
		return toolError(err), nil
	}

	days := request.GetInt("days", 1)
	if days == 1 {
		r, err := biorhythm.Calculate(birth, date)
		if err != nil {
			return toolError(err), nil
		}
		return jsonResult(r)
	}
	series, err := biorhythm.Series(birth, date, days)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(series)
}

// handleSignInfo returns the sign facts followed by its content page.
func (s *Server) handleSignInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sign, err := requireSign(request, "sign")
	if err != nil {
		return toolError(err), nil
	}
	loc, err := s.locale(request)
	if err != nil {
		return toolError(err), nil
	}
	d, err := s.svc.Sign(sign, loc)
	if err != nil {
		return toolError(err), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%s)\n", d.Symbol, d.Name, d.ID)
	fmt.Fprintf(&sb, "Dates: %s to %s\n", d.Start, d.End)
	fmt.Fprintf(&sb, "Element: %s\n", d.ElementName)
	fmt.Fprintf(&sb, "Modality: %s\n", d.ModalityName)
	fmt.Fprintf(&sb, "Ruler: %s\n", d.Ruler)
	if md := d.Markdown(); md != "" {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(md))
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) locale(request mcp.CallToolRequest) (i18n.Locale, error) {
	v := request.GetString("locale", "")
	if v == "" {
		return s.svc.DefaultLocale, nil
	}
	return i18n.ParseLocale(v)
}

func (s *Server) date(request mcp.CallToolRequest, key string) (time.Time, error) {
	v := request.GetString(key, "")
	if v == "" {
		return s.today(), nil
	}
	return calendar.ParseDate(key, v)
}

func requireSign(request mcp.CallToolRequest, key string) (zodiac.Sign, error) {
	v, err := request.RequireString(key)
	if err != nil {
		return zodiac.Sign{}, apperr.Invalid(apperr.CodeInvalidSign, key, "missing required parameter: %s", key)
	}
	sign, err := zodiac.Parse(v)
	if err != nil {
		return zodiac.Sign{}, apperr.Invalid(apperr.CodeInvalidSign, key, "unknown zodiac sign %q", v)
	}
	return sign, nil
}

// toolError reports err to the agent. Validation errors keep their code so
// the agent can correct the call.
func toolError(err error) *mcp.CallToolResult {
	if e, ok := apperr.As(err); ok {
		return mcp.NewToolResultError(e.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("request failed: %v", err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
