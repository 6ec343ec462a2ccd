package api

import (
	"net/http"

	"github.com/ziadkadry99/zodiac/internal/birthchart"
	"github.com/ziadkadry99/zodiac/internal/httpx"
	"github.com/ziadkadry99/zodiac/internal/i18n"
)

// birthChartRequest is the POST /api/birth-chart body.
type birthChartRequest struct {
	birthchart.Input
	Locale string `json:"locale"`
}

func handleBirthChart(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req birthChartRequest
		if err := httpx.ReadJSON(r, &req, 16<<10); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		loc := svc.DefaultLocale
		if req.Locale != "" {
			l, err := i18n.ParseLocale(req.Locale)
			if err != nil {
				httpx.Fail(w, r, err)
				return
			}
			loc = l
		} else if l, err := locale(r, svc.DefaultLocale); err == nil {
			loc = l
		}
		res, err := birthchart.Calculate(req.Input, loc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		setLanguageHeaders(w, loc)
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"chart": res, "locale": loc})
	}
}
