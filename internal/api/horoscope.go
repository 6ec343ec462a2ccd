package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/httpx"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// readingRequest is the parsed common part of every horoscope request.
type readingRequest struct {
	sign zodiac.Sign
	loc  i18n.Locale
}

func parseReading(r *http.Request, svc *Service) (readingRequest, error) {
	sign, err := zodiac.Parse(chi.URLParam(r, "sign"))
	if err != nil {
		return readingRequest{}, err
	}
	loc, err := locale(r, svc.DefaultLocale)
	if err != nil {
		return readingRequest{}, err
	}
	return readingRequest{sign: sign, loc: loc}, nil
}

// dateParam reads ?date=, defaulting to today.
func dateParam(r *http.Request, svc *Service) (time.Time, error) {
	if v := r.URL.Query().Get("date"); v != "" {
		return calendar.ParseDate("date", v)
	}
	return svc.today(), nil
}

func writeReading(w http.ResponseWriter, cacheControl string, loc i18n.Locale, payload []byte) {
	w.Header().Set("Cache-Control", cacheControl)
	setLanguageHeaders(w, loc)
	httpx.WriteRaw(w, http.StatusOK, payload)
}

func handleDaily(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseReading(r, svc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		date, err := dateParam(r, svc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		payload, err := svc.Daily(r.Context(), req.sign, date, req.loc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		writeReading(w, DailyCacheControl, req.loc, payload)
	}
}

func handleWeekly(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseReading(r, svc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		date, err := dateParam(r, svc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		payload, err := svc.Weekly(r.Context(), req.sign, date, req.loc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		writeReading(w, WeeklyCacheControl, req.loc, payload)
	}
}

func handleMonthly(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseReading(r, svc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		q := r.URL.Query()
		year, month, err := svc.yearMonth(q.Get("year"), q.Get("month"))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		payload, err := svc.Monthly(r.Context(), req.sign, year, month, req.loc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		writeReading(w, MonthlyCacheControl, req.loc, payload)
	}
}
