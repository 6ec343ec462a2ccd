package api

import (
	"net/http"
	"strconv"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/biorhythm"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/httpx"
)

// BiorhythmResponse is today's reading plus an optional forward series.
type BiorhythmResponse struct {
	Birth  string              `json:"birth"`
	Today  biorhythm.Reading   `json:"reading"`
	Series []biorhythm.Reading `json:"series,omitempty"`
}

func handleBiorhythm(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("birth") == "" {
			httpx.Fail(w, r, apperr.Invalid(apperr.CodeInvalidDate, "birth", "birth is required"))
			return
		}
		birth, err := calendar.ParseDate("birth", q.Get("birth"))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		date, err := dateParam(r, svc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		reading, err := biorhythm.Calculate(birth, date)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		resp := BiorhythmResponse{Birth: birth.Format(calendar.DateLayout), Today: reading}

		if v := q.Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				httpx.Fail(w, r, apperr.Invalid(apperr.CodeInvalidParam, "days", "days must be a number"))
				return
			}
			resp.Series, err = biorhythm.Series(birth, date, n)
			if err != nil {
				httpx.Fail(w, r, err)
				return
			}
		}
		w.Header().Set("Cache-Control", "private, max-age=3600")
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
