package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/compatibility"
	"github.com/ziadkadry99/zodiac/internal/httpx"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// Compatibility results never change, so they can be cached for a long time.
const compatibilityCacheControl = "public, max-age=604800"

func handleCompatibility(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := zodiac.Parse(chi.URLParam(r, "a"))
		if err != nil {
			httpx.Fail(w, r, withField(err, "a"))
			return
		}
		b, err := zodiac.Parse(chi.URLParam(r, "b"))
		if err != nil {
			httpx.Fail(w, r, withField(err, "b"))
			return
		}
		loc, err := locale(r, svc.DefaultLocale)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		w.Header().Set("Cache-Control", compatibilityCacheControl)
		setLanguageHeaders(w, loc)
		httpx.WriteJSON(w, http.StatusOK, compatibility.Compare(a, b, loc))
	}
}

// MatrixResponse lists the grid of overall scores in zodiac order.
type MatrixResponse struct {
	Signs  []string    `json:"signs"`
	Scores [12][12]int `json:"scores"`
}

func handleMatrix(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := MatrixResponse{Scores: compatibility.Matrix()}
		for _, s := range zodiac.All() {
			resp.Signs = append(resp.Signs, s.ID)
		}
		w.Header().Set("Cache-Control", compatibilityCacheControl)
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

// withField renames the field of a validation error.
func withField(err error, field string) error {
	if e, ok := apperr.As(err); ok {
		return apperr.Invalid(e.Code, field, "%s", e.Message)
	}
	return err
}
