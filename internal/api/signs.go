package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/httpx"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// SignInfo is the public description of a sign.
type SignInfo struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Start        string          `json:"start"`
	End          string          `json:"end"`
	Element      zodiac.Element  `json:"element"`
	ElementName  string          `json:"element_name"`
	Modality     zodiac.Modality `json:"modality"`
	ModalityName string          `json:"modality_name"`
	Ruler        string          `json:"ruler"`
}

// SignDetail adds the rendered content page.
type SignDetail struct {
	SignInfo
	Title         string `json:"title,omitempty"`
	Summary       string `json:"summary,omitempty"`
	HTML          string `json:"html,omitempty"`
	ContentLocale string `json:"content_locale,omitempty"`

	markdown string
}

func signInfo(s zodiac.Sign, loc i18n.Locale) SignInfo {
	return SignInfo{
		ID:           s.ID,
		Name:         s.Name(loc),
		Symbol:       s.Symbol,
		Start:        monthDay(s.Start),
		End:          monthDay(s.End),
		Element:      s.Element,
		ElementName:  zodiac.ElementName(s.Element, loc),
		Modality:     s.Modality,
		ModalityName: zodiac.ModalityName(s.Modality, loc),
		Ruler:        s.Ruler,
	}
}

// monthDay formats a sign boundary as MM-DD.
func monthDay(md zodiac.MonthDay) string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

func handleSigns(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, err := locale(r, svc.DefaultLocale)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		all := zodiac.All()
		out := make([]SignInfo, len(all))
		for i, s := range all {
			out[i] = signInfo(s, loc)
		}
		setLanguageHeaders(w, loc)
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"signs": out, "locale": loc})
	}
}

func handleSign(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sign, err := zodiac.Parse(chi.URLParam(r, "sign"))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		loc, err := locale(r, svc.DefaultLocale)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		detail, err := svc.Sign(sign, loc)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		setLanguageHeaders(w, loc)
		httpx.WriteJSON(w, http.StatusOK, detail)
	}
}

// Sign describes sign in loc, including its rendered content page when a
// library is configured.
func (s *Service) Sign(sign zodiac.Sign, loc i18n.Locale) (*SignDetail, error) {
	detail := &SignDetail{SignInfo: signInfo(sign, loc)}
	if s.Content == nil {
		return detail, nil
	}
	page, ok := s.Content.Get(sign.ID, loc)
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "no content for %s", sign.ID)
	}
	detail.Title = page.Title
	detail.Summary = page.Summary
	detail.HTML = page.HTML
	detail.ContentLocale = string(page.Locale)
	detail.markdown = page.Markdown
	return detail, nil
}

// Markdown returns the source of the content page, if any.
func (d *SignDetail) Markdown() string { return d.markdown }
