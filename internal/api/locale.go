package api

import (
	"net/http"

	"github.com/ziadkadry99/zodiac/internal/i18n"
)

// locale resolves the response locale: an explicit ?locale= must be
// supported, otherwise Accept-Language is negotiated, otherwise def.
func locale(r *http.Request, def i18n.Locale) (i18n.Locale, error) {
	if v := r.URL.Query().Get("locale"); v != "" {
		return i18n.ParseLocale(v)
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return i18n.Negotiate(h), nil
	}
	return def, nil
}

func setLanguageHeaders(w http.ResponseWriter, loc i18n.Locale) {
	w.Header().Set("Content-Language", string(loc))
	w.Header().Add("Vary", "Accept-Language")
}
