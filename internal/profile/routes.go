package profile

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/auth"
	"github.com/ziadkadry99/zodiac/internal/httpx"
)

// RegisterRoutes mounts the profile API routes behind bearer auth.
func RegisterRoutes(r chi.Router, store *Store, j auth.JWT) {
	r.Route("/api/profile", func(r chi.Router) {
		r.Use(auth.RequireClient(j))

		r.Get("/favorites", handleFavorites(store))
		r.Post("/favorites", handleAddFavorite(store))
		r.Put("/favorites", handleReorderFavorites(store))
		r.Delete("/favorites/{sign}", handleRemoveFavorite(store))

		r.Get("/history", handleHistory(store))
		r.Post("/history", handleAddHistory(store))
		r.Delete("/history", handleClearHistory(store))

		r.Get("/preferences", handleGetPreferences(store))
		r.Put("/preferences", handlePutPreferences(store))

		r.Get("/streak", handleStreak(store))
		r.Post("/streak/visit", handleVisit(store))

		r.Get("/events", handleEventCounts(store))
		r.Post("/events", handleRecordEvent(store))
	})
}

// clientID is always present behind RequireClient.
func clientID(r *http.Request) string {
	id, _ := auth.ClientID(r.Context())
	return id
}

type signRequest struct {
	Sign string `json:"sign"`
}

type reorderRequest struct {
	Signs []string `json:"signs"`
}

type favoritesResponse struct {
	Favorites []Favorite `json:"favorites"`
}

func handleFavorites(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favs, err := store.Favorites(r.Context(), clientID(r))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, favoritesResponse{Favorites: favs})
	}
}

func handleAddFavorite(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signRequest
		if err := httpx.ReadJSON(r, &req, 0); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		favs, added, err := store.AddFavorite(r.Context(), clientID(r), req.Sign)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		status := http.StatusOK
		if added {
			status = http.StatusCreated
		}
		httpx.WriteJSON(w, status, favoritesResponse{Favorites: favs})
	}
}

func handleReorderFavorites(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := httpx.ReadJSON(r, &req, 0); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		favs, err := store.ReorderFavorites(r.Context(), clientID(r), req.Signs)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, favoritesResponse{Favorites: favs})
	}
}

func handleRemoveFavorite(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favs, err := store.RemoveFavorite(r.Context(), clientID(r), chi.URLParam(r, "sign"))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, favoritesResponse{Favorites: favs})
	}
}

type historyResponse struct {
	History []HistoryEntry `json:"history"`
}

func handleHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				httpx.Fail(w, r, apperr.Invalid(apperr.CodeInvalidParam, "limit", "limit must be a positive integer"))
				return
			}
			limit = n
		}
		entries, err := store.History(r.Context(), clientID(r), limit)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, historyResponse{History: entries})
	}
}

func handleAddHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e HistoryEntry
		if err := httpx.ReadJSON(r, &e, 0); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		created, err := store.AddHistory(r.Context(), clientID(r), e)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, created)
	}
}

func handleClearHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := store.ClearHistory(r.Context(), clientID(r))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": n})
	}
}

func handleGetPreferences(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.Preferences(r.Context(), clientID(r))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, p)
	}
}

func handlePutPreferences(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Preferences
		if err := httpx.ReadJSON(r, &p, 0); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		saved, err := store.PutPreferences(r.Context(), clientID(r), p)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, saved)
	}
}

func handleStreak(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := store.Streak(r.Context(), clientID(r))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, st)
	}
}

func handleVisit(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := store.RecordVisit(r.Context(), clientID(r), store.now())
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, res)
	}
}

type eventRequest struct {
	Type EventType `json:"type"`
	Sign string    `json:"sign"`
}

type eventResponse struct {
	Event *Event       `json:"event"`
	Visit *VisitResult `json:"visit"`
}

func handleRecordEvent(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		if err := httpx.ReadJSON(r, &req, 0); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		ev, visit, err := store.RecordEvent(r.Context(), clientID(r), req.Type, req.Sign)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, eventResponse{Event: ev, Visit: visit})
	}
}

func handleEventCounts(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := store.EventCounts(r.Context(), clientID(r))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"counts": counts})
	}
}
