package api

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the public reading API.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/signs", handleSigns(svc))
	r.Get("/api/signs/{sign}", handleSign(svc))

	r.Get("/api/horoscope/daily/{sign}", handleDaily(svc))
	r.Get("/api/horoscope/weekly/{sign}", handleWeekly(svc))
	r.Get("/api/horoscope/monthly/{sign}", handleMonthly(svc))

	r.Get("/api/compatibility/matrix", handleMatrix(svc))
	r.Get("/api/compatibility/{a}/{b}", handleCompatibility(svc))

	r.Post("/api/birth-chart", handleBirthChart(svc))
	r.Get("/api/biorhythm", handleBiorhythm(svc))
}
