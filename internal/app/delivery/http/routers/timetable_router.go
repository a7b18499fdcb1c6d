package routers

import (
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/services/core/timetable"
	"campushub-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(router chi.Router, middlewares *middlewares.Middlewares, timetableController *timetable.TimetableController) {
	// Read endpoints are open: the timetable is public campus
	// information and student apps poll them before login.
	router.Get("/today", timetableController.Today)
	router.Get("/date/{date}", timetableController.ByDate)
	router.Get("/range", timetableController.Range)
	router.Get("/month/{month}", timetableController.Month)
	router.Get("/master", timetableController.Master)
	router.Get("/templates", timetableController.ListTemplates)

	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RolePrincipal)).
		Put("/schedule", timetableController.SaveSchedule)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RolePrincipal)).
		Post("/templates", timetableController.CreateTemplate)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RolePrincipal)).
		Post("/seed", timetableController.Reseed)
}
