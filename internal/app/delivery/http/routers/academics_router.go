package routers

import (
	"time"

	"campushub-service/internal/app/config"
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/services/core/academics"
	"campushub-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAcademicsRoutes(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, academicsController *academics.AcademicsController) {
	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate, mw.RequireRoles(constvars.RoleStaff, constvars.RolePrincipal))
		r.Get("/courses", academicsController.Courses)
		r.Get("/courses/{courseID}/sections", academicsController.Sections)
		r.Get("/classes/{classID}/students", academicsController.Students)
	})

	importLimiter := middlewares.NewRateLimiter(
		internalConfig.App.ImportMaxRequests,
		time.Minute,
		time.Duration(internalConfig.App.ImportBlockTimeInMinute)*time.Minute,
	)

	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate, mw.RequireRoles(constvars.RolePrincipal))
		r.Get("/staffs", academicsController.Staffs)

		r.With(importLimiter.Limit).Post("/students/import", academicsController.ImportStudents)
		r.With(importLimiter.Limit).Post("/staff/import", academicsController.ImportStaff)
	})
}
