package routers

import (
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/services/core/attendance"
	"campushub-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAttendanceRoutes(router chi.Router, middlewares *middlewares.Middlewares, attendanceController *attendance.AttendanceController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleStaff, constvars.RolePrincipal))
		r.Post("/", attendanceController.Mark)
		r.Get("/", attendanceController.Get)
	})
}
