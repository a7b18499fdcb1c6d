package routers

import (
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/services/core/students"
	"campushub-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachStudentRoutes(router chi.Router, middlewares *middlewares.Middlewares, studentController *students.StudentController) {
	router.Post("/login", studentController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleStudent))
		r.Post("/change-password", studentController.ChangePassword)
		r.Get("/me", studentController.Me)
		r.Get("/me/attendance", studentController.MyAttendance)
	})
}
