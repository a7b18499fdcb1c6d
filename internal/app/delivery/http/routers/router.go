package routers

import (
	"fmt"
	"time"

	"campushub-service/internal/app/config"
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/services/core/academics"
	"campushub-service/internal/app/services/core/attendance"
	"campushub-service/internal/app/services/core/auth"
	"campushub-service/internal/app/services/core/students"
	"campushub-service/internal/app/services/core/timetable"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	timetableController *timetable.TimetableController,
	authController *auth.AuthController,
	studentController *students.StudentController,
	attendanceController *attendance.AttendanceController,
	academicsController *academics.AcademicsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "If-None-Match", "X-Request-ID"},
		ExposedHeaders:   []string{"ETag", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/students", func(r chi.Router) {
				attachStudentRoutes(r, middlewares, studentController)
			})

			r.Route("/timetable", func(r chi.Router) {
				attachTimetableRoutes(r, middlewares, timetableController)
			})

			r.Route("/attendance", func(r chi.Router) {
				attachAttendanceRoutes(r, middlewares, attendanceController)
			})

			r.Route("/academics", func(r chi.Router) {
				attachAcademicsRoutes(r, internalConfig, middlewares, academicsController)
			})
		})
	})
}
