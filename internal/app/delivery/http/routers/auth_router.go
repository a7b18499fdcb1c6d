package routers

import (
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/services/core/auth"
	"campushub-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/refresh", authController.Refresh)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleStaff, constvars.RolePrincipal)).
		Get("/me", authController.Me)
}
