package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ebill-api/internal/config"
	"ebill-api/internal/handler"
	"ebill-api/internal/middleware"
	"ebill-api/internal/model"
)

type Handlers struct {
	Auth *handler.AuthHandler
	User *handler.UserHandler
	Docs *handler.DocsHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Welcome to Ebill API!"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/openapi.yaml", h.Docs.OpenAPI)
	r.Get("/swagger", h.Docs.SwaggerUI)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.Post("/register/{school_id}", h.Auth.Register)
		})

		api.Route("/users", func(users chi.Router) {
			users.With(authMiddleware.RequireAuth).Get("/profile/{user_id}", h.User.Get)
			users.With(authMiddleware.RequireAuth).Patch("/profile/{user_id}", h.User.Update)
			users.With(middleware.RequireAPIKey(cfg.APIKey)).Delete("/profile/{user_id}", h.User.Delete)
		})
	})

	r.NotFound(notFoundFallback)
	r.MethodNotAllowed(notFoundFallback)

	return r
}

// notFoundFallback keeps unmapped routes on the JSON envelope instead
// of the default plain-text 404.
func notFoundFallback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Message: fmt.Sprintf("The API endpoint %s does not exist on this server.", r.URL.Path),
	})
}
