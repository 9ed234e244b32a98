package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/unikz/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger       *log.Logger
	universities adminapp.UniversityService
	majors       adminapp.MajorService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger            *log.Logger
	UniversityService adminapp.UniversityService
	MajorService      adminapp.MajorService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		universities: cfg.UniversityService,
		majors:       cfg.MajorService,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/universities", h.universitySearchHandler())
	r.Post("/universities", h.universityCreateHandler())
	r.Get("/universities/{id}", h.universityDetailHandler())
	r.Patch("/universities/{id}", h.universityUpdateHandler())
	r.Get("/majors", h.majorSearchHandler())
	r.Post("/majors", h.majorCreateHandler())
}
