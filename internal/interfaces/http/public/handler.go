package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger  *log.Logger
	catalog publicapp.CatalogQueryService
	career  publicapp.CareerService
	calc    publicapp.CalculatorService
	chat    publicapp.ChatService
	auth    publicapp.AuthService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger     *log.Logger
	Catalog    publicapp.CatalogQueryService
	Career     publicapp.CareerService
	Calculator publicapp.CalculatorService
	Chat       publicapp.ChatService
	Auth       publicapp.AuthService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:  cfg.Logger,
		catalog: cfg.Catalog,
		career:  cfg.Career,
		calc:    cfg.Calculator,
		chat:    cfg.Chat,
		auth:    cfg.Auth,
	}
}

// Register mounts all public routes onto the router. optionalAuth attaches
// the user when a valid token is present; requireAuth rejects the request
// otherwise.
func (h *Handler) Register(r chi.Router, optionalAuth, requireAuth func(http.Handler) http.Handler) {
	r.Get("/universities", h.universityListHandler())
	r.Get("/universities/cities", h.universityCitiesHandler())
	r.Get("/universities/{slug}", h.universityDetailHandler())
	r.Get("/majors", h.majorListHandler())
	r.Get("/majors/{id}", h.majorDetailHandler())

	r.Get("/career/questions", h.careerQuestionsHandler())
	r.Get("/career/types", h.careerTypesHandler())
	r.With(optionalAuth).Post("/career/evaluate", h.careerEvaluateHandler())
	r.Post("/career/session", h.careerSessionHandler())

	r.Get("/calculator/subjects", h.calculatorSubjectsHandler())
	r.Get("/calculator/thresholds", h.calculatorThresholdsHandler())
	r.With(optionalAuth).Post("/calculator/estimate", h.calculatorEstimateHandler())

	r.With(optionalAuth).Post("/chat", h.chatHandler())
	r.With(requireAuth).Get("/chat/history", h.chatHistoryHandler())

	r.Post("/auth/register", h.authRegisterHandler())
	r.Post("/auth/login", h.authLoginHandler())
	r.With(requireAuth).Get("/auth/verify", h.authVerifyHandler())
}
