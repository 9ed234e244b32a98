package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/sngm3741/unikz/api/internal/admin/application"
	"github.com/sngm3741/unikz/api/internal/catalog"
	"github.com/sngm3741/unikz/api/internal/config"
	"github.com/sngm3741/unikz/api/internal/infrastructure/llm"
	mongodoc "github.com/sngm3741/unikz/api/internal/infrastructure/mongo"
	adminhttp "github.com/sngm3741/unikz/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/unikz/api/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
)

// Server owns the HTTP lifecycle and is the composition root that wires
// repositories and services into the public and admin handlers.
type Server struct {
	logger         *log.Logger
	client         *mongo.Client
	database       *mongo.Database
	tokens         *tokenIssuer
	recorder       *publicapp.AsyncRecorder
	adminToken     string
	addr           string
	allowedOrigins []string

	catalogService    publicapp.CatalogQueryService
	careerService     publicapp.CareerService
	calculatorService publicapp.CalculatorService
	chatService       publicapp.ChatService
	authService       publicapp.AuthService

	adminUniversityService adminapp.UniversityService
	adminMajorService      adminapp.MajorService
}

// Run mounts the routes and serves until the listener fails or a shutdown
// signal arrives.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:     s.logger,
		Catalog:    s.catalogService,
		Career:     s.careerService,
		Calculator: s.calculatorService,
		Chat:       s.chatService,
		Auth:       s.authService,
	})
	publicHandler.Register(router, s.optionalAuth, s.requireAuth)

	if s.adminToken == "" {
		s.logger.Printf("ADMIN_API_TOKEN is empty; admin routes are disabled")
		return router
	}
	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:            s.logger,
		UniversityService: s.adminUniversityService,
		MajorService:      s.adminMajorService,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(adminGuard(s.adminToken, s.logger))
		adminHandler.Register(r)
	})
	return router
}

// healthHandler reports MongoDB reachability only.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.logger.Printf("health check: MongoDB ping failed: %v", err)
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// shutdown drains pending history writes, then disconnects MongoDB.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if s.recorder != nil {
		s.recorder.Wait()
	}
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB disconnect failed: %v", err)
	}
}

func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server stopped unexpectedly: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("server shutdown failed: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New builds repositories and services from cfg. It fails when the question
// bank cannot be parsed, the completion provider cannot be constructed or
// the indexes cannot be created.
func New(cfg config.Config, client *mongo.Client) (*Server, error) {
	db := client.Database(cfg.MongoDatabase)
	collections := mongodoc.Collections{
		Universities: cfg.Collections.Universities,
		Majors:       cfg.Collections.Majors,
		Users:        cfg.Collections.Users,
		Credentials:  cfg.Collections.Credentials,
		QuizResults:  cfg.Collections.QuizResults,
		EntScores:    cfg.Collections.EntScores,
		Chats:        cfg.Collections.Chat,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := mongodoc.EnsureIndexes(ctx, db, collections); err != nil {
		return nil, err
	}

	bank, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	streamer, err := llm.NewStreamer(ctx, cfg.LLM, cfg.ServerLog)
	if err != nil {
		return nil, err
	}

	universities := mongodoc.NewUniversityRepository(db, collections.Universities)
	majors := mongodoc.NewMajorRepository(db, collections.Majors)
	users := mongodoc.NewUserRepository(db, collections.Users)
	recorder := publicapp.NewAsyncRecorder(cfg.ServerLog, cfg.RecordTimeout)
	tokens := newTokenIssuer(cfg.JWT)

	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       db,
		tokens:         tokens,
		recorder:       recorder,
		adminToken:     cfg.AdminToken,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	srv.catalogService = publicapp.NewCatalogQueryService(universities, majors)
	srv.careerService = publicapp.NewCareerService(publicapp.CareerConfig{
		Bank:                 bank,
		Majors:               majors,
		Results:              mongodoc.NewQuizResultRepository(db, collections.QuizResults),
		Recorder:             recorder,
		QuestionsPerCategory: cfg.QuestionsPerCategory,
	})
	srv.calculatorService = publicapp.NewCalculatorService(publicapp.CalculatorConfig{
		Majors:       majors,
		Universities: universities,
		Scores:       mongodoc.NewEntScoreRepository(db, collections.EntScores),
		Recorder:     recorder,
	})
	srv.chatService = publicapp.NewChatService(publicapp.ChatConfig{
		Completion:    llm.NewCompletionAdapter(streamer, cfg.LLM),
		Repo:          mongodoc.NewChatRepository(db, collections.Chats),
		Recorder:      recorder,
		HistoryWindow: cfg.HistoryWindow,
	})
	srv.authService = publicapp.NewAuthService(publicapp.AuthConfig{
		Credentials: mongodoc.NewCredentialRepository(db, collections.Credentials),
		Users:       users,
		Recorder:    recorder,
		Signer:      tokens.Sign,
	})

	srv.adminUniversityService = adminapp.NewUniversityService(mongodoc.NewAdminUniversityRepository(db, collections.Universities))
	srv.adminMajorService = adminapp.NewMajorService(mongodoc.NewAdminMajorRepository(db, collections.Majors))

	return srv, nil
}
