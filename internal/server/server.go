package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/ba-career-quest/config"
	"github.com/user/ba-career-quest/internal/interfaces"
	"github.com/user/ba-career-quest/internal/journal"
	"go.uber.org/zap"
)

// Server exposes the game and the journal over HTTP
type Server struct {
	game    interfaces.GameManager
	journal *journal.Journal
	logger  *zap.Logger
}

// New creates a server. A nil logger discards output.
func New(game interfaces.GameManager, j *journal.Journal, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		game:    game,
		journal: j,
		logger:  logger,
	}
}

// Router builds the route table
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	router.Get("/state", s.handleState)
	router.Post("/actions", s.handleAction)
	router.Get("/characters", s.handleCharacters)
	router.Get("/scenarios", s.handleScenarios)
	router.Get("/scenarios/current/choices", s.handleChoices)
	router.Get("/progress", s.handleProgress)
	router.Get("/tools", s.handleTools)
	router.Get("/skills", s.handleSkills)
	router.Get("/share.png", s.handleShare)

	router.Route("/journal", func(r chi.Router) {
		r.Get("/", s.handleJournalList)
		r.Post("/", s.handleJournalCreate)
		r.Get("/categories", s.handleJournalCategories)
		r.Get("/{id}", s.handleJournalArticle)
		r.Post("/{id}/publish", s.handleJournalPublish)
		r.Post("/{id}/archive", s.handleJournalArchive)
		r.Post("/{id}/read", s.handleJournalRead)
	})

	return router
}

// NewHTTPServer wraps handler in an http.Server listening on the configured
// address
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
