package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// DraftStore persists resume drafts. *db.DB implements it.
type DraftStore interface {
	SaveDraft(ctx context.Context, id uuid.UUID, data types.ResumeData) (*db.Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*db.Draft, error)
	ListDrafts(ctx context.Context, limit int) ([]db.DraftSummary, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	handler       http.Handler
	sessions      *session.Store
	exporter      *export.Exporter
	drafts        DraftStore
	latexTemplate string
	rateLimiter   *ratelimit.Limiter
	pages         *template.Template
	keepAlive     time.Duration
}

// Config holds server configuration
type Config struct {
	Port          int
	Sessions      *session.Store    // required
	Exporter      *export.Exporter  // nil serves HTML and LaTeX only
	Drafts        DraftStore        // nil disables drafts
	LaTeXTemplate string            // custom template for .tex export
	RateLimit     *ratelimit.Config // nil loads RATE_LIMIT_* from the environment
	KeepAlive     time.Duration     // preview stream keep-alive interval; 0 means 30s
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("server config: session store is required")
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		sessions:      cfg.Sessions,
		exporter:      cfg.Exporter,
		drafts:        cfg.Drafts,
		latexTemplate: cfg.LaTeXTemplate,
		pages:         pages,
		keepAlive:     cfg.KeepAlive,
	}
	if s.exporter == nil {
		s.exporter = export.New(nil)
	}
	if s.keepAlive <= 0 {
		s.keepAlive = 30 * time.Second
	}

	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rlConfig)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(s.routes())))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
		// No WriteTimeout: preview streams stay open.
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	page := middleware.RequireSession(s.sessions, s.pageNotFound)
	api := middleware.RequireSession(s.sessions, s.apiNotFound)

	mux.HandleFunc("GET /health", s.handleHealth)

	// Builder pages
	mux.HandleFunc("GET /{$}", s.handleLanding)
	mux.HandleFunc("POST /builder", s.handleMountBuilder)
	mux.HandleFunc("POST /drafts/{draftID}/open", s.handleOpenDraftPage)
	mux.Handle("GET /builder/{id}", page(http.HandlerFunc(s.handleBuilderPage)))
	mux.Handle("POST /builder/{id}/back", page(http.HandlerFunc(s.handleUnmountBuilder)))
	mux.Handle("POST /builder/{id}/type", page(http.HandlerFunc(s.handleTypeForm)))
	mux.Handle("POST /builder/{id}/personal", page(http.HandlerFunc(s.handlePersonalForm)))
	mux.Handle("POST /builder/{id}/summary", page(http.HandlerFunc(s.handleSummaryForm)))
	mux.Handle("POST /builder/{id}/skills", page(http.HandlerFunc(s.handleAddSkillForm)))
	mux.Handle("POST /builder/{id}/skills/remove", page(http.HandlerFunc(s.handleRemoveSkillForm)))
	mux.Handle("POST /builder/{id}/sections/{section}", page(http.HandlerFunc(s.handleAddEntryForm)))
	mux.Handle("POST /builder/{id}/sections/{section}/{entryID}", page(http.HandlerFunc(s.handleUpdateEntryForm)))
	mux.Handle("POST /builder/{id}/sections/{section}/{entryID}/remove", page(http.HandlerFunc(s.handleRemoveEntryForm)))
	mux.Handle("POST /builder/{id}/projects/{entryID}/technologies", page(http.HandlerFunc(s.handleAddTechnologyForm)))
	mux.Handle("POST /builder/{id}/projects/{entryID}/technologies/remove", page(http.HandlerFunc(s.handleRemoveTechnologyForm)))
	mux.Handle("POST /builder/{id}/draft", page(http.HandlerFunc(s.handleSaveDraftForm)))
	mux.Handle("GET /builder/{id}/preview", page(http.HandlerFunc(s.handlePreviewFragment)))
	mux.Handle("GET /builder/{id}/preview/stream", page(http.HandlerFunc(s.handlePreviewStream)))
	mux.Handle("GET /builder/{id}/export.pdf", page(http.HandlerFunc(s.handleExportPDF)))
	mux.Handle("GET /builder/{id}/export.html", page(http.HandlerFunc(s.handleExportHTML)))
	mux.Handle("GET /builder/{id}/export.tex", page(http.HandlerFunc(s.handleExportTeX)))

	// JSON API
	mux.HandleFunc("GET /api/resume-types", s.handleResumeTypes)
	mux.HandleFunc("POST /api/resumes", s.handleCreateResume)
	mux.Handle("GET /api/resumes/{id}", api(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("PUT /api/resumes/{id}", api(http.HandlerFunc(s.handleImportResume)))
	mux.Handle("DELETE /api/resumes/{id}", api(http.HandlerFunc(s.handleDeleteResume)))
	mux.Handle("PUT /api/resumes/{id}/personal-info", api(http.HandlerFunc(s.handleSetPersonalInfo)))
	mux.Handle("PATCH /api/resumes/{id}/personal-info", api(http.HandlerFunc(s.handlePatchPersonalInfo)))
	mux.Handle("PUT /api/resumes/{id}/summary", api(http.HandlerFunc(s.handleSetSummary)))
	mux.Handle("PUT /api/resumes/{id}/type", api(http.HandlerFunc(s.handleSetResumeType)))
	mux.Handle("POST /api/resumes/{id}/skills", api(http.HandlerFunc(s.handleAddSkill)))
	mux.Handle("DELETE /api/resumes/{id}/skills", api(http.HandlerFunc(s.handleRemoveSkill)))
	mux.Handle("POST /api/resumes/{id}/{section}", api(http.HandlerFunc(s.handleAddEntry)))
	mux.Handle("PATCH /api/resumes/{id}/{section}/{entryID}", api(http.HandlerFunc(s.handleUpdateEntry)))
	mux.Handle("DELETE /api/resumes/{id}/{section}/{entryID}", api(http.HandlerFunc(s.handleRemoveEntry)))
	mux.Handle("POST /api/resumes/{id}/projects/{entryID}/technologies", api(http.HandlerFunc(s.handleAddTechnology)))
	mux.Handle("DELETE /api/resumes/{id}/projects/{entryID}/technologies", api(http.HandlerFunc(s.handleRemoveTechnology)))
	mux.Handle("GET /api/resumes/{id}/questions", api(http.HandlerFunc(s.handleQuestions)))
	mux.Handle("GET /api/resumes/{id}/guidance", api(http.HandlerFunc(s.handleGuidance)))
	mux.Handle("GET /api/resumes/{id}/preview", api(http.HandlerFunc(s.handlePreviewFragment)))
	mux.Handle("GET /api/resumes/{id}/export.pdf", api(http.HandlerFunc(s.handleExportPDF)))
	mux.Handle("GET /api/resumes/{id}/export.html", api(http.HandlerFunc(s.handleExportHTML)))
	mux.Handle("GET /api/resumes/{id}/export.tex", api(http.HandlerFunc(s.handleExportTeX)))

	// Drafts
	mux.Handle("POST /api/resumes/{id}/draft", api(http.HandlerFunc(s.handleSaveDraft)))
	mux.HandleFunc("GET /api/drafts", s.handleListDrafts)
	mux.HandleFunc("GET /api/drafts/{draftID}", s.handleGetDraft)
	mux.HandleFunc("POST /api/drafts/{draftID}/open", s.handleOpenDraft)
	mux.HandleFunc("DELETE /api/drafts/{draftID}", s.handleDeleteDraft)

	return mux
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.rateLimiter.Stop()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Println("[server] Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	log.Println("[server] Server stopped")
	return nil
}

// Close releases background resources without serving. Used by tests.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
		"drafts":   s.drafts != nil,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[server] Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errResponse maps err to its status code and writes it as a JSON error.
func (s *Server) errResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[server] Internal error: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}

func (s *Server) apiNotFound(w http.ResponseWriter, _ *http.Request, err error) {
	s.errResponse(w, err)
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Scope=%s Limit=%d Remaining=%d Reset=%s",
		info.Scope, info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
