package http

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	feedService "github.com/reshetovitsme/podcast-feed/internal/modules/feed/service"
	"github.com/reshetovitsme/podcast-feed/internal/shared/config"
	"github.com/reshetovitsme/podcast-feed/internal/shared/errors"
	"github.com/reshetovitsme/podcast-feed/podcast"
	sloghttp "github.com/samber/slog-http"
	"github.com/spf13/cast"
)

// Server handles HTTP requests for podcast feeds
type Server struct {
	cfg         *config.Config
	feedService *feedService.Service
	logger      *slog.Logger
	server      *http.Server
}

// New creates a new HTTP server. The listener is not opened until Start.
func New(cfg *config.Config, feedService *feedService.Service) *Server {
	s := &Server{
		cfg:         cfg,
		feedService: feedService,
		logger:      slog.Default(),
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// SetLogger sets the logger. It must be called before Start.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
	s.server.Handler = s.Handler()
}

// Handler returns the routes wrapped in access logging and panic recovery
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /rss/{feedID}", s.handleRSSFeed)
	mux.HandleFunc("GET /feeds", s.handleListFeeds)
	mux.HandleFunc("GET /health", s.handleHealth)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server and blocks until it stops. It returns nil
// right away if Shutdown was already called.
func (s *Server) Start() error {
	s.logger.Info("RSS server starting", "addr", s.server.Addr, "feeds_path", s.cfg.FeedsPath)

	if err := s.server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains open connections and stops Start, whether it is already
// serving or not.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	feedID := r.PathValue("feedID")
	if feedID == "" {
		http.Error(w, "Feed ID is required", http.StatusBadRequest)
		return
	}

	opts := podcast.DefaultRenderOptions()
	if v := r.URL.Query().Get("pretty"); v != "" {
		pretty, err := cast.ToBoolE(v)
		if err != nil {
			http.Error(w, "Invalid pretty parameter", http.StatusBadRequest)
			return
		}
		opts.Pretty = pretty
	}

	rss, err := s.feedService.Render(feedID, s.baseURL(r), opts)
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrFeedNotFound), stderrors.Is(err, errors.ErrInvalidFeedID):
			http.Error(w, "Feed not found", http.StatusNotFound)
		default:
			s.logger.Error("Error generating feed", "feed_id", feedID, "error", err)
			http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(s.cfg.CacheTTL))
	w.WriteHeader(http.StatusOK)
	w.Write(rss)
}

func (s *Server) handleListFeeds(w http.ResponseWriter, r *http.Request) {
	ids, err := s.feedService.ListFeeds()
	if err != nil {
		s.logger.Error("Error listing feeds", "error", err)
		http.Error(w, "Failed to list feeds", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"feeds": ids})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) baseURL(r *http.Request) string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}
	return fmt.Sprintf("%s://%s", getScheme(r), r.Host)
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
