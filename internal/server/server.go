// Package server exposes the ranking engine and its data store over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridironlabs/cfbrank/internal/rankings"
	"github.com/gridironlabs/cfbrank/internal/snapshot"
	"github.com/gridironlabs/cfbrank/internal/tools/compare"
	"github.com/gridironlabs/cfbrank/internal/tools/download"
	"github.com/gridironlabs/cfbrank/internal/tools/rank"
)

// Server wires HTTP routes for the ranking API.
type Server struct {
	cfg   *Config
	store *snapshot.Store

	// downloading serializes POST /api/download; concurrent season
	// downloads would race on the snapshot files.
	downloading sync.Mutex
}

// NewServer builds a Server over the configured data directory.
func NewServer(cfg *Config) *Server {
	return &Server{
		cfg:   cfg,
		store: snapshot.NewStore(cfg.DataDir),
	}
}

// Handler returns the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/data/manifest", s.handleManifest)
	mux.HandleFunc("POST /api/download", s.handleDownload)
	mux.HandleFunc("GET /api/rankings", s.handleRankings)
	mux.HandleFunc("GET /api/teams/compare", s.handleCompare)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, route string, status int, err error) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func ok(w http.ResponseWriter, route string, v any) {
	httpRequestsTotal.WithLabelValues(route, "200").Inc()
	writeJSON(w, http.StatusOK, v)
}

// season resolves the ?year= query parameter, falling back to the configured
// default season.
func (s *Server) season(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return s.cfg.DefaultSeason, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

type statusResponse struct {
	Status        string `json:"status"`
	DefaultSeason int    `json:"defaultSeason"`
	HasData       bool   `json:"hasData"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ok(w, "status", statusResponse{
		Status:        "ok",
		DefaultSeason: s.cfg.DefaultSeason,
		HasData:       s.store.HasSeason(s.cfg.DefaultSeason),
	})
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	year, err := s.season(r)
	if err != nil {
		writeError(w, "manifest", http.StatusBadRequest, err)
		return
	}
	manifest, err := s.store.Manifest(year)
	if err != nil {
		writeError(w, "manifest", http.StatusInternalServerError, err)
		return
	}
	ok(w, "manifest", manifest)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	year, err := s.season(r)
	if err != nil {
		writeError(w, "download", http.StatusBadRequest, err)
		return
	}
	if s.cfg.APIKey == "" {
		writeError(w, "download", http.StatusServiceUnavailable, errors.New("no API key configured"))
		return
	}
	if !s.downloading.TryLock() {
		writeError(w, "download", http.StatusConflict, errors.New("a download is already in progress"))
		return
	}
	defer s.downloading.Unlock()

	ctx := download.NewContext(r.Context())
	ctx.APIKey = s.cfg.APIKey
	ctx.BaseURL = s.cfg.BaseURL
	ctx.Season = year
	ctx.Store = s.store
	ctx.Force = true
	ctx.NoProgress = true

	start := time.Now()
	summary, err := download.Download(ctx)
	downloadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		downloadFailures.Inc()
		writeError(w, "download", http.StatusBadGateway, err)
		return
	}
	downloadFailures.Add(float64(summary.Failed))
	ok(w, "download", summary)
}

type rankingsResponse struct {
	Season int              `json:"season"`
	Teams  []*rankings.Team `json:"teams"`
}

func (s *Server) rankSeason(parent context.Context, year int) ([]*rankings.Team, error) {
	ctx := rank.NewContext(parent)
	ctx.Season = year
	ctx.Store = s.store

	start := time.Now()
	ranked, err := rank.Rank(ctx)
	if err != nil {
		return nil, err
	}
	rankingDuration.Observe(time.Since(start).Seconds())
	return ranked, nil
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	year, err := s.season(r)
	if err != nil {
		writeError(w, "rankings", http.StatusBadRequest, err)
		return
	}
	ranked, err := s.rankSeason(r.Context(), year)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			writeError(w, "rankings", http.StatusNotFound, fmt.Errorf("no data downloaded for season %d", year))
			return
		}
		writeError(w, "rankings", http.StatusInternalServerError, err)
		return
	}
	ok(w, "rankings", rankingsResponse{Season: year, Teams: ranked})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	year, err := s.season(r)
	if err != nil {
		writeError(w, "compare", http.StatusBadRequest, err)
		return
	}
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		writeError(w, "compare", http.StatusBadRequest, errors.New("both a and b team names are required"))
		return
	}
	ranked, err := s.rankSeason(r.Context(), year)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			writeError(w, "compare", http.StatusNotFound, fmt.Errorf("no data downloaded for season %d", year))
			return
		}
		writeError(w, "compare", http.StatusInternalServerError, err)
		return
	}
	model, err := compare.NewGaussianScoreModel(ranked)
	if err != nil {
		writeError(w, "compare", http.StatusInternalServerError, err)
		return
	}
	cmp, err := model.Compare(a, b)
	if err != nil {
		writeError(w, "compare", http.StatusNotFound, err)
		return
	}
	ok(w, "compare", cmp)
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
