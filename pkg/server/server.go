package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/blogforge/blogforge/pkg/agents"
)

// Server exposes the generation pipeline over HTTP. Each accepted request
// is dispatched to its own goroutine and the outcome is pushed to
// websocket clients, so two concurrent requests never share state.
type Server struct {
	cfg  Config
	crew *agents.Crew
	jobs *jobRegistry
	hub  *hub
	cron *cron.Cron
	log  zerolog.Logger
	http *http.Server
}

// New wires the routes and the job pruning schedule.
func New(cfg Config, crew *agents.Crew, log zerolog.Logger) (*Server, error) {
	cfg = *cfg.WithDefaults()
	if crew == nil {
		return nil, errors.New("crew is required")
	}

	s := &Server{
		cfg:  cfg,
		crew: crew,
		jobs: newJobRegistry(),
		hub:  newHub(),
		cron: cron.New(),
		log:  log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleCancelJob)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.http = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	retention := time.Duration(cfg.JobRetentionMins) * time.Minute
	if _, err := s.cron.AddFunc(cfg.PruneSchedule, func() {
		if removed := s.jobs.Prune(retention); removed > 0 {
			s.log.Debug().Int("removed", removed).Msg("pruned finished jobs")
		}
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// ListenAndServe starts the housekeeping schedule and serves until the
// listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.cron.Start()
	s.log.Info().Str("addr", s.cfg.ListenAddr).Msg("listening")
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the cron schedule and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cron.Stop()
	return s.http.Shutdown(ctx)
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req agents.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing topic"})
		return
	}

	jobCtx, cancel := context.WithCancel(context.Background())
	id := s.jobs.Add(req.Topic, cancel)
	jobLog := s.log.With().Str("request_id", id).Logger()
	go func() {
		defer cancel()
		s.runJob(jobLog.WithContext(jobCtx), id, req)
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message":    "Generation started",
		"request_id": id,
	})
}

func (s *Server) runJob(ctx context.Context, id string, req agents.Request) {
	log := zerolog.Ctx(ctx)
	result, err := s.crew.Kickoff(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			log.Info().Msg("generation cancelled")
			return
		}
		log.Error().Err(err).Msg("generation failed")
		s.jobs.Fail(id, err.Error())
		s.hub.broadcast(ctx, Event{
			Event:     eventGenerationError,
			RequestID: id,
			Error:     "An error occurred during content generation.",
		})
		return
	}
	log.Info().Msg("generation complete")
	s.jobs.Complete(id, result)
	s.hub.broadcast(ctx, Event{
		Event:     eventGenerationComplete,
		RequestID: id,
		Result:    result,
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.jobs.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown job"})
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.jobs.Cancel(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no running job with that id"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "cancelled", "request_id": id})
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Debug().Err(err).Msg("websocket accept failed")
		return
	}
	id := s.hub.add(conn)
	s.log.Debug().Str("client_id", id).Int("clients", s.hub.count()).Msg("websocket client connected")

	// The hub owns all writes; CloseRead surfaces client disconnects.
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()

	s.hub.remove(id)
	s.log.Debug().Str("client_id", id).Msg("websocket client disconnected")
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
