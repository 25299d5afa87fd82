package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"remotesms/internal/domain"
)

type ackRequest struct {
	Count int `json:"count"`
}

// Server is an in-memory gateway holding one FIFO queue per address.
type Server struct {
	mu     sync.Mutex
	queues map[domain.Address][]domain.Envelope
	log    zerolog.Logger
	now    func() time.Time
}

// NewServer returns an empty gateway.
func NewServer(log zerolog.Logger) *Server {
	return &Server{
		queues: make(map[domain.Address][]domain.Envelope),
		log:    log,
		now:    time.Now,
	}
}

// Handler returns the gateway routes wrapped in the access log.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /msg/{addr}", s.enqueue)
	mux.HandleFunc("GET /msg/{addr}", s.peek)
	mux.HandleFunc("POST /msg/{addr}/ack", s.ack)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s.accessLog(mux)
}

// Pending returns the number of envelopes queued for addr.
func (s *Server) Pending(addr domain.Address) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues[addr])
}

func (s *Server) enqueue(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	addr := domain.Address(r.PathValue("addr"))

	var env domain.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := uuid.NewV7()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	env.ID = id.String()
	env.To = addr
	env.Timestamp = s.now().Unix()

	s.mu.Lock()
	s.queues[addr] = append(s.queues[addr], env)
	s.mu.Unlock()

	writeJSON(w, http.StatusAccepted, map[string]string{"id": env.ID})
}

func (s *Server) peek(w http.ResponseWriter, r *http.Request) {
	addr := domain.Address(r.PathValue("addr"))
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	s.mu.Lock()
	q := s.queues[addr]
	if limit > 0 && limit < len(q) {
		q = q[:limit]
	}
	out := make([]domain.Envelope, len(q))
	copy(out, q)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) ack(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	addr := domain.Address(r.PathValue("addr"))

	var req ackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Count < 0 {
		http.Error(w, "bad ack", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	q := s.queues[addr]
	n := min(req.Count, len(q))
	if n == len(q) {
		delete(s.queues, addr)
	} else {
		s.queues[addr] = q[n:]
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, ackRequest{Count: n})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
