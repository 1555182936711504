package leaderboard

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	gonet "github.com/rangeshot/rangeshot/internal/net"
)

type submitRequest struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// API serves the score endpoints and the live top-list feed.
type API struct {
	svc *Service
	hub *gonet.Hub
	log *zap.Logger
}

func NewAPI(svc *Service, hub *gonet.Hub, log *zap.Logger) *API {
	return &API{svc: svc, hub: hub, log: log}
}

// Routes returns the handler for
//
//	POST /api/scores       submit {playerName, score}
//	GET  /api/scores/top   top list
//	GET  /api/scores/feed  websocket, pushes the top list after each submit
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/scores", a.submit)
	mux.HandleFunc("GET /api/scores/top", a.top)
	mux.HandleFunc("GET /api/scores/feed", a.feed)
	return mux
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body: " + err.Error()})
		return
	}
	rec, err := a.svc.SubmitScore(r.Context(), req.PlayerName, req.Score)
	if err != nil {
		a.log.Error("submit score", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not save score"})
		return
	}
	writeJSON(w, http.StatusCreated, rec)
	a.publishTop(r)
}

func (a *API) top(w http.ResponseWriter, r *http.Request) {
	top, err := a.svc.GetTopScores(r.Context())
	if err != nil {
		a.log.Error("get top scores", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not load scores"})
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (a *API) feed(w http.ResponseWriter, r *http.Request) {
	var hello []byte
	if top, err := a.svc.GetTopScores(r.Context()); err == nil {
		hello, _ = json.Marshal(top)
	} else {
		a.log.Warn("feed hello", zap.Error(err))
	}
	a.hub.Serve(w, r, hello)
}

func (a *API) publishTop(r *http.Request) {
	if a.hub.Len() == 0 {
		return
	}
	top, err := a.svc.GetTopScores(r.Context())
	if err != nil {
		a.log.Warn("publish top scores", zap.Error(err))
		return
	}
	data, err := json.Marshal(top)
	if err != nil {
		return
	}
	a.hub.Broadcast(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
