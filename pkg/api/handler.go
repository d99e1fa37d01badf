package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hazyhaar/fuzzmask/pkg/fuzzy"
	"github.com/hazyhaar/fuzzmask/pkg/kit"
	"github.com/hazyhaar/fuzzmask/pkg/policy"
)

// NewRouter returns an http.Handler with all fuzzmask API routes.
func NewRouter(store *policy.Store, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	h := &handler{eps: newEndpoints(store, logger)}

	mux.HandleFunc("GET /v1/transliterate/{text}", h.handleTransliterate)
	mux.HandleFunc("GET /v1/similarity", h.handleSimilarity)
	mux.HandleFunc("GET /v1/censor/{text}", h.handleCensor)
	mux.HandleFunc("GET /v1/phone/same", h.handleSamePhone)
	mux.HandleFunc("GET /v1/phone/{number}", h.handlePhone)
	mux.HandleFunc("GET /v1/rank", methodNotAllowed) // prevent GET on rank
	mux.HandleFunc("POST /v1/rank", h.handleRank)
	mux.HandleFunc("GET /v1/policy", h.handlePolicy)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	eps *endpoints
}

// --- transliterate ---

func (h *handler) handleTransliterate(w http.ResponseWriter, r *http.Request) {
	text := r.PathValue("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing text")
		return
	}
	h.serve(w, r, h.eps.transliterate, &transliterateReq{Text: text}, http.StatusInternalServerError)
}

// --- similarity ---

func (h *handler) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serve(w, r, h.eps.similarity, &similarityReq{
		Source:    q.Get("source"),
		Target:    q.Get("target"),
		Normalize: q.Get("normalize"),
	}, http.StatusBadRequest)
}

// --- censor ---

func (h *handler) handleCensor(w http.ResponseWriter, r *http.Request) {
	spaced, err := parseBool(r.URL.Query().Get("spaced"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid spaced flag")
		return
	}
	h.serve(w, r, h.eps.censor, &censorReq{Text: r.PathValue("text"), Spaced: spaced}, http.StatusInternalServerError)
}

// --- phone ---

func (h *handler) handlePhone(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.eps.phone, &phoneReq{Number: r.PathValue("number")}, http.StatusInternalServerError)
}

func (h *handler) handleSamePhone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serve(w, r, h.eps.samePhone, &samePhoneReq{A: q.Get("a"), B: q.Get("b")}, http.StatusInternalServerError)
}

// --- rank ---

type httpRankRequest struct {
	Query      string   `json:"query"`
	Candidates []string `json:"candidates"`
	MinScore   float64  `json:"min_score,omitempty"`
	Limit      int      `json:"limit,omitempty"`
	Normalize  string   `json:"normalize,omitempty"`
}

func (h *handler) handleRank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpRankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.serve(w, r, h.eps.rank, &rankReq{
		Query:      req.Query,
		Candidates: req.Candidates,
		Opts: fuzzy.RankOptions{
			MinScore:  req.MinScore,
			Limit:     req.Limit,
			Normalize: req.Normalize,
		},
	}, http.StatusBadRequest)
}

// --- policy ---

func (h *handler) handlePolicy(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.eps.policy, nil, http.StatusInternalServerError)
}

// --- health ---

type healthResponse struct {
	Status string `json:"status"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// --- helpers ---

// serve runs ep and writes its response, or errCode with the error message.
func (h *handler) serve(w http.ResponseWriter, r *http.Request, ep kit.Endpoint, req any, errCode int) {
	ctx := kit.WithTransport(r.Context(), "http")
	if id := r.Header.Get("X-Request-ID"); id != "" {
		ctx = kit.WithRequestID(ctx, id)
	}
	resp, err := ep(ctx, req)
	if err != nil {
		writeError(w, errCode, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
